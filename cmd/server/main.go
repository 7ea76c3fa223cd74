package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"open-football/internal/api"
	"open-football/internal/config"
	"open-football/internal/projection"
	"open-football/internal/sim"
	"open-football/internal/world"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file from parent directory
	if err := godotenv.Load("../.env"); err != nil {
		// Try current directory as fallback
		if err := godotenv.Load(".env"); err != nil {
			log.Info().Msg("no .env file found, using environment variables only")
		}
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(appConfig.Observability)

	log.Info().
		Int("port", appConfig.Server.Port).
		Str("seed", appConfig.Simulation.SeedPath).
		Bool("sim_enabled", appConfig.Simulation.Enabled).
		Msg("open-football query server")

	container := world.NewContainer()

	advancer := sim.NewAdvancer(container, sim.Config{
		TickInterval: appConfig.Simulation.TickInterval,
		DaysPerTick:  appConfig.Simulation.DaysPerTick,
	})

	// A failed load leaves the container empty; queries answer NotLoaded
	// until a SIGHUP reload succeeds.
	if _, err := advancer.Reload(appConfig.Simulation.SeedPath); err != nil {
		log.Error().Err(err).Msg("initial world load failed")
	}
	if appConfig.Simulation.Enabled {
		advancer.Start()
	}

	debugServer, err := api.StartDebugServer(api.ObservabilityConfig{
		Enabled:       appConfig.Observability.DebugEnabled,
		ListenAddr:    appConfig.Observability.DebugAddr,
		BasicAuthUser: appConfig.Observability.DebugUser,
		BasicAuthPass: appConfig.Observability.DebugPass,
	})
	if err != nil {
		log.Warn().Err(err).Msg("debug server disabled")
	}

	service := projection.NewService(container,
		projection.WithDefaultEventsLimit(appConfig.Query.EventsDefaultLimit))

	server := api.NewServer(api.ServerConfig{
		Addr:         appConfig.Server.Addr(),
		ReadTimeout:  appConfig.Server.ReadTimeout,
		WriteTimeout: appConfig.Server.WriteTimeout,
	}, api.RouterConfig{
		Service:     service,
		Readiness:   container,
		CORSOrigins: appConfig.Server.CORSOrigins,
		RateLimitConfig: &api.RateLimitConfig{
			RequestsPerSecond: appConfig.RateLimit.RequestsPerSecond,
			Burst:             appConfig.RateLimit.Burst,
			CleanupInterval:   appConfig.RateLimit.CleanupInterval,
		},
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for running := true; running; {
		select {
		case sig := <-sigChan:
			if sig == syscall.SIGHUP {
				if gen, err := advancer.Reload(appConfig.Simulation.SeedPath); err != nil {
					log.Error().Err(err).Msg("world reload failed")
				} else {
					log.Info().Uint64("generation", gen).Msg("world reloaded")
				}
				continue
			}
			log.Info().Str("signal", sig.String()).Msg("shutting down")
			running = false
		case err := <-serverErr:
			if err != nil {
				log.Error().Err(err).Msg("api server failed")
			}
			running = false
		}
	}

	advancer.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("api server shutdown")
	}
	if err := debugServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("debug server shutdown")
	}
	log.Info().Msg("goodbye")
}

func setupLogging(cfg config.ObservabilityConfig) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
