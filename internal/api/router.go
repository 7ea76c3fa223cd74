package api

import (
	"context"
	"net/http"

	"open-football/internal/projection"
	"open-football/internal/world"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// QueryService is the projection surface used by the HTTP layer.
// *projection.Service implements it; tests substitute a mock.
type QueryService interface {
	RecentEvents(ctx context.Context, q projection.RecentEventsQuery) (*projection.RecentEventsResponse, error)
	PlayerState(ctx context.Context, id world.PlayerID) (*projection.PlayerStateResponse, error)
	TeamAIState(ctx context.Context, slug string) (*projection.TeamAIStateResponse, error)
	SquadState(ctx context.Context, slug string) (*projection.SquadStateResponse, error)
	GameDate(ctx context.Context) (*projection.GameDateResponse, error)
}

// ReadinessChecker reports whether the first Snapshot has been published.
// *world.Container implements it.
type ReadinessChecker interface {
	Loaded() bool
}

// RouterConfig contains all dependencies needed to construct the HTTP router.
//
// Example usage in tests:
//
//	cfg := api.RouterConfig{
//	    Service:   projection.NewService(container),
//	    Readiness: container,
//	    RateLimitConfig: &api.RateLimitConfig{
//	        RequestsPerSecond: 1000, // High limit for tests
//	        Burst:             1000,
//	    },
//	    DisableLogging: true,
//	}
//	router := api.NewRouter(cfg)
//	ts := httptest.NewServer(router)
type RouterConfig struct {
	// Service answers the projection queries (required)
	Service QueryService

	// Readiness backs GET /ready. If nil, readiness follows GET /api/date.
	Readiness ReadinessChecker

	// RateLimiter is an optional pre-configured rate limiter.
	// If nil, a new one will be created using RateLimitConfig.
	RateLimiter *IPRateLimiter

	// RateLimitConfig is optional configuration for the rate limiter.
	// Only used if RateLimiter is nil. If both are nil, uses DefaultRateLimitConfig.
	RateLimitConfig *RateLimitConfig

	// CORSOrigins is an optional list of allowed CORS origins.
	// If nil, only local origins are allowed.
	CORSOrigins []string

	// DisableLogging disables the request logger middleware (useful for benchmarks).
	DisableLogging bool
}

type routerHandlers struct {
	service   QueryService
	readiness ReadinessChecker
}

// NewRouter constructs the HTTP router with all middleware and routes.
//
// IMPORTANT: This function is PURE apart from the rate limiter's cleanup
// goroutine, which only starts when no RateLimiter is passed in:
//   - No network listeners are opened
//   - No Snapshot is read until a request arrives
//
// This makes it safe to use in tests with httptest.NewServer.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware - Order matters!
	r.Use(middleware.RequestID)
	if !cfg.DisableLogging {
		r.Use(requestLogger)
	}
	r.Use(middleware.Recoverer)
	r.Use(requestMetrics)

	// Rate limiting (BEFORE CORS to reject early and save CPU)
	rateLimiter := cfg.RateLimiter
	if rateLimiter == nil {
		rateLimitCfg := DefaultRateLimitConfig
		if cfg.RateLimitConfig != nil {
			rateLimitCfg = *cfg.RateLimitConfig
		}
		rateLimiter = NewIPRateLimiter(rateLimitCfg)
	}
	r.Use(rateLimiter.Middleware)

	corsOrigins := cfg.CORSOrigins
	if corsOrigins == nil {
		corsOrigins = []string{
			"http://localhost:*",
			"http://127.0.0.1:*",
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	h := &routerHandlers{
		service:   cfg.Service,
		readiness: cfg.Readiness,
	}

	r.Get("/health", h.handleHealth)
	r.Get("/ready", h.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/date", h.handleGameDate)

		r.Get("/events/recent", h.handleRecentEvents)
		r.Get("/players/{player_id}/state", h.handlePlayerState)

		r.Route("/teams/{team_slug}", func(r chi.Router) {
			r.Get("/ai-state", h.handleTeamAIState)
			r.Get("/squad-state", h.handleSquadState)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "route not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}
