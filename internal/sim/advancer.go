// Package sim is the writer side of the Snapshot container: it loads the
// world, then publishes a new generation with the date moved forward on
// every tick.
package sim

import (
	"errors"
	"sync"
	"time"

	"open-football/internal/metrics"
	"open-football/internal/seed"
	"open-football/internal/world"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Publisher receives each new Snapshot generation. *world.Container implements it.
type Publisher interface {
	Replace(s *world.Snapshot) uint64
}

// Config controls the tick loop.
type Config struct {
	TickInterval time.Duration
	DaysPerTick  int
}

// Advancer owns the current Snapshot and republishes it on every tick.
type Advancer struct {
	mu        sync.Mutex
	publisher Publisher
	clock     clockwork.Clock
	cfg       Config

	current  *world.Snapshot
	running  bool
	stopChan chan struct{}
	done     chan struct{}
}

// Option configures an Advancer.
type Option func(*Advancer)

// WithClock replaces the real clock, typically with a clockwork.FakeClock in tests.
func WithClock(c clockwork.Clock) Option {
	return func(a *Advancer) { a.clock = c }
}

// NewAdvancer creates an Advancer. Nothing runs until Start.
func NewAdvancer(p Publisher, cfg Config, opts ...Option) *Advancer {
	if cfg.DaysPerTick <= 0 {
		cfg.DaysPerTick = 1
	}
	a := &Advancer{
		publisher: p,
		clock:     clockwork.NewRealClock(),
		cfg:       cfg,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Publish makes s the current Snapshot and hands it to the publisher.
func (a *Advancer) Publish(s *world.Snapshot) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	gen := a.publishLocked(s)
	log.Info().
		Uint64("generation", gen).
		Str("snapshot_id", s.ID.String()).
		Time("date", s.Date).
		Msg("snapshot published")
	return gen
}

func (a *Advancer) publishLocked(s *world.Snapshot) uint64 {
	a.current = s
	return a.publisher.Replace(s)
}

// Reload reads the world file again and publishes it as a fresh generation.
// On error the current Snapshot stays published.
func (a *Advancer) Reload(path string) (uint64, error) {
	s, err := seed.Load(path)
	if err != nil {
		return 0, err
	}
	return a.Publish(s), nil
}

// Start begins the tick loop
func (a *Advancer) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running {
		return
	}
	a.running = true
	a.stopChan = make(chan struct{})
	a.done = make(chan struct{})

	ticker := a.clock.NewTicker(a.cfg.TickInterval)
	go func(stop, done chan struct{}) {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.Chan():
				if err := a.tick(); err != nil {
					log.Error().Err(err).Msg("simulation tick failed")
				}
			case <-stop:
				return
			}
		}
	}(a.stopChan, a.done)

	log.Info().
		Dur("interval", a.cfg.TickInterval).
		Int("days_per_tick", a.cfg.DaysPerTick).
		Msg("simulation started")
}

// Stop ends the tick loop and waits for an in-flight tick to finish.
func (a *Advancer) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.running = false
	close(a.stopChan)
	done := a.done
	a.mu.Unlock()

	<-done
	log.Info().Msg("simulation stopped")
}

var errNothingPublished = errors.New("no snapshot published yet")

// tick publishes the current world with the date moved forward.
func (a *Advancer) tick() error {
	start := a.clock.Now()
	defer func() { metrics.RecordTick(a.clock.Since(start)) }()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil {
		return errNothingPublished
	}

	next, err := a.current.WithDate(a.current.Date.AddDate(0, 0, a.cfg.DaysPerTick))
	if err != nil {
		return err
	}
	gen := a.publishLocked(next)
	log.Debug().
		Uint64("generation", gen).
		Str("date", next.Date.Format("2006-01-02")).
		Msg("simulation advanced")
	return nil
}
