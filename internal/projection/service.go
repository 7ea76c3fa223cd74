// Package projection assembles the consumer-facing views of the world.
//
// Every query runs in two steps. Resolve turns external identifiers into
// entities and fails fast with NotLoaded, IndexUnavailable, NotFound or
// InvalidInput. Project derives the response from the resolved entities.
// Responses are owned values: nothing in them points into the Snapshot, so
// they stay valid after the read guard is released.
package projection

import (
	"context"

	"open-football/internal/metrics"
	"open-football/internal/world"
)

// DefaultEventsLimit is used when a recent-events query gives no limit.
const DefaultEventsLimit = 50

// SnapshotSource hands out read guards on the current Snapshot.
// *world.Container implements it.
type SnapshotSource interface {
	AcquireRead(ctx context.Context) (*world.ReadGuard, error)
}

// Service runs projection queries against a SnapshotSource.
type Service struct {
	source      SnapshotSource
	eventsLimit int
}

// Option configures a Service.
type Option func(*Service)

// WithDefaultEventsLimit overrides the recent-events default limit.
func WithDefaultEventsLimit(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.eventsLimit = n
		}
	}
}

// NewService creates a projection service.
func NewService(source SnapshotSource, opts ...Option) *Service {
	s := &Service{
		source:      source,
		eventsLimit: DefaultEventsLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// view acquires a guard, runs fn under it and releases it before returning.
func (s *Service) view(ctx context.Context, fn func(*world.Snapshot, uint64) error) error {
	guard, err := s.source.AcquireRead(ctx)
	if err != nil {
		return s.fail(err)
	}
	defer guard.Release()

	if err := fn(guard.Snapshot(), guard.Generation()); err != nil {
		return s.fail(err)
	}
	return nil
}

func (s *Service) fail(err error) error {
	metrics.RecordProjectionError(ErrorKind(err))
	return err
}

// resolveTeam maps a team slug to a Team through the slug index.
func resolveTeam(snap *world.Snapshot, slug string) (*world.Team, error) {
	idx := snap.SlugIndex()
	if idx == nil {
		return nil, ErrIndexUnavailable
	}

	id, ok := idx.ResolveTeam(slug)
	if !ok {
		return nil, &NotFoundError{Entity: world.KindTeam, Identifier: slug}
	}

	team, ok := snap.Team(id)
	if !ok {
		return nil, &NotFoundError{Entity: world.KindTeam, Identifier: slug}
	}
	return team, nil
}
