package world

import (
	"context"
	"errors"
	"sync"

	"open-football/internal/metrics"
)

// ErrNotLoaded is returned by read acquisition before the first Snapshot is published.
var ErrNotLoaded = errors.New("simulator data not loaded")

// Container is the process-wide slot holding the current Snapshot.
//
// Concurrency contract:
//   - any number of readers may hold a ReadGuard at once
//   - Replace takes the slot exclusively and swaps the whole Snapshot pointer,
//     so a reader never sees a mix of two generations
//   - a pending Replace blocks new readers (sync.RWMutex semantics), so a steady
//     stream of readers cannot starve the writer
//
// A goroutine must not acquire a second guard while it still holds one: with a
// writer queued in between, the nested acquisition would deadlock.
type Container struct {
	mu         sync.RWMutex
	current    *Snapshot
	generation uint64
}

// NewContainer returns an empty (not loaded) container.
func NewContainer() *Container {
	return &Container{}
}

// ReadGuard is a read view on one Snapshot generation.
// Release must be called exactly once the request is done; extra calls are no-ops.
type ReadGuard struct {
	snapshot   *Snapshot
	generation uint64
	release    func()
	once       sync.Once
}

// Snapshot returns the guarded Snapshot. It must not be retained after Release.
func (g *ReadGuard) Snapshot() *Snapshot {
	return g.snapshot
}

// Generation is the publish sequence number of the guarded Snapshot.
func (g *ReadGuard) Generation() uint64 {
	return g.generation
}

// Release gives the read access back to the container.
func (g *ReadGuard) Release() {
	g.once.Do(g.release)
}

// AcquireRead takes a read view of the current Snapshot.
// It fails with ErrNotLoaded while the slot is empty, and with the context's
// error if the caller already gave up.
func (c *Container) AcquireRead(ctx context.Context) (*ReadGuard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	if c.current == nil {
		c.mu.RUnlock()
		metrics.RecordSnapshotRead(metrics.ReadNotLoaded)
		return nil, ErrNotLoaded
	}

	metrics.RecordSnapshotRead(metrics.ReadOK)
	return &ReadGuard{
		snapshot:   c.current,
		generation: c.generation,
		release:    c.mu.RUnlock,
	}, nil
}

// Read runs fn under a read guard and releases it when fn returns.
func (c *Container) Read(ctx context.Context, fn func(*Snapshot) error) error {
	guard, err := c.AcquireRead(ctx)
	if err != nil {
		return err
	}
	defer guard.Release()

	return fn(guard.Snapshot())
}

// Replace publishes s as the current Snapshot and returns its generation.
// Only the simulation writer calls this.
func (c *Container) Replace(s *Snapshot) uint64 {
	c.mu.Lock()
	c.current = s
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	metrics.RecordSnapshotReplaced(gen)
	return gen
}

// Clear empties the slot, returning the container to the not-loaded state.
func (c *Container) Clear() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
}

// Loaded reports whether a Snapshot is currently published.
func (c *Container) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current != nil
}

// Generation returns the number of Snapshots published so far.
func (c *Container) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}
