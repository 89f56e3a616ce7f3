package repository

import (
	"context"
	"sync/atomic"
	"time"
)

// AtomicStore implements Store with a single atomic pointer swap per reload.
// Reads are lock-free; arbitrarily many requests may share one snapshot.
type AtomicStore struct {
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
	now     func() time.Time
}

// NewAtomicStore creates an empty store. The first Replace installs the
// initial snapshot.
func NewAtomicStore() *AtomicStore {
	return &AtomicStore{now: time.Now}
}

// Snapshot returns the current snapshot, or ErrNoSnapshot before first load.
func (s *AtomicStore) Snapshot(_ context.Context) (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return snap, nil
}

// Replace installs snap as the new current snapshot. The caller must not
// mutate snap afterwards.
func (s *AtomicStore) Replace(_ context.Context, snap *Snapshot) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	snap.Version = s.version.Add(1)
	snap.LoadedAt = s.now()
	s.current.Store(snap)
	return nil
}

// Counts reports posting and skill counts for the current snapshot.
func (s *AtomicStore) Counts(_ context.Context) (int, int) {
	snap := s.current.Load()
	if snap == nil {
		return 0, 0
	}
	return len(snap.Postings), snap.Taxonomy.Len()
}
