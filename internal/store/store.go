// Package store owns the in-session resume aggregate. All mutations go
// through reducer-style update functions that return a new snapshot; nothing
// mutates nested slices or structs in place. That copy-on-write discipline is
// what makes synchronous re-scoring of the current snapshot safe without
// coordination.
package store

import (
	"sync"

	"github.com/jonathan/resume-studio/internal/types"
)

// Store holds the current resume snapshot for one editing session. Snapshots
// handed out by Current are never mutated afterwards; edits swap in a fresh
// snapshot, last write wins.
type Store struct {
	mu      sync.RWMutex
	current *types.Resume
}

// New creates a store seeded with the given resume. A nil initial resume
// starts the session from the sample content.
func New(initial *types.Resume) *Store {
	if initial == nil {
		initial = Seed()
	}
	return &Store{current: initial}
}

// Current returns the latest snapshot. Callers must treat it as read-only.
func (s *Store) Current() *types.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Apply runs an update function against the current snapshot and installs
// the result as the new snapshot, returning it.
func (s *Store) Apply(update func(*types.Resume) *types.Resume) *types.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = update(s.current)
	return s.current
}

// Replace swaps in a whole new resume, e.g. after loading a saved snapshot.
func (s *Store) Replace(r *types.Resume) *types.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r == nil {
		r = Seed()
	}
	s.current = r
	return s.current
}
