package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/store"
)

// sessionManager holds one editing session per authenticated user. A session
// is created lazily on first access: from the user's saved snapshot when one
// exists, otherwise from the sample resume.
type sessionManager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*store.Store
	db       DBClient
}

func newSessionManager(db DBClient) *sessionManager {
	return &sessionManager{
		sessions: make(map[uuid.UUID]*store.Store),
		db:       db,
	}
}

// Get returns the user's session store, creating it on first access.
func (m *sessionManager) Get(ctx context.Context, userID uuid.UUID) (*store.Store, error) {
	m.mu.Lock()
	if s, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	// Load outside the lock; snapshot loads can hit the database.
	snapshot, err := m.db.LoadSnapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s *store.Store
	if snapshot != nil {
		s = store.New(snapshot.Resume.Clone())
	} else {
		s = store.New(nil)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another request may have created the session concurrently; keep the
	// first one so both requests share state.
	if existing, ok := m.sessions[userID]; ok {
		return existing, nil
	}
	m.sessions[userID] = s
	return s, nil
}
