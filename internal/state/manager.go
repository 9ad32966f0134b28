package state

import (
	"context"
	"sync"
)

// Manager hands out one Store per signed-in user. The first access for a
// user id loads their snapshot from the remote adapter; sign-out drops the
// store, abandoning (not cancelling) any in-flight saves.
type Manager struct {
	mu      sync.Mutex
	stores  map[string]*Store
	remote  RemoteStore
	onboard *OnboardCache
}

func NewManager(remote RemoteStore, onboard *OnboardCache) *Manager {
	return &Manager{
		stores:  make(map[string]*Store),
		remote:  remote,
		onboard: onboard,
	}
}

// Get returns the user's store, loading it on first access. A load failure
// on first access is returned to the caller and the store is not retained,
// so the next request retries the load.
func (m *Manager) Get(ctx context.Context, userID string) (*Store, error) {
	m.mu.Lock()
	if s, ok := m.stores[userID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	s := NewStore(userID, m.remote, m.onboard)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.stores[userID]; ok {
		// Lost a race with a concurrent first request; keep the winner.
		return existing, nil
	}
	m.stores[userID] = s
	return s, nil
}

// Drop forgets the user's store on sign-out.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, userID)
}
