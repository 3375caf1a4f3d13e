package client

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
)

// MockDirectory serves the fixture profile for any user id until the
// profile is updated; updates are kept in memory.
type MockDirectory struct {
	latency Latency

	mu       sync.Mutex
	profiles map[string]models.User
}

func NewMockDirectory(latency time.Duration) *MockDirectory {
	return &MockDirectory{latency: Latency(latency), profiles: make(map[string]models.User)}
}

func (m *MockDirectory) GetUserProfile(ctx context.Context, userID string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.profiles[userID]
	if !ok {
		u = profileFixture(userID)
	}
	out := u.Clone()
	return &out, nil
}

func (m *MockDirectory) UpdateUserProfile(ctx context.Context, userID string, patch models.UserPatch) error {
	if err := m.latency.wait(ctx, 800*time.Millisecond); err != nil {
		return err
	}
	if userID == "" {
		return ErrNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.profiles[userID]
	if !ok {
		u = profileFixture(userID)
	}
	m.profiles[userID] = u.Apply(patch)
	return nil
}
