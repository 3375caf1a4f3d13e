package client

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/cryptox"
	"github.com/google/uuid"
)

type account struct {
	user     models.User
	salt     []byte
	verifier []byte
}

// MockAuth is an in-memory AuthClient. Accounts created with Register are
// kept as salted argon2 verifiers and checked on Login; any other email
// signs in as the demo user.
type MockAuth struct {
	latency Latency

	mu       sync.Mutex
	accounts map[string]account
}

func NewMockAuth(latency time.Duration) *MockAuth {
	return &MockAuth{latency: Latency(latency), accounts: make(map[string]account)}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (m *MockAuth) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := m.latency.wait(ctx, time.Second); err != nil {
		return nil, err
	}

	key := normalizeEmail(email)

	m.mu.Lock()
	acc, ok := m.accounts[key]
	m.mu.Unlock()

	if !ok {
		u := demoUser(email)
		return &u, nil
	}
	if !cryptox.Verify([]byte(password), acc.salt, acc.verifier) {
		return nil, ErrInvalidCredentials
	}
	u := acc.user.Clone()
	return &u, nil
}

func (m *MockAuth) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if err := m.latency.wait(ctx, 1500*time.Millisecond); err != nil {
		return nil, err
	}

	key := normalizeEmail(email)
	salt := cryptox.NewSalt()
	verifier := cryptox.MakeVerifier(cryptox.DeriveKey([]byte(password), salt))
	u := models.User{ID: uuid.NewString(), Email: email, Name: name, Avatar: demoAvatar}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.accounts[key]; exists {
		return nil, ErrAccountExists
	}
	m.accounts[key] = account{user: u, salt: salt, verifier: verifier}

	out := u.Clone()
	return &out, nil
}

func (m *MockAuth) Logout(ctx context.Context) error {
	return m.latency.wait(ctx, 500*time.Millisecond)
}

func (m *MockAuth) ForgotPassword(ctx context.Context, email string) (string, error) {
	if err := m.latency.wait(ctx, time.Second); err != nil {
		return "", err
	}
	return "Recovery email sent to " + email, nil
}
