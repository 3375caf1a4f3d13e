package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/client"
	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, client.RunMigrations(context.Background(), db))
	return db
}

func insertMeta(t *testing.T, db *sql.DB, k string, v []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES(?, ?)`, k, v)
	require.NoError(t, err)
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

// ---- fakes ----

type fakeAuth struct {
	LoginRet    *models.User
	LoginErr    error
	RegisterRet *models.User
	RegisterErr error
	LogoutErr   error
	ForgotRet   string
	ForgotErr   error

	LastEmail    string
	LastPassword string
	LastName     string
	LogoutCalls  int
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.User, error) {
	f.LastEmail, f.LastPassword = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuth) Register(_ context.Context, email, password, name string) (*models.User, error) {
	f.LastEmail, f.LastPassword, f.LastName = email, password, name
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeAuth) ForgotPassword(_ context.Context, email string) (string, error) {
	f.LastEmail = email
	return f.ForgotRet, f.ForgotErr
}

type fakeDirectory struct {
	Profile    *models.User
	GetErr     error
	UpdateErr  error
	LastGetID  string
	LastUpdate models.UserPatch
}

func (f *fakeDirectory) GetUserProfile(_ context.Context, id string) (*models.User, error) {
	f.LastGetID = id
	return f.Profile, f.GetErr
}

func (f *fakeDirectory) UpdateUserProfile(_ context.Context, _ string, p models.UserPatch) error {
	f.LastUpdate = p
	return f.UpdateErr
}

type fakeAppointments struct {
	List      []models.Appointment
	ListErr   error
	CreateID  string
	CreateErr error
	Created   []models.Appointment
}

func (f *fakeAppointments) GetAppointments(context.Context, string) ([]models.Appointment, error) {
	return f.List, f.ListErr
}

func (f *fakeAppointments) CreateAppointment(_ context.Context, a models.Appointment) (string, error) {
	f.Created = append(f.Created, a)
	return f.CreateID, f.CreateErr
}

type fakeStorage struct {
	mu        sync.Mutex
	URL       string
	UploadErr error
	Uploaded  map[string][]byte
	Deleted   []string
}

func (f *fakeStorage) UploadFile(_ context.Context, path string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UploadErr != nil {
		return "", f.UploadErr
	}
	if f.Uploaded == nil {
		f.Uploaded = map[string][]byte{}
	}
	f.Uploaded[path] = data
	return f.URL + path, nil
}

func (f *fakeStorage) DeleteFile(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Deleted = append(f.Deleted, path)
	return nil
}

type observed struct {
	op  string
	err error
}

type fakeRecorder struct {
	mu       sync.Mutex
	requests []observed
}

func (r *fakeRecorder) ObserveRequest(op string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, observed{op: op, err: err})
}
func (r *fakeRecorder) RecordNotification(string) {}
func (r *fakeRecorder) RecordScreenView(string)   {}
func (r *fakeRecorder) RecordCall(string)         {}
