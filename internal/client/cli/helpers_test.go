package cli

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/client"
	"github.com/dmitrijs2005/saludconecta/internal/client/config"
	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/client/services"
	"github.com/dmitrijs2005/saludconecta/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- timers ----

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

type fakeTimers struct {
	mu      sync.Mutex
	pending []*fakeTimer
}

func installTimers(t *testing.T) *fakeTimers {
	t.Helper()
	ft := &fakeTimers{}
	old := afterFunc
	afterFunc = func(d time.Duration, f func()) stopper {
		ft.mu.Lock()
		defer ft.mu.Unlock()
		tm := &fakeTimer{d: d, f: f}
		ft.pending = append(ft.pending, tm)
		return tm
	}
	t.Cleanup(func() { afterFunc = old })
	return ft
}

// fire runs every live timer scheduled with delay d.
func (ft *fakeTimers) fire(d time.Duration) int {
	ft.mu.Lock()
	var due []*fakeTimer
	for _, tm := range ft.pending {
		if tm.d == d && !tm.stopped && !tm.fired {
			tm.fired = true
			due = append(due, tm)
		}
	}
	ft.mu.Unlock()

	for _, tm := range due {
		tm.f()
	}
	return len(due)
}

// ---- auth ----

type fakeAuth struct {
	mu sync.Mutex

	loginUser   *models.User
	loginErr    error
	registerErr error
	logoutErr   error
	restoreUser *models.User
	restoreErr  error
	updateErr   error

	// loginGate, when set, holds Login until it is closed or the
	// request is cancelled.
	loginGate chan struct{}
	// restoreGate does the same for Restore.
	restoreGate chan struct{}

	calls []string
}

func (f *fakeAuth) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeAuth) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func wait(ctx context.Context, gate chan struct{}) error {
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeAuth) Login(ctx context.Context, email, _ string) (*models.User, error) {
	f.record("login:" + email)
	if err := wait(ctx, f.loginGate); err != nil {
		return nil, err
	}
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if f.loginUser != nil {
		u := f.loginUser.Clone()
		return &u, nil
	}
	return &models.User{ID: "1", Email: email, Name: "María González"}, nil
}

func (f *fakeAuth) Register(_ context.Context, email, _, name string) (*models.User, error) {
	f.record("register:" + email)
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &models.User{ID: "new", Email: email, Name: name}, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.record("logout")
	return f.logoutErr
}

func (f *fakeAuth) ForgotPassword(_ context.Context, email string) (string, error) {
	f.record("forgot:" + email)
	return "Recovery email sent to " + email, nil
}

func (f *fakeAuth) UpdateProfile(_ context.Context, current models.User, patch models.UserPatch) (*models.User, error) {
	f.record("update")
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u := current.Apply(patch)
	return &u, nil
}

func (f *fakeAuth) Restore(ctx context.Context) (*models.User, error) {
	f.record("restore")
	if err := wait(ctx, f.restoreGate); err != nil {
		return nil, err
	}
	if f.restoreErr != nil {
		return nil, f.restoreErr
	}
	if f.restoreUser == nil {
		return nil, nil
	}
	u := f.restoreUser.Clone()
	return &u, nil
}

// ---- metrics ----

type fakeRecorder struct {
	mu            sync.Mutex
	screens       []string
	calls         []string
	notifications []string
}

func (r *fakeRecorder) ObserveRequest(string, time.Duration, error) {}

func (r *fakeRecorder) RecordNotification(severity string) {
	r.mu.Lock()
	r.notifications = append(r.notifications, severity)
	r.mu.Unlock()
}

func (r *fakeRecorder) RecordScreenView(screen string) {
	r.mu.Lock()
	r.screens = append(r.screens, screen)
	r.mu.Unlock()
}

func (r *fakeRecorder) RecordCall(event string) {
	r.mu.Lock()
	r.calls = append(r.calls, event)
	r.mu.Unlock()
}

func (r *fakeRecorder) callEvents() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// ---- video ----

// recordingVideo remembers which calls were ended through the collaborator.
type recordingVideo struct {
	*client.MockVideo

	mu    sync.Mutex
	ended []string
}

func (v *recordingVideo) EndCall(ctx context.Context, appointmentID string) error {
	v.mu.Lock()
	v.ended = append(v.ended, appointmentID)
	v.mu.Unlock()
	return v.MockVideo.EndCall(ctx, appointmentID)
}

func (v *recordingVideo) endedCalls() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.ended...)
}

// ---- reminders ----

// blockingReminders never answers before its context ends.
type blockingReminders struct{}

func (blockingReminders) Due(ctx context.Context, _ string, _ time.Time) ([]models.Appointment, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// ---- harness ----

var testNow = time.Date(2025, 9, 4, 12, 0, 0, 0, time.UTC)

var callSecret = []byte("test-secret")

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.MockLatency = 0
	cfg.SplashDelay = 1 * time.Second
	cfg.DemoNotificationDelay = 2 * time.Second
	cfg.ToastTTL = 4 * time.Second
	cfg.ReminderInterval = 0
	return cfg
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, client.RunMigrations(context.Background(), db))
	return db
}

type harness struct {
	t        *testing.T
	app      *App
	out      *bytes.Buffer
	timers   *fakeTimers
	auth     *fakeAuth
	rec      *fakeRecorder
	sessions services.SessionStore
	notifier *client.TerminalNotifier
	video    *recordingVideo
}

type harnessOption func(*harnessDeps)

type harnessDeps struct {
	cfg         *config.Config
	auth        *fakeAuth
	videoSecret []byte
}

func withAuth(f *fakeAuth) harnessOption {
	return func(d *harnessDeps) { d.auth = f }
}

// withForeignVideo makes the video collaborator sign grants with a key the
// call service does not accept.
func withForeignVideo() harnessOption {
	return func(d *harnessDeps) { d.videoSecret = []byte("someone-else") }
}

// newHarness builds an App on mock collaborators without starting the
// input reader. Tests drive it line by line with exec.
func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()
	d := &harnessDeps{cfg: testConfig(), auth: &fakeAuth{}, videoSecret: callSecret}
	for _, opt := range opts {
		opt(d)
	}

	timers := installTimers(t)
	out := &bytes.Buffer{}
	w := newSyncWriter(out)
	log := logging.Discard()
	rec := &fakeRecorder{}

	sessions := services.NewSessionStore(setupDB(t), log)
	care := services.NewCareService(
		client.NewMockAppointments(0),
		client.NewMockMessaging(0),
		client.NewMockResources(0),
		rec, log)
	video := &recordingVideo{MockVideo: client.NewMockVideo(0, "https://video.test/call/", d.videoSecret, time.Hour)}
	storage := client.NewMemoryStorage(0, "avatars")
	notifier := client.NewTerminalNotifier(w, true, 0, log)

	a := newApp(d.cfg, Deps{
		Auth:      d.auth,
		Care:      care,
		Calls:     services.NewCallService(video, callSecret, rec, log),
		Avatars:   services.NewAvatarService(storage, d.auth, rec, log),
		Reminders: services.NewReminderService(care, 24*time.Hour, time.UTC),
		Sessions:  sessions,
		Notifier:  notifier,
		Recorder:  rec,
		Logger:    log,
	}, strings.NewReader(""), w)
	a.now = func() time.Time { return testNow }

	a.start(context.Background())
	t.Cleanup(a.stop)

	h := &harness{
		t:        t,
		app:      a,
		out:      out,
		timers:   timers,
		auth:     d.auth,
		rec:      rec,
		sessions: sessions,
		notifier: notifier,
		video:    video,
	}
	if d.auth.restoreGate == nil {
		h.settle()
	}
	return h
}

// settle waits for every task and runs the events they posted, until
// nothing is left.
func (h *harness) settle() {
	h.t.Helper()
	for i := 0; i < 100; i++ {
		h.app.tasks.Wait()
		n := 0
	drain:
		for {
			select {
			case ev := <-h.app.events:
				ev()
				n++
			default:
				break drain
			}
		}
		if n == 0 {
			return
		}
	}
	h.t.Fatal("event loop did not settle")
}

func (h *harness) exec(lines ...string) {
	h.t.Helper()
	for _, l := range lines {
		h.app.handleLine(l)
		h.settle()
	}
}

func (h *harness) fire(d time.Duration) {
	h.t.Helper()
	h.timers.fire(d)
	h.settle()
}

// output returns what was printed so far and resets the buffer.
func (h *harness) output() string {
	w := h.app.out.(*syncWriter)
	w.mu.Lock()
	defer w.mu.Unlock()
	s := h.out.String()
	h.out.Reset()
	return s
}

func (h *harness) screen() models.Screen {
	return h.app.store.Screen()
}

// signIn walks from splash to the dashboard through the login form.
func (h *harness) signIn() {
	h.t.Helper()
	h.fire(h.app.config.SplashDelay)
	h.app.store.SetScreen(models.ScreenLogin)
	h.exec("login", "maria@example.com", "secret")
	require.Equal(h.t, models.ScreenDashboard, h.screen())
}
