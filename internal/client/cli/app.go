package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/client"
	"github.com/dmitrijs2005/saludconecta/internal/client/config"
	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/client/services"
	"github.com/dmitrijs2005/saludconecta/internal/client/state"
	"github.com/dmitrijs2005/saludconecta/internal/logging"
	"github.com/dmitrijs2005/saludconecta/internal/metrics"
)

// NotifierControl is the local notifier as the settings screen sees it.
type NotifierControl interface {
	client.Notifier
	SetEnabled(v bool)
	Enabled() bool
}

// Deps are the collaborators of the screens.
type Deps struct {
	Auth      services.AuthService
	Care      services.CareService
	Calls     services.CallService
	Avatars   services.AvatarService
	Reminders services.ReminderService
	Sessions  services.SessionStore
	Notifier  NotifierControl
	Recorder  metrics.Recorder
	Logger    logging.Logger
}

type App struct {
	config *config.Config
	store  *state.Store

	auth      services.AuthService
	care      services.CareService
	calls     services.CallService
	avatars   services.AvatarService
	reminders services.ReminderService
	sessions  services.SessionStore
	notifier  NotifierControl
	rec       metrics.Recorder
	log       logging.Logger

	out    io.Writer
	input  *lineReader
	closer io.Closer

	// event loop
	events   chan func()
	done     chan struct{}
	tasks    sync.WaitGroup
	timers   map[uint64]stopper
	timerSeq uint64
	ctx      context.Context
	cancel   context.CancelFunc

	screens      map[models.Screen]*screen
	screenCtx    context.Context
	screenCancel context.CancelFunc
	current      models.Screen

	view          view
	call          callView
	form          *form
	toastMsg      string
	toastSeq      int
	splashElapsed bool
	quit          bool

	now func() time.Time
}

// NewApp wires the terminal client: the local database, the mock
// collaborators, avatar storage and the local notifier.
func NewApp(ctx context.Context, cfg *config.Config, rec metrics.Recorder, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	out := newSyncWriter(os.Stdout)
	latency := cfg.MockLatency
	secret := []byte(cfg.VideoTokenSecret)

	sessions := services.NewSessionStore(db, log)
	auth := services.NewAuthService(client.NewMockAuth(latency), client.NewMockDirectory(latency), sessions, rec, log)
	care := services.NewCareService(
		client.NewMockAppointments(latency),
		client.NewMockMessaging(latency),
		client.NewMockResources(latency),
		rec, log)
	video := client.NewMockVideo(latency, cfg.VideoBaseURL, secret, cfg.VideoTokenTTL)

	a := newApp(cfg, Deps{
		Auth:      auth,
		Care:      care,
		Calls:     services.NewCallService(video, secret, rec, log),
		Avatars:   services.NewAvatarService(storage, auth, rec, log),
		Reminders: services.NewReminderService(care, cfg.ReminderWindow, time.Local),
		Sessions:  sessions,
		Notifier:  client.NewTerminalNotifier(out, cfg.NotificationsEnabled, cfg.NotificationRate, log),
		Recorder:  rec,
		Logger:    log,
	}, os.Stdin, out)
	a.closer = db
	return a, nil
}

func newStorage(ctx context.Context, cfg *config.Config) (client.StorageClient, error) {
	switch cfg.StorageBackend {
	case "", "memory":
		return client.NewMemoryStorage(cfg.MockLatency, cfg.S3Bucket), nil
	case "s3":
		return client.NewS3Storage(ctx, client.S3Config{
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			Bucket:       cfg.S3Bucket,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func newApp(cfg *config.Config, d Deps, in io.Reader, out io.Writer) *App {
	if d.Recorder == nil {
		d.Recorder = metrics.Nop{}
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	w := newSyncWriter(out)
	a := &App{
		config:    cfg,
		auth:      d.Auth,
		care:      d.Care,
		calls:     d.Calls,
		avatars:   d.Avatars,
		reminders: d.Reminders,
		sessions:  d.Sessions,
		notifier:  d.Notifier,
		rec:       d.Recorder,
		log:       d.Logger,
		out:       w,
		input:     newLineReader(in, w),
		events:    make(chan func(), 64),
		done:      make(chan struct{}),
		timers:    make(map[uint64]stopper),
		now:       time.Now,
	}
	a.store = state.NewStore(state.WithNotifier(d.Notifier), state.WithLogger(d.Logger))
	a.screens = screenSet()
	return a
}

// Close releases the local database.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
