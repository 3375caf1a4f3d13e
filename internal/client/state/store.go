package state

import (
	"context"
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/logging"
	"github.com/oklog/ulid/v2"
)

// Notifier receives the local-notification side effect of AddNotification.
// Implementations must not block for long and report nothing back.
type Notifier interface {
	SendLocalNotification(ctx context.Context, title, body string)
}

// Store is the application-state object.
type Store struct {
	mu sync.RWMutex

	screen models.Screen

	user          *models.User
	authenticated bool
	phase         SessionPhase

	feed []models.Notification

	call models.CallSession

	tickets map[RequestKind]uint64

	subs    map[int]func(Change)
	nextSub int

	clock    func() time.Time
	entropy  io.Reader
	notifier Notifier
	log      logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used to stamp notifications.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithNotifier sets the collaborator invoked after each new notification.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore returns a store on the splash screen with the session still
// loading, an empty feed and no active call.
func NewStore(opts ...Option) *Store {
	s := &Store{
		screen:  models.ScreenSplash,
		phase:   PhaseLoading,
		tickets: make(map[RequestKind]uint64),
		subs:    make(map[int]func(Change)),
		clock:   time.Now,
		entropy: ulid.Monotonic(rand.Reader, 0),
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to be called after every mutation with the facet
// that changed. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// publish must be called without holding mu.
func (s *Store) publish(c Change) {
	s.mu.RLock()
	fns := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(c)
	}
}
