package state

import (
	"fmt"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
)

// RequestKind groups requests whose results supersede each other.
type RequestKind string

const (
	KindSession      RequestKind = "session"
	KindAuth         RequestKind = "auth"
	KindAppointments RequestKind = "appointments"
	KindChat         RequestKind = "chat"
	KindCall         RequestKind = "call"
	KindResources    RequestKind = "resources"
	KindProfile      RequestKind = "profile"
)

// Ticket identifies one issued request. Only the newest ticket of a kind
// may apply its result.
type Ticket struct {
	Kind RequestKind
	Seq  uint64
}

func (t Ticket) String() string {
	return fmt.Sprintf("%s#%d", t.Kind, t.Seq)
}

// Begin issues a new ticket of the given kind, superseding every earlier
// one of that kind.
func (s *Store) Begin(kind RequestKind) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[kind]++
	return Ticket{Kind: kind, Seq: s.tickets[kind]}
}

// Current reports whether t is still the newest ticket of its kind.
func (s *Store) Current(t Ticket) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentLocked(t)
}

func (s *Store) currentLocked(t Ticket) bool {
	return t.Seq != 0 && s.tickets[t.Kind] == t.Seq
}

// SignIn sets the user and the authentication flag together, provided t is
// current. It also ends the hydration phase.
func (s *Store) SignIn(t Ticket, u *models.User) error {
	if u == nil {
		return ErrNoUser
	}
	s.mu.Lock()
	if !s.currentLocked(t) {
		s.mu.Unlock()
		return fmt.Errorf("sign in %s: %w", t, ErrStaleResult)
	}
	s.setUserLocked(u)
	s.authenticated = true
	s.phase = PhaseReady
	s.mu.Unlock()
	s.publish(ChangeSession)
	return nil
}

// SignOut clears the session, provided t is current.
func (s *Store) SignOut(t Ticket) error {
	s.mu.Lock()
	if !s.currentLocked(t) {
		s.mu.Unlock()
		return fmt.Errorf("sign out %s: %w", t, ErrStaleResult)
	}
	s.setUserLocked(nil)
	s.mu.Unlock()
	s.publish(ChangeSession)
	return nil
}
