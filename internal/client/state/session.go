package state

import "github.com/dmitrijs2005/saludconecta/internal/client/models"

// SessionPhase tells whether the persisted session has been read yet.
type SessionPhase int

const (
	PhaseLoading SessionPhase = iota
	PhaseReady
)

func (p SessionPhase) String() string {
	if p == PhaseReady {
		return "ready"
	}
	return "loading"
}

// User returns a copy of the signed-in user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := s.user.Clone()
	return &u
}

// IsAuthenticated reports the authentication flag. It is never true while
// the user is nil.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Phase returns the hydration phase.
func (s *Store) Phase() SessionPhase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// SetUser replaces the user wholesale. A nil user also clears the
// authentication flag.
func (s *Store) SetUser(u *models.User) {
	s.mu.Lock()
	s.setUserLocked(u)
	s.mu.Unlock()
	s.publish(ChangeSession)
}

func (s *Store) setUserLocked(u *models.User) {
	if u == nil {
		s.user = nil
		s.authenticated = false
		return
	}
	c := u.Clone()
	s.user = &c
}

// SetAuthenticated sets the authentication flag. Setting it while no user
// is present fails with ErrNoUser and changes nothing.
func (s *Store) SetAuthenticated(v bool) error {
	s.mu.Lock()
	if v && s.user == nil {
		s.mu.Unlock()
		return ErrNoUser
	}
	s.authenticated = v
	s.mu.Unlock()
	s.publish(ChangeSession)
	return nil
}

// UpdateUser applies a partial update to the current user.
func (s *Store) UpdateUser(p models.UserPatch) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return ErrNoUser
	}
	u := s.user.Apply(p)
	s.user = &u
	s.mu.Unlock()
	s.publish(ChangeSession)
	return nil
}

// FinishHydration ends the loading phase. A non-nil user is signed in.
// Calls after the first are ignored.
func (s *Store) FinishHydration(u *models.User) {
	s.mu.Lock()
	if s.phase == PhaseReady {
		s.mu.Unlock()
		return
	}
	s.phase = PhaseReady
	if u != nil {
		s.setUserLocked(u)
		s.authenticated = true
	}
	s.mu.Unlock()
	s.publish(ChangeSession)
}
