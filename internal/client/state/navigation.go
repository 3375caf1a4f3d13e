package state

import (
	"context"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
)

// Screen returns the current screen.
func (s *Store) Screen() models.Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screen
}

// SetScreen replaces the current screen. Any screen may follow any other;
// tags outside the known set are normalized to splash. Observers are only
// notified when the screen actually changes.
func (s *Store) SetScreen(next models.Screen) {
	next = next.Normalize()

	s.mu.Lock()
	prev := s.screen
	s.screen = next
	s.mu.Unlock()

	if prev == next {
		return
	}
	s.log.Debug(context.Background(), "screen changed", "from", prev, "to", next)
	s.publish(ChangeScreen)
}
