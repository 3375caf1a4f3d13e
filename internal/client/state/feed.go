package state

import (
	"context"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/oklog/ulid/v2"
)

// AddNotification prepends a new unread notification and forwards it to
// the notifier. The notifier cannot affect the feed.
func (s *Store) AddNotification(in models.NotificationInput) models.Notification {
	if in.Severity == "" {
		in.Severity = models.SeverityInfo
	}

	s.mu.Lock()
	now := s.clock()
	n := models.Notification{
		ID:        ulid.MustNew(ulid.Timestamp(now), s.entropy).String(),
		Title:     in.Title,
		Message:   in.Message,
		Severity:  in.Severity,
		CreatedAt: now,
	}
	feed := make([]models.Notification, 0, len(s.feed)+1)
	feed = append(feed, n)
	s.feed = append(feed, s.feed...)
	notifier := s.notifier
	s.mu.Unlock()

	s.publish(ChangeNotifications)
	s.notify(notifier, n)
	return n
}

func (s *Store) notify(notifier Notifier, n models.Notification) {
	if notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn(context.Background(), "local notification failed", "id", n.ID, "panic", r)
		}
	}()
	notifier.SendLocalNotification(context.Background(), n.Title, n.Message)
}

// MarkAsRead flags the notification with the given id as read. Unknown ids
// and already read entries are ignored.
func (s *Store) MarkAsRead(id string) {
	s.mu.Lock()
	changed := false
	for i := range s.feed {
		if s.feed[i].ID == id {
			if !s.feed[i].Read {
				s.feed[i].Read = true
				changed = true
			}
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.publish(ChangeNotifications)
	}
}

// ClearAll empties the feed.
func (s *Store) ClearAll() {
	s.mu.Lock()
	had := len(s.feed) > 0
	s.feed = nil
	s.mu.Unlock()

	if had {
		s.publish(ChangeNotifications)
	}
}

// Notifications returns the feed, newest first.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.feed))
	copy(out, s.feed)
	return out
}

// UnreadCount counts unread entries.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, e := range s.feed {
		if !e.Read {
			n++
		}
	}
	return n
}
