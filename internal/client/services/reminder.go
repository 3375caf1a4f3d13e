package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
)

// ReminderService finds scheduled appointments that start soon. Each
// appointment is reported once per service lifetime.
type ReminderService interface {
	Due(ctx context.Context, userID string, now time.Time) ([]models.Appointment, error)
}

type reminderService struct {
	care   CareService
	window time.Duration
	loc    *time.Location

	mu   sync.Mutex
	sent map[string]struct{}
}

func NewReminderService(care CareService, window time.Duration, loc *time.Location) ReminderService {
	if loc == nil {
		loc = time.Local
	}
	return &reminderService{care: care, window: window, loc: loc, sent: make(map[string]struct{})}
}

func (s *reminderService) Due(ctx context.Context, userID string, now time.Time) ([]models.Appointment, error) {
	list, err := s.care.Appointments(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var due []models.Appointment
	for _, a := range list {
		if a.Status != models.AppointmentScheduled {
			continue
		}
		if _, done := s.sent[a.ID]; done {
			continue
		}
		at, err := a.StartsAt(s.loc)
		if err != nil {
			continue
		}
		if at.Before(now) || at.Sub(now) > s.window {
			continue
		}
		s.sent[a.ID] = struct{}{}
		due = append(due, a)
	}

	sort.Slice(due, func(i, j int) bool {
		ti, _ := due[i].StartsAt(s.loc)
		tj, _ := due[j].StartsAt(s.loc)
		return ti.Before(tj)
	})
	return due, nil
}
