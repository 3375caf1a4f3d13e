package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/google/uuid"
)

// MockAppointments seeds every patient with the two fixture appointments
// and keeps bookings in memory.
type MockAppointments struct {
	latency Latency

	mu     sync.Mutex
	booked map[string][]models.Appointment
}

func NewMockAppointments(latency time.Duration) *MockAppointments {
	return &MockAppointments{latency: Latency(latency), booked: make(map[string][]models.Appointment)}
}

func (m *MockAppointments) GetAppointments(ctx context.Context, userID string) ([]models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := appointmentFixtures(userID)
	return append(out, m.booked[userID]...), nil
}

func (m *MockAppointments) CreateAppointment(ctx context.Context, a models.Appointment) (string, error) {
	if err := m.latency.wait(ctx, time.Second); err != nil {
		return "", err
	}
	if a.PatientID == "" {
		return "", errors.New("appointment has no patient")
	}

	a.ID = uuid.NewString()
	if a.Status == "" {
		a.Status = models.AppointmentScheduled
	}

	m.mu.Lock()
	m.booked[a.PatientID] = append(m.booked[a.PatientID], a)
	m.mu.Unlock()
	return a.ID, nil
}

// MockMessaging keeps conversations in memory, starting from the fixture
// thread under DefaultChatID.
type MockMessaging struct {
	latency Latency

	mu    sync.Mutex
	chats map[string][]models.ChatMessage
}

func NewMockMessaging(latency time.Duration) *MockMessaging {
	return &MockMessaging{
		latency: Latency(latency),
		chats:   map[string][]models.ChatMessage{DefaultChatID: chatFixtures()},
	}
}

func (m *MockMessaging) GetChatMessages(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := m.chats[chatID]
	out := make([]models.ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (m *MockMessaging) SendMessage(ctx context.Context, chatID string, msg models.ChatMessage) (string, error) {
	if err := m.latency.wait(ctx, 500*time.Millisecond); err != nil {
		return "", err
	}
	if msg.Message == "" {
		return "", errors.New("empty message")
	}

	msg.ID = uuid.NewString()
	if msg.Type == "" {
		msg.Type = models.MessageText
	}

	m.mu.Lock()
	m.chats[chatID] = append(m.chats[chatID], msg)
	m.mu.Unlock()
	return msg.ID, nil
}

// MockResources serves the fixture catalogue.
type MockResources struct {
	latency Latency
}

func NewMockResources(latency time.Duration) *MockResources {
	return &MockResources{latency: Latency(latency)}
}

func (m *MockResources) GetMedicalResources(ctx context.Context) ([]models.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return resourceFixtures(), nil
}
