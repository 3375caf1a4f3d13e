package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/client"
	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/logging"
	"github.com/dmitrijs2005/saludconecta/internal/metrics"
)

// Doctor is a practitioner that appointments can be booked with.
type Doctor struct {
	ID   string
	Name string
}

// Doctors lists the practitioners offered by the calendar screen.
var Doctors = []Doctor{
	{ID: "dr1", Name: "Dr. Carlos Ruiz"},
	{ID: "dr2", Name: "Dra. Ana Martín"},
}

// FindDoctor matches by id or by a case-insensitive part of the name.
func FindDoctor(query string) (Doctor, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Doctors[0], true
	}
	for _, d := range Doctors {
		if d.ID == q || strings.Contains(strings.ToLower(d.Name), q) {
			return d, true
		}
	}
	return Doctor{}, false
}

// Booking is a request for a new appointment.
type Booking struct {
	PatientID string
	DoctorID  string
	Date      string
	Time      string
	Type      models.AppointmentType
	Notes     string
}

var ErrInvalidBooking = errors.New("invalid booking")

// CareService groups appointments, chat and educational resources.
type CareService interface {
	Appointments(ctx context.Context, userID string) ([]models.Appointment, error)
	Book(ctx context.Context, b Booking) (*models.Appointment, error)
	Messages(ctx context.Context, chatID string) ([]models.ChatMessage, error)
	Send(ctx context.Context, chatID string, sender models.User, text string) (*models.ChatMessage, error)
	Resources(ctx context.Context) ([]models.Resource, error)
	FilterResources(ctx context.Context, category models.ResourceCategory) ([]models.Resource, error)
}

type careService struct {
	appointments client.AppointmentClient
	messaging    client.MessagingClient
	resources    client.ResourceClient
	rec          metrics.Recorder
	log          logging.Logger
	now          func() time.Time
}

func NewCareService(appointments client.AppointmentClient, messaging client.MessagingClient, resources client.ResourceClient, rec metrics.Recorder, log logging.Logger) CareService {
	return &careService{
		appointments: appointments,
		messaging:    messaging,
		resources:    resources,
		rec:          rec,
		log:          log,
		now:          time.Now,
	}
}

func (s *careService) Appointments(ctx context.Context, userID string) (list []models.Appointment, err error) {
	defer observe(s.rec, "appointments.list", time.Now(), &err)

	list, err = s.appointments.GetAppointments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get appointments: %w", err)
	}
	return list, nil
}

func (s *careService) Book(ctx context.Context, b Booking) (a *models.Appointment, err error) {
	defer observe(s.rec, "appointments.create", time.Now(), &err)

	doctor, ok := FindDoctor(b.DoctorID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown doctor %q", ErrInvalidBooking, b.DoctorID)
	}
	if b.Type == "" {
		b.Type = models.AppointmentVideo
	}
	if _, err = models.ParseAppointmentType(string(b.Type)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}

	appt := models.Appointment{
		PatientID:  b.PatientID,
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Date:       b.Date,
		Time:       b.Time,
		Type:       b.Type,
		Status:     models.AppointmentScheduled,
		Notes:      b.Notes,
	}
	if _, err = appt.StartsAt(time.Local); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}

	id, err := s.appointments.CreateAppointment(ctx, appt)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	appt.ID = id
	s.log.Info(ctx, "appointment booked", "id", id, "doctor", doctor.ID, "date", appt.Date, "time", appt.Time)
	return &appt, nil
}

func (s *careService) Messages(ctx context.Context, chatID string) (msgs []models.ChatMessage, err error) {
	defer observe(s.rec, "chat.list", time.Now(), &err)

	msgs, err = s.messaging.GetChatMessages(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}
	return msgs, nil
}

func (s *careService) Send(ctx context.Context, chatID string, sender models.User, text string) (m *models.ChatMessage, err error) {
	defer observe(s.rec, "chat.send", time.Now(), &err)

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("message is empty")
	}

	msg := models.ChatMessage{
		SenderID:   sender.ID,
		SenderName: sender.Name,
		Message:    text,
		Timestamp:  s.now(),
		Type:       models.MessageText,
		Read:       true,
	}
	id, err := s.messaging.SendMessage(ctx, chatID, msg)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}
	msg.ID = id
	return &msg, nil
}

func (s *careService) Resources(ctx context.Context) (res []models.Resource, err error) {
	defer observe(s.rec, "resources.list", time.Now(), &err)

	res, err = s.resources.GetMedicalResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("get resources: %w", err)
	}
	return res, nil
}

// FilterResources returns the resources of one category; an empty
// category means all of them.
func (s *careService) FilterResources(ctx context.Context, category models.ResourceCategory) ([]models.Resource, error) {
	all, err := s.Resources(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return all, nil
	}
	out := make([]models.Resource, 0, len(all))
	for _, r := range all {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}
