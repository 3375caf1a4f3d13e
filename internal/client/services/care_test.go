package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/client"
	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCare(appts client.AppointmentClient) CareService {
	return NewCareService(appts, client.NewMockMessaging(0), client.NewMockResources(0), &fakeRecorder{}, logging.Discard())
}

func TestFindDoctor(t *testing.T) {
	d, ok := FindDoctor("")
	require.True(t, ok)
	assert.Equal(t, "dr1", d.ID)

	d, ok = FindDoctor("martín")
	require.True(t, ok)
	assert.Equal(t, "dr2", d.ID)

	_, ok = FindDoctor("house")
	assert.False(t, ok)
}

func TestBook(t *testing.T) {
	fa := &fakeAppointments{CreateID: "new-1"}
	svc := newCare(fa)

	a, err := svc.Book(context.Background(), Booking{
		PatientID: "1", DoctorID: "dr2", Date: "2025-09-20", Time: "09:30", Type: models.AppointmentChat,
	})
	require.NoError(t, err)
	assert.Equal(t, "new-1", a.ID)
	assert.Equal(t, "Dra. Ana Martín", a.DoctorName)
	assert.Equal(t, models.AppointmentScheduled, a.Status)
	require.Len(t, fa.Created, 1)
	assert.Empty(t, fa.Created[0].ID)
}

func TestBook_DefaultsToVideo(t *testing.T) {
	fa := &fakeAppointments{CreateID: "x"}
	a, err := newCare(fa).Book(context.Background(), Booking{PatientID: "1", Date: "2025-09-20", Time: "09:30"})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentVideo, a.Type)
	assert.Equal(t, "dr1", a.DoctorID)
}

func TestBook_Invalid(t *testing.T) {
	svc := newCare(&fakeAppointments{})
	tests := map[string]Booking{
		"doctor": {PatientID: "1", DoctorID: "house", Date: "2025-09-20", Time: "09:30"},
		"type":   {PatientID: "1", Date: "2025-09-20", Time: "09:30", Type: "phone"},
		"date":   {PatientID: "1", Date: "20/09/2025", Time: "09:30"},
		"time":   {PatientID: "1", Date: "2025-09-20", Time: "9h"},
	}
	for name, b := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Book(context.Background(), b)
			require.ErrorIs(t, err, ErrInvalidBooking)
		})
	}
}

func TestBook_CollaboratorError(t *testing.T) {
	svc := newCare(&fakeAppointments{CreateErr: client.ErrUnavailable})
	_, err := svc.Book(context.Background(), Booking{PatientID: "1", Date: "2025-09-20", Time: "09:30"})
	require.ErrorIs(t, err, client.ErrUnavailable)
}

func TestAppointments(t *testing.T) {
	list := []models.Appointment{{ID: "1"}}
	got, err := newCare(&fakeAppointments{List: list}).Appointments(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, list, got)

	_, err = newCare(&fakeAppointments{ListErr: errors.New("down")}).Appointments(context.Background(), "1")
	require.ErrorContains(t, err, "down")
}

func TestSendAndMessages(t *testing.T) {
	svc := newCare(&fakeAppointments{})
	ctx := context.Background()
	now := time.Date(2025, 8, 31, 9, 15, 0, 0, time.UTC)
	svc.(*careService).now = func() time.Time { return now }

	msg, err := svc.Send(ctx, client.DefaultChatID, models.User{ID: "1", Name: "María González"}, "  Ninguno  ")
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "Ninguno", msg.Message)
	assert.Equal(t, now, msg.Timestamp)

	msgs, err := svc.Messages(ctx, client.DefaultChatID)
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	assert.Equal(t, msg.ID, msgs[3].ID)

	_, err = svc.Send(ctx, client.DefaultChatID, models.User{ID: "1"}, "   ")
	require.Error(t, err)
}

func TestFilterResources(t *testing.T) {
	svc := newCare(&fakeAppointments{})

	all, err := svc.FilterResources(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	em, err := svc.FilterResources(context.Background(), models.CategoryEmergency)
	require.NoError(t, err)
	require.Len(t, em, 1)
	assert.Equal(t, "3", em[0].ID)

	tips, err := svc.FilterResources(context.Background(), models.CategoryTip)
	require.NoError(t, err)
	assert.Empty(t, tips)
}
