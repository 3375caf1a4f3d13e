package models

import (
	"fmt"
	"time"
)

type AppointmentType string

const (
	AppointmentVideo    AppointmentType = "video"
	AppointmentChat     AppointmentType = "chat"
	AppointmentInPerson AppointmentType = "in-person"
)

// ParseAppointmentType validates s.
func ParseAppointmentType(s string) (AppointmentType, error) {
	switch v := AppointmentType(s); v {
	case AppointmentVideo, AppointmentChat, AppointmentInPerson:
		return v, nil
	default:
		return "", fmt.Errorf("unknown appointment type %q", s)
	}
}

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a consultation booked between a patient and a doctor.
// Date is YYYY-MM-DD and Time is HH:MM, both local to the clinic.
type Appointment struct {
	ID         string            `json:"id"`
	PatientID  string            `json:"patientId"`
	DoctorID   string            `json:"doctorId"`
	DoctorName string            `json:"doctorName"`
	Date       string            `json:"date"`
	Time       string            `json:"time"`
	Type       AppointmentType   `json:"type"`
	Status     AppointmentStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
}

const appointmentLayout = "2006-01-02 15:04"

// StartsAt parses Date and Time in loc.
func (a Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(appointmentLayout, a.Date+" "+a.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("appointment %s: bad date/time: %w", a.ID, err)
	}
	return t, nil
}
