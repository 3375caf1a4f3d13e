package state

import "github.com/dmitrijs2005/saludconecta/internal/client/models"

// Call returns the call session.
func (s *Store) Call() models.CallSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.call
}

// StartCall marks a call for appointmentID as active.
func (s *Store) StartCall(appointmentID string) error {
	if appointmentID == "" {
		return ErrEmptyAppointment
	}
	s.mu.Lock()
	s.call = models.CallSession{Active: true, AppointmentID: appointmentID}
	s.mu.Unlock()
	s.publish(ChangeCall)
	return nil
}

// EndCall clears the call session.
func (s *Store) EndCall() {
	s.mu.Lock()
	s.call = models.CallSession{}
	s.mu.Unlock()
	s.publish(ChangeCall)
}
