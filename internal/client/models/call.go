package models

// CallSession tracks the video call in progress. AppointmentID is set if
// and only if Active is true.
type CallSession struct {
	Active        bool
	AppointmentID string
}

// CallGrant is what the video collaborator returns when a call is
// initialised.
type CallGrant struct {
	URL   string
	Token string
}
