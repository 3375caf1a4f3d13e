package models

import (
	"fmt"
	"time"
)

// Severity classifies a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ParseSeverity validates s.
func ParseSeverity(s string) (Severity, error) {
	switch v := Severity(s); v {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return v, nil
	default:
		return "", fmt.Errorf("unknown severity %q", s)
	}
}

// Notification is one entry of the in-app feed.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Severity  Severity
	CreatedAt time.Time
	Read      bool
}

// NotificationInput is what callers provide; ID, CreatedAt and Read are
// assigned by the feed.
type NotificationInput struct {
	Title    string
	Message  string
	Severity Severity
}
