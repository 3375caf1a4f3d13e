// Package forms validates the fields of the login and registration
// screens. Validation is synchronous and never touches application state.
package forms

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// MinPasswordLength applies to new passwords only.
const MinPasswordLength = 6

var emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

// Field names used as FieldErrors keys.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// FieldErrors maps a field name to its message. An empty map means the
// form is valid.
type FieldErrors map[string]string

// Err returns nil for a valid form, or an error listing every message in
// field order.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, k+": "+fe[k])
	}
	return errors.New(strings.Join(msgs, "; "))
}

// ValidateEmail returns the message for a bad email, or "".
func ValidateEmail(email string) string {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return "Email is required"
	case !emailRe.MatchString(email):
		return "Email is not valid"
	default:
		return ""
	}
}

// ValidateLogin checks the login form.
func ValidateLogin(email, password string) FieldErrors {
	fe := FieldErrors{}
	if msg := ValidateEmail(email); msg != "" {
		fe[FieldEmail] = msg
	}
	if password == "" {
		fe[FieldPassword] = "Password is required"
	}
	return fe
}

// ValidateRegister checks the registration form.
func ValidateRegister(name, email, password, confirm string) FieldErrors {
	fe := FieldErrors{}
	if strings.TrimSpace(name) == "" {
		fe[FieldName] = "Name is required"
	}
	if msg := ValidateEmail(email); msg != "" {
		fe[FieldEmail] = msg
	}
	switch {
	case password == "":
		fe[FieldPassword] = "Password is required"
	case len(password) < MinPasswordLength:
		fe[FieldPassword] = "Password must be at least 6 characters"
	}
	if password != confirm {
		fe[FieldConfirmPassword] = "Passwords do not match"
	}
	return fe
}
