package models

// EmergencyContact is the person to call for the patient.
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// User is the signed-in patient. Its JSON form is also the persisted
// session format.
type User struct {
	ID               string            `json:"id"`
	Name             string            `json:"name,omitempty"`
	Email            string            `json:"email,omitempty"`
	Avatar           string            `json:"avatar,omitempty"`
	Phone            string            `json:"phone,omitempty"`
	BirthDate        string            `json:"birthDate,omitempty"`
	MedicalHistory   []string          `json:"medicalHistory,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
}

// Clone returns a deep copy.
func (u User) Clone() User {
	out := u
	if u.MedicalHistory != nil {
		out.MedicalHistory = append([]string(nil), u.MedicalHistory...)
	}
	if u.EmergencyContact != nil {
		ec := *u.EmergencyContact
		out.EmergencyContact = &ec
	}
	return out
}

// UserPatch carries the fields of a partial profile update. Nil fields are
// left untouched.
type UserPatch struct {
	Name             *string           `json:"name,omitempty"`
	Email            *string           `json:"email,omitempty"`
	Avatar           *string           `json:"avatar,omitempty"`
	Phone            *string           `json:"phone,omitempty"`
	BirthDate        *string           `json:"birthDate,omitempty"`
	MedicalHistory   []string          `json:"medicalHistory,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Avatar == nil && p.Phone == nil &&
		p.BirthDate == nil && p.MedicalHistory == nil && p.EmergencyContact == nil
}

// Apply returns a copy of u with the patch applied.
func (u User) Apply(p UserPatch) User {
	out := u.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Avatar != nil {
		out.Avatar = *p.Avatar
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.BirthDate != nil {
		out.BirthDate = *p.BirthDate
	}
	if p.MedicalHistory != nil {
		out.MedicalHistory = append([]string(nil), p.MedicalHistory...)
	}
	if p.EmergencyContact != nil {
		ec := *p.EmergencyContact
		out.EmergencyContact = &ec
	}
	return out
}
