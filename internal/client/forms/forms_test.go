package forms

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x@y.com", ""},
		{"  maria@saludconecta.com ", ""},
		{"", "Email is required"},
		{"   ", "Email is required"},
		{"maria", "Email is not valid"},
		{"maria@host", "Email is not valid"},
		{"@.", "Email is not valid"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.in))
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.Empty(t, ValidateLogin("x@y.com", "secret"))
	// no minimum length when signing in
	assert.Empty(t, ValidateLogin("x@y.com", "a"))

	got := ValidateLogin("", "")
	want := FieldErrors{
		FieldEmail:    "Email is required",
		FieldPassword: "Password is required",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ValidateLogin mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateRegister(t *testing.T) {
	assert.Empty(t, ValidateRegister("Ana", "ana@x.es", "secreto", "secreto"))

	tests := []struct {
		name string
		in   [4]string
		want FieldErrors
	}{
		{
			name: "everything missing",
			in:   [4]string{"", "", "", ""},
			want: FieldErrors{
				FieldName:     "Name is required",
				FieldEmail:    "Email is required",
				FieldPassword: "Password is required",
			},
		},
		{
			name: "short password",
			in:   [4]string{"Ana", "ana@x.es", "12345", "12345"},
			want: FieldErrors{FieldPassword: "Password must be at least 6 characters"},
		},
		{
			name: "mismatch",
			in:   [4]string{"Ana", "ana@x.es", "secreto", "secreta"},
			want: FieldErrors{FieldConfirmPassword: "Passwords do not match"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateRegister(tt.in[0], tt.in[1], tt.in[2], tt.in[3])
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFieldErrors_Err(t *testing.T) {
	require.NoError(t, FieldErrors{}.Err())

	err := FieldErrors{FieldPassword: "Password is required", FieldEmail: "Email is required"}.Err()
	require.EqualError(t, err, "email: Email is required; password: Password is required")
}
