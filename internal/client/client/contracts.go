package client

import (
	"context"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
)

// AuthClient signs users in and out.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) (string, error)
}

// DirectoryClient reads and updates user profiles. GetUserProfile returns
// (nil, nil) when the profile does not exist.
type DirectoryClient interface {
	GetUserProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateUserProfile(ctx context.Context, userID string, patch models.UserPatch) error
}

type AppointmentClient interface {
	GetAppointments(ctx context.Context, userID string) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, a models.Appointment) (string, error)
}

type MessagingClient interface {
	GetChatMessages(ctx context.Context, chatID string) ([]models.ChatMessage, error)
	SendMessage(ctx context.Context, chatID string, msg models.ChatMessage) (string, error)
}

type ResourceClient interface {
	GetMedicalResources(ctx context.Context) ([]models.Resource, error)
}

// Notifier delivers local notifications. Failures are swallowed; a denied
// permission silently disables delivery.
type Notifier interface {
	RequestPermission(ctx context.Context) bool
	SendLocalNotification(ctx context.Context, title, body string)
}

type VideoClient interface {
	InitializeCall(ctx context.Context, appointmentID string) (*models.CallGrant, error)
	EndCall(ctx context.Context, appointmentID string) error
}

// StorageClient stores user files such as avatars and returns a URL for
// each upload.
type StorageClient interface {
	UploadFile(ctx context.Context, path string, data []byte) (string, error)
	DeleteFile(ctx context.Context, path string) error
}
