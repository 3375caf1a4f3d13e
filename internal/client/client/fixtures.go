package client

import (
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
)

const (
	demoAvatar    = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face"
	profileAvatar = "https://images.unsplash.com/photo-1494790108755-2616b612b5c5?w=150&h=150&fit=crop&crop=face"

	// DemoUserID is the id the mock auth hands out to unknown emails.
	DemoUserID = "1"
	// DefaultChatID names the single conversation seeded in MockMessaging.
	DefaultChatID = "dr1"
)

func demoUser(email string) models.User {
	return models.User{ID: DemoUserID, Email: email, Name: "Usuario Demo", Avatar: demoAvatar}
}

func profileFixture(userID string) models.User {
	return models.User{
		ID:             userID,
		Email:          "usuario@saludconecta.com",
		Name:           "María González",
		Avatar:         profileAvatar,
		Phone:          "+34 666 123 456",
		BirthDate:      "1985-03-15",
		MedicalHistory: []string{"Hipertensión", "Diabetes tipo 2"},
		EmergencyContact: &models.EmergencyContact{
			Name:  "Juan González",
			Phone: "+34 666 654 321",
		},
	}
}

func appointmentFixtures(userID string) []models.Appointment {
	return []models.Appointment{
		{
			ID:         "1",
			PatientID:  userID,
			DoctorID:   "dr1",
			DoctorName: "Dr. Carlos Ruiz",
			Date:       "2025-09-05",
			Time:       "10:00",
			Type:       models.AppointmentVideo,
			Status:     models.AppointmentScheduled,
			Notes:      "Consulta de seguimiento",
		},
		{
			ID:         "2",
			PatientID:  userID,
			DoctorID:   "dr2",
			DoctorName: "Dra. Ana Martín",
			Date:       "2025-09-10",
			Time:       "15:30",
			Type:       models.AppointmentChat,
			Status:     models.AppointmentScheduled,
			Notes:      "Revisión de resultados",
		},
	}
}

func chatFixtures() []models.ChatMessage {
	at := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []models.ChatMessage{
		{
			ID:         "1",
			SenderID:   "dr1",
			SenderName: "Dr. Carlos Ruiz",
			Message:    "Hola María, ¿cómo te encuentras hoy?",
			Timestamp:  at("2025-08-31T09:00:00Z"),
			Type:       models.MessageText,
			Read:       true,
		},
		{
			ID:         "2",
			SenderID:   "user1",
			SenderName: "María González",
			Message:    "Buenos días doctor, me encuentro mejor. La medicación está funcionando.",
			Timestamp:  at("2025-08-31T09:05:00Z"),
			Type:       models.MessageText,
			Read:       true,
		},
		{
			ID:         "3",
			SenderID:   "dr1",
			SenderName: "Dr. Carlos Ruiz",
			Message:    "Excelente. ¿Has tenido algún efecto secundario?",
			Timestamp:  at("2025-08-31T09:10:00Z"),
			Type:       models.MessageText,
			Read:       false,
		},
	}
}

func resourceFixtures() []models.Resource {
	return []models.Resource{
		{
			ID:          "1",
			Title:       "Consejos para una alimentación saludable",
			Description: "Aprende los fundamentos de una dieta equilibrada y nutritiva.",
			Category:    models.CategoryArticle,
			Content:     "Una alimentación saludable es fundamental para mantener un buen estado de salud...",
			ImageURL:    "https://images.unsplash.com/photo-1498837167922-ddd27525d352?w=400&h=250&fit=crop",
			PublishDate: "2025-08-20",
			ReadTime:    5,
		},
		{
			ID:          "2",
			Title:       "Ejercicios de respiración para el estrés",
			Description: "Técnicas simples para reducir la ansiedad y mejorar tu bienestar.",
			Category:    models.CategoryVideo,
			Content:     "Los ejercicios de respiración son una herramienta poderosa...",
			ImageURL:    "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=400&h=250&fit=crop",
			VideoURL:    "https://example.com/breathing-exercises.mp4",
			PublishDate: "2025-08-25",
			ReadTime:    3,
		},
		{
			ID:          "3",
			Title:       "Síntomas de emergencia cardiaca",
			Description: "Reconoce las señales de un posible infarto y actúa rápidamente.",
			Category:    models.CategoryEmergency,
			Content:     "Es crucial reconocer los síntomas de un ataque cardíaco...",
			ImageURL:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=250&fit=crop",
			PublishDate: "2025-08-30",
			ReadTime:    2,
		},
	}
}
