package models

import "time"

type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageFile  MessageType = "file"
)

// ChatMessage is one message of a doctor–patient conversation.
type ChatMessage struct {
	ID         string      `json:"id"`
	SenderID   string      `json:"senderId"`
	SenderName string      `json:"senderName"`
	Message    string      `json:"message"`
	Timestamp  time.Time   `json:"timestamp"`
	Type       MessageType `json:"type"`
	Read       bool        `json:"read"`
}
