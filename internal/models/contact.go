package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
)

// Contact message statuses.
const (
	ContactNew      = "new"
	ContactReviewed = "reviewed"
	ContactReplied  = "replied"
)

type ContactMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Message string             `bson:"message" json:"message"`

	IPAddress string `bson:"ip_address" json:"ip_address"`
	UserAgent string `bson:"user_agent" json:"user_agent"`

	Status    string    `bson:"status" json:"status"`
	CreatedAt Timestamp `bson:"created_at" json:"created_at"`
}

func NewContactMessage(name, email, message, ip, userAgent string) (*ContactMessage, error) {
	if name == "" || email == "" || message == "" {
		return nil, apperr.Validation("name, email and message are required")
	}

	return &ContactMessage{
		Name:      name,
		Email:     email,
		Message:   message,
		IPAddress: ip,
		UserAgent: userAgent,
		Status:    ContactNew,
		CreatedAt: Now(),
	}, nil
}

func ValidContactStatus(s string) bool {
	switch s {
	case ContactNew, ContactReviewed, ContactReplied:
		return true
	}
	return false
}
