package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
)

// Subscriber statuses.
const (
	SubscriberActive       = "active"
	SubscriberUnsubscribed = "unsubscribed"
)

type Subscriber struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Status    string             `bson:"status" json:"status"`
	Source    string             `bson:"source" json:"source"`
	IPAddress string             `bson:"ip_address" json:"ip_address"`
	UserAgent string             `bson:"user_agent" json:"user_agent"`

	CreatedAt Timestamp `bson:"created_at" json:"created_at"`
	UpdatedAt Timestamp `bson:"updated_at" json:"updated_at"`
}

// NormalizeEmail is the canonical form used for the case-insensitive
// uniqueness check.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NewSubscriber(email, source, ip, userAgent string) (*Subscriber, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, apperr.Validation("email is required")
	}
	if source == "" {
		source = "homepage"
	}

	now := Now()

	return &Subscriber{
		Email:     email,
		Status:    SubscriberActive,
		Source:    source,
		IPAddress: ip,
		UserAgent: userAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
