package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageDB represents a message record in the database.
type MessageDB struct {
	MessageID    uuid.UUID  `db:"message_id"` // Primary key, generated at creation
	FromUsername string     `db:"from_username"`
	ToUsername   string     `db:"to_username"`
	Body         string     `db:"body"`
	SentAt       time.Time  `db:"sent_at"`
	ReadAt       *time.Time `db:"read_at"` // Nil until the recipient marks it read
}

// Message is a message enriched with both participants' public profiles.
type Message struct {
	MessageID uuid.UUID  `json:"id"`
	FromUser  PublicUser `json:"from_user"`
	ToUser    PublicUser `json:"to_user"`
	Body      string     `json:"body"`
	SentAt    time.Time  `json:"sent_at"`
	ReadAt    *time.Time `json:"read_at"`
}

// UserMessage is a message as seen from one user's inbox or outbox:
// the row plus the counterpart's public profile.
type UserMessage struct {
	MessageID   uuid.UUID  `json:"id"`
	Counterpart PublicUser `json:"counterpart"`
	Body        string     `json:"body"`
	SentAt      time.Time  `json:"sent_at"`
	ReadAt      *time.Time `json:"read_at"`
}
