package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Notification is one per-user notification row. Records are created by
// business events elsewhere in the system and only read and flagged
// through the HTTP surface.
type Notification struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	Category  string    `json:"category" db:"category"`
	ActionURL string    `json:"action_url" db:"action_url"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

const (
	MaxTitleLen    = 255
	MaxCategoryLen = 64
)

var (
	// ErrNotificationNotFound covers both a missing id and an id owned by a
	// different user, so a caller cannot probe for other users' records.
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrStorageUnavailable marks failures caused by the notifications
	// schema not existing yet (mid-migration deploy windows).
	ErrStorageUnavailable = errors.New("notification storage unavailable")
)
