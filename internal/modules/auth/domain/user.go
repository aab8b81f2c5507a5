package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User is the authenticated principal notifications are scoped to.
// Accounts are keyed by phone number, the primary identifier across the
// wider product.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	PhoneNumber  string    `json:"phone_number" db:"phone_number"`
	FullName     string    `json:"full_name" db:"full_name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}

var (
	ErrUserAlreadyExists  = errors.New("user with this phone number already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid phone number or password")
)
