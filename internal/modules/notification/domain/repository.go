package domain

import (
	"context"

	"github.com/google/uuid"
)

// NotificationRepository is the owner-scoped persistence contract. Every
// operation takes the owner explicitly; no record is addressable by id
// alone.
type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Notification, error)
	ListUnreadByUser(ctx context.Context, userID uuid.UUID) ([]Notification, error)
	GetByIDAndUser(ctx context.Context, notificationID, userID uuid.UUID) (*Notification, error)
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
