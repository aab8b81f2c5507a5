package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/DelademPingship/sankofa-super/internal/modules/notification/domain"
)

type PgNotificationRepository struct {
	db *sqlx.DB
}

func NewPgNotificationRepository(db *sqlx.DB) *PgNotificationRepository {
	return &PgNotificationRepository{db: db}
}

// classify maps schema-absence errors (table or column not yet migrated)
// to domain.ErrStorageUnavailable so callers can degrade instead of
// failing the whole request mid-deploy. Everything else passes through.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "42P01", "42703": // undefined_table, undefined_column
			return domain.ErrStorageUnavailable
		}
	}
	return err
}

func (r *PgNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = n.CreatedAt
	}

	query := `
		INSERT INTO notifications (id, user_id, title, body, category, action_url, read, created_at, updated_at)
		VALUES (:id, :user_id, :title, :body, :category, :action_url, :read, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, n)
	return classify(err)
}

func (r *PgNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	query := `
		SELECT * FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id
	`
	notifications := []domain.Notification{}
	if err := r.db.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, classify(err)
	}
	return notifications, nil
}

func (r *PgNotificationRepository) ListUnreadByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	query := `
		SELECT * FROM notifications
		WHERE user_id = $1 AND read = FALSE
		ORDER BY created_at DESC, id
	`
	notifications := []domain.Notification{}
	if err := r.db.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, classify(err)
	}
	return notifications, nil
}

func (r *PgNotificationRepository) GetByIDAndUser(ctx context.Context, notificationID, userID uuid.UUID) (*domain.Notification, error) {
	query := `
		SELECT * FROM notifications
		WHERE id = $1 AND user_id = $2
	`
	n := &domain.Notification{}
	err := r.db.GetContext(ctx, n, query, notificationID, userID)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotificationNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return n, nil
}

// MarkRead flips the read flag for one owned record. The read = FALSE
// predicate keeps updated_at untouched when the record was already read.
func (r *PgNotificationRepository) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	query := `
		UPDATE notifications
		SET read = TRUE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND read = FALSE
	`
	_, err := r.db.ExecContext(ctx, query, notificationID, userID)
	return classify(err)
}

// MarkAllRead updates every unread record of the owner in one statement,
// so a concurrent reader sees either none or all of them flipped.
func (r *PgNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		UPDATE notifications
		SET read = TRUE, updated_at = NOW()
		WHERE user_id = $1 AND read = FALSE
	`
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, classify(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *PgNotificationRepository) CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*) FROM notifications
		WHERE user_id = $1 AND read = FALSE
	`
	var count int
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, classify(err)
	}
	return count, nil
}
