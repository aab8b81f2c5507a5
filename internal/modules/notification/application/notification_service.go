package application

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/DelademPingship/sankofa-super/internal/modules/notification/domain"
)

const unreadCountTTL = 30 * time.Second

// NotificationService sits between the HTTP layer and the repository. It
// validates inputs on create, converts schema-absence failures into the
// benign outcomes the endpoints promise, and keeps a short-lived unread
// count cache in Redis.
type NotificationService struct {
	repo  domain.NotificationRepository
	cache *redis.Client // optional, nil disables caching
}

func NewNotificationService(repo domain.NotificationRepository, cache *redis.Client) *NotificationService {
	return &NotificationService{repo: repo, cache: cache}
}

// Create inserts a notification for a user. It is called by in-process
// business events (registration, payouts, group activity), never exposed
// as an endpoint.
func (s *NotificationService) Create(ctx context.Context, userID uuid.UUID, title, body, category, actionURL string) (*domain.Notification, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	if len(title) > domain.MaxTitleLen {
		return nil, fmt.Errorf("title exceeds %d characters", domain.MaxTitleLen)
	}
	if strings.TrimSpace(body) == "" {
		return nil, errors.New("body is required")
	}
	if len(category) > domain.MaxCategoryLen {
		return nil, fmt.Errorf("category exceeds %d characters", domain.MaxCategoryLen)
	}
	if actionURL != "" {
		u, err := url.Parse(actionURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, errors.New("action_url is not a valid URL")
		}
	}

	now := time.Now()
	n := &domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		Category:  category,
		ActionURL: actionURL,
		Read:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	s.invalidateUnreadCount(ctx, userID)
	return n, nil
}

// ListForUser returns the user's notifications newest first. When the
// notifications schema is not present yet the result degrades to an empty
// list instead of failing the request.
func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	notifications, err := s.repo.ListByUser(ctx, userID)
	if errors.Is(err, domain.ErrStorageUnavailable) {
		return []domain.Notification{}, nil
	}
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// ListUnreadForUser is ListForUser restricted to read = false.
func (s *NotificationService) ListUnreadForUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	notifications, err := s.repo.ListUnreadByUser(ctx, userID)
	if errors.Is(err, domain.ErrStorageUnavailable) {
		return []domain.Notification{}, nil
	}
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flips one owned notification to read. Already-read records are
// a success without a write, so updated_at stays put. A missing schema
// degrades to not-found, matching the endpoint contract.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	n, err := s.repo.GetByIDAndUser(ctx, notificationID, userID)
	if errors.Is(err, domain.ErrStorageUnavailable) {
		return domain.ErrNotificationNotFound
	}
	if err != nil {
		return err
	}
	if n.Read {
		return nil
	}
	if err := s.repo.MarkRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, domain.ErrStorageUnavailable) {
			return domain.ErrNotificationNotFound
		}
		return err
	}
	s.invalidateUnreadCount(ctx, userID)
	return nil
}

// MarkAllRead flips every unread notification of the user in one bulk
// update. Zero matching rows and a missing schema are both a no-op
// success.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	affected, err := s.repo.MarkAllRead(ctx, userID)
	if errors.Is(err, domain.ErrStorageUnavailable) {
		return nil
	}
	if err != nil {
		return err
	}
	if affected > 0 {
		s.invalidateUnreadCount(ctx, userID)
	}
	return nil
}

// UnreadCount returns the user's unread total, served from Redis when a
// fresh value is cached.
func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, unreadCountKey(userID)).Result(); err == nil {
			if count, convErr := strconv.Atoi(cached); convErr == nil {
				return count, nil
			}
		}
	}

	count, err := s.repo.CountUnreadByUser(ctx, userID)
	if errors.Is(err, domain.ErrStorageUnavailable) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		// Best effort; a cache write failure is not the caller's problem.
		_ = s.cache.Set(ctx, unreadCountKey(userID), strconv.Itoa(count), unreadCountTTL).Err()
	}
	return count, nil
}

func (s *NotificationService) invalidateUnreadCount(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, unreadCountKey(userID)).Err()
}

func unreadCountKey(userID uuid.UUID) string {
	return "notifications:unread-count:" + userID.String()
}
