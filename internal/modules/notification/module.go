package notification

import (
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/DelademPingship/sankofa-super/internal/modules/notification/application"
	"github.com/DelademPingship/sankofa-super/internal/modules/notification/infrastructure/persistence/postgres"
	notification_http "github.com/DelademPingship/sankofa-super/internal/modules/notification/interfaces/http"
)

type Module struct {
	service *application.NotificationService
	handler *notification_http.NotificationHandler
}

// NewModule wires the notification feature. cache may be nil when Redis
// is not configured; the unread counter then always hits Postgres.
func NewModule(db *sqlx.DB, cache *redis.Client) *Module {
	repo := postgres.NewPgNotificationRepository(db)
	service := application.NewNotificationService(repo, cache)
	handler := notification_http.NewNotificationHandler(service)

	return &Module{
		service: service,
		handler: handler,
	}
}

func (m *Module) HTTPHandler() *notification_http.NotificationHandler {
	return m.handler
}

// Service exposes the application service so other modules can emit
// notifications from their own business events.
func (m *Module) Service() *application.NotificationService {
	return m.service
}
