package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/DelademPingship/sankofa-super/internal/gateway/middleware"
	"github.com/DelademPingship/sankofa-super/internal/modules/notification/application"
	"github.com/DelademPingship/sankofa-super/internal/modules/notification/domain"
)

type NotificationHandler struct {
	service *application.NotificationService
}

func NewNotificationHandler(service *application.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List returns the caller's notifications newest first as a bare JSON
// array. An authenticated caller always gets a 200; no history and a
// mid-migration schema gap both read as [].
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		http.Error(w, `{"error": "unauthorized"}`, http.StatusUnauthorized)
		return
	}

	notifications, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		log.Printf("notifications list: %v", err)
		http.Error(w, `{"error": "failed to fetch notifications"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, notifications)
}

// ListUnread is List restricted to unread records.
func (h *NotificationHandler) ListUnread(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		http.Error(w, `{"error": "unauthorized"}`, http.StatusUnauthorized)
		return
	}

	notifications, err := h.service.ListUnreadForUser(r.Context(), userID)
	if err != nil {
		log.Printf("notifications list unread: %v", err)
		http.Error(w, `{"error": "failed to fetch notifications"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, notifications)
}

// MarkRead flips one owned notification to read. 404 covers a bad id, a
// missing record, and somebody else's record alike.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		http.Error(w, `{"error": "unauthorized"}`, http.StatusUnauthorized)
		return
	}

	notificationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, `{"error": "notification not found"}`, http.StatusNotFound)
		return
	}

	if err := h.service.MarkRead(r.Context(), notificationID, userID); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			http.Error(w, `{"error": "notification not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("notifications mark read: %v", err)
		http.Error(w, `{"error": "failed to mark notification as read"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAllRead flips every unread notification of the caller and always
// answers 204, however many rows that touched.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		http.Error(w, `{"error": "unauthorized"}`, http.StatusUnauthorized)
		return
	}

	if err := h.service.MarkAllRead(r.Context(), userID); err != nil {
		log.Printf("notifications mark all read: %v", err)
		http.Error(w, `{"error": "failed to mark notifications as read"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		http.Error(w, `{"error": "unauthorized"}`, http.StatusUnauthorized)
		return
	}

	count, err := h.service.UnreadCount(r.Context(), userID)
	if err != nil {
		log.Printf("notifications unread count: %v", err)
		http.Error(w, `{"error": "failed to get unread count"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]int{"count": count})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("notifications encode response: %v", err)
	}
}
