package middleware_test

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DelademPingship/sankofa-super/internal/gateway/middleware"
	"github.com/DelademPingship/sankofa-super/internal/modules/auth/infrastructure/jwt"
)

const testSecret = "middleware-test-secret"

func nextCapturingUser(t *testing.T, called *bool, wantUserID uuid.UUID) stdhttp.Handler {
	t.Helper()
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		*called = true
		got, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
		require.True(t, ok)
		assert.Equal(t, wantUserID, got)
		w.WriteHeader(stdhttp.StatusOK)
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	token, err := jwt.GenerateToken(testSecret, time.Hour, userID)
	require.NoError(t, err)

	called := false
	handler := middleware.NewAuthMiddleware(testSecret).RequireAuth(nextCapturingUser(t, &called, userID))

	req := httptest.NewRequest(stdhttp.MethodGet, "/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.True(t, called)
	assert.Equal(t, stdhttp.StatusOK, w.Code)
}

func TestRequireAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := middleware.NewAuthMiddleware(testSecret).RequireAuth(stdhttp.HandlerFunc(func(stdhttp.ResponseWriter, *stdhttp.Request) {
				called = true
			}))

			req := httptest.NewRequest(stdhttp.MethodGet, "/notifications", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.False(t, called)
			assert.Equal(t, stdhttp.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	token, err := jwt.GenerateToken("some-other-secret", time.Hour, uuid.New())
	require.NoError(t, err)

	handler := middleware.NewAuthMiddleware(testSecret).RequireAuth(stdhttp.HandlerFunc(func(stdhttp.ResponseWriter, *stdhttp.Request) {
		t.Fatal("handler must not run with a foreign-signed token")
	}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, stdhttp.StatusUnauthorized, w.Code)
}
