package http_test

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DelademPingship/sankofa-super/internal/gateway/middleware"
	"github.com/DelademPingship/sankofa-super/internal/modules/auth/application"
	"github.com/DelademPingship/sankofa-super/internal/modules/auth/domain"
	authhttp "github.com/DelademPingship/sankofa-super/internal/modules/auth/interfaces/http"
)

type authServiceStub struct {
	registerFn func(context.Context, application.RegisterRequest) (*domain.User, error)
	loginFn    func(context.Context, application.LoginRequest) (string, error)
	getUserFn  func(context.Context, uuid.UUID) (*domain.User, error)
}

func (s authServiceStub) Register(ctx context.Context, req application.RegisterRequest) (*domain.User, error) {
	return s.registerFn(ctx, req)
}

func (s authServiceStub) Login(ctx context.Context, req application.LoginRequest) (string, error) {
	return s.loginFn(ctx, req)
}

func (s authServiceStub) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.getUserFn(ctx, id)
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h := authhttp.NewAuthHandler(authServiceStub{
			registerFn: func(_ context.Context, req application.RegisterRequest) (*domain.User, error) {
				return &domain.User{ID: uuid.New(), PhoneNumber: req.PhoneNumber, FullName: req.FullName}, nil
			},
		})

		body := `{"phone_number":"+233201234567","full_name":"Ama","password":"longenough"}`
		w := httptest.NewRecorder()
		h.Register(w, httptest.NewRequest(stdhttp.MethodPost, "/register", strings.NewReader(body)))

		require.Equal(t, stdhttp.StatusCreated, w.Code)
		var user domain.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		assert.Equal(t, "+233201234567", user.PhoneNumber)
	})

	t.Run("conflict", func(t *testing.T) {
		h := authhttp.NewAuthHandler(authServiceStub{
			registerFn: func(context.Context, application.RegisterRequest) (*domain.User, error) {
				return nil, domain.ErrUserAlreadyExists
			},
		})

		w := httptest.NewRecorder()
		h.Register(w, httptest.NewRequest(stdhttp.MethodPost, "/register", strings.NewReader(`{}`)))
		assert.Equal(t, stdhttp.StatusConflict, w.Code)
	})

	t.Run("bad body", func(t *testing.T) {
		h := authhttp.NewAuthHandler(authServiceStub{})
		w := httptest.NewRecorder()
		h.Register(w, httptest.NewRequest(stdhttp.MethodPost, "/register", strings.NewReader(`{`)))
		assert.Equal(t, stdhttp.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := authhttp.NewAuthHandler(authServiceStub{
			loginFn: func(context.Context, application.LoginRequest) (string, error) {
				return "a-token", nil
			},
		})

		w := httptest.NewRecorder()
		h.Login(w, httptest.NewRequest(stdhttp.MethodPost, "/login", strings.NewReader(`{"phone_number":"+233","password":"p"}`)))
		require.Equal(t, stdhttp.StatusOK, w.Code)
		assert.JSONEq(t, `{"token":"a-token"}`, w.Body.String())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		h := authhttp.NewAuthHandler(authServiceStub{
			loginFn: func(context.Context, application.LoginRequest) (string, error) {
				return "", domain.ErrInvalidCredentials
			},
		})

		w := httptest.NewRecorder()
		h.Login(w, httptest.NewRequest(stdhttp.MethodPost, "/login", strings.NewReader(`{}`)))
		assert.Equal(t, stdhttp.StatusUnauthorized, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		h := authhttp.NewAuthHandler(authServiceStub{
			loginFn: func(context.Context, application.LoginRequest) (string, error) {
				return "", errors.New("db down")
			},
		})

		w := httptest.NewRecorder()
		h.Login(w, httptest.NewRequest(stdhttp.MethodPost, "/login", strings.NewReader(`{}`)))
		assert.Equal(t, stdhttp.StatusInternalServerError, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		h := authhttp.NewAuthHandler(authServiceStub{
			getUserFn: func(_ context.Context, id uuid.UUID) (*domain.User, error) {
				assert.Equal(t, userID, id)
				return &domain.User{ID: userID, FullName: "Ama"}, nil
			},
		})

		req := httptest.NewRequest(stdhttp.MethodGet, "/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUserId, userID))
		w := httptest.NewRecorder()
		h.Me(w, req)
		require.Equal(t, stdhttp.StatusOK, w.Code)
	})

	t.Run("no principal", func(t *testing.T) {
		h := authhttp.NewAuthHandler(authServiceStub{})
		w := httptest.NewRecorder()
		h.Me(w, httptest.NewRequest(stdhttp.MethodGet, "/me", nil))
		assert.Equal(t, stdhttp.StatusUnauthorized, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		h := authhttp.NewAuthHandler(authServiceStub{
			getUserFn: func(context.Context, uuid.UUID) (*domain.User, error) {
				return nil, domain.ErrUserNotFound
			},
		})

		req := httptest.NewRequest(stdhttp.MethodGet, "/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUserId, userID))
		w := httptest.NewRecorder()
		h.Me(w, req)
		assert.Equal(t, stdhttp.StatusNotFound, w.Code)
	})
}
