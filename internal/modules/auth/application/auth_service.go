package application

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/DelademPingship/sankofa-super/internal/modules/auth/domain"
	"github.com/DelademPingship/sankofa-super/internal/modules/auth/infrastructure/jwt"
	notifdomain "github.com/DelademPingship/sankofa-super/internal/modules/notification/domain"
)

// DTOs for registration and login
type RegisterRequest struct {
	PhoneNumber string `json:"phone_number"`
	FullName    string `json:"full_name"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// Notifier lets registration emit a notification without the auth module
// owning the notification stack.
type Notifier interface {
	Create(ctx context.Context, userID uuid.UUID, title, body, category, actionURL string) (*notifdomain.Notification, error)
}

// AuthService provides authentication operations
type AuthService struct {
	repo      domain.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
	notifier  Notifier
}

// NewAuthService creates a new auth service. notifier may be nil.
func NewAuthService(repo domain.UserRepository, jwtSecret string, jwtExpiry time.Duration, notifier Notifier) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		notifier:  notifier,
	}
}

// Register creates a new user account and drops a welcome notification
// into their feed.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	phone := strings.TrimSpace(req.PhoneNumber)
	if phone == "" {
		return nil, errors.New("phone number is required")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, errors.New("full name is required")
	}
	if len(req.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	hashedPass, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		PhoneNumber:  phone,
		FullName:     req.FullName,
		PasswordHash: string(hashedPass),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		// The account exists either way; a failed welcome note is only logged.
		_, err := s.notifier.Create(ctx, user.ID,
			"Welcome to Sankofa",
			"Your account is ready. Join a savings group to get started.",
			"account", "")
		if err != nil {
			log.Printf("register: welcome notification for %s: %v", user.ID, err)
		}
	}

	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, error) {
	if req.PhoneNumber == "" || req.Password == "" {
		return "", errors.New("missing phone number or password")
	}

	user, err := s.repo.GetByPhoneNumber(ctx, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials // Don't reveal user existence
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID)
	if err != nil {
		return "", err
	}

	return token, nil
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
