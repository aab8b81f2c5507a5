package jwt_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DelademPingship/sankofa-super/internal/modules/auth/infrastructure/jwt"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := jwt.GenerateToken(secret, time.Hour, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.ValidateToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := jwt.GenerateToken("secret-a", time.Hour, uuid.New())
	require.NoError(t, err)

	claims, err := jwt.ValidateToken(token, "secret-b")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := jwt.GenerateToken("secret", -time.Minute, uuid.New())
	require.NoError(t, err)

	claims, err := jwt.ValidateToken(token, "secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := jwt.ValidateToken("not.a.token", "secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
