package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := NewJWTManager("test-secret")

	token, err := manager.GenerateAccessJWT("user-123", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTManager_WrongSecretRejected(t *testing.T) {
	manager := NewJWTManager("test-secret")
	other := NewJWTManager("other-secret")

	token, err := manager.GenerateAccessJWT("user-123", time.Minute)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret")

	token, err := manager.GenerateAccessJWT("user-123", -time.Minute)
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredJWTToken)
}

func TestJWTManager_GarbageToken(t *testing.T) {
	manager := NewJWTManager("test-secret")

	_, err := manager.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}
