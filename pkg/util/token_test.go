package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-session-testing"

func TestGenerateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken("session-123", testSecret, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken("session-123", testSecret, time.Hour)
	require.NoError(t, err)

	sid, err := ValidateSessionToken(token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, "session-123", sid)
}

func TestValidateSessionToken_WrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("session-123", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, "another-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateSessionToken_Expired(t *testing.T) {
	token, err := GenerateSessionToken("session-123", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateSessionToken_Garbage(t *testing.T) {
	_, err := ValidateSessionToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
