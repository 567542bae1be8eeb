package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	tok, err := GenerateAccessToken("u1", "ada@example.com", secret, time.Minute)
	require.NoError(t, err)

	claims, err := ValidateToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	tok, err := GenerateAccessToken("u1", "ada@example.com", "right", time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(tok, "wrong")
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	tok, err := GenerateAccessToken("u1", "ada@example.com", "s", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(tok, "s")
	assert.Error(t, err)
}
