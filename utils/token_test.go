package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessToken_RoundTrip(t *testing.T) {
	const secret = "test-secret"

	token, err := NewAccessToken(secret, 42, "RECEPTIONIST", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), token.Exp, 5*time.Second)

	parsed, err := jwt.Parse(token.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["sub"])
	assert.Equal(t, "RECEPTIONIST", claims["role"])
}

func TestNewAccessToken_WrongSecret(t *testing.T) {
	token, err := NewAccessToken("right-secret", 1, "GUEST", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse(token.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}
