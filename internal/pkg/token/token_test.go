package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestGenerateAndValidate(t *testing.T) {
	signed, err := Generate("507f1f77bcf86cd799439011", "user@example.com", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := Validate(signed, testSecret)
	require.NoError(t, err)
	require.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
}

func TestValidate_WrongSecret(t *testing.T) {
	signed, err := Generate("id", "user@example.com", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = Validate(signed, "another-secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	signed, err := Generate("id", "user@example.com", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = Validate(signed, testSecret)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := Validate("not-a-token", testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}
