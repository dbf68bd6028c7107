package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("user@example.com"))
	require.False(t, IsValidEmail(""))
	require.False(t, IsValidEmail("not-an-email"))
	require.False(t, IsValidEmail("user@host"))
}

func TestIsValidUsername(t *testing.T) {
	require.True(t, IsValidUsername("jane_doe"))
	require.True(t, IsValidUsername("abc"))
	require.False(t, IsValidUsername("ab"))
	require.False(t, IsValidUsername("thisusernameiswaytoolong"))
	require.False(t, IsValidUsername("has spaces"))
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2026-01-15")
	require.True(t, ok)
	require.Equal(t, 2026, d.Year())

	_, ok = ParseDate("2026-01-15T10:30:00Z")
	require.True(t, ok)

	_, ok = ParseDate("next tuesday")
	require.False(t, ok)
}
