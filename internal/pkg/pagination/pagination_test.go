package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	p := Parse("", "")
	require.Equal(t, 1, p.Page)
	require.Equal(t, DefaultLimit, p.Limit)
	require.Equal(t, 0, p.Skip())
}

func TestParseMalformed(t *testing.T) {
	p := Parse("abc", "-3")
	require.Equal(t, 1, p.Page)
	require.Equal(t, DefaultLimit, p.Limit)
}

func TestParseClampsLimit(t *testing.T) {
	p := Parse("2", "500")
	require.Equal(t, 2, p.Page)
	require.Equal(t, MaxLimit, p.Limit)
}

func TestSkip(t *testing.T) {
	p := Parse("2", "5")
	require.Equal(t, 5, p.Skip())
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 3, TotalPages(12, 5))
	require.Equal(t, 1, TotalPages(5, 5))
	require.Equal(t, 0, TotalPages(0, 5))
	require.Equal(t, 0, TotalPages(10, 0))
}
