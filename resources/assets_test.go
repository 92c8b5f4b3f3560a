package resources

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogoLoadsAndCaches(t *testing.T) {
	t.Parallel()

	first, err := Logo(AppLogo)
	require.NoError(t, err)
	require.Equal(t, AppLogo, first.Name())
	require.Contains(t, string(first.Content()), "<svg")

	second, err := Logo(AppLogo)
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestLogoMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Logo("missing.svg")
	require.Error(t, err)
	require.Panics(t, func() { MustLogo("missing.svg") })
}
