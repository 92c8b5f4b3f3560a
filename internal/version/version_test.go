package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandPrintsVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), Version)
	require.Contains(t, out.String(), Commit)
}
