package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVersionStrings ensures Short, Full and UserAgent return consistent information.
func TestVersionStrings(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())
	require.Contains(t, Full(), Short())
	require.Equal(t, "jlens-launcher/"+Short(), UserAgent())
}
