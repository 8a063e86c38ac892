package launcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgs_JarPathOverride(t *testing.T) {
	t.Parallel()

	inv := ParseArgs([]string{"--jar-path", "/tmp/x.jar", "serve", "--port", "9"})
	require.Equal(t, "/tmp/x.jar", inv.ArtifactPath)
	require.Equal(t, DefaultRuntime, inv.RuntimePath)
	require.Equal(t, []string{"serve", "--port", "9"}, inv.ForwardedArgs)
}

func TestParseArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		argv      []string
		runtime   string
		artifact  string
		forwarded []string
	}{
		{
			name:      "empty",
			argv:      nil,
			runtime:   DefaultRuntime,
			forwarded: []string{},
		},
		{
			name:      "java path",
			argv:      []string{"--java-path", "/opt/jdk/bin/java"},
			runtime:   "/opt/jdk/bin/java",
			forwarded: []string{},
		},
		{
			name:      "flags interleaved with forwarded tokens",
			argv:      []string{"a", "--java-path", "j", "b", "--jar-path", "x.jar", "c"},
			runtime:   "j",
			artifact:  "x.jar",
			forwarded: []string{"a", "b", "c"},
		},
		{
			name:      "unknown flags pass through",
			argv:      []string{"--verbose", "-X", "--java-home", "/jdk"},
			runtime:   DefaultRuntime,
			forwarded: []string{"--verbose", "-X", "--java-home", "/jdk"},
		},
		{
			name:      "trailing flag without value is forwarded",
			argv:      []string{"serve", "--jar-path"},
			runtime:   DefaultRuntime,
			forwarded: []string{"serve", "--jar-path"},
		},
		{
			name:      "flag value that looks like a flag is consumed",
			argv:      []string{"--jar-path", "--java-path", "rest"},
			runtime:   DefaultRuntime,
			artifact:  "--java-path",
			forwarded: []string{"rest"},
		},
		{
			name:      "last occurrence wins",
			argv:      []string{"--java-path", "a", "--java-path", "b"},
			runtime:   "b",
			forwarded: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv := ParseArgs(tt.argv)
			require.Equal(t, tt.runtime, inv.RuntimePath)
			require.Equal(t, tt.artifact, inv.ArtifactPath)
			require.Equal(t, tt.forwarded, inv.ForwardedArgs)
		})
	}
}

// TestParseArgs_FlagPositionIndependent checks that moving launcher flags
// around never changes what is forwarded.
func TestParseArgs_FlagPositionIndependent(t *testing.T) {
	t.Parallel()

	forwarded := []string{"serve", "--port", "9"}
	flags := []string{"--jar-path", "/tmp/x.jar", "--java-path", "/jdk/bin/java"}

	for pos := 0; pos <= len(forwarded); pos++ {
		argv := make([]string, 0, len(forwarded)+len(flags))
		argv = append(argv, forwarded[:pos]...)
		argv = append(argv, flags...)
		argv = append(argv, forwarded[pos:]...)

		inv := ParseArgs(argv)
		require.Equal(t, forwarded, inv.ForwardedArgs, "flags at %d", pos)
		require.Equal(t, "/tmp/x.jar", inv.ArtifactPath)
		require.Equal(t, "/jdk/bin/java", inv.RuntimePath)
	}
}
