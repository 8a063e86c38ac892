package launcher

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveRuntime(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	toolHome := filepath.Join(root, "jlens-jdk")
	genericHome := filepath.Join(root, "jdk")
	emptyHome := filepath.Join(root, "empty")
	toolJava := touch(t, filepath.Join(toolHome, "bin"), runtimeExecutable(), "")
	genericJava := touch(t, filepath.Join(genericHome, "bin"), runtimeExecutable(), "")

	tests := []struct {
		name      string
		requested string
		env       map[string]string
		want      string
	}{
		{
			name:      "explicit path beats environment",
			requested: "/custom/java",
			env:       map[string]string{EnvRuntimeHome: toolHome, EnvGenericRuntimeHome: genericHome},
			want:      "/custom/java",
		},
		{
			name:      "tool home beats generic home",
			requested: DefaultRuntime,
			env:       map[string]string{EnvRuntimeHome: toolHome, EnvGenericRuntimeHome: genericHome},
			want:      toolJava,
		},
		{
			name:      "generic home",
			requested: DefaultRuntime,
			env:       map[string]string{EnvGenericRuntimeHome: genericHome},
			want:      genericJava,
		},
		{
			name:      "tool home without java hides generic home",
			requested: DefaultRuntime,
			env:       map[string]string{EnvRuntimeHome: emptyHome, EnvGenericRuntimeHome: genericHome},
			want:      DefaultRuntime,
		},
		{
			name:      "no usable home uses PATH",
			requested: DefaultRuntime,
			env:       map[string]string{EnvRuntimeHome: emptyHome},
			want:      DefaultRuntime,
		},
		{
			name:      "no home uses PATH",
			requested: DefaultRuntime,
			env:       map[string]string{},
			want:      DefaultRuntime,
		},
		{
			name: "empty request",
			env:  map[string]string{},
			want: DefaultRuntime,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveRuntime(tt.requested, func(key string) string { return tt.env[key] })
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRuntimeArgs(t *testing.T) {
	t.Parallel()

	env := map[string]string{EnvRuntimeArgs: "  -Xmx1g\t-Dfoo=\"a b\"  "}
	require.Equal(t, []string{"-Xmx1g", "-Dfoo=\"a", "b\""}, RuntimeArgs(func(key string) string { return env[key] }))
	require.Empty(t, RuntimeArgs(func(string) string { return "" }))
}

func TestPreflight(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()

	ok := writeScript(t, dir, "java-ok", `[ "$1" = "-version" ] || exit 9
echo 'openjdk version "25"' >&2`)
	require.NoError(t, Preflight(context.Background(), ok))

	broken := writeScript(t, dir, "java-broken", "exit 1")
	err := Preflight(context.Background(), broken)
	require.ErrorIs(t, err, ErrRuntimeNotInvokable)
	require.Contains(t, err.Error(), broken)
	require.Contains(t, err.Error(), minimumRuntime)

	missing := filepath.Join(dir, "no-such-java")
	err = Preflight(context.Background(), missing)
	require.ErrorIs(t, err, ErrRuntimeNotInvokable)
	require.Contains(t, err.Error(), missing)
}
