package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bhxch/jlens-launcher/internal/logger"
)

// ResolveRuntime picks the Java executable. Priority: an explicit path,
// then the Java home from JLENS_JAVA_HOME or, when that is unset, JAVA_HOME,
// then the bare name on PATH. Only one home is probed: if it has no
// bin/java the bare name is used.
func ResolveRuntime(requested string, getenv func(string) string) string {
	if requested != "" && requested != DefaultRuntime {
		return requested
	}

	home := getenv(EnvRuntimeHome)
	if home == "" {
		home = getenv(EnvGenericRuntimeHome)
	}

	if home == "" {
		return DefaultRuntime
	}

	candidate := filepath.Join(home, "bin", runtimeExecutable())
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}

	return DefaultRuntime
}

// RuntimeArgs splits JLENS_ARGS on whitespace. Quoting is not supported.
func RuntimeArgs(getenv func(string) string) []string {
	return strings.Fields(getenv(EnvRuntimeArgs))
}

// Preflight runs `<runtimePath> -version` with all standard streams
// discarded and fails if the runtime cannot be started or exits non-zero.
func Preflight(ctx context.Context, runtimePath string) error {
	probeCtx, cancel := context.WithTimeout(ctx, preflightTimeout)
	defer cancel()

	// Nil streams are connected to the null device.
	cmd := exec.CommandContext(probeCtx, runtimePath, versionFlag)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: java not found at %q, please ensure %s is installed: %w",
			ErrRuntimeNotInvokable, runtimePath, minimumRuntime, err)
	}

	logger.DebugKV(ctx, "Java runtime is invokable", "runtime", runtimePath)

	return nil
}
