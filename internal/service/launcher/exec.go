package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"syscall"

	"github.com/bhxch/jlens-launcher/internal/logger"
)

// Command is the fully resolved server command line.
type Command struct {
	// Runtime is the Java executable.
	Runtime string
	// RuntimeArgs go between the executable and -jar.
	RuntimeArgs []string
	// Artifact is the JAR to run.
	Artifact string
	// Args are forwarded to the server after the JAR path.
	Args []string
}

// Argv returns the arguments passed to Runtime:
// RuntimeArgs, -jar, Artifact, then Args.
func (c *Command) Argv() []string {
	argv := make([]string, 0, len(c.RuntimeArgs)+len(c.Args)+2)
	argv = append(argv, c.RuntimeArgs...)
	argv = append(argv, jarFlag, c.Artifact)

	return append(argv, c.Args...)
}

// Streams are handed to the server process. *os.File values are passed to
// the child directly, so nothing sits between the server and its peer.
// Nil streams are connected to the null device.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StandardStreams returns the launcher's own standard streams.
func StandardStreams() Streams {
	return Streams{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute starts the server, waits for it and returns its exit code.
// When ctx is cancelled the server is asked to terminate, and once it has
// exited Execute returns 0.
func Execute(ctx context.Context, command *Command, streams Streams) (int, error) {
	cmd := exec.CommandContext(ctx, command.Runtime, command.Argv()...)
	cmd.Stdin = streams.Stdin
	cmd.Stdout = streams.Stdout
	cmd.Stderr = streams.Stderr
	cmd.Cancel = func() error {
		return terminate(cmd.Process)
	}
	cmd.WaitDelay = terminateWaitDelay

	logger.InfoKV(ctx, "Starting jlens-mcp-server", "runtime", command.Runtime, "args", command.Argv())

	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return 0, nil
		}

		return 1, fmt.Errorf("%w: %w", ErrChildLaunch, err)
	}

	err := cmd.Wait()
	if ctx.Err() != nil {
		logger.Info(ctx, "Interrupted, jlens-mcp-server stopped")
		return 0, nil
	}

	return exitCode(err)
}

// exitCode maps the result of Wait to a process exit code.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// -1 means the server was killed by a signal.
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}

		return 1, nil
	}

	return 1, fmt.Errorf("%w: %w", ErrChildLaunch, err)
}

// terminate asks the server to stop. Windows has no SIGTERM, so the process is killed there.
func terminate(process *os.Process) error {
	if strings.Contains(strings.ToLower(runtime.GOOS), "windows") {
		return process.Kill()
	}

	return process.Signal(syscall.SIGTERM)
}
