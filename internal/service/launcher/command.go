package launcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"

	"github.com/bhxch/jlens-launcher/internal/config"
	"github.com/bhxch/jlens-launcher/internal/logger"
	"github.com/bhxch/jlens-launcher/internal/paths"
	"github.com/bhxch/jlens-launcher/internal/version"
)

// Options are inputs accepted by the launcher entry point.
type Options struct {
	// Args is the command line after the program name.
	Args []string
	// Config holds the launcher settings; nil means defaults.
	Config *config.Config
	// SearchDirs replaces the built-in local search directories when non-nil.
	// Config.SearchDirs are always appended.
	SearchDirs []string
	// Version is the pinned release; empty means version.Short().
	Version string
	// Getenv reads the environment; nil means os.Getenv.
	Getenv func(string) string
	// Streams are given to the server; the zero value means the launcher's own.
	Streams *Streams
}

// Run parses the arguments, resolves the runtime and the JAR, probes the
// runtime and runs the server. It returns the exit code the process should
// end with; the error is non-nil when the launcher itself failed.
func Run(ctx context.Context, opts *Options) (int, error) {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "jlens-launcher")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	pinned := opts.Version
	if pinned == "" {
		pinned = version.Short()
	}

	ctx = logger.WithKV(ctx, "version", pinned)
	logger.DebugKV(ctx, "Launcher build", "build", version.Full())

	invocation := ParseArgs(opts.Args)
	runtimePath := ResolveRuntime(invocation.RuntimePath, getenv)

	resolver := &Resolver{
		SearchDirs: append(searchDirs(opts.SearchDirs), cfg.SearchDirs...),
		CacheDir:   cfg.CacheDir,
		Version:    pinned,
	}

	if cfg.DownloadEnabled() {
		resolver.Downloader = NewDownloader(cfg.Download.BaseURL, cfg.Download.Timeout)
	}

	resolution, err := resolver.Resolve(ctx, invocation.ArtifactPath)
	if err != nil {
		return failed(ctx, err)
	}

	logger.InfoKV(ctx, "Resolved jlens-mcp-server JAR", "path", resolution.Path, "source", resolution.Source)

	if err = Preflight(ctx, runtimePath); err != nil {
		return failed(ctx, err)
	}

	streams := StandardStreams()
	if opts.Streams != nil {
		streams = *opts.Streams
	}

	command := &Command{
		Runtime:     runtimePath,
		RuntimeArgs: RuntimeArgs(getenv),
		Artifact:    resolution.Path,
		Args:        invocation.ForwardedArgs,
	}

	return Execute(ctx, command, streams)
}

// failed turns a launcher error into an exit code. An interrupt that arrives
// before the server starts is a clean shutdown, not a failure.
func failed(ctx context.Context, err error) (int, error) {
	if errors.Is(ctx.Err(), context.Canceled) {
		logger.Info(ctx, "Interrupted before jlens-mcp-server started")
		return 0, nil
	}

	return 1, err
}

// searchDirs returns the local search directories: the launcher's own
// directory, its lib and target siblings and ./target.
func searchDirs(override []string) []string {
	if override != nil {
		return slices.Clone(override)
	}

	exeDir := paths.ExecutableDir()
	dirs := []string{
		exeDir,
		filepath.Join(exeDir, "..", "lib"),
		filepath.Join(exeDir, "..", "target"),
	}

	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, filepath.Join(wd, "target"))
	}

	return dirs
}
