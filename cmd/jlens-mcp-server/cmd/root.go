package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bhxch/jlens-launcher/internal/config"
	"github.com/bhxch/jlens-launcher/internal/logger"
	"github.com/bhxch/jlens-launcher/internal/service/launcher"
)

var (
	// exitCode is the status the process ends with.
	exitCode int

	// runLauncher starts the server; replaced in tests.
	//nolint:gochecknoglobals // Test seam.
	runLauncher = launcher.Run

	// rootCmd represents the launcher. Flag parsing is left to the launcher
	// because every token it does not know belongs to the server.
	rootCmd = &cobra.Command{
		Use:   "jlens-mcp-server [--java-path PATH] [--jar-path PATH] [server args...]",
		Short: "Run the jlens MCP server under a Java runtime.",
		Long: `Locates the jlens-mcp-server JAR and runs it with Java, forwarding standard
input and output untouched so MCP clients talk to the server directly.

The JAR is taken from --jar-path, the launcher's install directory, a
target/ build directory, the per-user cache, or downloaded from the release
page, in that order. Java is taken from --java-path, JLENS_JAVA_HOME
(or JAVA_HOME when it is unset) or PATH. JLENS_ARGS adds JVM options.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		// Failures are reported through the logger.
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			ctx = logger.WithName(ctx, "jlens-mcp-server")

			cfg, err := loadConfig()
			if err != nil {
				exitCode = 1
				logger.ErrorKV(ctx, "Launcher failed", "error", err, "exit_code", exitCode)

				return err
			}

			options := &launcher.Options{
				Args:   args,
				Config: cfg,
			}

			exitCode, err = runLauncher(ctx, options)
			if err != nil {
				logger.ErrorKV(ctx, "Launcher failed", "error", err, "exit_code", exitCode)
			}

			return err
		},
	}
)

// Execute runs the launcher CLI and exits with the server's exit code,
// or 1 when the launcher itself failed.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}

	os.Exit(exitCode)
}

// loadConfig reads the settings file, applies environment overrides and
// sets the log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(os.Getenv(config.EnvConfig))
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if err = cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	return cfg, nil
}
