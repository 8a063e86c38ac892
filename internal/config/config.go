package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bhxch/jlens-launcher/internal/logger"
	"github.com/bhxch/jlens-launcher/internal/paths"
)

// Config holds the launcher settings.
type Config struct {
	// CacheDir is where the pinned JAR is downloaded to and looked up from.
	CacheDir string `yaml:"cache_dir"`
	// SearchDirs are extra local directories probed after the built-in ones.
	SearchDirs []string `yaml:"search_dirs"`
	// LogLevel is the minimum level written to standard error.
	LogLevel string `yaml:"log_level"`
	// Download configures the last-resort release download.
	Download Download `yaml:"download"`
}

// Download holds the release download settings.
type Download struct {
	// Enabled turns the download fallback on or off. Unset means on.
	Enabled *bool `yaml:"enabled"`
	// BaseURL is the release host, e.g. https://github.com.
	BaseURL string `yaml:"base_url"`
	// Timeout bounds the whole download request.
	Timeout time.Duration `yaml:"timeout"`
}

const (
	// EnvConfig points at an alternative settings file.
	EnvConfig = "JLENS_CONFIG"
	// EnvCacheDir overrides CacheDir.
	EnvCacheDir = "JLENS_CACHE_DIR"
	// EnvLogLevel overrides LogLevel.
	EnvLogLevel = "JLENS_LOG_LEVEL"
	// EnvOffline disables the download fallback when set to a true value.
	EnvOffline = "JLENS_OFFLINE"

	// DefaultBaseURL is the host serving release assets.
	DefaultBaseURL = "https://github.com"

	// DefaultDownloadTimeout bounds a single JAR download.
	DefaultDownloadTimeout = 5 * time.Minute

	// DefaultLogLevel keeps standard error quiet unless something goes wrong.
	DefaultLogLevel = "warn"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownLogLevel is returned for log levels zap does not know.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns settings with every field set to its default.
func Default() *Config {
	cfg := new(Config)
	_ = Validate(cfg)

	return cfg
}

// Load reads settings from path. An empty path means the per-user default
// location, which is allowed to be missing; an explicit path must exist.
func Load(path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = paths.ConfigFile()
	}

	cfg := new(Config)

	contents, err := os.ReadFile(filepath.Clean(path))

	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings %s: %w", path, err)
		}
	case optional && errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides settings from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if c == nil {
		return errConfigIsNotSet
	}

	if dir := strings.TrimSpace(getenv(EnvCacheDir)); dir != "" {
		c.CacheDir = dir
	}

	if level := strings.TrimSpace(getenv(EnvLogLevel)); level != "" {
		c.LogLevel = level
	}

	if raw := strings.TrimSpace(getenv(EnvOffline)); raw != "" {
		offline, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvOffline, err)
		}

		enabled := !offline
		c.Download.Enabled = &enabled
	}

	return Validate(c)
}

// DownloadEnabled reports whether the download fallback may run.
func (c *Config) DownloadEnabled() bool {
	return c.Download.Enabled == nil || *c.Download.Enabled
}

// Validate checks the provided settings and fills in defaults.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.CacheDir == "" {
		settings.CacheDir = paths.CacheDir()
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}

	if settings.Download.Timeout <= 0 {
		settings.Download.Timeout = DefaultDownloadTimeout
	}

	if settings.Download.BaseURL == "" {
		settings.Download.BaseURL = DefaultBaseURL
	}

	if _, err := url.ParseRequestURI(settings.Download.BaseURL); err != nil {
		return fmt.Errorf("invalid download base URL: %w", err)
	}

	return nil
}
