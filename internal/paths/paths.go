package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory naming.
	appName = "jlens"

	// Name of the optional launcher settings file.
	configFilename = "launcher.yaml"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0o755

	// Default permission mode for cached files.
	DefaultFileMode os.FileMode = 0o644
)

// Directory holding the downloaded JAR.
//
//	Linux:   $XDG_CACHE_HOME/jlens or ~/.cache/jlens
//	macOS:   ~/Library/Caches/jlens
//	Windows: %LOCALAPPDATA%\cache\jlens
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, appName)
}

// Default location of the launcher settings file.
//
//	Linux:   $XDG_CONFIG_HOME/jlens/launcher.yaml
//	macOS:   ~/Library/Application Support/jlens/launcher.yaml
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, appName, configFilename)
}

// Directory containing the running launcher binary, with symlinks resolved.
// Falls back to the working directory when the executable cannot be located.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		wd, _ := os.Getwd()
		return wd
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe)
}
