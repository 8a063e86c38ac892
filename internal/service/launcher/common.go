package launcher

import (
	"errors"
	"runtime"
	"strings"
	"time"
)

const (
	// ArtifactPrefix starts every jlens-mcp-server JAR filename.
	ArtifactPrefix = "jlens-mcp-server-"

	// ArtifactExtension ends every jlens-mcp-server JAR filename.
	ArtifactExtension = ".jar"

	// DefaultRuntime is the Java executable looked up on PATH.
	DefaultRuntime = "java"

	// EnvRuntimeHome is the launcher-specific Java home.
	EnvRuntimeHome = "JLENS_JAVA_HOME"

	// EnvGenericRuntimeHome is consulted when EnvRuntimeHome is unset.
	EnvGenericRuntimeHome = "JAVA_HOME"

	// EnvRuntimeArgs holds extra JVM arguments, split on whitespace.
	EnvRuntimeArgs = "JLENS_ARGS"

	// releaseOwner and releaseRepository locate the release assets on the host.
	releaseOwner      = "bhxch"
	releaseRepository = "jlens-mcp-server"

	// jarFlag tells the JVM to run an executable JAR.
	jarFlag = "-jar"

	// versionFlag is the cheap, side-effect free probe passed to the JVM.
	versionFlag = "-version"

	// minimumRuntime is shown when the runtime cannot be invoked.
	minimumRuntime = "Java 25+"

	// preflightTimeout bounds the runtime probe.
	preflightTimeout = 10 * time.Second

	// terminateWaitDelay is how long an interrupted server gets to exit before it is killed.
	terminateWaitDelay = 10 * time.Second
)

// excludedMarkers mark side artifacts of a build that must never be launched.
//
//nolint:gochecknoglobals // Read-only lookup table.
var excludedMarkers = []string{"original", "sources", "javadoc"}

var (
	// ErrArtifactNotFound is returned when no resolution step produced a JAR.
	ErrArtifactNotFound = errors.New("could not find jlens-mcp-server JAR file")
	// ErrRuntimeNotInvokable is returned when the runtime probe fails.
	ErrRuntimeNotInvokable = errors.New("java runtime is not invokable")
	// ErrDownloadFailed is returned when the release download fails.
	ErrDownloadFailed = errors.New("download failed")
	// ErrChildLaunch is returned when the server process cannot be started.
	ErrChildLaunch = errors.New("launch jlens-mcp-server")

	errBadHTTPStatus = errors.New("unexpected http status")
)

// getExecutableExtension returns ".exe" on Windows and "" elsewhere.
func getExecutableExtension() string {
	if strings.Contains(strings.ToLower(runtime.GOOS), "windows") {
		return ".exe"
	}

	return ""
}

func runtimeExecutable() string {
	return DefaultRuntime + getExecutableExtension()
}
