package launcher

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/bhxch/jlens-launcher/internal/logger"
)

// Source tells which resolution step produced an artifact.
type Source string

const (
	// SourceOverride means the path came from --jar-path.
	SourceOverride Source = "override"
	// SourceLocal means the JAR was found in a local search directory.
	SourceLocal Source = "local"
	// SourceCache means the pinned JAR was already in the cache.
	SourceCache Source = "cache"
	// SourceDownload means the pinned JAR was just downloaded into the cache.
	SourceDownload Source = "download"
)

// Resolution is a JAR path together with the step that found it.
type Resolution struct {
	Path   string
	Source Source
}

// Resolver runs the artifact fallback chain.
type Resolver struct {
	// SearchDirs are probed in order; the first directory with a match wins.
	SearchDirs []string
	// CacheDir holds the pinned-version JAR.
	CacheDir string
	// Version is the pinned release.
	Version string
	// Downloader fetches the pinned release. Nil disables the download step.
	Downloader *Downloader
}

// Resolve returns the JAR to launch. An override is returned as is, without
// checking that it exists. Otherwise local directories, the cache and finally
// the release download are tried in that order.
func (r *Resolver) Resolve(ctx context.Context, override string) (*Resolution, error) {
	if override != "" {
		logger.DebugKV(ctx, "Using JAR from command line", "path", override)
		return &Resolution{Path: override, Source: SourceOverride}, nil
	}

	if path, ok := FindLocal(r.SearchDirs); ok {
		logger.DebugKV(ctx, "Found local JAR", "path", path)
		return &Resolution{Path: path, Source: SourceLocal}, nil
	}

	cachePath := CachePath(r.CacheDir, r.Version)
	if isCachedArtifact(cachePath) {
		logger.DebugKV(ctx, "Using cached JAR", "path", cachePath)
		return &Resolution{Path: cachePath, Source: SourceCache}, nil
	}

	if r.Downloader == nil {
		return nil, fmt.Errorf("%w; checked: %s", ErrArtifactNotFound, strings.Join(r.checkedLocations(cachePath), ", "))
	}

	logger.InfoKV(ctx, "Downloading jlens-mcp-server", "version", r.Version, "destination", cachePath)

	if err := r.Downloader.Download(ctx, r.Version, cachePath); err != nil {
		return nil, err
	}

	return &Resolution{Path: cachePath, Source: SourceDownload}, nil
}

// checkedLocations lists every place the chain looked, for diagnostics.
func (r *Resolver) checkedLocations(cachePath string) []string {
	locations := make([]string, 0, len(r.SearchDirs)+1)
	for _, dir := range r.SearchDirs {
		locations = append(locations, filepath.Join(dir, ArtifactPrefix+"*"+ArtifactExtension))
	}

	return append(locations, cachePath)
}

// FindLocal returns the best JAR in the first directory that has any.
// Directories that do not exist are skipped.
func FindLocal(dirs []string) (string, bool) {
	for _, dir := range dirs {
		if name, ok := findInDir(dir); ok {
			return filepath.Join(dir, name), true
		}
	}

	return "", false
}

// findInDir picks the highest-versioned candidate in dir.
func findInDir(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	var candidates []string

	for _, entry := range entries {
		if !entry.IsDir() && IsCandidate(entry.Name()) {
			candidates = append(candidates, entry.Name())
		}
	}

	if len(candidates) == 0 {
		return "", false
	}

	return slices.MaxFunc(candidates, compareCandidates), true
}

// IsCandidate reports whether a filename looks like a launchable server JAR.
func IsCandidate(name string) bool {
	if !strings.HasPrefix(name, ArtifactPrefix) || !strings.HasSuffix(name, ArtifactExtension) {
		return false
	}

	for _, marker := range excludedMarkers {
		if strings.Contains(name, marker) {
			return false
		}
	}

	return true
}

// compareCandidates orders JAR names by the version embedded in them.
// Names with a valid semantic version sort above names without one; ties and
// unparsable versions fall back to plain string order.
func compareCandidates(a, b string) int {
	va, vb := candidateVersion(a), candidateVersion(b)

	switch validA, validB := semver.IsValid(va), semver.IsValid(vb); {
	case validA && validB:
		if c := semver.Compare(va, vb); c != 0 {
			return c
		}
	case validA:
		return 1
	case validB:
		return -1
	}

	return strings.Compare(a, b)
}

// candidateVersion turns "jlens-mcp-server-1.2.0.jar" into "v1.2.0".
func candidateVersion(name string) string {
	return "v" + strings.TrimSuffix(strings.TrimPrefix(name, ArtifactPrefix), ArtifactExtension)
}

// CachePath is where the given version lives inside the cache directory.
func CachePath(cacheDir, version string) string {
	return filepath.Join(cacheDir, ArtifactPrefix+version+ArtifactExtension)
}

// DownloadURL builds the release asset URL for the given version.
func DownloadURL(baseURL, version string) (string, error) {
	return url.JoinPath(baseURL,
		releaseOwner, releaseRepository, "releases", "download", "v"+version,
		ArtifactPrefix+version+ArtifactExtension)
}

// isCachedArtifact treats empty files as misses.
func isCachedArtifact(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}
