// Package version exposes build metadata for the launcher.
//
// Variables Version, Commit, and BuildTime are injected at build time via
// Go ldflags. Version doubles as the pinned jlens-mcp-server release: the
// launcher only ever caches and downloads the JAR carrying this version.
package version
