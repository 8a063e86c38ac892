// Package config defines the launcher settings and provides helpers to load
// and validate them from an optional YAML file plus environment overrides.
//
// The Config type holds the cache directory, extra JAR search directories,
// log level and the download settings for the pinned release.
package config
