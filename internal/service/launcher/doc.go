// Package launcher finds a jlens-mcp-server JAR and runs it under a Java VM.
//
// The JAR is resolved through a fixed fallback chain (explicit path, local
// install directories, the per-user cache, a release download), the Java
// runtime is probed before use, and the server is started with the
// launcher's own standard streams so its stdio protocol passes through
// untouched. The child's exit code becomes the launcher's exit code.
package launcher
