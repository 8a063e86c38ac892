// Provides per-user paths for the launcher.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// on macOS and Windows. The name "jlens" is used as the subdirectory under
// each base path.
package paths
