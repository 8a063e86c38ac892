// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger writing to standard error,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (Info, InfoKV, DebugKV, ErrorKV).
//
// Standard output belongs to the launched server, so nothing in this package
// ever writes there.
package logger
