// Package logging provides structured logging utilities for whispver.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so that every command logs the same way. It supports environment-based log
// level configuration, module/version context injection, and source location
// tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("whispver", "v1.0.0")
//	    slog.Info("descriptor loaded", "path", "version.properties")
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("whispver", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no
// explicit level is given:
//
//	LOG_LEVEL=debug whispver increment-patch
//
// # Output Format
//
// All logs are written to stderr in JSON format so that stdout stays reserved
// for the values build drivers consume, such as the build version string:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "descriptor saved",
//	    "module": "whispver",
//	    "version": "v1.0.0",
//	    "path": "version.properties"
//	}
package logging
