// Package logging provides structured logging utilities for recipe-printer.
//
// # Overview
//
// This package wraps the standard library slog package with project-specific defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
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
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("recipe-printer", "v1.0.0")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("recipe retrieved", "id", 42)
//	    slog.Debug("rendered line", "text", line)
//	    slog.Error("print failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("recipe-printer", "v2.0.0", "debug")
//	logger.Info("printer opened", "path", "/dev/usb/lp0")
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("recipe-printer", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug recipe-printer --dry-run 12
//	LOG_LEVEL=error recipe-printer 12 14
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "recipe printed",
//	    "module": "recipe-printer",
//	    "version": "v1.0.0",
//	    "id": 12
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "cli.printRecipe",
//	        "file": "print.go",
//	        "line": 45
//	    },
//	    "msg": "fetching recipe",
//	    "module": "recipe-printer",
//	    "version": "v1.0.0"
//	}
//
// # Integration
//
// This package is used by:
//   - pkg/cli - command logging and verbosity mapping
//   - pkg/tandoor - request logging
//   - pkg/printer - device logging
//
// Console narration (progress bars) is handled separately by pkg/status so
// structured logs and human-readable status never share a stream format.
package logging
