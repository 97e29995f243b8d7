// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Codes follow the error taxonomy of the printer pipeline: configuration
// errors are raised before any network activity, transport errors cover
// sign-in and recipe retrieval, malformed-data errors cover undecodable
// responses and device errors cover the output sink. ExitCode maps a chain
// to the process exit status.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to fetch recipe",
//	    cause,
//	    map[string]any{
//	        "recipe": id,
//	    },
//	)
package errors
