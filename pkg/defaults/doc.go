// Package defaults provides centralized configuration constants for recipe-printer.
//
// This package defines timeout values, request pacing and printer defaults
// used across the codebase. Centralizing these values ensures consistency
// and makes tuning easier.
//
// # Categories
//
//   - HTTP client timeouts: For requests to the recipe service
//   - Pacing: Outbound request rate for the recipe service
//   - Printer: Default device path and paper width in characters
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/mchmarny/recipe-printer/pkg/defaults"
//
//	client := &http.Client{Timeout: defaults.HTTPClientTimeout}
package defaults
