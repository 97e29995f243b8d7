// Package config loads the optional recipe-printer config file.
//
// The file supplies defaults for command line flags so that the instance
// URL, credentials and printer settings do not have to be repeated on every
// invocation. Flags set on the command line or through their environment
// variables always take precedence.
//
// YAML (.yaml, .yml), TOML (.toml) and JSON (.json) files are accepted:
//
//	instance: https://recipes.example.com
//	token: 0123456789abcdef
//	printer_path: /dev/usb/lp1
//	ingredient_display: both
//	cut_mode: partial
//	columns: 32
//	stats: true
//	qr: true
//
// Without --config, ~/.recipe-printer.yaml is read when it exists.
package config
