// Package cli implements the command-line interface for recipe-printer.
//
// # Overview
//
// recipe-printer fetches recipes from a Tandoor instance and prints each one
// as a receipt on an ESC/POS thermal printer. Recipes are processed strictly
// one at a time: fetch, render, emit, then the next id. The first failure
// stops the batch.
//
// # Usage
//
//	recipe-printer [flags] ID...
//
// Print two recipes with per-step ingredients and a QR code:
//
//	recipe-printer --instance https://recipes.example.com --token $TOKEN --qr 12 31
//
// Preview a recipe at 32 columns without a printer:
//
//	recipe-printer --dry-run --columns 32 -i both 12
//
// Dump the fetched recipe and the rendered lines as YAML:
//
//	recipe-printer --dry-run --format yaml 12
//
// # Flags
//
//	--instance             Tandoor base URL (TANDOOR_URL)
//	--token                API token (TANDOOR_TOKEN)
//	--username, --password Credentials exchanged for a token (TANDOOR_USERNAME, TANDOOR_PASSWORD)
//	--dry-run              Preview on stdout instead of printing
//	--verbose, -v          -v narrates progress on stderr, -vv also echoes receipt lines
//	--log-level            debug, info, warn, error (LOG_LEVEL)
//	--printer-path, -p     Device file, - for stdout (RECIPE_PRINTER_PATH, default /dev/usb/lp0)
//	--ingredient-display   both, summary, step, none (default step)
//	--stats, -s            Print servings and times
//	--qr                   Print a QR code linking to the recipe
//	--cut-mode             none, pause, partial, full (default full)
//	--columns              Characters per line, 0 disables wrapping (default 42)
//	--format               Dry-run output: text, json, yaml, table (default text)
//	--config               Config file (RECIPE_PRINTER_CONFIG, default ~/.recipe-printer.yaml)
//	--metrics-file         Write Prometheus metrics on exit
//
// Exactly one of --token and --username must be given. A username without a
// password prompts for it on the terminal. Credential errors are reported
// before any network request is made.
//
// # Exit Codes
//
//	0  Success
//	1  Invalid configuration or arguments
//	2  Recipe service error (authentication, not found, unreachable)
//	3  Malformed recipe data
//	4  Printer device error
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/recipe-printer/pkg/cli.version=1.0.0'"
package cli
