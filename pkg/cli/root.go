// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/recipe-printer/pkg/config"
	"github.com/mchmarny/recipe-printer/pkg/defaults"
	apperrors "github.com/mchmarny/recipe-printer/pkg/errors"
	"github.com/mchmarny/recipe-printer/pkg/logging"
	"github.com/mchmarny/recipe-printer/pkg/render"
	"github.com/mchmarny/recipe-printer/pkg/serializer"
	"github.com/mchmarny/recipe-printer/pkg/tandoor"
)

const (
	name           = "recipe-printer"
	versionDefault = "dev"

	// formatText previews the receipt as plain text.
	formatText = "text"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func init() {
	// -v counts verbosity, so the version flag has no short alias.
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

// app holds the process streams so commands can be exercised in tests.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// promptPassword asks the operator for the password of username.
	promptPassword func(ctx context.Context, username string) (string, error)
}

func newApp() *app {
	return &app{
		stdin:          os.Stdin,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
		promptPassword: surveyPassword,
	}
}

// Execute runs the command line and exits with the code for the returned error.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := newRootCmd(newApp()).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(apperrors.ExitCode(err))
	}
}

func newRootCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Print Tandoor recipes on an ESC/POS thermal receipt printer",
		ArgsUsage:             "ID...",
		Description: `Fetches each recipe by id from a Tandoor instance and prints it as a receipt:
title, optional stats, ingredients, numbered steps and an optional QR code
linking back to the recipe. Recipes are processed one at a time in the order
given.

Authenticate with an API token (--token) or with a username and password
(--username); a missing password is prompted for.

Use --dry-run to preview the receipt on stdout, or with --format json|yaml|table
to dump the fetched recipe instead, to stdout or the file named by --output.`,
		Writer:                 a.stdout,
		ErrWriter:              a.stderr,
		UseShortOptionHandling: true,
		Flags:                  rootFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			initLogger(cmd)
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			opts, err := parseOptions(cmd, file)
			if err != nil {
				return err
			}

			if err := resolveAuth(ctx, opts, a.promptPassword); err != nil {
				return err
			}

			return a.run(ctx, opts)
		},
	}
}

func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "instance",
			Usage:   "Base URL of the Tandoor instance (e.g. https://recipes.example.com)",
			Sources: cli.EnvVars("TANDOOR_URL"),
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "Tandoor API token",
			Sources: cli.EnvVars("TANDOOR_TOKEN"),
		},
		&cli.StringFlag{
			Name:    "username",
			Usage:   "Tandoor username, exchanged for a token at startup",
			Sources: cli.EnvVars("TANDOOR_USERNAME"),
		},
		&cli.StringFlag{
			Name:    "password",
			Usage:   "Tandoor password, prompted for when --username is set without it",
			Sources: cli.EnvVars("TANDOOR_PASSWORD"),
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Preview on stdout instead of printing",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Increase verbosity (-v: progress, -vv: also echo receipt lines)",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (debug, info, warn, error); derived from -v when unset",
			Sources: cli.EnvVars(logging.EnvLogLevel),
		},
		&cli.StringFlag{
			Name:    "printer-path",
			Aliases: []string{"p"},
			Value:   defaults.PrinterPath,
			Usage:   "Printer device file, or - for stdout",
			Sources: cli.EnvVars("RECIPE_PRINTER_PATH"),
		},
		&cli.StringFlag{
			Name:    "ingredient-display",
			Aliases: []string{"i"},
			Value:   string(render.IngredientsStep),
			Usage: fmt.Sprintf("Where to list ingredients (supported values: %s)",
				render.GetIngredientDisplays()),
		},
		&cli.BoolFlag{
			Name:    "stats",
			Aliases: []string{"s"},
			Usage:   "Print servings and working/waiting time",
		},
		&cli.BoolFlag{
			Name:  "qr",
			Usage: "Print a QR code linking to the recipe",
		},
		&cli.StringFlag{
			Name:  "cut-mode",
			Value: string(render.CutFull),
			Usage: fmt.Sprintf("What to do after each recipe (supported values: %s)",
				render.GetCutModes()),
		},
		&cli.IntFlag{
			Name:  "columns",
			Value: defaults.Columns,
			Usage: "Characters per line; 0 disables wrapping",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: formatText,
			Usage: fmt.Sprintf("Dry-run output format (supported values: %s, %s)",
				formatText, serializer.SupportedFormats()),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Dry-run dump destination for --format json|yaml|table (\"-\" for stdout)",
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   fmt.Sprintf("Config file, YAML or TOML (default %s when present)", config.DefaultPath),
			Sources: cli.EnvVars(config.EnvConfigPath),
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "Write Prometheus metrics to this file on exit",
		},
	}
}

// initLogger configures slog after flags are parsed so --log-level and -v
// take effect before the command runs.
func initLogger(cmd *cli.Command) {
	level := cmd.String("log-level")
	if level == "" {
		level = levelForVerbosity(cmd.Count("verbose"))
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level,
		"userAgent", tandoor.DefaultUserAgent)
}

func levelForVerbosity(v int) string {
	switch {
	case v >= 2:
		return "debug"
	case v == 1:
		return "info"
	default:
		return "warn"
	}
}
