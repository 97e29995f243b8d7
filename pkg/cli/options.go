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
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"k8s.io/utils/ptr"

	"github.com/mchmarny/recipe-printer/pkg/config"
	apperrors "github.com/mchmarny/recipe-printer/pkg/errors"
	"github.com/mchmarny/recipe-printer/pkg/render"
	"github.com/mchmarny/recipe-printer/pkg/serializer"
)

// options is the resolved invocation after merging flags and the config file.
type options struct {
	instance string
	token    string
	username string
	password string

	ids         []int
	dryRun      bool
	verbosity   int
	printerPath string
	format      string
	output      string
	metricsFile string

	render render.Config
}

// parseOptions merges command flags with the config file. A flag that was
// set explicitly, on the command line or through its environment variable,
// wins over the file; the file wins over flag defaults.
func parseOptions(cmd *cli.Command, file *config.File) (*options, error) {
	if file == nil {
		file = &config.File{}
	}

	o := &options{
		instance:    stringOpt(cmd, "instance", file.Instance),
		token:       stringOpt(cmd, "token", file.Token),
		username:    stringOpt(cmd, "username", file.Username),
		password:    cmd.String("password"),
		dryRun:      cmd.Bool("dry-run"),
		verbosity:   cmd.Count("verbose"),
		printerPath: stringOpt(cmd, "printer-path", file.PrinterPath),
		format:      strings.ToLower(strings.TrimSpace(cmd.String("format"))),
		output:      strings.TrimSpace(cmd.String("output")),
		metricsFile: cmd.String("metrics-file"),
	}

	if strings.TrimSpace(o.instance) == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "instance url is required (--instance or TANDOOR_URL)")
	}

	if o.format != formatText && serializer.Format(o.format).IsUnknown() {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig, "unknown output format",
			map[string]any{"format": o.format})
	}

	display, err := render.ParseIngredientDisplay(stringOpt(cmd, "ingredient-display", file.IngredientDisplay))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, "invalid --ingredient-display", err)
	}

	cut, err := render.ParseCutMode(stringOpt(cmd, "cut-mode", file.CutMode))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, "invalid --cut-mode", err)
	}

	columns := cmd.Int("columns")
	if !cmd.IsSet("columns") && file.Columns != nil {
		columns = *file.Columns
	}
	if columns < 0 {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig, "columns must not be negative",
			map[string]any{"columns": columns})
	}

	o.render = render.Config{
		Columns:     columns,
		Ingredients: display,
		Stats:       boolOpt(cmd, "stats", file.Stats),
		QR:          boolOpt(cmd, "qr", file.QR),
		Cut:         cut,
		InstanceURL: o.instance,
	}

	ids, err := parseIDs(cmd.Args().Slice())
	if err != nil {
		return nil, err
	}
	o.ids = ids

	return o, nil
}

func stringOpt(cmd *cli.Command, flag, fromFile string) string {
	if cmd.IsSet(flag) || strings.TrimSpace(fromFile) == "" {
		return cmd.String(flag)
	}
	return fromFile
}

func boolOpt(cmd *cli.Command, flag string, fromFile *bool) bool {
	if cmd.IsSet(flag) {
		return cmd.Bool(flag)
	}
	return ptr.Deref(fromFile, cmd.Bool(flag))
}

// parseIDs converts positional arguments into positive recipe ids.
func parseIDs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "at least one recipe id is required")
	}

	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || id <= 0 {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
				"recipe id must be a positive integer", map[string]any{"id": arg})
		}
		ids = append(ids, id)
	}
	return ids, nil
}
