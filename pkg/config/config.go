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

package config

import (
	"errors"
	"os"
	"strings"

	apperrors "github.com/mchmarny/recipe-printer/pkg/errors"
	"github.com/mchmarny/recipe-printer/pkg/render"
	"github.com/mchmarny/recipe-printer/pkg/serializer"
)

const (
	// EnvConfigPath names the environment variable holding the config file path.
	EnvConfigPath = "RECIPE_PRINTER_CONFIG"

	// DefaultPath is read when no config file is named. It may be absent.
	DefaultPath = "~/.recipe-printer.yaml"
)

// File is the optional config file. Every field is optional; zero values
// and nil pointers leave the corresponding flag default in place.
type File struct {
	Instance          string `json:"instance" yaml:"instance" toml:"instance"`
	Token             string `json:"token" yaml:"token" toml:"token"`
	Username          string `json:"username" yaml:"username" toml:"username"`
	PrinterPath       string `json:"printer_path" yaml:"printer_path" toml:"printer_path"`
	IngredientDisplay string `json:"ingredient_display" yaml:"ingredient_display" toml:"ingredient_display"`
	CutMode           string `json:"cut_mode" yaml:"cut_mode" toml:"cut_mode"`
	Columns           *int   `json:"columns" yaml:"columns" toml:"columns"`
	Stats             *bool  `json:"stats" yaml:"stats" toml:"stats"`
	QR                *bool  `json:"qr" yaml:"qr" toml:"qr"`
	LogLevel          string `json:"log_level" yaml:"log_level" toml:"log_level"`
}

// Load reads the config file at path. An empty path reads DefaultPath,
// which is allowed to be missing; a named file that does not exist is an
// error. The format is chosen from the file extension.
func Load(path string) (*File, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath
	}

	resolved, err := serializer.ExpandHome(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, "failed to resolve config path", err)
	}

	if _, err := os.Stat(resolved); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return &File{}, nil
		}
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidConfig, "config file not readable", err,
			map[string]any{"path": resolved})
	}

	f, err := serializer.FromFile[File](resolved)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidConfig, "failed to parse config file", err,
			map[string]any{"path": resolved})
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks enumerated values and ranges.
func (f *File) Validate() error {
	if f.IngredientDisplay != "" {
		if _, err := render.ParseIngredientDisplay(f.IngredientDisplay); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, "invalid config file", err)
		}
	}
	if f.CutMode != "" {
		if _, err := render.ParseCutMode(f.CutMode); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, "invalid config file", err)
		}
	}
	if f.Columns != nil && *f.Columns < 0 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig, "columns must not be negative",
			map[string]any{"columns": *f.Columns})
	}
	return nil
}
