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

package render

import (
	"fmt"
	"strings"

	"github.com/mchmarny/recipe-printer/pkg/defaults"
)

// IngredientDisplay selects where ingredient lines are printed.
type IngredientDisplay string

// IngredientDisplay constants.
const (
	IngredientsBoth    IngredientDisplay = "both"
	IngredientsSummary IngredientDisplay = "summary"
	IngredientsStep    IngredientDisplay = "step"
	IngredientsNone    IngredientDisplay = "none"
)

// ParseIngredientDisplay parses a string into an IngredientDisplay.
// An empty string selects IngredientsStep.
func ParseIngredientDisplay(s string) (IngredientDisplay, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "step":
		return IngredientsStep, nil
	case "both":
		return IngredientsBoth, nil
	case "summary":
		return IngredientsSummary, nil
	case "none":
		return IngredientsNone, nil
	default:
		return IngredientsStep, fmt.Errorf("invalid ingredient display: %s", s)
	}
}

// GetIngredientDisplays returns all supported ingredient displays sorted alphabetically.
func GetIngredientDisplays() []string {
	return []string{"both", "none", "step", "summary"}
}

// ShowSummary reports whether the aggregated ingredient block is printed.
func (d IngredientDisplay) ShowSummary() bool {
	return d == IngredientsBoth || d == IngredientsSummary
}

// ShowPerStep reports whether each step lists its own ingredients.
func (d IngredientDisplay) ShowPerStep() bool {
	return d == IngredientsBoth || d == IngredientsStep
}

// CutMode selects what happens after a recipe is printed.
type CutMode string

// CutMode constants.
const (
	CutNone    CutMode = "none"
	CutPause   CutMode = "pause"
	CutPartial CutMode = "partial"
	CutFull    CutMode = "full"
)

// ParseCutMode parses a string into a CutMode. An empty string selects CutFull.
func ParseCutMode(s string) (CutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return CutFull, nil
	case "none":
		return CutNone, nil
	case "pause":
		return CutPause, nil
	case "partial":
		return CutPartial, nil
	default:
		return CutFull, fmt.Errorf("invalid cut mode: %s", s)
	}
}

// GetCutModes returns all supported cut modes sorted alphabetically.
func GetCutModes() []string {
	return []string{"full", "none", "partial", "pause"}
}

// Config controls document assembly.
type Config struct {
	// Columns is the paper width in characters. 0 disables wrapping.
	Columns int

	Ingredients IngredientDisplay
	Stats       bool
	QR          bool
	Cut         CutMode

	// InstanceURL is the recipe service base URL used for QR payloads.
	InstanceURL string
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Columns:     defaults.Columns,
		Ingredients: IngredientsStep,
		Cut:         CutFull,
	}
}
