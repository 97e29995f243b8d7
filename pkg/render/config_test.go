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
	"testing"
)

func TestParseIngredientDisplay(t *testing.T) {
	tests := []struct {
		in      string
		want    IngredientDisplay
		wantErr bool
	}{
		{"", IngredientsStep, false},
		{"step", IngredientsStep, false},
		{"BOTH", IngredientsBoth, false},
		{" summary ", IngredientsSummary, false},
		{"none", IngredientsNone, false},
		{"all", IngredientsStep, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseIngredientDisplay(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIngredientDisplay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseIngredientDisplay(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIngredientDisplayPlacement(t *testing.T) {
	tests := []struct {
		display     IngredientDisplay
		wantSummary bool
		wantPerStep bool
	}{
		{IngredientsBoth, true, true},
		{IngredientsSummary, true, false},
		{IngredientsStep, false, true},
		{IngredientsNone, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.display), func(t *testing.T) {
			if got := tt.display.ShowSummary(); got != tt.wantSummary {
				t.Errorf("ShowSummary() = %v, want %v", got, tt.wantSummary)
			}
			if got := tt.display.ShowPerStep(); got != tt.wantPerStep {
				t.Errorf("ShowPerStep() = %v, want %v", got, tt.wantPerStep)
			}
		})
	}
}

func TestParseCutMode(t *testing.T) {
	for _, s := range GetCutModes() {
		got, err := ParseCutMode(s)
		if err != nil {
			t.Errorf("ParseCutMode(%q) unexpected error: %v", s, err)
		}
		if got != CutMode(s) {
			t.Errorf("ParseCutMode(%q) = %q", s, got)
		}
	}

	got, err := ParseCutMode("")
	if err != nil {
		t.Fatalf("ParseCutMode(\"\") unexpected error: %v", err)
	}
	if got != CutFull {
		t.Errorf("ParseCutMode(\"\") = %q, want %q", got, CutFull)
	}

	if _, err := ParseCutMode("guillotine"); err == nil {
		t.Error("ParseCutMode(guillotine) expected error")
	}
}

func TestGetIngredientDisplays(t *testing.T) {
	for _, s := range GetIngredientDisplays() {
		if _, err := ParseIngredientDisplay(s); err != nil {
			t.Errorf("ParseIngredientDisplay(%q) unexpected error: %v", s, err)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Columns != 42 {
		t.Errorf("Columns = %d, want 42", cfg.Columns)
	}
	if cfg.Ingredients != IngredientsStep {
		t.Errorf("Ingredients = %q, want %q", cfg.Ingredients, IngredientsStep)
	}
	if cfg.Cut != CutFull {
		t.Errorf("Cut = %q, want %q", cfg.Cut, CutFull)
	}
	if cfg.Stats || cfg.QR {
		t.Errorf("Stats = %v, QR = %v, want both off", cfg.Stats, cfg.QR)
	}
}
