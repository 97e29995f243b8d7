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

// text_test.go tests receipt text handling.
//
// Area of Concern: every line reaching the printer
// - Normalize() - transliteration to printable ASCII
// - Wrap() - whitespace-only breaking, round-trip, width 0
// - StripMarkup() - HTML removal from instructions

package render

import (
	"slices"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"accents", "Sauté Café", "Saute Cafe"},
		{"dessert", "crème brûlée", "creme brulee"},
		{"sharp s", "Straße", "Strasse"},
		{"slashed o", "Ørsted", "Orsted"},
		{"typographic quotes", "“quoted” — dash", `"quoted" - dash`},
		{"vulgar fraction", "½ cup", "1/2 cup"},
		{"tab", "tab\there", "tab here"},
		{"newline kept", "line\nbreak", "line\nbreak"},
		{"unmapped dropped", "rice 日本", "rice "},
		{"ascii untouched", "Mix well!", "Mix well!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_OnlyPrintableASCII(t *testing.T) {
	out := Normalize("Ünïcödé – ñandú • 5°C × 2 ™")
	for _, r := range out {
		if r != '\n' && (r < 0x20 || r >= 0x7f) {
			t.Errorf("Normalize() produced unexpected rune %q in %q", r, out)
		}
	}
}

func TestWrap_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
	}{
		{"plain 10", "Whisk the eggs with the sugar until pale and fluffy then fold in the flour", 10},
		{"plain 20", "Whisk the eggs with the sugar until pale and fluffy then fold in the flour", 20},
		{"plain 42", "Whisk the eggs with the sugar until pale and fluffy then fold in the flour", 42},
		{"hyphenated word", "aaaa well-known thing", 12},
		{"repeated hyphens", "stir the half-and-half in", 14},
		{"hyphen at width", "add a ready-made crust", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Wrap(tt.text, tt.width)
			if len(lines) == 0 {
				t.Fatal("Wrap() returned no lines")
			}
			if got := strings.Join(lines, " "); got != tt.text {
				t.Errorf("joined lines = %q, want %q", got, tt.text)
			}
			for _, line := range lines {
				if len(line) > tt.width {
					t.Errorf("line %q exceeds width %d", line, tt.width)
				}
				if strings.TrimSpace(line) != line {
					t.Errorf("line %q has surrounding blanks", line)
				}
			}
		})
	}
}

func TestWrap_LeadingBlanks(t *testing.T) {
	got := Wrap("  leading spaces here", 8)
	want := []string{"leading", "spaces", "here"}
	if !slices.Equal(got, want) {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}

func TestWrap_LongWordKeptWhole(t *testing.T) {
	lines := Wrap("add supercalifragilistic", 5)
	if !slices.Contains(lines, "supercalifragilistic") {
		t.Errorf("Wrap() = %q, want long word kept whole", lines)
	}
}

func TestWrap_KeepsParagraphs(t *testing.T) {
	got := Wrap("mix well\n\nbake", 20)
	want := []string{"mix well", "", "bake"}
	if !slices.Equal(got, want) {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}

func TestWrap_ZeroWidth(t *testing.T) {
	text := "a long line that would otherwise be wrapped at a narrow width"
	if got := Wrap(text, 0); !slices.Equal(got, []string{text}) {
		t.Errorf("Wrap(width 0) = %q, want single line", got)
	}
	if got := Wrap("first\nsecond", 0); !slices.Equal(got, []string{"first", "second"}) {
		t.Errorf("Wrap(width 0) = %q, want one entry per source line", got)
	}
}

func TestWrap_Normalizes(t *testing.T) {
	if got := Wrap("Sauté Café", 10); !slices.Equal(got, []string{"Saute Cafe"}) {
		t.Errorf("Wrap() = %q, want [Saute Cafe]", got)
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Mix well", "Mix well"},
		{"tags", "<p>Mix <b>well</b></p>", "Mix well"},
		{"entities", "Salt &amp; pepper", "Salt & pepper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkup(tt.in); got != tt.want {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
