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
	"html"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold holds ASCII replacements for runes that survive decomposition.
var fold = map[rune]string{
	'ß': "ss",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "Th",
	'ı': "i",
	'‘': "'", '’': "'", '‚': ",", '′': "'",
	'“': `"`, '”': `"`, '„': `"`, '«': `"`, '»': `"`, '″': `"`,
	'‐': "-", '‑': "-", '–': "-", '—': "-", '−': "-",
	'⁄': "/",
	'°': "deg",
	'×': "x",
	'·': ".", '•': "*",
	'€': "EUR", '£': "GBP", '¥': "JPY",
}

var markupPolicy = bluemonday.StrictPolicy()

// Normalize transliterates s to printable ASCII. Accents are stripped via
// canonical decomposition, letters without a decomposition are folded to
// their closest ASCII spelling and anything else outside ASCII is dropped.
// Newlines are kept and tabs become spaces.
func Normalize(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, err := transform.String(t, s)
	if err != nil {
		decomposed = s
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case r == '\n':
			b.WriteRune(r)
		case r == '\t':
			b.WriteByte(' ')
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		default:
			if rep, ok := fold[r]; ok {
				b.WriteString(rep)
			}
		}
	}
	return b.String()
}

// Wrap normalizes s and word-wraps it to width columns, breaking only at
// whitespace. Words longer than width are kept whole on their own line and
// blank runs, including leading ones, collapse. A width of 0 or less
// disables wrapping and returns one entry per source line, leaving line
// breaking to the printer.
func Wrap(s string, width int) []string {
	text := Normalize(s)
	if width <= 0 {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
		return lines
	}

	var lines []string
	for _, src := range strings.Split(text, "\n") {
		words := strings.Fields(src)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			if ansi.StringWidth(line)+1+ansi.StringWidth(word) > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line += " " + word
		}
		lines = append(lines, line)
	}
	return lines
}

// StripMarkup removes HTML tags from s, keeping the text content.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	return html.UnescapeString(markupPolicy.Sanitize(s))
}
