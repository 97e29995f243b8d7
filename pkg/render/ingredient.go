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
	"math"
	"strconv"
	"strings"

	"github.com/mchmarny/recipe-printer/pkg/recipe"
)

// fractions maps the hundredths of an amount to the printed fraction.
var fractions = map[int]string{
	13: "1/8",
	25: "1/4",
	33: "1/3",
	50: "1/2",
	67: "2/3",
	75: "3/4",
}

// FormatIngredient renders an ingredient as a "- " prefixed line:
// amount, unit, food and an optional parenthesized note.
func FormatIngredient(i recipe.Ingredient) string {
	var b strings.Builder
	b.WriteString("- ")

	amount := i.Quantity()
	if recipe.AmountPresent(amount) {
		b.WriteString(FormatAmount(amount))
		if label := i.Unit.Label(amount); label != "" {
			b.WriteString(label)
			b.WriteByte(' ')
		}
	}

	b.WriteString(i.Food.Label(amount))

	if note := strings.TrimSpace(i.NoteText()); note != "" {
		b.WriteString(" (")
		b.WriteString(note)
		b.WriteByte(')')
	}
	return b.String()
}

// FormatAmount returns the amount followed by a space. Amounts whose
// hundredths match a common fraction print as "<whole> <fraction> ", with
// the whole part omitted below one; anything else prints as a plain decimal.
func FormatAmount(amount float64) string {
	cents := int(math.Round(amount*100)) % 100
	frac, ok := fractions[cents]
	if !ok {
		return strconv.FormatFloat(amount, 'f', -1, 64) + " "
	}
	if amount >= 1 {
		return strconv.Itoa(int(math.Floor(amount))) + " " + frac + " "
	}
	return frac + " "
}
