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

package recipe

import (
	"math"

	"k8s.io/utils/ptr"
)

// Epsilon is the tolerance used when comparing an amount against one.
const Epsilon = 1e-6

// AmountPresent reports whether amount counts as a specified quantity.
func AmountPresent(amount float64) bool {
	return amount > 0
}

// PluralSelect returns plural when amount is present, differs from one by
// more than Epsilon in either direction and plural is non-empty.
// Otherwise it returns name.
func PluralSelect(name string, plural *string, amount float64) string {
	p := ptr.Deref(plural, "")
	if p == "" || !AmountPresent(amount) {
		return name
	}
	if math.Abs(amount-1) > Epsilon {
		return p
	}
	return name
}

// Include reports whether the ingredient takes part in rendering.
// Ingredients without a food are placeholders or section headers.
func (i Ingredient) Include() bool {
	return i.Food != nil
}

// Quantity returns the printable amount, 0 when the amount is unspecified
// or suppressed by NoAmount.
func (i Ingredient) Quantity() float64 {
	if i.NoAmount || !AmountPresent(i.Amount) {
		return 0
	}
	return i.Amount
}

// NoteText returns the note or an empty string.
func (i Ingredient) NoteText() string {
	return ptr.Deref(i.Note, "")
}

// Label returns the unit name for amount.
func (u *Unit) Label(amount float64) string {
	if u == nil {
		return ""
	}
	return PluralSelect(u.Name, u.PluralName, amount)
}

// Label returns the food name for amount.
func (f *Food) Label(amount float64) string {
	if f == nil {
		return ""
	}
	return PluralSelect(f.Name, f.PluralName, amount)
}
