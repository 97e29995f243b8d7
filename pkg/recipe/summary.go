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
	"cmp"
	"fmt"
	"slices"
	"strings"

	"k8s.io/utils/ptr"
)

const defaultServingsLabel = "servings"

// AggregateIngredients flattens the ingredients of every step into one list
// sorted by food id. Ingredients are filtered with Include before sorting,
// and ties keep step order.
func (r *Recipe) AggregateIngredients() []Ingredient {
	var all []Ingredient
	for _, s := range r.Steps {
		for _, i := range s.Ingredients {
			if i.Include() {
				all = append(all, i)
			}
		}
	}

	slices.SortStableFunc(all, func(a, b Ingredient) int {
		return cmp.Compare(a.Food.ID, b.Food.ID)
	})
	return all
}

// ServingsSummary returns "<N> <label>", or an empty string when the
// recipe has no servings.
func (r *Recipe) ServingsSummary() string {
	if r.Servings == nil {
		return ""
	}
	label := strings.TrimSpace(ptr.Deref(r.ServingsText, ""))
	if label == "" {
		label = defaultServingsLabel
	}
	return fmt.Sprintf("%d %s", *r.Servings, label)
}

// DurationSummary returns the working and waiting time lines that apply.
func (r *Recipe) DurationSummary() []string {
	var lines []string
	if t := ptr.Deref(r.WorkingTime, 0); t > 0 {
		lines = append(lines, fmt.Sprintf("%d min working time", t))
	}
	if t := ptr.Deref(r.WaitingTime, 0); t > 0 {
		lines = append(lines, fmt.Sprintf("%d min waiting time", t))
	}
	return lines
}

// Heading returns "Step <n>" or "Step <n>: <name>".
func (s Step) Heading(n int) string {
	heading := fmt.Sprintf("Step %d", n)
	if name := strings.TrimSpace(ptr.Deref(s.Name, "")); name != "" {
		heading += ": " + name
	}
	return heading
}

// SubRecipe returns the nested recipe reference, or nil.
func (s Step) SubRecipe() *SubRecipeRef {
	if s.StepRecipeData == nil {
		return nil
	}
	return &SubRecipeRef{ID: s.StepRecipeData.ID, Name: s.StepRecipeData.Name}
}

// ResolveInstruction returns the instruction text, prefixed with a
// "Create recipe" sentence when the step invokes a sub-recipe. The returned
// reference is non-nil in that case so callers can report it.
func (s Step) ResolveInstruction() (string, *SubRecipeRef) {
	ref := s.SubRecipe()
	if ref == nil {
		return s.Instruction, nil
	}
	return fmt.Sprintf("Create recipe \"%s\". %s", ref.Name, s.Instruction), ref
}
