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

// Recipe is a recipe as returned by the recipe service.
// Optional fields are pointers; nil means the source did not provide a value.
type Recipe struct {
	ID           int     `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Description  *string `json:"description,omitempty" yaml:"description,omitempty"`
	WorkingTime  *int    `json:"working_time,omitempty" yaml:"workingTime,omitempty"`
	WaitingTime  *int    `json:"waiting_time,omitempty" yaml:"waitingTime,omitempty"`
	Servings     *int    `json:"servings,omitempty" yaml:"servings,omitempty"`
	ServingsText *string `json:"servings_text,omitempty" yaml:"servingsText,omitempty"`

	// Steps are kept in source order; the order is significant.
	Steps []Step `json:"steps" yaml:"steps"`
}

// Step is one instruction block of a recipe.
type Step struct {
	Name        *string      `json:"name,omitempty" yaml:"name,omitempty"`
	Instruction string       `json:"instruction" yaml:"instruction"`
	Time        int          `json:"time,omitempty" yaml:"time,omitempty"` // minutes, 0 when unspecified
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`

	// StepRecipe is the id of a nested recipe this step invokes.
	StepRecipe *int `json:"step_recipe,omitempty" yaml:"stepRecipe,omitempty"`

	// StepRecipeData is the nested recipe itself. Sub-recipes are resolved
	// by the source and never reference back, so the model is a tree.
	StepRecipeData *Recipe `json:"step_recipe_data,omitempty" yaml:"stepRecipeData,omitempty"`
}

// Ingredient is an amount, unit, food and note attached to a step.
type Ingredient struct {
	ID     int     `json:"id,omitempty" yaml:"id,omitempty"`
	Amount float64 `json:"amount" yaml:"amount"` // 0 when unspecified
	Unit   *Unit   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Food   *Food   `json:"food,omitempty" yaml:"food,omitempty"`
	Note   *string `json:"note,omitempty" yaml:"note,omitempty"`

	// NoAmount marks ingredients whose amount must not be printed ("salt to taste").
	NoAmount bool `json:"no_amount,omitempty" yaml:"noAmount,omitempty"`

	// IsHeader marks section header rows. They carry no food.
	IsHeader bool `json:"is_header,omitempty" yaml:"isHeader,omitempty"`
}

// Unit is a measurement unit with an optional plural name.
type Unit struct {
	ID         int     `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	PluralName *string `json:"plural_name,omitempty" yaml:"pluralName,omitempty"`
}

// Food is an ingredient's food with an optional plural name.
type Food struct {
	ID         int     `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	PluralName *string `json:"plural_name,omitempty" yaml:"pluralName,omitempty"`
}

// SubRecipeRef identifies a nested recipe referenced by a step.
type SubRecipeRef struct {
	ID   int
	Name string
}
