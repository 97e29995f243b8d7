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

	"github.com/mchmarny/recipe-printer/pkg/recipe"
)

// Justification is the horizontal alignment of written lines.
type Justification int

// Justification constants.
const (
	JustifyLeft Justification = iota
	JustifyCenter
	JustifyRight
)

// String returns the justification name.
func (j Justification) String() string {
	switch j {
	case JustifyLeft:
		return "left"
	case JustifyCenter:
		return "center"
	case JustifyRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectiveKind identifies an output sink operation.
type DirectiveKind int

// DirectiveKind constants.
const (
	DirectiveEmphasize DirectiveKind = iota
	DirectiveUnderline
	DirectiveDoubleSize
	DirectiveJustify
	DirectiveWriteLine
	DirectiveFeed
	DirectiveQRCode
	DirectivePause
	DirectivePartialCut
	DirectiveFullCut
)

// String returns the directive name.
func (k DirectiveKind) String() string {
	switch k {
	case DirectiveEmphasize:
		return "emphasize"
	case DirectiveUnderline:
		return "underline"
	case DirectiveDoubleSize:
		return "double_size"
	case DirectiveJustify:
		return "justify"
	case DirectiveWriteLine:
		return "write_line"
	case DirectiveFeed:
		return "feed"
	case DirectiveQRCode:
		return "qr_code"
	case DirectivePause:
		return "pause"
	case DirectivePartialCut:
		return "partial_cut"
	case DirectiveFullCut:
		return "full_cut"
	default:
		return "unknown"
	}
}

// Directive is a single output sink operation. On applies to the toggles,
// Justify to DirectiveJustify and Text to DirectiveWriteLine and DirectiveQRCode.
type Directive struct {
	Kind    DirectiveKind
	On      bool
	Justify Justification
	Text    string
}

// Document is the ordered directive stream for one recipe.
type Document struct {
	RecipeID   int
	Name       string
	Directives []Directive

	// SubRecipes lists the sub-recipes referenced by the recipe's steps.
	SubRecipes []recipe.SubRecipeRef
}

// Notes returns the informational notes gathered while resolving steps.
func (d Document) Notes() []string {
	notes := make([]string, 0, len(d.SubRecipes))
	for _, ref := range d.SubRecipes {
		notes = append(notes, fmt.Sprintf("step references recipe %d (%s)", ref.ID, ref.Name))
	}
	return notes
}

// Lines returns the text of every written line in order.
func (d Document) Lines() []string {
	var lines []string
	for _, dir := range d.Directives {
		if dir.Kind == DirectiveWriteLine {
			lines = append(lines, dir.Text)
		}
	}
	return lines
}

// QRPayload returns the URL encoded in a recipe's QR code.
func QRPayload(instance string, id int) string {
	return fmt.Sprintf("%s/recipe/%d", strings.TrimRight(instance, "/"), id)
}

// Render converts a recipe into its directive stream. Rendering is total:
// every recipe produces a document for every configuration.
func Render(r *recipe.Recipe, cfg Config) Document {
	b := &builder{doc: Document{RecipeID: r.ID, Name: r.Name}}

	b.justify(JustifyLeft)
	b.emphasize(true)
	b.doubleSize(true)
	// Double-size characters take two columns each.
	b.writeWrapped(r.Name, cfg.Columns/2)
	b.doubleSize(false)
	b.emphasize(false)
	b.feed()

	if cfg.Stats {
		if servings := r.ServingsSummary(); servings != "" {
			b.writeLine(servings)
		}
		for _, line := range r.DurationSummary() {
			b.writeLine(line)
		}
	}

	if cfg.Ingredients.ShowSummary() {
		b.heading("Ingredients")
		for _, ing := range r.AggregateIngredients() {
			b.writeWrapped(FormatIngredient(ing), cfg.Columns)
		}
		b.feed()
	}

	for n, step := range r.Steps {
		b.heading(step.Heading(n + 1))

		if step.Time > 0 {
			b.justify(JustifyRight)
			b.writeLine(fmt.Sprintf("(%d min)", step.Time))
			b.justify(JustifyLeft)
		}

		if cfg.Ingredients.ShowPerStep() {
			for _, ing := range step.Ingredients {
				if ing.Include() {
					b.writeWrapped(FormatIngredient(ing), cfg.Columns)
				}
			}
		}

		text, ref := step.ResolveInstruction()
		if ref != nil {
			b.doc.SubRecipes = append(b.doc.SubRecipes, *ref)
		}
		b.writeWrapped(StripMarkup(text), cfg.Columns)
		b.feed()
	}

	if cfg.QR {
		b.justify(JustifyCenter)
		b.add(Directive{Kind: DirectiveQRCode, Text: QRPayload(cfg.InstanceURL, r.ID)})
		b.justify(JustifyLeft)
	}

	b.feed()

	switch cfg.Cut {
	case CutPause:
		b.add(Directive{Kind: DirectivePause})
	case CutPartial:
		b.add(Directive{Kind: DirectivePartialCut})
	case CutFull:
		b.add(Directive{Kind: DirectiveFullCut})
	}

	renderedDocuments.Inc()
	renderedLines.Add(float64(len(b.doc.Lines())))
	return b.doc
}

type builder struct {
	doc Document
}

func (b *builder) add(d Directive) {
	b.doc.Directives = append(b.doc.Directives, d)
}

func (b *builder) emphasize(on bool) {
	b.add(Directive{Kind: DirectiveEmphasize, On: on})
}

func (b *builder) underline(on bool) {
	b.add(Directive{Kind: DirectiveUnderline, On: on})
}

func (b *builder) doubleSize(on bool) {
	b.add(Directive{Kind: DirectiveDoubleSize, On: on})
}

func (b *builder) justify(j Justification) {
	b.add(Directive{Kind: DirectiveJustify, Justify: j})
}

func (b *builder) feed() {
	b.add(Directive{Kind: DirectiveFeed})
}

func (b *builder) writeLine(text string) {
	b.add(Directive{Kind: DirectiveWriteLine, Text: text})
}

func (b *builder) writeWrapped(text string, width int) {
	for _, line := range Wrap(text, width) {
		b.writeLine(line)
	}
}

func (b *builder) heading(text string) {
	b.emphasize(true)
	b.underline(true)
	b.writeLine(Normalize(text))
	b.emphasize(false)
	b.underline(false)
}
