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

package status

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 30

// Option configures a Reporter.
type Option func(*Reporter)

// WithQuiet suppresses all output.
func WithQuiet(quiet bool) Option {
	return func(r *Reporter) {
		r.quiet = quiet
	}
}

// WithBarWidth sets the width of the progress bar in cells.
func WithBarWidth(width int) Option {
	return func(r *Reporter) {
		if width > 0 {
			r.bar.Width = width
		}
	}
}

// Reporter narrates batch progress for a human operator. It writes to its
// own stream, normally stderr, and never to the printer.
type Reporter struct {
	mu    sync.Mutex
	w     io.Writer
	total int
	done  int
	quiet bool
	bar   progress.Model

	label   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// New returns a Reporter for a batch of total recipes writing to w.
func New(w io.Writer, total int, options ...Option) *Reporter {
	renderer := lipgloss.NewRenderer(w)

	r := &Reporter{
		w:     w,
		total: total,
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultBarWidth)),

		label:   renderer.NewStyle().Bold(true),
		success: renderer.NewStyle().Foreground(lipgloss.Color("#5FD75F")),
		failure: renderer.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true),
		muted:   renderer.NewStyle().Foreground(lipgloss.Color("#808080")),
	}

	for _, opt := range options {
		opt(r)
	}
	return r
}

// Fetching announces that the recipe with id is being retrieved.
func (r *Reporter) Fetching(id int) {
	r.printf("%s recipe %d (%d/%d)\n", r.label.Render("Fetching"), id, r.done+1, r.total)
}

// Printed records a successfully emitted recipe and redraws the bar.
func (r *Reporter) Printed(id int, name string) {
	r.mu.Lock()
	r.done++
	r.mu.Unlock()
	r.printf("%s %s %s\n", r.success.Render("Printed"), name, r.muted.Render(fmt.Sprintf("(#%d)", id)))
	r.progress()
}

// Failed records a recipe that could not be processed.
func (r *Reporter) Failed(id int, err error) {
	r.printf("%s recipe %d: %v\n", r.failure.Render("Failed"), id, err)
}

// Note prints an informational message.
func (r *Reporter) Note(msg string) {
	r.printf("%s\n", r.muted.Render("note: "+msg))
}

// Echo prints rendered receipt lines indented under the current recipe.
func (r *Reporter) Echo(lines []string) {
	if len(lines) == 0 {
		return
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(r.muted.Render("  | " + line))
		b.WriteByte('\n')
	}
	r.printf("%s", b.String())
}

// Done returns the number of recipes recorded as printed.
func (r *Reporter) Done() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

func (r *Reporter) progress() {
	if r.total <= 0 {
		return
	}
	r.mu.Lock()
	percent := float64(r.done) / float64(r.total)
	r.mu.Unlock()
	r.printf("%s\n", r.bar.ViewAs(percent))
}

func (r *Reporter) printf(format string, args ...any) {
	if r == nil || r.quiet || r.w == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, format, args...)
}
