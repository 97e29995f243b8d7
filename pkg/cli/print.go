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

package cli

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	apperrors "github.com/mchmarny/recipe-printer/pkg/errors"
	"github.com/mchmarny/recipe-printer/pkg/printer"
	"github.com/mchmarny/recipe-printer/pkg/recipe"
	"github.com/mchmarny/recipe-printer/pkg/render"
	"github.com/mchmarny/recipe-printer/pkg/serializer"
	"github.com/mchmarny/recipe-printer/pkg/status"
	"github.com/mchmarny/recipe-printer/pkg/tandoor"
)

// stdoutPath selects the console preview sink instead of a device.
const stdoutPath = "-"

// Preview is the structured dry-run output for one recipe.
type Preview struct {
	Recipe *recipe.Recipe `json:"recipe" yaml:"recipe"`
	Lines  []string       `json:"lines" yaml:"lines"`
	Notes  []string       `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// run fetches, renders and emits each recipe in order. The first failure
// stops the batch.
func (a *app) run(ctx context.Context, o *options) (err error) {
	if o.metricsFile != "" {
		defer func() {
			if werr := prometheus.WriteToTextfile(o.metricsFile, prometheus.DefaultGatherer); werr != nil {
				slog.Warn("failed to write metrics file", "path", o.metricsFile, "error", werr)
			}
		}()
	}

	client, err := tandoor.NewClient(o.instance, tandoor.WithToken(o.token))
	if err != nil {
		return err
	}

	if o.username != "" {
		if _, err := client.SignIn(ctx, o.username, o.password); err != nil {
			return err
		}
	}

	emit, closeSink, err := a.emitter(o)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeSink(); cerr != nil && err == nil {
			err = apperrors.Wrap(apperrors.ErrCodeDevice, "failed to close printer", cerr)
		}
	}()

	reporter := status.New(a.stderr, len(o.ids), status.WithQuiet(o.verbosity == 0))

	for _, id := range o.ids {
		reporter.Fetching(id)

		r, err := client.GetRecipe(ctx, id)
		if err != nil {
			reporter.Failed(id, err)
			return err
		}
		slog.Info("recipe retrieved",
			"id", r.ID,
			"name", r.Name,
			"steps", len(r.Steps))

		doc := render.Render(r, o.render)
		for _, note := range doc.Notes() {
			slog.Info("sub-recipe", "recipe", id, "note", note)
			reporter.Note(note)
		}
		if o.verbosity >= 2 {
			reporter.Echo(doc.Lines())
		}

		if err := emit(ctx, r, doc); err != nil {
			reporter.Failed(id, err)
			return err
		}
		reporter.Printed(id, r.Name)
	}

	return nil
}

type emitFunc func(ctx context.Context, r *recipe.Recipe, doc render.Document) error

// emitter selects the output for the invocation: a structured dump, a
// console preview or the printer device. Previews never wait at a pause.
func (a *app) emitter(o *options) (emitFunc, func() error, error) {
	noop := func() error { return nil }

	if o.dryRun && o.format != formatText {
		w := serializer.NewWriter(serializer.Format(o.format), a.stdout)
		if o.output != "" && o.output != stdoutPath {
			w = serializer.NewFileWriterOrStdout(serializer.Format(o.format), o.output)
		}
		emit := func(ctx context.Context, r *recipe.Recipe, doc render.Document) error {
			return w.Serialize(ctx, Preview{Recipe: r, Lines: doc.Lines(), Notes: doc.Notes()})
		}
		return emit, w.Close, nil
	}

	if o.dryRun || o.printerPath == stdoutPath {
		sink := printer.NewConsole(a.stdout, o.render.Columns)
		emit := func(ctx context.Context, _ *recipe.Recipe, doc render.Document) error {
			return printer.Play(ctx, sink, doc, printer.Proceed)
		}
		return emit, noop, nil
	}

	device, err := printer.OpenDevice(o.printerPath)
	if err != nil {
		return nil, nil, err
	}
	ack := printer.NewLineAcknowledger(a.stdin, a.stderr)
	emit := func(ctx context.Context, _ *recipe.Recipe, doc render.Document) error {
		return printer.Play(ctx, device, doc, ack)
	}
	return emit, device.Close, nil
}
