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

// play_test.go tests directive playback.
//
// Area of Concern: issuing a rendered document to an output sink
// - Play() - ordering, abort on first failure, pause handling
// - LineAcknowledger - newline, cancellation and resumed reads
// - Proceed - immediate acknowledgment for previews

package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	apperrors "github.com/mchmarny/recipe-printer/pkg/errors"
	"github.com/mchmarny/recipe-printer/pkg/recipe"
	"github.com/mchmarny/recipe-printer/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Sink that records calls and optionally fails on one of them.
type recorder struct {
	calls  []string
	failOn string
}

func (r *recorder) record(call string) error {
	r.calls = append(r.calls, call)
	if call == r.failOn {
		return errors.New("broken pipe")
	}
	return nil
}

func (r *recorder) Emphasize(on bool) error  { return r.record(fmt.Sprintf("emphasize %t", on)) }
func (r *recorder) Underline(on bool) error  { return r.record(fmt.Sprintf("underline %t", on)) }
func (r *recorder) DoubleSize(on bool) error { return r.record(fmt.Sprintf("double %t", on)) }
func (r *recorder) Justify(j render.Justification) error {
	return r.record("justify " + j.String())
}
func (r *recorder) WriteLine(text string) error { return r.record("line " + text) }
func (r *recorder) Feed() error                 { return r.record("feed") }
func (r *recorder) QRCode(payload string) error { return r.record("qr " + payload) }
func (r *recorder) PartialCut() error           { return r.record("partial") }
func (r *recorder) FullCut() error              { return r.record("full") }
func (r *recorder) Print() error                { return r.record("print") }

type countingAck struct {
	waits int
}

func (a *countingAck) Wait(context.Context) error {
	a.waits++
	return nil
}

func testDocument() render.Document {
	return render.Document{
		RecipeID: 1,
		Directives: []render.Directive{
			{Kind: render.DirectiveEmphasize, On: true},
			{Kind: render.DirectiveWriteLine, Text: "Tea"},
			{Kind: render.DirectiveEmphasize},
			{Kind: render.DirectiveFeed},
		},
	}
}

func TestPlay_Order(t *testing.T) {
	sink := &recorder{}
	require.NoError(t, Play(context.Background(), sink, testDocument(), nil))

	want := []string{"emphasize true", "line Tea", "emphasize false", "feed", "print"}
	if diff := cmp.Diff(want, sink.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestPlay_AbortsOnFirstError(t *testing.T) {
	sink := &recorder{failOn: "line Tea"}
	err := Play(context.Background(), sink, testDocument(), nil)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeDevice, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "broken pipe")
	assert.Equal(t, []string{"emphasize true", "line Tea"}, sink.calls)
}

func TestPlay_FlushError(t *testing.T) {
	sink := &recorder{failOn: "print"}
	err := Play(context.Background(), sink, testDocument(), nil)
	require.Error(t, err)
	assert.Equal(t, 4, apperrors.ExitCode(err))
}

func TestPlay_Pause(t *testing.T) {
	doc := render.Document{Directives: []render.Directive{
		{Kind: render.DirectiveWriteLine, Text: "Tea"},
		{Kind: render.DirectivePause},
	}}

	sink := &recorder{}
	ack := &countingAck{}
	require.NoError(t, Play(context.Background(), sink, doc, ack))

	assert.Equal(t, 1, ack.waits)
	assert.Equal(t, []string{"line Tea", "print", "print"}, sink.calls)
}

func TestPlay_PauseWithoutAcknowledger(t *testing.T) {
	doc := render.Document{Directives: []render.Directive{{Kind: render.DirectivePause}}}
	err := Play(context.Background(), &recorder{}, doc, nil)
	assert.Error(t, err)
}

func TestPlay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := &recorder{}
	err := Play(ctx, sink, testDocument(), nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sink.calls)
}

func TestPlay_RenderedDocument(t *testing.T) {
	cfg := render.DefaultConfig()
	cfg.Cut = render.CutPartial
	doc := render.Render(&recipe.Recipe{ID: 3, Name: "Toast", Steps: []recipe.Step{{Instruction: "Butter it"}}}, cfg)

	sink := &recorder{}
	require.NoError(t, Play(context.Background(), sink, doc, nil))
	assert.Equal(t, []string{"partial", "print"}, sink.calls[len(sink.calls)-2:])
}

func TestLineAcknowledger(t *testing.T) {
	var prompt strings.Builder
	ack := NewLineAcknowledger(strings.NewReader("\n\n"), &prompt)

	require.NoError(t, ack.Wait(context.Background()))
	require.NoError(t, ack.Wait(context.Background()))
	assert.Equal(t, 2, strings.Count(prompt.String(), "press Enter"))
}

func TestLineAcknowledger_EOF(t *testing.T) {
	ack := NewLineAcknowledger(strings.NewReader(""), nil)
	assert.NoError(t, ack.Wait(context.Background()))
}

func TestLineAcknowledger_Cancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ack := NewLineAcknowledger(r, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, ack.Wait(ctx), context.DeadlineExceeded)
}

func TestLineAcknowledger_ResumesPendingRead(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ack := NewLineAcknowledger(r, nil)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, ack.Wait(cancelled), context.Canceled)

	go func() {
		_, _ = io.WriteString(w, "\n")
	}()

	ctx, stop := context.WithTimeout(context.Background(), 2*time.Second)
	defer stop()
	assert.NoError(t, ack.Wait(ctx), "the line must reach the read left behind by the cancelled wait")
}

func TestProceed(t *testing.T) {
	sink := &recorder{}
	doc := render.Document{Directives: []render.Directive{
		{Kind: render.DirectiveWriteLine, Text: "Tea"},
		{Kind: render.DirectivePause},
	}}

	require.NoError(t, Play(context.Background(), sink, doc, Proceed))
	assert.Equal(t, []string{"line Tea", "print", "print"}, sink.calls)
}
