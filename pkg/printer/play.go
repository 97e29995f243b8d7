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

package printer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	apperrors "github.com/mchmarny/recipe-printer/pkg/errors"
	"github.com/mchmarny/recipe-printer/pkg/render"
)

// Acknowledger blocks until the operator confirms the paper was handled.
type Acknowledger interface {
	Wait(ctx context.Context) error
}

// AcknowledgerFunc adapts a function to the Acknowledger interface.
type AcknowledgerFunc func(ctx context.Context) error

// Wait calls f(ctx).
func (f AcknowledgerFunc) Wait(ctx context.Context) error {
	return f(ctx)
}

// Proceed acknowledges every pause immediately. Previews use it since there
// is no paper to tear off.
var Proceed Acknowledger = AcknowledgerFunc(func(context.Context) error { return nil })

// Play issues the document's directives to sink in order and prints the
// result. The first sink error stops playback; directives already sent are
// not rolled back. A pause flushes pending output, then waits on ack without
// a timeout.
func Play(ctx context.Context, sink Sink, doc render.Document, ack Acknowledger) error {
	for i, d := range doc.Directives {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := apply(ctx, sink, d, ack); err != nil {
			directiveErrors.WithLabelValues(d.Kind.String()).Inc()
			return apperrors.WrapWithContext(apperrors.ErrCodeDevice, "failed to print recipe", err,
				map[string]any{"recipe": doc.RecipeID, "directive": d.Kind.String(), "index": i})
		}
	}

	if err := sink.Print(); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeDevice, "failed to flush printer", err,
			map[string]any{"recipe": doc.RecipeID})
	}
	printedDocuments.Inc()
	return nil
}

func apply(ctx context.Context, sink Sink, d render.Directive, ack Acknowledger) error {
	switch d.Kind {
	case render.DirectiveEmphasize:
		return sink.Emphasize(d.On)
	case render.DirectiveUnderline:
		return sink.Underline(d.On)
	case render.DirectiveDoubleSize:
		return sink.DoubleSize(d.On)
	case render.DirectiveJustify:
		return sink.Justify(d.Justify)
	case render.DirectiveWriteLine:
		return sink.WriteLine(d.Text)
	case render.DirectiveFeed:
		return sink.Feed()
	case render.DirectiveQRCode:
		return sink.QRCode(d.Text)
	case render.DirectivePartialCut:
		return sink.PartialCut()
	case render.DirectiveFullCut:
		return sink.FullCut()
	case render.DirectivePause:
		if err := sink.Print(); err != nil {
			return err
		}
		if ack == nil {
			return errors.New("pause requested without an acknowledger")
		}
		slog.Debug("waiting for paper to be torn off")
		return ack.Wait(ctx)
	default:
		return fmt.Errorf("unsupported directive: %s", d.Kind)
	}
}

// LineAcknowledger waits for a newline on a reader, typically stdin.
// At most one read is in flight: a read left behind by a cancelled Wait is
// picked up by the next call.
type LineAcknowledger struct {
	r      *bufio.Reader
	prompt io.Writer

	mu      sync.Mutex
	pending chan error
}

// NewLineAcknowledger returns an acknowledger reading from r. When prompt is
// non-nil a short instruction is written to it before each wait.
func NewLineAcknowledger(r io.Reader, prompt io.Writer) *LineAcknowledger {
	return &LineAcknowledger{r: bufio.NewReader(r), prompt: prompt}
}

// Wait blocks until a full line is read or ctx is done. End of input counts
// as acknowledgment.
func (a *LineAcknowledger) Wait(ctx context.Context) error {
	if a.prompt != nil {
		if _, err := fmt.Fprintln(a.prompt, "Tear off the receipt and press Enter to continue..."); err != nil {
			return err
		}
	}

	read := a.read()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-read:
		a.mu.Lock()
		a.pending = nil
		a.mu.Unlock()
		return err
	}
}

// read returns the channel of the in-flight line read, starting one if none
// is pending.
func (a *LineAcknowledger) read() chan error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pending == nil {
		done := make(chan error, 1)
		go func() {
			_, err := a.r.ReadString('\n')
			if errors.Is(err, io.EOF) {
				err = nil
			}
			done <- err
		}()
		a.pending = done
	}
	return a.pending
}
