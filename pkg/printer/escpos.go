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
	"fmt"
	"io"
	"log/slog"
	"os"

	apperrors "github.com/mchmarny/recipe-printer/pkg/errors"
	"github.com/mchmarny/recipe-printer/pkg/render"
)

const (
	esc = 0x1b
	gs  = 0x1d
)

const (
	// qrModuleSize is the dot size of a single QR module (1-16).
	qrModuleSize = 6

	// qrErrorCorrection selects level M.
	qrErrorCorrection = 0x31

	// qrMaxPayload is the symbol storage limit for model 2 codes.
	qrMaxPayload = 7089
)

// ESCPOS encodes directives as ESC/POS commands for thermal receipt printers.
type ESCPOS struct {
	w      *bufio.Writer
	closer io.Closer
}

// NewESCPOS returns a sink writing to w and initializes the printer.
func NewESCPOS(w io.Writer) (*ESCPOS, error) {
	p := &ESCPOS{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		p.closer = c
	}
	if err := p.write(esc, '@'); err != nil {
		return nil, err
	}
	return p, nil
}

// OpenDevice opens the printer device file at path for writing.
func OpenDevice(path string) (*ESCPOS, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeDevice, "failed to open printer device", err,
			map[string]any{"path": path})
	}
	slog.Debug("printer device opened", "path", path)

	p, err := NewESCPOS(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return p, nil
}

// Close flushes pending output and closes the underlying device.
func (p *ESCPOS) Close() error {
	flushErr := p.w.Flush()
	if p.closer == nil {
		return flushErr
	}
	if err := p.closer.Close(); err != nil {
		return err
	}
	return flushErr
}

func (p *ESCPOS) write(b ...byte) error {
	_, err := p.w.Write(b)
	return err
}

func flag(on bool) byte {
	if on {
		return 1
	}
	return 0
}

// Emphasize toggles bold printing (ESC E n).
func (p *ESCPOS) Emphasize(on bool) error {
	return p.write(esc, 'E', flag(on))
}

// Underline toggles single-dot underlining (ESC - n).
func (p *ESCPOS) Underline(on bool) error {
	return p.write(esc, '-', flag(on))
}

// DoubleSize toggles double width and height (GS ! n).
func (p *ESCPOS) DoubleSize(on bool) error {
	if on {
		return p.write(gs, '!', 0x11)
	}
	return p.write(gs, '!', 0x00)
}

// Justify sets the alignment of subsequent lines (ESC a n).
func (p *ESCPOS) Justify(j render.Justification) error {
	var n byte
	switch j {
	case render.JustifyLeft:
		n = 0
	case render.JustifyCenter:
		n = 1
	case render.JustifyRight:
		n = 2
	default:
		return fmt.Errorf("unsupported justification: %d", j)
	}
	return p.write(esc, 'a', n)
}

// WriteLine writes text followed by a line feed.
func (p *ESCPOS) WriteLine(text string) error {
	if _, err := p.w.WriteString(text); err != nil {
		return err
	}
	return p.write('\n')
}

// Feed prints and advances the paper one line (ESC d 1).
func (p *ESCPOS) Feed() error {
	return p.write(esc, 'd', 1)
}

// QRCode prints payload as a model 2 QR code using the GS ( k function set.
func (p *ESCPOS) QRCode(payload string) error {
	if len(payload) == 0 || len(payload) > qrMaxPayload {
		return fmt.Errorf("qr payload length %d out of range", len(payload))
	}

	// model 2
	if err := p.write(gs, '(', 'k', 4, 0, 0x31, 0x41, 0x32, 0x00); err != nil {
		return err
	}
	if err := p.write(gs, '(', 'k', 3, 0, 0x31, 0x43, qrModuleSize); err != nil {
		return err
	}
	if err := p.write(gs, '(', 'k', 3, 0, 0x31, 0x45, qrErrorCorrection); err != nil {
		return err
	}

	n := len(payload) + 3
	if err := p.write(gs, '(', 'k', byte(n&0xff), byte(n>>8), 0x31, 0x50, 0x30); err != nil {
		return err
	}
	if _, err := p.w.WriteString(payload); err != nil {
		return err
	}

	// print the stored symbol
	return p.write(gs, '(', 'k', 3, 0, 0x31, 0x51, 0x30)
}

// PartialCut cuts the paper leaving one point attached (GS V 1).
func (p *ESCPOS) PartialCut() error {
	return p.write(gs, 'V', 1)
}

// FullCut cuts the paper completely (GS V 0).
func (p *ESCPOS) FullCut() error {
	return p.write(gs, 'V', 0)
}

// Print flushes buffered commands to the device.
func (p *ESCPOS) Print() error {
	return p.w.Flush()
}
