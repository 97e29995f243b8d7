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
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mchmarny/recipe-printer/pkg/render"
)

// Console is a plain-text preview sink. Styling directives are ignored;
// justification is honored against the configured width.
type Console struct {
	w      *bufio.Writer
	width  int
	align  render.Justification
	double bool
}

// NewConsole returns a preview sink writing to w. A width of 0 disables
// alignment.
func NewConsole(w io.Writer, width int) *Console {
	return &Console{w: bufio.NewWriter(w), width: width}
}

func (c *Console) Emphasize(bool) error { return nil }

func (c *Console) Underline(bool) error { return nil }

func (c *Console) DoubleSize(on bool) error {
	c.double = on
	return nil
}

func (c *Console) Justify(j render.Justification) error {
	c.align = j
	return nil
}

func (c *Console) WriteLine(text string) error {
	_, err := c.w.WriteString(c.place(text) + "\n")
	return err
}

func (c *Console) Feed() error {
	return c.w.WriteByte('\n')
}

func (c *Console) QRCode(payload string) error {
	return c.WriteLine("[QR " + payload + "]")
}

func (c *Console) PartialCut() error {
	return c.WriteLine(c.rule("- "))
}

func (c *Console) FullCut() error {
	return c.WriteLine(c.rule("="))
}

func (c *Console) Print() error {
	return c.w.Flush()
}

// columns is the line width in characters at the current size.
func (c *Console) columns() int {
	if c.double {
		return c.width / 2
	}
	return c.width
}

func (c *Console) place(text string) string {
	width := c.columns()
	if width <= 0 || len(text) >= width {
		return text
	}
	switch c.align {
	case render.JustifyCenter:
		return strings.TrimRight(lipgloss.PlaceHorizontal(width, lipgloss.Center, text), " ")
	case render.JustifyRight:
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, text)
	default:
		return text
	}
}

func (c *Console) rule(pattern string) string {
	width := c.width
	if width <= 0 {
		width = 8
	}
	return strings.Repeat(pattern, width)[:width]
}
