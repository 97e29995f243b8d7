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
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReporter_Narration(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 2, WithBarWidth(10))

	r.Fetching(12)
	r.Printed(12, "Pancakes")
	r.Fetching(13)
	r.Failed(13, errors.New("not found"))
	r.Note("step references recipe 4 (Dough)")

	out := buf.String()
	for _, want := range []string{
		"Fetching",
		"recipe 12 (1/2)",
		"Pancakes",
		"(#12)",
		"recipe 13 (2/2)",
		"recipe 13: not found",
		"note: step references recipe 4 (Dough)",
		"50%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := r.Done(); got != 1 {
		t.Errorf("Done() = %d, want 1", got)
	}
}

func TestReporter_Echo(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 1)

	r.Echo([]string{"Saute Cafe", "Step 1"})
	r.Echo(nil)

	out := buf.String()
	if !strings.Contains(out, "  | Saute Cafe") {
		t.Errorf("output missing %q:\n%s", "  | Saute Cafe", out)
	}
	if !strings.Contains(out, "  | Step 1") {
		t.Errorf("output missing %q:\n%s", "  | Step 1", out)
	}
	if got := strings.Count(out, "  | "); got != 2 {
		t.Errorf("echoed %d lines, want 2", got)
	}
}

func TestReporter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 1, WithQuiet(true))

	r.Fetching(1)
	r.Printed(1, "Tea")
	r.Echo([]string{"Tea"})

	if buf.Len() != 0 {
		t.Errorf("quiet reporter wrote %q", buf.String())
	}
	if got := r.Done(); got != 1 {
		t.Errorf("Done() = %d, want 1", got)
	}
}
