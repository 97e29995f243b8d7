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
	"github.com/mchmarny/recipe-printer/pkg/render"
)

// Sink receives formatting directives in order. Implementations buffer
// output until Print is called.
type Sink interface {
	Emphasize(on bool) error
	Underline(on bool) error
	DoubleSize(on bool) error
	Justify(j render.Justification) error
	WriteLine(text string) error
	Feed() error
	QRCode(payload string) error
	PartialCut() error
	FullCut() error
	Print() error
}
