// Copyright 2021-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package charts

import (
	"image/color"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Palette is an ordered list of series colors
type Palette []color.Color

var (
	// LightPalette is used for bars and donut wedges
	LightPalette = NewPalette("#7FFFD4", "#FF6347", "#20B2AA", "#BA55D3", "#00FA9A")

	// SeriesPalette is used for lines and stacked areas
	SeriesPalette = NewPalette(
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	)
)

// NewPalette parses hex color codes, with or without a leading '#'
func NewPalette(codes ...string) Palette {
	p := make(Palette, len(codes))
	for idx, code := range codes {
		p[idx] = drawing.ColorFromHex(strings.TrimPrefix(code, "#"))
	}
	return p
}

// At returns the color for series idx, wrapping around when idx exceeds the
// palette length
func (p Palette) At(idx int) color.Color {
	if len(p) == 0 {
		return color.Black
	}
	return p[idx%len(p)]
}
