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

package dashboard

import (
	"strings"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const lineSpacing = 1.25

// wrap breaks txt into lines no wider than width. Newlines in txt always
// start a new line.
func wrap(sty text.Style, txt string, width vg.Length) []string {
	var lines []string
	for _, para := range strings.Split(txt, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if sty.Width(candidate) > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

func lineHeight(sty text.Style) vg.Length {
	return sty.Font.Size * lineSpacing
}

func linesHeight(sty text.Style, lines []string) vg.Length {
	return lineHeight(sty) * vg.Length(len(lines))
}

// drawLines draws lines centered horizontally in c starting at top and
// returns the y coordinate below the last line
func drawLines(c draw.Canvas, sty text.Style, top vg.Length, lines []string) vg.Length {
	sty.XAlign = text.XCenter
	sty.YAlign = text.YTop

	x := c.Center().X
	for _, line := range lines {
		c.FillText(sty, vg.Point{X: x, Y: top}, line)
		top -= lineHeight(sty)
	}
	return top
}
