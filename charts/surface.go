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
	"image"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DPI is the resolution used when rasterizing a surface
const DPI = 100

// LegendPlacement controls where a surface draws its legend
type LegendPlacement int

const (
	// LegendInside draws the legend in the upper right corner of the data area
	LegendInside LegendPlacement = iota
	// LegendRightCenter draws the legend in a strip to the right of the plot,
	// vertically centered
	LegendRightCenter
	// LegendRightTop draws the legend in a strip to the right of the plot,
	// aligned with its top edge
	LegendRightTop
)

// legendGap separates the plot from a legend drawn beside it
var legendGap = vg.Points(6)

// Surface is a drawing target for a single chart. It owns a gonum plot and
// the legend that goes with it. A Surface is passed explicitly to every
// builder; nothing is drawn to shared state.
type Surface struct {
	Plot *plot.Plot

	placement LegendPlacement
	side      plot.Legend
	entries   int
}

// NewSurface creates an empty surface with no legend entries
func NewSurface() *Surface {
	s := &Surface{
		Plot: plot.New(),
		side: plot.NewLegend(),
	}
	s.side.Left = true
	s.side.XOffs = legendGap
	s.Plot.Legend.Top = true
	return s
}

// SetLegend selects where the legend is drawn
func (s *Surface) SetLegend(placement LegendPlacement) {
	s.placement = placement
}

// Legend returns the placement of the legend
func (s *Surface) Legend() LegendPlacement {
	return s.placement
}

// AddLegendEntry appends an entry to the legend. An entry with no thumbnails
// is drawn as a heading.
func (s *Surface) AddLegendEntry(name string, thumbs ...plot.Thumbnailer) {
	s.Plot.Legend.Add(name, thumbs...)
	s.side.Add(name, thumbs...)
	s.entries++
}

// LegendLen returns the number of legend entries
func (s *Surface) LegendLen() int {
	return s.entries
}

// Draw renders the surface onto canvas c
func (s *Surface) Draw(c draw.Canvas) {
	if s.placement == LegendInside || s.entries == 0 {
		s.Plot.Draw(c)
		return
	}

	// the plot keeps its own copy of the entries for the inside placement;
	// hide it while drawing beside the data area
	inside := s.Plot.Legend
	s.Plot.Legend = plot.NewLegend()
	defer func() { s.Plot.Legend = inside }()

	box := s.side.Rectangle(c)
	width := box.Size().X + 2*legendGap
	if width > c.Size().X/2 {
		width = c.Size().X / 2
	}

	s.Plot.Draw(draw.Crop(c, 0, -width, 0, 0))

	strip := draw.Crop(c, c.Size().X-width, 0, 0, 0)
	legend := s.side
	switch s.placement {
	case LegendRightTop:
		legend.Top = true
		legend.YOffs = -s.Plot.Title.TextStyle.Height(s.Plot.Title.Text)
	default:
		legend.Top = false
		legend.YOffs = (strip.Size().Y - box.Size().Y) / 2
	}
	legend.Draw(strip)
}

// Image rasterizes the surface at the given size
func (s *Surface) Image(width, height vg.Length) image.Image {
	return Rasterize(s, width, height).Image()
}

// WritePNG rasterizes the surface and writes it to w as a PNG
func (s *Surface) WritePNG(w io.Writer, width, height vg.Length) error {
	return EncodePNG(w, s, width, height)
}

// Drawer is anything that can draw itself onto a canvas
type Drawer interface {
	Draw(c draw.Canvas)
}

// Rasterize draws d onto a white image canvas of the given size
func Rasterize(d Drawer, width, height vg.Length) *vgimg.Canvas {
	c := vgimg.NewWith(
		vgimg.UseWH(width, height),
		vgimg.UseDPI(DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	d.Draw(draw.New(c))
	return c
}

// EncodePNG rasterizes d and writes it to w as a PNG
func EncodePNG(w io.Writer, d Drawer, width, height vg.Length) error {
	_, err := vgimg.PngCanvas{Canvas: Rasterize(d, width, height)}.WriteTo(w)
	return err
}

// swatch is a solid legend thumbnail
type swatch struct {
	color color.Color
}

func (sw swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(sw.color, c.ClipPolygonY(pts))
}
