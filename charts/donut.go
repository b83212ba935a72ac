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
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/penny-vault/indicharts/data"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// DefaultDonutTitle is formatted with the indicator and the year
	DefaultDonutTitle = "Enhanced Donut Chart for %[1]s in %[2]d"

	// DefaultHoleSize is the radius of the hole as a fraction of the ring radius
	DefaultHoleSize = 0.4

	// explodeOffset is how far an exploded wedge moves out, as a fraction of
	// the ring radius
	explodeOffset = 0.1

	// donutExtent is the half width of the donut's data range; the ring has
	// radius 1 and the rest is room for labels
	donutExtent = 1.3
)

// Slice is one wedge of a donut chart
type Slice struct {
	Label string
	Value float64
}

// DonutSlices builds one slice for every non-empty country column of the
// records matching indicator and year. Every country present in the file
// contributes, not a caller-selected subset. When several records match, a
// later value replaces an earlier one for the same country; slices keep the
// order in which countries were first seen.
func DonutSlices(records []data.Record, indicator string, year int) ([]Slice, error) {
	slices := make([]Slice, 0)
	pos := make(map[string]int)

	sameYear := func(y int) bool { return y == year }
	err := eachMatch(records, indicator, sameYear, func(_ int, rec data.Record) error {
		for _, col := range rec.Columns() {
			if col == data.YearCol || col == data.IndicatorCol {
				continue
			}
			if raw, _ := rec.Get(col); raw == "" {
				continue
			}

			val, err := rec.Float(col)
			if err != nil {
				return err
			}

			if idx, ok := pos[col]; ok {
				slices[idx].Value = val
				continue
			}
			pos[col] = len(slices)
			slices = append(slices, Slice{Label: col, Value: val})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slices, nil
}

// Percentages returns the share of each slice in percent. All shares are 0
// when the slices sum to 0.
func Percentages(slices []Slice) []float64 {
	vals := sliceValues(slices)
	total := floats.Sum(vals)
	if total == 0 {
		return make([]float64, len(vals))
	}
	floats.Scale(100/total, vals)
	return vals
}

// SlicesTable renders slices and their shares as an ASCII table
func SlicesTable(slices []Slice) string {
	if len(slices) == 0 {
		return "<NO DATA>"
	}

	s := &strings.Builder{}
	table := tablewriter.NewWriter(s)
	table.SetHeader([]string{"Country", "Value", "Share"})
	table.SetBorder(false)

	pct := Percentages(slices)
	for idx, slice := range slices {
		table.Append([]string{
			slice.Label,
			fmt.Sprintf("%.4f", slice.Value),
			fmt.Sprintf("%.1f%%", pct[idx]),
		})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%.4f", floats.Sum(sliceValues(slices))), ""})
	table.Render()
	return s.String()
}

func sliceValues(slices []Slice) []float64 {
	vals := make([]float64, len(slices))
	for idx, slice := range slices {
		vals[idx] = slice.Value
	}
	return vals
}

type DonutOption func(*donutConfig)

type donutConfig struct {
	title   string
	hole    float64
	explode map[string]bool
	palette Palette
}

// WithHoleSize sets the radius of the hole as a fraction of the ring radius
func WithHoleSize(fraction float64) DonutOption {
	return func(cfg *donutConfig) {
		cfg.hole = fraction
	}
}

// WithExplode pulls the wedges of the named countries away from the center
func WithExplode(countries ...string) DonutOption {
	return func(cfg *donutConfig) {
		for _, country := range countries {
			cfg.explode[country] = true
		}
	}
}

// WithDonutTitle overrides the title format. The format receives the
// indicator and the year.
func WithDonutTitle(format string) DonutOption {
	return func(cfg *donutConfig) {
		cfg.title = format
	}
}

// DonutPlot draws a donut chart of every country's value for indicator in
// year onto surf.
func DonutPlot(records []data.Record, indicator string, year int, surf *Surface, opts ...DonutOption) (*Surface, error) {
	cfg := &donutConfig{
		title:   DefaultDonutTitle,
		hole:    DefaultHoleSize,
		explode: make(map[string]bool),
		palette: LightPalette,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	slices, err := DonutSlices(records, indicator, year)
	if err != nil {
		return nil, err
	}

	for _, slice := range slices {
		if slice.Value < 0 {
			return nil, fmt.Errorf("%w: %s=%g", ErrNegativeWedge, slice.Label, slice.Value)
		}
	}

	if surf == nil {
		surf = NewSurface()
	}

	p := surf.Plot
	p.Add(&donut{
		slices:     slices,
		palette:    cfg.palette,
		hole:       cfg.hole,
		explode:    cfg.explode,
		labelStyle: TextStyle(vg.Points(10), true),
	})
	p.HideAxes()
	p.Title.Text = title(cfg.title, indicator, year)

	log.Debug().Str("Indicator", indicator).Int("Year", year).Int("NumSlices", len(slices)).Msg("donut plot")
	return surf, nil
}

// donut is a plot.Plotter that draws a ring of wedges. The ring is always
// circular regardless of the aspect ratio of the canvas.
type donut struct {
	slices     []Slice
	palette    Palette
	hole       float64
	explode    map[string]bool
	labelStyle text.Style
}

// DataRange implements plot.DataRanger
func (d *donut) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -donutExtent, donutExtent, -donutExtent, donutExtent
}

type wedge struct {
	center vg.Point
	start  float64
	sweep  float64
	slice  Slice
	color  color.Color
}

func (w wedge) mid() float64 {
	return w.start + w.sweep/2
}

// Plot implements plot.Plotter
func (d *donut) Plot(c draw.Canvas, plt *plot.Plot) {
	size := c.Size()
	radius := min(size.X, size.Y) / 2 / donutExtent
	center := c.Center()

	wedges := d.layout(center, radius)

	shadow := color.NRGBA{A: 64}
	for _, w := range wedges {
		offset := vg.Point{X: radius * 0.02, Y: -radius * 0.02}
		c.SetColor(shadow)
		c.Fill(wedgePath(w.center.Add(offset), radius, w.start, w.sweep))
	}

	for _, w := range wedges {
		c.SetColor(w.color)
		c.Fill(wedgePath(w.center, radius, w.start, w.sweep))
	}

	// hole
	if d.hole > 0 {
		holePath := circlePath(center, radius*vg.Length(d.hole))
		c.SetColor(color.White)
		c.Fill(holePath)
		c.SetLineStyle(draw.LineStyle{Color: color.Black, Width: vg.Points(0.8)})
		c.Stroke(holePath)
	}

	pct := Percentages(d.slices)
	for idx, w := range wedges {
		mid := w.mid()
		pctStyle := d.labelStyle
		c.FillText(pctStyle, polar(w.center, radius*0.6, mid), fmt.Sprintf("%.1f%%", pct[idx]))

		nameStyle := d.labelStyle
		if math.Cos(mid) >= 0 {
			nameStyle.XAlign = text.XLeft
		} else {
			nameStyle.XAlign = text.XRight
		}
		c.FillText(nameStyle, polar(w.center, radius*1.1, mid), w.slice.Label)
	}
}

// layout assigns each slice its angles, starting at 12 o'clock and running
// counter-clockwise
func (d *donut) layout(center vg.Point, radius vg.Length) []wedge {
	total := floats.Sum(sliceValues(d.slices))
	if total == 0 {
		return nil
	}

	wedges := make([]wedge, len(d.slices))
	start := math.Pi / 2
	for idx, slice := range d.slices {
		sweep := 2 * math.Pi * slice.Value / total
		w := wedge{
			center: center,
			start:  start,
			sweep:  sweep,
			slice:  slice,
			color:  d.palette.At(idx),
		}
		if d.explode[slice.Label] {
			w.center = polar(center, radius*explodeOffset, w.mid())
		}
		wedges[idx] = w
		start += sweep
	}
	return wedges
}

func polar(center vg.Point, r vg.Length, theta float64) vg.Point {
	return vg.Point{
		X: center.X + r*vg.Length(math.Cos(theta)),
		Y: center.Y + r*vg.Length(math.Sin(theta)),
	}
}

func wedgePath(center vg.Point, r vg.Length, start, sweep float64) vg.Path {
	var path vg.Path
	path.Move(center)
	path.Arc(center, r, start, sweep)
	path.Close()
	return path
}

func circlePath(center vg.Point, r vg.Length) vg.Path {
	var path vg.Path
	path.Move(polar(center, r, 0))
	path.Arc(center, r, 0, 2*math.Pi)
	path.Close()
	return path
}
