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
	"strconv"

	"github.com/penny-vault/indicharts/data"
	"github.com/penny-vault/indicharts/dataframe"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
)

const (
	// DefaultBarTitle is formatted with the indicator
	DefaultBarTitle = "Grouped Bar Plot for %[1]s (from 1995 to 2015)"

	// BarWidth is the width of a single bar in data units; country groups
	// are one unit apart
	BarWidth = 0.2
)

type BarOption func(*barConfig)

type barConfig struct {
	title   string
	palette Palette
}

// WithBarTitle overrides the title format. The format receives the indicator.
func WithBarTitle(format string) BarOption {
	return func(cfg *barConfig) {
		cfg.title = format
	}
}

// WithBarPalette replaces the colors used for each year
func WithBarPalette(p Palette) BarOption {
	return func(cfg *barConfig) {
		cfg.palette = p
	}
}

// BarSeries totals the value of each country per selected year. The index
// holds years in the order given; columns are countries. Several matching
// records for one year are summed and a year without records is 0.
func BarSeries(records []data.Record, indicator string, years []int, countries []string) (*dataframe.DataFrame[int], error) {
	totals := make(map[int][]float64, len(years))
	for _, year := range years {
		totals[year] = make([]float64, len(countries))
	}

	selected := func(year int) bool {
		_, ok := totals[year]
		return ok
	}

	err := eachMatch(records, indicator, selected, func(year int, rec data.Record) error {
		vals, err := countryValues(rec, countries)
		if err != nil {
			return err
		}
		floats.Add(totals[year], vals)
		return nil
	})
	if err != nil {
		return nil, err
	}

	df := dataframe.New[int](countries...)
	for _, year := range years {
		df.InsertRow(year, totals[year]...)
	}
	return df, nil
}

// BarOffset is the horizontal offset from the group center of the bar for
// year position idx out of n years
func BarOffset(idx, n int) float64 {
	return (float64(idx) - float64(n-1)/2) * BarWidth
}

// BarPlot draws grouped bars onto surf: one group per country and one bar per
// year within each group. Each year gets a palette color; asking for more
// years than there are colors is an error.
func BarPlot(records []data.Record, indicator string, years []int, countries []string, surf *Surface, opts ...BarOption) (*Surface, error) {
	cfg := &barConfig{
		title:   DefaultBarTitle,
		palette: LightPalette,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(years) > len(cfg.palette) {
		return nil, fmt.Errorf("%w: %d years, %d colors", ErrPaletteExhausted, len(years), len(cfg.palette))
	}

	df, err := BarSeries(records, indicator, years, countries)
	if err != nil {
		return nil, err
	}

	if surf == nil {
		surf = NewSurface()
	}

	p := surf.Plot
	surf.AddLegendEntry("Year")
	for rowIdx, year := range df.Index {
		clr := cfg.palette.At(rowIdx)
		offset := BarOffset(rowIdx, df.Len())

		for colIdx := range df.ColNames {
			x := float64(colIdx) + offset
			height := df.Vals[colIdx][rowIdx]
			bar, err := plotter.NewPolygon(plotter.XYs{
				{X: x - BarWidth/2, Y: 0},
				{X: x - BarWidth/2, Y: height},
				{X: x + BarWidth/2, Y: height},
				{X: x + BarWidth/2, Y: 0},
			})
			if err != nil {
				return nil, fmt.Errorf("bar for %s in %d: %w", df.ColNames[colIdx], year, err)
			}
			bar.Color = clr
			bar.LineStyle.Width = 0
			p.Add(bar)
		}

		surf.AddLegendEntry(strconv.Itoa(year), swatch{color: clr})
	}

	p.Title.Text = title(cfg.title, indicator)
	p.X.Label.Text = "Country"
	p.Y.Label.Text = "Value"
	if len(countries) > 0 {
		p.NominalX(countries...)
	}
	surf.SetLegend(LegendInside)

	log.Debug().Str("Indicator", indicator).Ints("Years", years).Int("NumGroups", len(countries)).Msg("bar plot")
	return surf, nil
}
