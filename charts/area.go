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

	"github.com/penny-vault/indicharts/data"
	"github.com/penny-vault/indicharts/dataframe"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot/plotter"
)

// DefaultAreaTitle is formatted with the indicator, start year and end year
const DefaultAreaTitle = "Stacked Area Plot for %[1]s (%[2]d to %[3]d)"

type AreaOption func(*areaConfig)

type areaConfig struct {
	title string
}

// WithAreaTitle overrides the title format. The format receives the
// indicator, the first year and the last year.
func WithAreaTitle(format string) AreaOption {
	return func(cfg *areaConfig) {
		cfg.title = format
	}
}

// AreaSeries collects each country's value per year for records matching
// indicator within yr. Every year appears once, in ascending order; several
// records for the same year are summed.
func AreaSeries(records []data.Record, indicator string, yr YearRange, countries []string) (*dataframe.DataFrame[int], error) {
	df, err := LineSeries(records, indicator, yr, countries)
	if err != nil {
		return nil, err
	}
	return df.GroupSum().SortIndex(), nil
}

// AreaPlot stacks one filled layer per country, in the order given, onto surf
func AreaPlot(records []data.Record, indicator string, yr YearRange, countries []string, surf *Surface, opts ...AreaOption) (*Surface, error) {
	cfg := &areaConfig{title: DefaultAreaTitle}
	for _, opt := range opts {
		opt(cfg)
	}

	df, err := AreaSeries(records, indicator, yr, countries)
	if err != nil {
		return nil, err
	}

	if surf == nil {
		surf = NewSurface()
	}

	p := surf.Plot
	if df.Len() > 0 {
		stacked := df.CumSum()
		lower := make([]float64, df.Len())

		for colIdx, country := range stacked.ColNames {
			upper := stacked.Vals[colIdx]
			xys := make(plotter.XYs, 0, 2*df.Len())
			for rowIdx, year := range stacked.Index {
				xys = append(xys, plotter.XY{X: float64(year), Y: upper[rowIdx]})
			}
			for rowIdx := df.Len() - 1; rowIdx >= 0; rowIdx-- {
				xys = append(xys, plotter.XY{X: float64(stacked.Index[rowIdx]), Y: lower[rowIdx]})
			}

			layer, err := plotter.NewPolygon(xys)
			if err != nil {
				return nil, fmt.Errorf("area for %s: %w", country, err)
			}
			clr := SeriesPalette.At(colIdx)
			layer.Color = clr
			layer.LineStyle.Width = 0

			p.Add(layer)
			surf.AddLegendEntry(country, swatch{color: clr})
			lower = upper
		}
	}

	p.Title.Text = title(cfg.title, indicator, yr.Start, yr.End)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Percentage of Total"
	p.X.Tick.Marker = yearTicks{}
	surf.SetLegend(LegendRightTop)

	log.Debug().Str("Indicator", indicator).Ints("Years", df.Index).Int("NumLayers", df.ColCount()).Msg("area plot")
	return surf, nil
}
