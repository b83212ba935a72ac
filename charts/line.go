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
	"gonum.org/v1/plot/vg"
)

// DefaultLineTitle is formatted with the indicator, start year and end year
const DefaultLineTitle = "Line Plot for %[1]s"

type LineOption func(*lineConfig)

type lineConfig struct {
	title string
}

// WithLineTitle overrides the title format. The format receives the
// indicator, the first year and the last year, in that order; use explicit
// argument indexes (%[2]d) to skip any of them.
func WithLineTitle(format string) LineOption {
	return func(cfg *lineConfig) {
		cfg.title = format
	}
}

// LineSeries collects the value of each country for every record matching
// indicator within yr. Years appear in file order, one row per matching
// record, and are shared by every country.
func LineSeries(records []data.Record, indicator string, yr YearRange, countries []string) (*dataframe.DataFrame[int], error) {
	df := dataframe.New[int](countries...)
	err := eachMatch(records, indicator, yr.Contains, func(year int, rec data.Record) error {
		vals, err := countryValues(rec, countries)
		if err != nil {
			return err
		}
		df.InsertRow(year, vals...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return df, nil
}

// LinePlot draws one line per country onto surf. A new surface is created
// when surf is nil.
func LinePlot(records []data.Record, indicator string, yr YearRange, countries []string, surf *Surface, opts ...LineOption) (*Surface, error) {
	cfg := &lineConfig{title: DefaultLineTitle}
	for _, opt := range opts {
		opt(cfg)
	}

	df, err := LineSeries(records, indicator, yr, countries)
	if err != nil {
		return nil, err
	}

	if surf == nil {
		surf = NewSurface()
	}

	p := surf.Plot
	if df.Len() > 0 {
		for colIdx, country := range df.ColNames {
			xys := make(plotter.XYs, df.Len())
			for rowIdx, year := range df.Index {
				xys[rowIdx].X = float64(year)
				xys[rowIdx].Y = df.Vals[colIdx][rowIdx]
			}

			line, err := plotter.NewLine(xys)
			if err != nil {
				return nil, fmt.Errorf("line for %s: %w", country, err)
			}
			line.Color = SeriesPalette.At(colIdx)
			line.Width = vg.Points(1.5)

			p.Add(line)
			surf.AddLegendEntry(country, line)
		}
	}

	p.Title.Text = title(cfg.title, indicator, yr.Start, yr.End)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Value"
	p.X.Tick.Marker = yearTicks{}
	surf.SetLegend(LegendRightCenter)

	log.Debug().Str("Indicator", indicator).Int("NumYears", df.Len()).Int("NumSeries", df.ColCount()).Msg("line plot")
	return surf, nil
}
