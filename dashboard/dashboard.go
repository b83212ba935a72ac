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
	"context"
	"fmt"
	"image"
	"io"

	"github.com/penny-vault/indicharts/charts"
	"github.com/penny-vault/indicharts/data"
	"github.com/penny-vault/indicharts/observability/opentelemetry"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	margin  = vg.Points(36)
	gap     = vg.Points(12)
	cellPad = vg.Points(48)
)

// Panel is one cell of the dashboard grid
type Panel struct {
	Name    string
	Caption string
	Surface *charts.Surface
}

// Dashboard is a 2x2 grid of charts with captions, a title and a summary
type Dashboard struct {
	Config Config

	// Panels are laid out left to right, top to bottom
	Panels []Panel
}

type builder struct {
	name    string
	caption string
	build   func() (*charts.Surface, error)
}

// Compose builds the four charts of the dashboard from records. countries
// selects the line, bar and area series; the donut always uses every
// country in the file.
func Compose(ctx context.Context, records []data.Record, countries []string, cfg Config) (*Dashboard, error) {
	ctx, span := otel.Tracer(opentelemetry.Name).Start(ctx, "dashboard.Compose")
	defer span.End()

	builders := []builder{
		{
			name:    "line",
			caption: cfg.LineCaption,
			build: func() (*charts.Surface, error) {
				return charts.LinePlot(records, LineIndicator, LineYears, countries, nil, charts.WithLineTitle(lineTitle))
			},
		},
		{
			name:    "bar",
			caption: cfg.BarCaption,
			build: func() (*charts.Surface, error) {
				return charts.BarPlot(records, BarIndicator, BarYears, countries, nil)
			},
		},
		{
			name:    "donut",
			caption: cfg.DonutCaption,
			build: func() (*charts.Surface, error) {
				return charts.DonutPlot(records, DonutIndicator, DonutYear, nil)
			},
		},
		{
			name:    "area",
			caption: cfg.AreaCaption,
			build: func() (*charts.Surface, error) {
				return charts.AreaPlot(records, AreaIndicator, AreaYears, countries, nil)
			},
		},
	}

	d := &Dashboard{
		Config: cfg,
		Panels: make([]Panel, 0, len(builders)),
	}

	for _, b := range builders {
		surf, err := buildPanel(ctx, b)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to build panel")
			log.Error().Err(err).Str("Panel", b.name).Msg("could not build dashboard panel")
			return nil, fmt.Errorf("%s panel: %w", b.name, err)
		}

		d.Panels = append(d.Panels, Panel{
			Name:    b.name,
			Caption: b.caption,
			Surface: surf,
		})
	}

	return d, nil
}

func buildPanel(ctx context.Context, b builder) (*charts.Surface, error) {
	_, span := otel.Tracer(opentelemetry.Name).Start(ctx, "dashboard.buildPanel",
		trace.WithAttributes(attribute.String("panel", b.name)))
	defer span.End()

	return b.build()
}

// Draw lays the dashboard out on c: title and header along the top, the
// chart grid with a caption under each chart, and the summary at the bottom
func (d *Dashboard) Draw(c draw.Canvas) {
	titleStyle := charts.TextStyle(vg.Points(20), true)
	headerStyle := charts.TextStyle(vg.Points(15), true)
	captionStyle := charts.TextStyle(vg.Points(12), false)
	summaryStyle := charts.TextStyle(vg.Points(14), false)

	inner := draw.Crop(c, margin, -margin, margin, -margin)
	width := inner.Size().X

	top := inner.Max.Y
	top = drawLines(inner, titleStyle, top, wrap(titleStyle, d.Config.Title, width))
	if d.Config.Header != "" {
		top = drawLines(inner, headerStyle, top-gap, wrap(headerStyle, d.Config.Header, width))
	}

	summary := wrap(summaryStyle, d.Config.Summary, width)
	bottom := inner.Min.Y + linesHeight(summaryStyle, summary)
	drawLines(inner, summaryStyle, bottom, summary)

	grid := draw.Crop(inner, 0, 0, bottom-inner.Min.Y+gap, top-inner.Max.Y-gap)
	tiles := draw.Tiles{
		Rows: 2,
		Cols: 2,
		PadX: cellPad,
		PadY: cellPad,
	}

	for idx, panel := range d.Panels {
		cell := tiles.At(grid, idx%tiles.Cols, idx/tiles.Cols)
		caption := wrap(captionStyle, panel.Caption, cell.Size().X)
		captionHeight := linesHeight(captionStyle, caption)

		area := draw.Crop(cell, 0, 0, captionHeight+gap, 0)
		if area.Size().X > 0 && area.Size().Y > 0 {
			panel.Surface.Draw(area)
		} else {
			log.Warn().Str("Panel", panel.Name).Msg("no room left for chart; increase the dashboard size")
		}
		drawLines(cell, captionStyle, cell.Min.Y+captionHeight, caption)
	}
}

// Render rasterizes the dashboard at its configured size
func (d *Dashboard) Render() image.Image {
	return charts.Rasterize(d, d.Config.Width, d.Config.Height).Image()
}

// WritePNG rasterizes the dashboard at its configured size and writes it to w
func (d *Dashboard) WritePNG(w io.Writer) error {
	return charts.EncodePNG(w, d, d.Config.Width, d.Config.Height)
}
