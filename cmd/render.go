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

package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"runtime/trace"

	"github.com/penny-vault/indicharts/charts"
	"github.com/penny-vault/indicharts/dashboard"
	"github.com/penny-vault/indicharts/data"
	"github.com/penny-vault/indicharts/observability/opentelemetry"
	"github.com/penny-vault/indicharts/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gonum.org/v1/plot/vg"
)

type chartFile struct {
	name  string
	build func() (*charts.Surface, error)
}

func render(ctx context.Context) error {
	if Profile {
		f, err := os.Create("profile.out")
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	if Trace {
		f, err := os.Create("trace.out")
		if err != nil {
			return fmt.Errorf("failed to create trace output file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close trace file")
			}
		}()

		if err := trace.Start(f); err != nil {
			return fmt.Errorf("failed to start trace: %w", err)
		}
		defer trace.Stop()
	}

	shutdown, err := opentelemetry.Setup(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("could not flush traces")
		}
	}()

	ctx, span := otel.Tracer(opentelemetry.Name).Start(ctx, "indicharts.render")
	defer span.End()

	ds, err := data.Load(viper.GetString("input"))
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("input", ds.Path), attribute.Int("rows", len(ds.Records)))

	w, err := output.NewWriter(viper.GetString("output.dir"), ds)
	if err != nil {
		return err
	}

	countries := dashboard.DefaultCountries
	records := ds.Records

	files := []chartFile{
		{"line.png", func() (*charts.Surface, error) {
			return charts.LinePlot(records, dashboard.LineIndicator, dashboard.LineYears, countries, nil)
		}},
		{"bar.png", func() (*charts.Surface, error) {
			return charts.BarPlot(records, dashboard.BarIndicator, dashboard.BarYears, countries, nil)
		}},
		{"donut.png", func() (*charts.Surface, error) {
			return charts.DonutPlot(records, dashboard.DonutIndicator, dashboard.DonutYear, nil)
		}},
		{"area.png", func() (*charts.Surface, error) {
			return charts.AreaPlot(records, dashboard.AreaIndicator, dashboard.AreaYears, countries, nil)
		}},
	}

	width := inches("output.chart_width_in")
	height := inches("output.chart_height_in")
	for _, file := range files {
		surf, err := file.build()
		if err != nil {
			return fmt.Errorf("%s: %w", file.name, err)
		}
		if _, err := w.WritePNG(file.name, surf, width, height); err != nil {
			return err
		}
	}

	cfg := dashboardConfig()
	board, err := dashboard.Compose(ctx, records, countries, cfg)
	if err != nil {
		return err
	}
	if _, err := w.WritePNG("dashboard.png", board, cfg.Width, cfg.Height); err != nil {
		return err
	}

	manifest, err := w.WriteManifest()
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d images to %s (run %s)\n", len(w.Manifest.Files), w.Dir, w.Manifest.RunID)
	log.Info().Str("Manifest", manifest).Msg("render complete")

	if viper.GetBool("viewer.enabled") {
		showImages(w.Paths())
	}

	return nil
}

func dashboardConfig() dashboard.Config {
	cfg := dashboard.DefaultConfig()
	if title := viper.GetString("dashboard.title"); title != "" {
		cfg.Title = title
	}
	cfg.Header = viper.GetString("dashboard.header")
	cfg.Width = inches("output.width_in")
	cfg.Height = inches("output.height_in")
	return cfg
}

func inches(key string) vg.Length {
	return vg.Length(viper.GetFloat64(key)) * vg.Inch
}
