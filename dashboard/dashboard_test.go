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

package dashboard_test

import (
	"bytes"
	"context"
	"image/png"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/indicharts/charts"
	"github.com/penny-vault/indicharts/dashboard"
	"github.com/penny-vault/indicharts/data"
	"gonum.org/v1/plot/vg"
)

var _ = Describe("Dashboard", func() {
	var (
		records []data.Record
		cfg     dashboard.Config
	)

	BeforeEach(func() {
		var err error
		records, err = data.ReadRecords("testdata/population.csv")
		Expect(err).NotTo(HaveOccurred())

		cfg = dashboard.DefaultConfig()
		cfg.Width = 16 * vg.Inch
		cfg.Height = 16 * vg.Inch
	})

	Context("default config", func() {
		It("is 20 inches square with an empty header", func() {
			def := dashboard.DefaultConfig()
			Expect(def.Width).To(Equal(20 * vg.Inch))
			Expect(def.Height).To(Equal(20 * vg.Inch))
			Expect(def.Header).To(BeEmpty())
			Expect(def.Title).To(HavePrefix("Global Trends Dashboard"))
			Expect(def.Summary).NotTo(BeEmpty())
		})
	})

	Context("composing", func() {
		It("builds four panels in grid order", func() {
			d, err := dashboard.Compose(context.Background(), records, dashboard.DefaultCountries, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Panels).To(HaveLen(4))

			names := make([]string, 0, 4)
			for _, panel := range d.Panels {
				names = append(names, panel.Name)
				Expect(panel.Surface).NotTo(BeNil())
				Expect(panel.Caption).NotTo(BeEmpty())
			}
			Expect(names).To(Equal([]string{"line", "bar", "donut", "area"}))
		})

		It("overrides the line chart title", func() {
			d, err := dashboard.Compose(context.Background(), records, dashboard.DefaultCountries, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Panels[0].Surface.Plot.Title.Text).To(Equal("Urban population (% of total population) - 1995 to 2000"))
			Expect(d.Panels[1].Surface.Plot.Title.Text).To(Equal("Grouped Bar Plot for Population growth (annual %) (from 1995 to 2015)"))
			Expect(d.Panels[2].Surface.Plot.Title.Text).To(Equal("Enhanced Donut Chart for Urban population growth (annual %) in 2005"))
			Expect(d.Panels[3].Surface.Plot.Title.Text).To(Equal("Stacked Area Plot for Cereal yield (kg per hectare) (1995 to 2000)"))
		})

		It("uses the captions from the config", func() {
			cfg.BarCaption = "bars"
			d, err := dashboard.Compose(context.Background(), records, dashboard.DefaultCountries, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Panels[1].Caption).To(Equal("bars"))
		})

		It("fails when a country is not in the file", func() {
			_, err := dashboard.Compose(context.Background(), records, []string{"India", "Brazil"}, cfg)
			Expect(err).To(MatchError(data.ErrLookup))
			Expect(err.Error()).To(HavePrefix("line panel"))
		})
	})

	Context("rendering", func() {
		It("renders an image of the configured size", func() {
			d, err := dashboard.Compose(context.Background(), records, dashboard.DefaultCountries, cfg)
			Expect(err).NotTo(HaveOccurred())

			img := d.Render()
			Expect(img.Bounds().Dx()).To(Equal(16 * charts.DPI))
			Expect(img.Bounds().Dy()).To(Equal(16 * charts.DPI))
		})

		It("still renders when the canvas is too small for the charts", func() {
			cfg.Width = 3 * vg.Inch
			cfg.Height = 3 * vg.Inch
			d, err := dashboard.Compose(context.Background(), records, dashboard.DefaultCountries, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Render().Bounds().Dx()).To(Equal(3 * charts.DPI))
		})

		It("writes a decodable png", func() {
			cfg.Header = "Prepared for the quarterly review"
			d, err := dashboard.Compose(context.Background(), records, dashboard.DefaultCountries, cfg)
			Expect(err).NotTo(HaveOccurred())

			buf := &bytes.Buffer{}
			Expect(d.WritePNG(buf)).To(Succeed())

			cfgImg, err := png.DecodeConfig(buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfgImg.Width).To(Equal(16 * charts.DPI))
		})
	})
})
