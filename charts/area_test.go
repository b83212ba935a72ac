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

package charts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/indicharts/charts"
	"github.com/penny-vault/indicharts/data"
	"gonum.org/v1/plot/vg"
)

var _ = Describe("Area", func() {
	var (
		records []data.Record
		yr      charts.YearRange
	)

	BeforeEach(func() {
		records = parse(fixture)
		yr = charts.YearRange{Start: 1995, End: 2000}
	})

	Context("shaping the series", func() {
		It("has each matching year once in ascending order", func() {
			records = parse(`Year,Indicator Name,India,China
1998,X,3,30
1996,X,1,10
1997,X,2,20
1996,X,5,50
`)
			df, err := charts.AreaSeries(records, "X", yr, []string{"India", "China"})
			Expect(err).NotTo(HaveOccurred())
			Expect(df.Index).To(Equal([]int{1996, 1997, 1998}))
			Expect(df.Vals[0]).To(Equal([]float64{6, 2, 3}))
			Expect(df.Vals[1]).To(Equal([]float64{60, 20, 30}))
		})

		It("stacks to the sum across countries", func() {
			df, err := charts.AreaSeries(records, cereal, yr, countries)
			Expect(err).NotTo(HaveOccurred())
			Expect(df.Len()).To(Equal(6))

			top := df.CumSum().Vals[len(countries)-1]
			totals := df.RowSum()
			for idx := range top {
				Expect(top[idx]).To(BeNumerically("~", totals[idx], 1e-9))
			}
			Expect(totals[0]).To(BeNumerically("~", 2111.7+4664.0+4929.3+1714.8+7367.3, 1e-6))
		})

		It("excludes years outside the range", func() {
			df, err := charts.AreaSeries(records, urbanPct, yr, countries)
			Expect(err).NotTo(HaveOccurred())
			Expect(df.Index).NotTo(ContainElement(2001))
		})

		It("fails when a country column is missing", func() {
			_, err := charts.AreaSeries(records, cereal, yr, []string{"Brazil"})
			Expect(err).To(MatchError(data.ErrLookup))
		})
	})

	Context("drawing", func() {
		It("labels the chart", func() {
			surf, err := charts.AreaPlot(records, cereal, yr, countries, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(surf.Plot.Title.Text).To(Equal("Stacked Area Plot for Cereal yield (kg per hectare) (1995 to 2000)"))
			Expect(surf.Plot.X.Label.Text).To(Equal("Year"))
			Expect(surf.Plot.Y.Label.Text).To(Equal("Percentage of Total"))
			Expect(surf.LegendLen()).To(Equal(len(countries)))
			Expect(surf.Legend()).To(Equal(charts.LegendRightTop))
		})

		It("renders", func() {
			surf, err := charts.AreaPlot(records, cereal, yr, countries, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(surf.Image(6*vg.Inch, 4*vg.Inch).Bounds().Dy()).To(Equal(400))
		})

		It("renders a single year", func() {
			surf, err := charts.AreaPlot(records, cereal, charts.YearRange{Start: 1995, End: 1995}, countries, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(surf.Image(4*vg.Inch, 3*vg.Inch)).NotTo(BeNil())
		})
	})
})

var _ = Describe("Palette", func() {
	It("parses hex codes", func() {
		p := charts.NewPalette("#FF0000", "00FF00")
		r, g, b, _ := p.At(0).RGBA()
		Expect([]uint32{r >> 8, g >> 8, b >> 8}).To(Equal([]uint32{255, 0, 0}))
		r, g, b, _ = p.At(1).RGBA()
		Expect([]uint32{r >> 8, g >> 8, b >> 8}).To(Equal([]uint32{0, 255, 0}))
	})

	It("wraps around", func() {
		Expect(charts.LightPalette.At(5)).To(Equal(charts.LightPalette.At(0)))
	})
})
