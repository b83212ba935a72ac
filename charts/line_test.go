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

var _ = Describe("Line", func() {
	var (
		records []data.Record
		yr      charts.YearRange
	)

	BeforeEach(func() {
		records = parse(fixture)
		yr = charts.YearRange{Start: 1995, End: 2000}
	})

	Context("shaping the series", func() {
		It("has one value per matching row", func() {
			df, err := charts.LineSeries(records, urbanPct, yr, []string{"India"})
			Expect(err).NotTo(HaveOccurred())
			Expect(df.Len()).To(Equal(6))
			Expect(df.Index).To(Equal([]int{1995, 1996, 1997, 1998, 1999, 2000}))
			Expect(df.Vals[0][0]).To(Equal(26.607))
		})

		It("shares one year sequence across countries", func() {
			df, err := charts.LineSeries(records, urbanPct, yr, countries)
			Expect(err).NotTo(HaveOccurred())
			Expect(df.ColNames).To(Equal(countries))
			for _, col := range df.Vals {
				Expect(col).To(HaveLen(df.Len()))
			}
			Expect(df.AsMap("Australia")[1995]).To(Equal(84.898))
		})

		It("keeps file order rather than year order", func() {
			records = parse(`Year,Indicator Name,India
1997,X,3
1995,X,1
1996,X,2
`)
			df, err := charts.LineSeries(records, "X", yr, []string{"India"})
			Expect(err).NotTo(HaveOccurred())
			Expect(df.Index).To(Equal([]int{1997, 1995, 1996}))
			Expect(df.Vals[0]).To(Equal([]float64{3, 1, 2}))
		})

		It("is empty when nothing matches", func() {
			df, err := charts.LineSeries(records, "Forest area (%)", yr, countries)
			Expect(err).NotTo(HaveOccurred())
			Expect(df.Len()).To(Equal(0))
		})

		It("fails when a country column is missing", func() {
			_, err := charts.LineSeries(records, urbanPct, yr, []string{"Brazil"})
			Expect(err).To(MatchError(data.ErrLookup))
		})

		It("fails when a value is empty", func() {
			records = parse(`Year,Indicator Name,India
1995,X,
`)
			_, err := charts.LineSeries(records, "X", yr, []string{"India"})
			Expect(err).To(MatchError(data.ErrParse))
		})

		It("fails when a matching row has a bad year", func() {
			records = parse(`Year,Indicator Name,India
nineteen,X,1
`)
			_, err := charts.LineSeries(records, "X", yr, []string{"India"})
			Expect(err).To(MatchError(data.ErrParse))
		})

		It("ignores bad years on rows for other indicators", func() {
			records = parse(`Year,Indicator Name,India
nineteen,Y,1
1995,X,2
`)
			df, err := charts.LineSeries(records, "X", yr, []string{"India"})
			Expect(err).NotTo(HaveOccurred())
			Expect(df.Len()).To(Equal(1))
		})

		It("produces the same series when called twice", func() {
			df1, err := charts.LineSeries(records, urbanPct, yr, countries)
			Expect(err).NotTo(HaveOccurred())
			df2, err := charts.LineSeries(records, urbanPct, yr, countries)
			Expect(err).NotTo(HaveOccurred())
			Expect(df2).To(Equal(df1))
		})
	})

	Context("drawing", func() {
		It("creates a surface when none is given", func() {
			surf, err := charts.LinePlot(records, urbanPct, yr, countries, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(surf).NotTo(BeNil())
			Expect(surf.Plot.Title.Text).To(Equal("Line Plot for Urban population (% of total population)"))
			Expect(surf.Plot.X.Label.Text).To(Equal("Year"))
			Expect(surf.Plot.Y.Label.Text).To(Equal("Value"))
			Expect(surf.LegendLen()).To(Equal(len(countries)))
			Expect(surf.Legend()).To(Equal(charts.LegendRightCenter))
		})

		It("draws onto the surface it is given", func() {
			surf := charts.NewSurface()
			res, err := charts.LinePlot(records, urbanPct, yr, countries, surf)
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeIdenticalTo(surf))
		})

		It("accepts a title format", func() {
			surf, err := charts.LinePlot(records, urbanPct, yr, countries, nil, charts.WithLineTitle("%[1]s - %[2]d to %[3]d"))
			Expect(err).NotTo(HaveOccurred())
			Expect(surf.Plot.Title.Text).To(Equal("Urban population (% of total population) - 1995 to 2000"))
		})

		It("renders an image of the requested size", func() {
			surf, err := charts.LinePlot(records, urbanPct, yr, countries, nil)
			Expect(err).NotTo(HaveOccurred())
			img := surf.Image(4*vg.Inch, 3*vg.Inch)
			Expect(img.Bounds().Dx()).To(Equal(400))
			Expect(img.Bounds().Dy()).To(Equal(300))
		})

		It("renders empty axes when nothing matches", func() {
			surf, err := charts.LinePlot(records, "Forest area (%)", yr, countries, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(surf.LegendLen()).To(Equal(0))
			Expect(surf.Image(4*vg.Inch, 3*vg.Inch)).NotTo(BeNil())
		})

		It("does not return a surface on error", func() {
			surf, err := charts.LinePlot(records, urbanPct, yr, []string{"Brazil"}, nil)
			Expect(err).To(MatchError(data.ErrLookup))
			Expect(surf).To(BeNil())
		})
	})
})

var _ = Describe("YearRange", func() {
	DescribeTable("contains",
		func(year int, expected bool) {
			Expect(charts.YearRange{Start: 1995, End: 2000}.Contains(year)).To(Equal(expected))
		},
		Entry("start is inclusive", 1995, true),
		Entry("end is inclusive", 2000, true),
		Entry("inside", 1997, true),
		Entry("before", 1994, false),
		Entry("after", 2001, false),
	)

	It("formats as a span", func() {
		Expect(charts.YearRange{Start: 1995, End: 2000}.String()).To(Equal("1995 to 2000"))
	})
})
