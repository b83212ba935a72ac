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
	"gonum.org/v1/plot/vg"
)

// Config holds the static text and size of a dashboard
type Config struct {
	Title  string
	Header string

	LineCaption  string
	BarCaption   string
	DonutCaption string
	AreaCaption  string
	Summary      string

	Width  vg.Length
	Height vg.Length
}

// DefaultConfig returns the texts and 20in x 20in size of the standard
// dashboard. The header line is left empty.
func DefaultConfig() Config {
	return Config{
		Title: "Global Trends Dashboard: Urbanization, Population Growth, Agricultural Productivity, and Urban Population Growth",

		LineCaption: `1. Urban Population Trend (1995-2000)
Categorical data details are succinctly conveyed, noting the lowest recorded value in India during 1995 (26.607) and the highest in Australia for the same year (84.898), providing concise insights into dataset variability`,

		BarCaption: `2. Population Growth (1995-2015)
Italy's gradual ascent from its minimal value in 1995 (0.0016) to Australia's peak in 2010 (1.56) highlights a significant and consistent upward trend observed over the 15-year period.`,

		DonutCaption: `4. Urban Population Growth (2005)
In 2005, urban population growth rates varied across countries: China experienced the highest at 3.88%, India showed substantial growth at 2.75%, while Italy had a modest increase at 0.67%. Australia and the United Kingdom demonstrated steady rates of 1.36% and 1.05%, respectively`,

		AreaCaption: `3. Cereal yield (kg per hectare) (1995-2015)
The Area Plot illustrates Cereal yield from (1995-2015). India saw rising Cereal yield (2111.7 to 2676.4), China exhibited significant growth in value of metrics. Italy maintained stable yield. Australia showed variable yield decrease. The UK witnessed fluctuating yield in 1995 to 2000`,

		Summary: `Description: The dashboard encompasses diverse insights into socio-economic facets. ` +
			`The "Urban Population Trend (1995-2000)" highlights categorical variability, ranging from India's 1995 low (26.607) to Australia's peak (84.898). ` +
			`The "Population Growth (1995-2015)" plot observes Italy's gradual ascent (0.0016 to 1.56) over 15 years. ` +
			`The "Agriculture (1995-2015)" area Plot reveals nuanced dynamics, including India's rising cereal yield and slight forest expansion, China's significant growth, Italy's stability, Australia's variability, and the UK's fluctuations. ` +
			`The "Urban Population Growth (2005)" zooms into urbanization, showcasing varied rates across countries. ` +
			`Collectively, these plots unveil comprehensive socio-economic trends with rich insights across countries and time spans.`,

		Width:  20 * vg.Inch,
		Height: 20 * vg.Inch,
	}
}
