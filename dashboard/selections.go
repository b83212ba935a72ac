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

import "github.com/penny-vault/indicharts/charts"

// Selections drawn in each cell of the dashboard
const (
	LineIndicator  = "Urban population (% of total population)"
	BarIndicator   = "Population growth (annual %)"
	DonutIndicator = "Urban population growth (annual %)"
	AreaIndicator  = "Cereal yield (kg per hectare)"

	DonutYear = 2005

	// lineTitle replaces the default line chart title inside the dashboard
	lineTitle = "%[1]s - %[2]d to %[3]d"
)

var (
	LineYears = charts.YearRange{Start: 1995, End: 2000}
	BarYears  = []int{1995, 2000, 2005, 2010, 2015}
	AreaYears = charts.YearRange{Start: 1995, End: 2000}

	// DefaultCountries are the countries shown by the line, bar and area
	// charts, in legend order
	DefaultCountries = []string{"India", "China", "Italy", "Australia", "United Kingdom"}
)
