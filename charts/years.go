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
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// YearRange is an inclusive span of years
type YearRange struct {
	Start int
	End   int
}

// Contains reports whether year falls within the range, bounds included
func (yr YearRange) Contains(year int) bool {
	return yr.Start <= year && year <= yr.End
}

func (yr YearRange) String() string {
	return fmt.Sprintf("%d to %d", yr.Start, yr.End)
}

// maxYearTicks caps the number of labeled ticks on a year axis
const maxYearTicks = 10

// yearTicks places ticks on whole years only so the axis never shows
// fractional years
type yearTicks struct{}

func (yearTicks) Ticks(min, max float64) []plot.Tick {
	first := int(math.Ceil(min))
	last := int(math.Floor(max))
	if last < first {
		return nil
	}

	step := 1
	for (last-first)/step+1 > maxYearTicks {
		step++
	}

	ticks := make([]plot.Tick, 0, (last-first)/step+1)
	for year := first; year <= last; year += step {
		ticks = append(ticks, plot.Tick{Value: float64(year), Label: strconv.Itoa(year)})
	}
	return ticks
}
