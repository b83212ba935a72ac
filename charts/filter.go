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
)

// eachMatch calls fn for every record whose indicator equals indicator and
// whose year passes keep, in file order. The year of a record is only parsed
// once its indicator matches.
func eachMatch(records []data.Record, indicator string, keep func(int) bool, fn func(year int, rec data.Record) error) error {
	for idx, rec := range records {
		if rec.Indicator() != indicator {
			continue
		}

		year, err := rec.Year()
		if err != nil {
			return fmt.Errorf("record %d: %w", idx+1, err)
		}
		if !keep(year) {
			continue
		}

		if err := fn(year, rec); err != nil {
			return fmt.Errorf("record %d (%d): %w", idx+1, year, err)
		}
	}
	return nil
}

// countryValues parses the value of each country in rec
func countryValues(rec data.Record, countries []string) ([]float64, error) {
	vals := make([]float64, len(countries))
	for idx, country := range countries {
		val, err := rec.Float(country)
		if err != nil {
			return nil, err
		}
		vals[idx] = val
	}
	return vals, nil
}

func title(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
