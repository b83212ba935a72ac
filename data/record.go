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

package data

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	IndicatorCol = "Indicator Name"
	YearCol      = "Year"
)

// Header is the column layout shared by every record read from one table
type Header struct {
	names []string
	index map[string]int
}

// NewHeader builds a header from column names. Names must be unique.
func NewHeader(names []string) (*Header, error) {
	h := &Header{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	copy(h.names, names)

	for idx, name := range names {
		if _, ok := h.index[name]; ok {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrFormat, name)
		}
		h.index[name] = idx
	}

	return h, nil
}

// Names returns the column names in file order
func (h *Header) Names() []string {
	names := make([]string, len(h.names))
	copy(names, h.names)
	return names
}

// Has reports whether the header contains the named column
func (h *Header) Has(name string) bool {
	_, ok := h.index[name]
	return ok
}

// Record is one row of the source table. Values are kept exactly as they
// appear in the file; numeric conversion happens on demand.
type Record struct {
	header *Header
	values []string
}

// NewRecord pairs a row of raw values with its header. len(values) must
// equal the number of columns in the header.
func NewRecord(header *Header, values []string) (Record, error) {
	if len(values) != len(header.names) {
		return Record{}, fmt.Errorf("%w: row has %d fields, header has %d", ErrFormat, len(values), len(header.names))
	}

	vals := make([]string, len(values))
	copy(vals, values)
	return Record{header: header, values: vals}, nil
}

// Columns returns the column names of the record in file order
func (r Record) Columns() []string {
	if r.header == nil {
		return nil
	}
	return r.header.Names()
}

// Get returns the raw value stored under col
func (r Record) Get(col string) (string, bool) {
	if r.header == nil {
		return "", false
	}
	idx, ok := r.header.index[col]
	if !ok {
		return "", false
	}
	return r.values[idx], true
}

// Map returns a copy of the record as a column -> value map
func (r Record) Map() map[string]string {
	res := make(map[string]string, len(r.values))
	for _, col := range r.Columns() {
		res[col] = r.values[r.header.index[col]]
	}
	return res
}

// Indicator returns the value of the `Indicator Name` column; an empty string
// if the column is absent
func (r Record) Indicator() string {
	val, _ := r.Get(IndicatorCol)
	return val
}

// Year parses the `Year` column as an integer
func (r Record) Year() (int, error) {
	raw, ok := r.Get(YearCol)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrLookup, YearCol)
	}

	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrParse, YearCol, raw)
	}
	return year, nil
}

// Float parses the named column as a float64. Empty values are a parse error;
// no default is substituted.
func (r Record) Float(col string) (float64, error) {
	raw, ok := r.Get(col)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrLookup, col)
	}

	val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrParse, col, raw)
	}
	return val, nil
}
