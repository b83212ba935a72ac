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

package dataframe

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
)

// New creates an empty dataframe with the given columns
func New[T cmp.Ordered](colNames ...string) *DataFrame[T] {
	df := &DataFrame[T]{
		Index:    []T{},
		ColNames: make([]string, len(colNames)),
		Vals:     make([][]float64, len(colNames)),
	}

	copy(df.ColNames, colNames)
	for idx := range df.Vals {
		df.Vals[idx] = []float64{}
	}

	return df
}

// AsMap creates a map with the index as the key and the specified column as the value.
// When the index has duplicates the last row wins.
func (df *DataFrame[T]) AsMap(colName string) map[T]float64 {
	res := make(map[T]float64, df.Len())
	colIdx := df.ColIndex(colName)
	if colIdx == -1 {
		// column does not exist, return empty map
		return res
	}

	for idx, rowKey := range df.Index {
		res[rowKey] = df.Vals[colIdx][idx]
	}

	return res
}

// Col returns the values stored in the named column
func (df *DataFrame[T]) Col(colName string) ([]float64, error) {
	colIdx := df.ColIndex(colName)
	if colIdx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, colName)
	}
	return df.Vals[colIdx], nil
}

// Get index of specified column; returns -1 if column doesn't exist
func (df *DataFrame[T]) ColIndex(colName string) int {
	for idx, val := range df.ColNames {
		if colName == val {
			return idx
		}
	}

	return -1
}

// ColCount returns the number of columns in the dataframe
func (df *DataFrame[T]) ColCount() int {
	return len(df.ColNames)
}

// Copy creates a deep copy of the dataframe
func (df *DataFrame[T]) Copy() *DataFrame[T] {
	df2 := &DataFrame[T]{
		ColNames: make([]string, len(df.ColNames)),
		Index:    make([]T, len(df.Index)),
		Vals:     make([][]float64, len(df.Vals)),
	}

	copy(df2.ColNames, df.ColNames)
	copy(df2.Index, df.Index)

	for idx := range df2.Vals {
		df2.Vals[idx] = make([]float64, len(df.Vals[idx]))
		copy(df2.Vals[idx], df.Vals[idx])
	}

	return df2
}

// Insert a new column to the end of the dataframe
func (df *DataFrame[T]) Insert(name string, col []float64) *DataFrame[T] {
	if len(col) != df.Len() {
		log.Panic().Str("Column", name).Int("ColLen", len(col)).Int("NumRows", df.Len()).Msg("column length must equal number of rows")
	}

	df.ColNames = append(df.ColNames, name)
	df.Vals = append(df.Vals, col)
	return df
}

// InsertRow appends a row to the dataframe. The number of vals must equal the
// number of columns; otherwise panic
func (df *DataFrame[T]) InsertRow(idx T, vals ...float64) *DataFrame[T] {
	if len(vals) != len(df.ColNames) {
		log.Panic().Int("NumValsPassed", len(vals)).Int("NumColumns", len(df.ColNames)).Msg("number of vals passed must equal number of columns")
	}

	df.Index = append(df.Index, idx)
	for colIdx := range df.ColNames {
		df.Vals[colIdx] = append(df.Vals[colIdx], vals[colIdx])
	}

	return df
}

// Len returns the number of rows in the dataframe
func (df *DataFrame[T]) Len() int {
	return len(df.Index)
}

// Row returns the values of row rowIdx across all columns
func (df *DataFrame[T]) Row(rowIdx int) []float64 {
	row := make([]float64, len(df.ColNames))
	for colIdx := range df.ColNames {
		row[colIdx] = df.Vals[colIdx][rowIdx]
	}
	return row
}

// SortIndex orders the rows of the dataframe by index value, ascending. Rows
// with equal index keep their relative order. Sorting is done in place.
func (df *DataFrame[T]) SortIndex() *DataFrame[T] {
	order := make([]int, len(df.Index))
	for idx := range order {
		order[idx] = idx
	}

	sort.SliceStable(order, func(a, b int) bool {
		return df.Index[order[a]] < df.Index[order[b]]
	})

	newIndex := make([]T, len(df.Index))
	for newIdx, oldIdx := range order {
		newIndex[newIdx] = df.Index[oldIdx]
	}
	df.Index = newIndex

	for colIdx, col := range df.Vals {
		newCol := make([]float64, len(col))
		for newIdx, oldIdx := range order {
			newCol[newIdx] = col[oldIdx]
		}
		df.Vals[colIdx] = newCol
	}

	return df
}

// Table renders the dataframe as an ASCII formatted table
func (df *DataFrame[T]) Table() string {
	if len(df.Index) == 0 {
		return "<NO DATA>" // nothing to do as there is no data available in the dataframe
	}

	// construct table header
	tableCols := append([]string{"Index"}, df.ColNames...)

	// initialize table
	s := &strings.Builder{}
	table := tablewriter.NewWriter(s)
	table.SetHeader(tableCols)
	footer := make([]string, len(tableCols))
	footer[0] = "Num Rows"
	if len(footer) > 1 {
		footer[1] = fmt.Sprintf("%d", df.Len())
	}
	table.SetFooter(footer)
	table.SetBorder(false) // Set Border to false

	for idx, rowIdx := range df.Index {
		row := make([]string, 0, len(df.Vals)+1)
		row = append(row, fmt.Sprint(rowIdx))

		for _, col := range df.Vals {
			row = append(row, fmt.Sprintf("%.4f", col[idx]))
		}

		table.Append(row)
	}

	table.Render()
	return s.String()
}
