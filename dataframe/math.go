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
	"gonum.org/v1/gonum/floats"
)

// CumSum stacks the columns of df left to right and returns a new dataframe
// where column i holds the sum of columns 0..i of df. The index is shared
// with df.
func (df *DataFrame[T]) CumSum() *DataFrame[T] {
	res := df.Copy()
	for colIdx := 1; colIdx < len(res.Vals); colIdx++ {
		floats.Add(res.Vals[colIdx], res.Vals[colIdx-1])
	}
	return res
}

// GroupSum collapses rows that share an index value by summing them. The
// resulting dataframe has a unique index in order of first appearance.
func (df *DataFrame[T]) GroupSum() *DataFrame[T] {
	res := New[T](df.ColNames...)
	pos := make(map[T]int, df.Len())

	for rowIdx, key := range df.Index {
		if dst, ok := pos[key]; ok {
			for colIdx := range df.Vals {
				res.Vals[colIdx][dst] += df.Vals[colIdx][rowIdx]
			}
			continue
		}

		pos[key] = res.Len()
		res.InsertRow(key, df.Row(rowIdx)...)
	}

	return res
}

// Max returns the largest value stored anywhere in the dataframe; 0 when
// the dataframe is empty
func (df *DataFrame[T]) Max() float64 {
	if df.Len() == 0 {
		return 0
	}

	res := df.Vals[0][0]
	for _, col := range df.Vals {
		if len(col) > 0 {
			if m := floats.Max(col); m > res {
				res = m
			}
		}
	}
	return res
}

// RowSum returns the sum across all columns for each row
func (df *DataFrame[T]) RowSum() []float64 {
	res := make([]float64, df.Len())
	for _, col := range df.Vals {
		floats.Add(res, col)
	}
	return res
}

// Sum returns the sum of every value in the named column
func (df *DataFrame[T]) Sum(colName string) (float64, error) {
	col, err := df.Col(colName)
	if err != nil {
		return 0, err
	}
	return floats.Sum(col), nil
}
