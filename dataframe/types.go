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
	"errors"
)

// DataFrame stores a table of values organized by an ordered index (e.g.,
// years). The vals array is column major - e.g.,
//
//	India  China
//	1      4
//	2      5
//	3      6
//
// Vals[0][0] = 1
// Vals[1][0] = 4
//
// The index is not required to be unique or sorted; rows keep the order in
// which they were inserted until SortIndex is called.
type DataFrame[T cmp.Ordered] struct {
	Index    []T
	ColNames []string
	Vals     [][]float64
}

var (
	ErrColumnNotFound = errors.New("column not found")
)
