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

package dataframe_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/indicharts/dataframe"
)

var _ = Describe("When doing math on a dataframe", func() {
	var (
		df *dataframe.DataFrame[int]
	)

	BeforeEach(func() {
		df = dataframe.New[int]("India", "China", "Italy")
		df.InsertRow(1995, 1.0, 2.0, 3.0)
		df.InsertRow(1996, 4.0, 5.0, 6.0)
	})

	It("stacks columns cumulatively", func() {
		stacked := df.CumSum()
		Expect(stacked.Vals[0]).To(Equal([]float64{1.0, 4.0}))
		Expect(stacked.Vals[1]).To(Equal([]float64{3.0, 9.0}))
		Expect(stacked.Vals[2]).To(Equal([]float64{6.0, 15.0}))

		// receiver is untouched
		Expect(df.Vals[2]).To(Equal([]float64{3.0, 6.0}))
	})

	It("top of the stack equals the row sum", func() {
		stacked := df.CumSum()
		Expect(stacked.Vals[stacked.ColCount()-1]).To(Equal(df.RowSum()))
	})

	It("sums a single column", func() {
		sum, err := df.Sum("China")
		Expect(err).NotTo(HaveOccurred())
		Expect(sum).To(BeNumerically("~", 7.0))

		_, err = df.Sum("Brazil")
		Expect(err).To(MatchError(dataframe.ErrColumnNotFound))
	})

	It("finds the maximum value", func() {
		Expect(df.Max()).To(Equal(6.0))
		Expect(dataframe.New[int]("x").Max()).To(Equal(0.0))
	})

	DescribeTable("grouping duplicate index values",
		func(index []int, expectedIndex []int, expectedFirst []float64) {
			df := dataframe.New[int]("India")
			for idx, key := range index {
				df.InsertRow(key, float64(idx+1))
			}
			grouped := df.GroupSum()
			Expect(grouped.Index).To(Equal(expectedIndex))
			Expect(grouped.Vals[0]).To(Equal(expectedFirst))
		},
		Entry("no duplicates", []int{1995, 1996}, []int{1995, 1996}, []float64{1, 2}),
		Entry("adjacent duplicates", []int{1995, 1995, 1996}, []int{1995, 1996}, []float64{3, 3}),
		Entry("scattered duplicates keep first appearance order", []int{1996, 1995, 1996}, []int{1996, 1995}, []float64{4, 2}),
		Entry("empty", []int{}, []int{}, []float64{}),
	)
})
