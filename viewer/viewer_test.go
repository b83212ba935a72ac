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

package viewer_test

import (
	"fyne.io/fyne/v2/test"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/indicharts/viewer"
)

var _ = Describe("Viewer", func() {
	It("names tabs after the files", func() {
		tabs := viewer.TabsFromPaths([]string{"out/line.png", "/tmp/dashboard.png", "x"})
		Expect(tabs).To(Equal([]viewer.Tab{
			{Title: "Line", Path: "out/line.png"},
			{Title: "Dashboard", Path: "/tmp/dashboard.png"},
			{Title: "X", Path: "x"},
		}))
	})

	It("builds one tab per image", func() {
		a := test.NewApp()
		DeferCleanup(a.Quit)

		v := viewer.New(a, "indicharts", viewer.TabsFromPaths([]string{"line.png", "bar.png"}))
		Expect(v.TabCount()).To(Equal(2))
		Expect(v.Window().Title()).To(Equal("indicharts"))
		Expect(v.Status()).To(Equal("Line"))

		v.Select(1)
		Expect(v.Status()).To(Equal("Bar"))
	})
})
