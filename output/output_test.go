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

package output_test

import (
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/indicharts/charts"
	"github.com/penny-vault/indicharts/data"
	"github.com/penny-vault/indicharts/output"
	"github.com/zeebo/blake3"
	"gonum.org/v1/plot/vg"
)

var _ = Describe("Writer", func() {
	var (
		dir   string
		input *data.Dataset
		surf  *charts.Surface
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "indicharts-output")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		input = &data.Dataset{
			Path:    "population_df.csv",
			Digest:  "abc123",
			Records: make([]data.Record, 3),
		}

		surf = charts.NewSurface()
		surf.Plot.Title.Text = "empty"
	})

	It("creates a missing output directory", func() {
		nested := filepath.Join(dir, "a", "b")
		_, err := output.NewWriter(nested, input)
		Expect(err).NotTo(HaveOccurred())
		Expect(nested).To(BeADirectory())
	})

	It("starts the manifest from the input", func() {
		w, err := output.NewWriter(dir, input)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Manifest.RunID).NotTo(Equal(uuid.Nil))
		Expect(w.Manifest.Input).To(Equal(output.Input{
			Path:   "population_df.csv",
			Blake3: "abc123",
			Rows:   3,
		}))
		Expect(w.Manifest.Files).To(BeEmpty())
	})

	It("writes images and records their digests", func() {
		w, err := output.NewWriter(dir, input)
		Expect(err).NotTo(HaveOccurred())

		path, err := w.WritePNG("line.png", surf, 3*vg.Inch, 2*vg.Inch)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(dir, "line.png")))
		Expect(path).To(BeARegularFile())

		body, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		sum := blake3.Sum256(body)

		Expect(w.Manifest.Files).To(HaveLen(1))
		file := w.Manifest.Files[0]
		Expect(file.Name).To(Equal("line.png"))
		Expect(file.Blake3).To(Equal(hex.EncodeToString(sum[:])))
		Expect(file.Bytes).To(Equal(len(body)))
		Expect(file.Width).To(Equal(300))
		Expect(file.Height).To(Equal(200))
		Expect(w.Paths()).To(Equal([]string{path}))
	})

	It("round trips the manifest", func() {
		w, err := output.NewWriter(dir, input)
		Expect(err).NotTo(HaveOccurred())
		_, err = w.WritePNG("bar.png", surf, 2*vg.Inch, 2*vg.Inch)
		Expect(err).NotTo(HaveOccurred())

		path, err := w.WriteManifest()
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(dir, output.ManifestName)))

		manifest, err := output.ReadManifest(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(manifest.RunID).To(Equal(w.Manifest.RunID))
		Expect(manifest.Input).To(Equal(w.Manifest.Input))
		Expect(manifest.Files).To(Equal(w.Manifest.Files))
		Expect(manifest.Created.Equal(w.Manifest.Created)).To(BeTrue())
	})

	It("fails to read a missing manifest", func() {
		_, err := output.ReadManifest(filepath.Join(dir, "nope.json"))
		Expect(err).To(HaveOccurred())
	})
})
