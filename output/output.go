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

package output

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/penny-vault/indicharts/charts"
	"github.com/penny-vault/indicharts/common"
	"github.com/penny-vault/indicharts/data"
	"github.com/rs/zerolog/log"
	"github.com/zeebo/blake3"
	"gonum.org/v1/plot/vg"
)

// ManifestName is the file the manifest is written to inside the output
// directory
const ManifestName = "manifest.json"

// Input describes the table a run was rendered from
type Input struct {
	Path   string `json:"path"`
	Blake3 string `json:"blake3"`
	Rows   int    `json:"rows"`
}

// File describes one rendered image
type File struct {
	Name   string `json:"name"`
	Blake3 string `json:"blake3"`
	Bytes  int    `json:"bytes"`
	Width  int    `json:"width_px"`
	Height int    `json:"height_px"`
}

// Manifest records everything produced by a single run
type Manifest struct {
	RunID   uuid.UUID `json:"run_id"`
	Created time.Time `json:"created"`
	Version string    `json:"version"`
	Input   Input     `json:"input"`
	Files   []File    `json:"files"`
}

// Writer renders charts into a directory and keeps the manifest for the run
type Writer struct {
	Dir      string
	Manifest *Manifest
}

// NewWriter creates dir if needed and starts a manifest for a run over input
func NewWriter(dir string, input *data.Dataset) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	manifest := &Manifest{
		RunID:   uuid.New(),
		Created: time.Now().UTC(),
		Version: common.CurrentVersion.String(),
		Files:   []File{},
	}
	if input != nil {
		manifest.Input = Input{
			Path:   input.Path,
			Blake3: input.Digest,
			Rows:   len(input.Records),
		}
	}

	return &Writer{
		Dir:      dir,
		Manifest: manifest,
	}, nil
}

// WritePNG rasterizes d at the given size and saves it as name inside the
// output directory
func (w *Writer) WritePNG(name string, d charts.Drawer, width, height vg.Length) (string, error) {
	buf := &bytes.Buffer{}
	if err := charts.EncodePNG(buf, d, width, height); err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}

	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}

	sum := blake3.Sum256(buf.Bytes())
	file := File{
		Name:   name,
		Blake3: hex.EncodeToString(sum[:]),
		Bytes:  buf.Len(),
		Width:  pixels(width),
		Height: pixels(height),
	}
	w.Manifest.Files = append(w.Manifest.Files, file)

	log.Info().Str("Path", path).Int("Bytes", file.Bytes).Msg("wrote image")
	return path, nil
}

// Paths returns the full path of every image written so far, in order
func (w *Writer) Paths() []string {
	paths := make([]string, len(w.Manifest.Files))
	for idx, file := range w.Manifest.Files {
		paths[idx] = filepath.Join(w.Dir, file.Name)
	}
	return paths
}

// WriteManifest saves the manifest as indented JSON and returns its path
func (w *Writer) WriteManifest() (string, error) {
	body, err := json.MarshalIndent(w.Manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}

	path := filepath.Join(w.Dir, ManifestName)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}

	log.Info().Str("Path", path).Str("RunID", w.Manifest.RunID.String()).Int("NumFiles", len(w.Manifest.Files)).Msg("wrote manifest")
	return path, nil
}

// ReadManifest loads a manifest written by WriteManifest
func ReadManifest(path string) (*Manifest, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{}
	if err := json.Unmarshal(body, manifest); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return manifest, nil
}

func pixels(l vg.Length) int {
	return int(l/vg.Inch*charts.DPI + 0.5)
}
