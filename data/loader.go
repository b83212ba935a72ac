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
	"bytes"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/penny-vault/indicharts/common"
	"github.com/rs/zerolog/log"
	"github.com/zeebo/blake3"
)

// Dataset is the fully loaded contents of an indicator table
type Dataset struct {
	Path    string
	Header  *Header
	Records []Record

	// Digest is the hex encoded blake3 hash of the file as stored on disk
	Digest string
}

// ReadRecords loads the table at path and returns every row in file order
func ReadRecords(path string) ([]Record, error) {
	ds, err := Load(path)
	if err != nil {
		return nil, err
	}
	return ds.Records, nil
}

// Load reads the entire file at path into memory and parses it. Files ending
// in .lz4 are decompressed first.
func Load(path string) (*Dataset, error) {
	subLog := log.With().Str("Path", path).Logger()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	sum := blake3.Sum256(raw)
	digest := hex.EncodeToString(sum[:])

	if strings.EqualFold(filepath.Ext(path), ".lz4") {
		subLog.Debug().Int("CompressedBytes", len(raw)).Msg("decompressing input")
		raw, err = common.Decompress(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %w", ErrIO, err)
		}
	}

	header, records, err := ParseRecords(bytes.NewReader(raw))
	if err != nil {
		subLog.Error().Err(err).Msg("could not parse input table")
		return nil, err
	}

	subLog.Debug().Int("NumRows", len(records)).Int("NumCols", len(header.names)).Str("Blake3", digest).Msg("loaded input table")

	return &Dataset{
		Path:    path,
		Header:  header,
		Records: records,
		Digest:  digest,
	}, nil
}

// ParseRecords reads a comma delimited table whose first row is the header.
// The header must name both the `Indicator Name` and `Year` columns. Every
// row must have exactly as many fields as the header.
func ParseRecords(r io.Reader) (*Header, []Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	names, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w: missing header row", ErrFormat)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: header: %w", ErrFormat, err)
	}

	if len(names) > 0 {
		names[0] = strings.TrimPrefix(names[0], "\ufeff")
	}

	header, err := NewHeader(names)
	if err != nil {
		return nil, nil, err
	}

	for _, required := range []string{IndicatorCol, YearCol} {
		if !header.Has(required) {
			return nil, nil, fmt.Errorf("%w: header is missing column %q", ErrFormat, required)
		}
	}

	records := make([]Record, 0, 256)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}

		rec, err := NewRecord(header, row)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return header, records, nil
}
