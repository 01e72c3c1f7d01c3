package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/shaibs3/resepgen/internal/db_model"
)

// ErrInputNotFound is returned when the source dataset does not exist
var ErrInputNotFound = errors.New("input file not found")

const (
	nameColumn  = "name"
	imageColumn = "image"

	// missingName is what an NA name cell stringifies to in the source tooling
	missingName = "nan"
)

// naTokens are the cell values read as missing, the default NA set of pandas.read_csv
var naTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// cell returns record[i], or ok=false when the row is short or the value is an NA token
func cell(record []string, i int) (string, bool) {
	if i >= len(record) {
		return "", false
	}
	if _, na := naTokens[record[i]]; na {
		return "", false
	}
	return record[i], true
}

// LoadSource reads the nutrition dataset at path, keeping only name and image.
func LoadSource(path string) ([]db_model.SourceRow, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ReadSource(f)
}

// ReadSource parses CSV source rows from r
func ReadSource(r io.Reader) ([]db_model.SourceRow, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	// short rows are padded with NA, long rows are rejected below
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("source has no header row")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	nameIdx, imageIdx := -1, -1
	for i, col := range header {
		switch {
		case col == nameColumn && nameIdx < 0:
			nameIdx = i
		case col == imageColumn && imageIdx < 0:
			imageIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("missing required column %q", nameColumn)
	}
	if imageIdx < 0 {
		return nil, fmt.Errorf("missing required column %q", imageColumn)
	}

	var rows []db_model.SourceRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+1, err)
		}

		if len(record) > len(header) {
			return nil, fmt.Errorf("failed to read row %d: expected %d fields, saw %d",
				len(rows)+1, len(header), len(record))
		}

		name, ok := cell(record, nameIdx)
		if !ok {
			name = missingName
		}
		image, _ := cell(record, imageIdx)
		rows = append(rows, db_model.SourceRow{
			Name:  name,
			Image: image,
		})
	}

	return rows, nil
}
