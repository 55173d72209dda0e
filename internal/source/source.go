// Package source streams header-keyed records from delimited tabular files.
// Files exported from spreadsheets often open with a UTF-8 byte-order
// marker and carry ragged rows; both are tolerated here so the loader only
// sees clean column access.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/petwell/petbase/pkg/types"
)

const utf8BOM = "\uFEFF"

// Record is one data row keyed by header name. Lookups on columns absent
// from the file read as "".
type Record map[string]string

// Get returns the trimmed cell value for a column.
func (r Record) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// ReadFile reads every record from a CSV file with a header row. A missing
// file is a precondition failure surfaced as types.ErrSourceMissing.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", types.ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := readAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

// readAll parses header plus data rows from r. Rows shorter than the
// header leave the missing columns empty; rows longer than the header drop
// the extra cells.
func readAll(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	header = stripHeaderBOM(header)

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// stripHeaderBOM removes a UTF-8 BOM from the first header cell if present.
func stripHeaderBOM(header []string) []string {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	return header
}
