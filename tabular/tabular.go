// Package tabular reads header-addressed CSV tables into memory. Tables are
// parsed whole before any transformation begins; a source that cannot be read
// or that lacks a header row fails the run outright.
package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/whosonfirst/go-reader/v2"
)

// Row maps column names to raw string values for a single record.
type Row map[string]string

// Get returns the trimmed value for 'col', or the empty string when the
// column is absent.
func (r Row) Get(col string) string {
	return strings.TrimSpace(r[col])
}

// Raw returns the value for 'col' without trimming.
func (r Row) Raw(col string) string {
	return r[col]
}

// Table is an ordered sequence of rows sharing one header.
type Table struct {
	Columns []string
	Rows    []Row
}

// ParseTable reads the whole of 'fh' as a UTF-8 CSV document with a header
// row. Rows shorter than the header leave the trailing columns absent; rows
// longer than the header have the extra values dropped.
func ParseTable(ctx context.Context, fh io.Reader) (*Table, error) {

	cr := csv.NewReader(fh)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()

	if err != nil {
		return nil, fmt.Errorf("Failed to parse table, %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("Failed to parse table, missing header row")
	}

	header := records[0]

	if len(header) > 0 {
		// Strip a UTF-8 byte order mark if the source was exported with one
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows := make([]Row, 0, len(records)-1)

	for _, rec := range records[1:] {

		row := make(Row, len(header))

		for i, col := range header {

			if i < len(rec) {
				row[col] = rec[i]
			}
		}

		rows = append(rows, row)
	}

	return &Table{
		Columns: header,
		Rows:    rows,
	}, nil
}

// LoadTable reads 'path' from 'r' and parses it as a CSV table.
func LoadTable(ctx context.Context, r reader.Reader, path string) (*Table, error) {

	fh, err := r.Read(ctx, path)

	if err != nil {
		return nil, fmt.Errorf("Failed to read %s, %w", path, err)
	}

	defer fh.Close()

	return ParseTable(ctx, fh)
}
