package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// csvRows reads the full record grid from CSV bytes. Ragged rows are
// tolerated; short rows surface later as malformed game records.
func csvRows(raw []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}
