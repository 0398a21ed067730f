// Package csvout renders a built table as CSV text. Field quoting and
// escaping are delegated to encoding/csv.
package csvout

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dxftools/dxftab/internal/table"
)

// Write renders the header and rows of t as CSV on w.
func Write(w io.Writer, t table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Render returns the CSV text for t, for callers that write a file atomically.
func Render(t table.Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
