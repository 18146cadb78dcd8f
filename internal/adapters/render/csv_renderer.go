// Package render implements document renderers for report table data.
package render

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/chiplogistics/pricing_backend/internal/core/ports/providers"
)

// CSVRenderer renders report tables as UTF-8 CSV files.
type CSVRenderer struct{}

// NewCSVRenderer creates a new CSV document renderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

var _ providers.DocumentRenderer = (*CSVRenderer)(nil)

// RenderTable writes every table row, including the blank separator row, as a
// CSV record.
func (r *CSVRenderer) RenderTable(table domain.TableData) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, row := range table.Cells {
		// encoding/csv rejects zero-field records, keep the separator line.
		if len(row) == 0 {
			row = []string{""}
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write report row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush report: %w", err)
	}
	return buf.Bytes(), nil
}

// FileExtension returns the extension rendered files carry.
func (r *CSVRenderer) FileExtension() string {
	return "csv"
}
