package render_test

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/chiplogistics/pricing_backend/internal/adapters/render"
	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRenderer_RenderTable(t *testing.T) {
	renderer := render.NewCSVRenderer()
	table := domain.TableData{
		Cells: [][]string{
			{"Customer", "Item", "Quantity", "Total weight (kg)", "Price (USD)"},
			{"ACME Corp", "ESP32 devboard", "10", "21", "2303.5"},
			{},
			{"Total price (USD)", "2303.5"},
		},
		Cols: 5,
		Rows: 4,
	}

	data, err := renderer.RenderTable(table)

	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Customer,Item,Quantity,Total weight (kg),Price (USD)", lines[0])
	assert.Equal(t, "ACME Corp,ESP32 devboard,10,21,2303.5", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "Total price (USD),2303.5", lines[3])
}

func TestCSVRenderer_QuotesCellsWithSeparators(t *testing.T) {
	renderer := render.NewCSVRenderer()
	table := domain.TableData{
		Cells: [][]string{
			{"Smith, John", "Resistor \"0603\""},
		},
		Cols: 2,
		Rows: 1,
	}

	data, err := renderer.RenderTable(table)

	require.NoError(t, err)

	// Output stays parseable by a standard CSV reader.
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"Smith, John", "Resistor \"0603\""}, records[0])
}

func TestCSVRenderer_EmptyTable(t *testing.T) {
	renderer := render.NewCSVRenderer()

	data, err := renderer.RenderTable(domain.TableData{})

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestCSVRenderer_FileExtension(t *testing.T) {
	assert.Equal(t, "csv", render.NewCSVRenderer().FileExtension())
}
