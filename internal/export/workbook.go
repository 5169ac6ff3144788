// ABOUTME: Exports saved favorites to an .xlsx workbook with excelize.
// ABOUTME: One row per favorite in store order, ingredients one per line within a cell.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/2389-research/cocktail/internal/models"
)

// SheetName is the worksheet holding the favorites table.
const SheetName = "Favorites"

// Header is the first row of the favorites sheet.
var Header = []string{"ID", "Name", "Category", "Alcoholic", "Glass", "Ingredients", "Instructions", "Thumbnail"}

var colWidths = []float64{10, 28, 20, 16, 20, 36, 60, 40}

// WriteWorkbook writes entries as a workbook to w.
func WriteWorkbook(w io.Writer, entries []models.FavoriteEntry) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create cell style: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("failed to open stream writer: %w", err)
	}
	for i, width := range colWidths {
		if err := sw.SetColWidth(i+1, i+1, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: h}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range entries {
		row := []interface{}{
			e.ID,
			e.Name,
			e.Category,
			e.Alcoholic,
			e.Glass,
			excelize.Cell{StyleID: wrapStyle, Value: strings.Join(e.Ingredients, "\n")},
			excelize.Cell{StyleID: wrapStyle, Value: e.Instructions},
			e.Thumbnail,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
