// Package spreadsheet writes and reads xlsx workbooks with excelize.
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Excel limits sheet names to 31 characters.
const maxSheetName = 31

var (
	ErrSheetNotFound = errors.New("worksheet not found")
	ErrEmptySheet    = errors.New("worksheet is empty")
	ErrMissingColumn = errors.New("required column missing")
)

// Sheet is a header row followed by data rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}

	// Widths by column letter, e.g. {"A": 25}
	ColWidths map[string]float64
}

// Render writes sheets, in order, into a new workbook and returns its bytes.
func Render(sheets ...Sheet) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, sheets...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Write(w io.Writer, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return errors.New("no sheets to write")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, sh := range sheets {
		name := sheetName(sh.Name)
		index, err := f.NewSheet(name)
		if err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}

		if err := writeRow(f, name, 1, toValues(sh.Header)); err != nil {
			return err
		}
		if len(sh.Header) > 0 {
			last, _ := excelize.CoordinatesToCellName(len(sh.Header), 1)
			if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
				return fmt.Errorf("failed to style header: %w", err)
			}
		}

		for r, row := range sh.Rows {
			if err := writeRow(f, name, r+2, row); err != nil {
				return err
			}
		}

		for col, width := range sh.ColWidths {
			if err := f.SetColWidth(name, col, col, width); err != nil {
				return fmt.Errorf("failed to set width of column %s: %w", col, err)
			}
		}
	}

	if !hasSheet(sheets, "Sheet1") {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("failed to remove default sheet: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %q: %w", row, sheet, err)
	}
	return nil
}

func toValues(header []string) []interface{} {
	out := make([]interface{}, len(header))
	for i, h := range header {
		out[i] = h
	}
	return out
}

func sheetName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Sheet1"
	}
	if r := []rune(name); len(r) > maxSheetName {
		return string(r[:maxSheetName])
	}
	return name
}

func hasSheet(sheets []Sheet, name string) bool {
	for _, sh := range sheets {
		if sheetName(sh.Name) == name {
			return true
		}
	}
	return false
}
