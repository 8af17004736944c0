// Package xlsx converts spreadsheet files into loosely-typed import rows.
package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"dashboard_backend/internal/feature/issue/domain/entity"
)

// recognized maps header names to setters on ImportRow. Unrecognized
// columns are ignored.
var recognized = map[string]func(*entity.ImportRow, entity.Cell){
	"ticker":   func(r *entity.ImportRow, c entity.Cell) { r.Ticker = c },
	"date":     func(r *entity.ImportRow, c entity.Cell) { r.Date = c },
	"title":    func(r *entity.ImportRow, c entity.Cell) { r.Title = c },
	"content":  func(r *entity.ImportRow, c entity.Cell) { r.Content = c },
	"source":   func(r *entity.ImportRow, c entity.Cell) { r.Source = c },
	"is_cms":   func(r *entity.ImportRow, c entity.Cell) { r.IsCMS = c },
	"keywords": func(r *entity.ImportRow, c entity.Cell) { r.Keywords = c },
}

// ReadRows parses the first sheet of an xlsx stream into import rows.
// The first row must be headers. Cell values keep their source kind:
// date-formatted numeric cells surface as raw day-count serials, boolean
// cells as native booleans, text as strings.
func ReadRows(r io.Reader) ([]entity.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	sheet := sheets[0]

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	// Header row: column index → setter.
	columns := map[int]func(*entity.ImportRow, entity.Cell){}
	for idx, header := range raw[0] {
		if setter, ok := recognized[strings.ToLower(strings.TrimSpace(header))]; ok {
			columns[idx] = setter
		}
	}

	rows := make([]entity.ImportRow, 0, len(raw)-1)
	for i, cells := range raw[1:] {
		rowNum := i + 2 // 1-based, after the header row
		row := entity.ImportRow{
			RowNum:   rowNum,
			Ticker:   entity.EmptyCell,
			Date:     entity.EmptyCell,
			Title:    entity.EmptyCell,
			Content:  entity.EmptyCell,
			Source:   entity.EmptyCell,
			IsCMS:    entity.EmptyCell,
			Keywords: entity.EmptyCell,
		}
		for idx, setter := range columns {
			if idx >= len(cells) {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(idx+1, rowNum)
			if err != nil {
				return nil, err
			}
			ctype, err := f.GetCellType(sheet, axis)
			if err != nil {
				return nil, err
			}
			setter(&row, classifyCell(cells[idx], ctype))
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// classifyCell maps a raw cell value plus its stored type onto the
// tagged-union cell the import parser expects.
func classifyCell(raw string, ctype excelize.CellType) entity.Cell {
	if raw == "" {
		return entity.EmptyCell
	}
	switch ctype {
	case excelize.CellTypeBool:
		return entity.BoolCell(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return entity.StringCell(raw)
	case excelize.CellTypeDate:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return entity.NumberCell(n)
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return entity.TimeCell(t)
		}
		return entity.StringCell(raw)
	default:
		// Numeric cells carry no explicit type attribute in the file.
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return entity.NumberCell(n)
		}
		return entity.StringCell(raw)
	}
}
