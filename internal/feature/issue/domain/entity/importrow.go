package entity

import (
	"strconv"
	"time"
)

// CellKind tags the runtime type of a spreadsheet cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
	CellBool
	CellTime
)

// Cell is a tagged-union spreadsheet value. Spreadsheet rows arrive loosely
// typed: dates may be display strings, day-count serials, or native dates;
// booleans may be strings, numbers, or native booleans. Each field of an
// import row carries its source kind so normalization can branch explicitly
// instead of relying on runtime type inspection.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
	Bool bool
	Time time.Time
}

// EmptyCell is the absent-value cell.
var EmptyCell = Cell{Kind: CellEmpty}

// StringCell wraps a string value.
func StringCell(s string) Cell { return Cell{Kind: CellString, Str: s} }

// NumberCell wraps a numeric value.
func NumberCell(n float64) Cell { return Cell{Kind: CellNumber, Num: n} }

// BoolCell wraps a native boolean value.
func BoolCell(b bool) Cell { return Cell{Kind: CellBool, Bool: b} }

// TimeCell wraps a native date value.
func TimeCell(t time.Time) Cell { return Cell{Kind: CellTime, Time: t} }

// IsFalsy reports whether the cell counts as absent for required-field
// validation: empty cells, empty strings, the number 0, false, and the zero
// time are all falsy.
func (c Cell) IsFalsy() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellString:
		return c.Str == ""
	case CellNumber:
		return c.Num == 0
	case CellBool:
		return !c.Bool
	case CellTime:
		return c.Time.IsZero()
	}
	return true
}

// AsString renders the cell as text, used both for ticker normalization and
// as the degraded fallback stringification of unexpected date inputs.
func (c Cell) AsString() string {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case CellBool:
		return strconv.FormatBool(c.Bool)
	case CellTime:
		return c.Time.Format("06/01/02")
	}
	return ""
}

// ImportRow is one spreadsheet row mapped onto the recognized columns.
// RowNum is the 1-based position in the source file, headers included,
// for error reporting.
type ImportRow struct {
	RowNum   int
	Ticker   Cell
	Date     Cell
	Title    Cell
	Content  Cell
	Source   Cell
	IsCMS    Cell
	Keywords Cell
}

// ImportRecord is a fully typed, validated issue-creation record produced
// from an accepted row.
type ImportRecord struct {
	Ticker   string
	Date     string
	Title    string
	Content  string
	Source   string
	IsCMS    bool
	Keywords []string
}

// RowError describes why one row was rejected.
type RowError struct {
	RowNum int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportReport summarizes a bulk import for the operator. The four
// categories are mutually distinct and all present even when zero.
type ImportReport struct {
	Inserted   int      `json:"inserted"`
	Skipped    int      `json:"skipped"`
	Duplicates int      `json:"duplicates"`
	// SkippedTickers lists the tickers that matched no stock, as a distinct
	// class of feedback from validation rejection.
	SkippedTickers []string   `json:"skippedTickers"`
	Errors         []RowError `json:"errors"`
}
