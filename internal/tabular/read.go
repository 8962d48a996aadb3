// Package tabular reads and writes the CSV and XLSX sheets used for prospect
// lists and report exports.
package tabular

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// Options configures sheet reading.
type Options struct {
	SheetIndex int    // XLSX only, default 0
	SheetName  string // XLSX only, overrides SheetIndex
	Comment    rune   // CSV only, 0 = none
}

// Table is a header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Index returns the column index of name, matched case-insensitively with
// surrounding space ignored, or -1.
func (t *Table) Index(name string) int {
	name = normalizeHeader(name)
	for i, h := range t.Header {
		if normalizeHeader(h) == name {
			return i
		}
	}
	return -1
}

// Get returns the trimmed cell in row for column name, or "" when either is
// missing.
func (t *Table) Get(row []string, name string) string {
	i := t.Index(name)
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// ReadFile reads a .csv or .xlsx file by extension. The first row is the
// header. Fully blank rows are dropped.
func ReadFile(path string, opts Options) (*Table, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "tabular: open %s", path)
		}
		defer f.Close() //nolint:errcheck
		rows, err = ReadCSV(f, opts)
	case ".xlsx":
		rows, err = ReadXLSX(path, opts)
	default:
		return nil, eris.Errorf("tabular: unsupported file type %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, eris.Errorf("tabular: %s has no header row", path)
	}
	t := &Table{Header: rows[0]}
	for _, r := range rows[1:] {
		if !blank(r) {
			t.Rows = append(t.Rows, r)
		}
	}
	return t, nil
}

// ReadCSV reads every record from r. Fields are trimmed and rows may have a
// variable number of fields.
func ReadCSV(r io.Reader, opts Options) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if opts.Comment != 0 {
		reader.Comment = opts.Comment
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, eris.Wrap(err, "tabular: read csv row")
		}
		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}
		rows = append(rows, record)
	}
}

// ReadXLSX reads every row of one sheet as strings.
func ReadXLSX(path string, opts Options) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "tabular: open xlsx")
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		rows = append(rows, rowToStrings(row))
	}
	return rows, nil
}

func getSheet(f *xlsx.File, opts Options) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("tabular: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex < 0 || opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("tabular: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}

	return f.Sheets[opts.SheetIndex], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = strings.TrimSpace(cell.String())
	}
	return cells
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
