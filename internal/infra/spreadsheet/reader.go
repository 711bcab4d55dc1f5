// Package spreadsheet decodes uploaded CSV and XLSX files into header-keyed rows.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var ErrEmptyFile = errors.New("file has no header row")

// DetectFormat picks the decoder from the file extension. Anything that is
// not .xlsx or .xls is treated as CSV.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// Table is a decoded sheet. Headers are trimmed and lowercased and keep their
// file order, duplicates included. Lookups by name use the first column
// carrying that header.
type Table struct {
	Headers []string
	frame   dataframe.DataFrame
	index   map[string]int
	rows    int
}

func (t *Table) Len() int {
	return t.rows
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Value returns the cell of column name in row i, or "" when the column is absent.
func (t *Table) Value(i int, name string) string {
	col, ok := t.index[name]
	if !ok || i < 0 || i >= t.rows {
		return ""
	}
	return t.frame.Elem(i, col).String()
}

// Read decodes r according to the extension of filename.
func Read(filename string, r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	var records [][]string
	switch DetectFormat(filename) {
	case FormatXLSX:
		records, err = readXLSX(data)
	default:
		records, err = readCSV(data)
	}
	if err != nil {
		return nil, err
	}

	return newTable(records)
}

func readCSV(data []byte) ([][]string, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	return records, nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func newTable(records [][]string) (*Table, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, ErrEmptyFile
	}

	headers := make([]string, len(records[0]))
	index := make(map[string]int, len(headers))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
		if _, seen := index[headers[i]]; !seen && headers[i] != "" {
			index[headers[i]] = i
		}
	}

	t := &Table{Headers: headers, index: index}
	if len(records) == 1 {
		return t, nil
	}

	body := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]string, len(headers))
		for i := range headers {
			if i < len(rec) {
				row[i] = strings.TrimSpace(rec[i])
			}
		}
		body = append(body, row)
	}

	// gota renames duplicate and empty headers, so columns are addressed by
	// position from here on.
	df := dataframe.LoadRecords(
		append([][]string{headers}, body...),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("build frame: %w", df.Err)
	}

	filled := make([]dataframe.F, len(headers))
	for i := range headers {
		filled[i] = dataframe.F{Colidx: i, Comparator: series.Neq, Comparando: ""}
	}
	df = df.Filter(filled...)
	if df.Err != nil {
		return nil, fmt.Errorf("drop blank rows: %w", df.Err)
	}

	t.frame = df
	t.rows = df.Nrow()
	return t, nil
}
