package samples

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hypotest/internal/errors"
	"hypotest/internal/logging"

	"github.com/xuri/excelize/v2"
)

// Table is a header row plus data rows, as read from a CSV or XLSX file
type Table struct {
	Headers []string
	Rows    [][]string
}

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
	logger   *logging.Logger
}

// NewDataReader creates a reader for a CSV or XLSX file. sheet is only used
// for workbooks and defaults to Sheet1.
func NewDataReader(filePath, sheet string, logger *logging.Logger) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	if sheet == "" {
		sheet = "Sheet1"
	}
	return &DataReader{filePath: filePath, fileType: fileType, sheet: sheet, logger: logger}
}

// ReadTable reads the whole file
func (r *DataReader) ReadTable() (*Table, error) {
	r.logger.Debug("[DataReader] reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.InvalidInput("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, errors.InvalidInput("%s must have a header row and at least one data row", r.filePath)
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	r.logger.Debug("[DataReader] %s processed (%d columns, %d rows)", r.filePath, len(headers), len(rows)-1)
	return &Table{Headers: headers, Rows: rows[1:]}, nil
}

// ReadColumns returns the numeric values of two named columns. Blank cells
// are skipped independently, so the columns may differ in length. Use
// ReadPairs when rows must stay aligned.
func (r *DataReader) ReadColumns(colA, colB string) ([]float64, []float64, error) {
	table, err := r.ReadTable()
	if err != nil {
		return nil, nil, err
	}
	a, err := table.Column(colA)
	if err != nil {
		return nil, nil, err
	}
	b, err := table.Column(colB)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// ReadPairs returns two named columns row by row, keeping observations
// paired. A row blank in both columns is skipped; a row blank in only one
// is rejected.
func (r *DataReader) ReadPairs(colA, colB string) ([]float64, []float64, error) {
	table, err := r.ReadTable()
	if err != nil {
		return nil, nil, err
	}
	return table.Pairs(colA, colB)
}

// Column extracts one numeric column by header name
func (t *Table) Column(name string) ([]float64, error) {
	idx, err := t.index(name)
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(t.Rows))
	for rowIdx, row := range t.Rows {
		v, ok, err := t.cell(row, rowIdx, idx, name)
		if err != nil {
			return nil, err
		}
		if ok {
			values = append(values, v)
		}
	}
	return values, nil
}

// Pairs extracts two numeric columns keeping each row's values together
func (t *Table) Pairs(nameA, nameB string) ([]float64, []float64, error) {
	idxA, err := t.index(nameA)
	if err != nil {
		return nil, nil, err
	}
	idxB, err := t.index(nameB)
	if err != nil {
		return nil, nil, err
	}

	a := make([]float64, 0, len(t.Rows))
	b := make([]float64, 0, len(t.Rows))
	for rowIdx, row := range t.Rows {
		va, okA, err := t.cell(row, rowIdx, idxA, nameA)
		if err != nil {
			return nil, nil, err
		}
		vb, okB, err := t.cell(row, rowIdx, idxB, nameB)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case okA && okB:
			a = append(a, va)
			b = append(b, vb)
		case okA != okB:
			return nil, nil, errors.InvalidInput(
				"row %d: %q and %q must both be set or both be blank", rowIdx+2, nameA, nameB)
		}
	}
	return a, b, nil
}

func (t *Table) index(name string) (int, error) {
	for i, header := range t.Headers {
		if strings.EqualFold(header, name) {
			return i, nil
		}
	}
	return -1, errors.InvalidInput("column %q not found (have %s)", name, strings.Join(t.Headers, ", "))
}

// cell parses one cell; ok is false for a blank or missing cell
func (t *Table) cell(row []string, rowIdx, idx int, name string) (float64, bool, error) {
	if idx >= len(row) {
		return 0, false, nil
	}
	text := strings.TrimSpace(row[idx])
	if text == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// +2: header row and 1-based numbering
		return 0, false, errors.InvalidInput("column %q row %d: %q is not a number", name, rowIdx+2, text)
	}
	return v, true, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", r.sheet)
	}
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV file")
	}
	return rows, nil
}

// ParseList parses a comma, semicolon or whitespace separated list of numbers
func ParseList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.InvalidInput("%q is not a number", field)
		}
		values = append(values, v)
	}
	return values, nil
}

// InlineSource provides samples given directly as number lists
type InlineSource struct {
	A, B string
}

// Samples parses both lists
func (s InlineSource) Samples() ([]float64, []float64, error) {
	a, err := ParseList(s.A)
	if err != nil {
		return nil, nil, errors.Wrap(err, "sample 1")
	}
	b, err := ParseList(s.B)
	if err != nil {
		return nil, nil, errors.Wrap(err, "sample 2")
	}
	return a, b, nil
}

// FileSource provides samples from two columns of a CSV or XLSX file.
// Paired keeps rows aligned for tests on matched observations.
type FileSource struct {
	Reader     *DataReader
	ColA, ColB string
	Paired     bool
}

// Samples reads both columns
func (s FileSource) Samples() ([]float64, []float64, error) {
	if s.ColA == "" || s.ColB == "" {
		return nil, nil, errors.InvalidInput("both column names are required when reading from a file")
	}
	if s.Paired {
		return s.Reader.ReadPairs(s.ColA, s.ColB)
	}
	return s.Reader.ReadColumns(s.ColA, s.ColB)
}
