package samples

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"hypotest/internal/errors"
	"hypotest/internal/logging"
	"hypotest/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var (
	_ ports.SampleSource = InlineSource{}
	_ ports.SampleSource = FileSource{}
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseList(t *testing.T) {
	got, err := ParseList("25, 30;28 35\t40")
	require.NoError(t, err)
	assert.Equal(t, []float64{25, 30, 28, 35, 40}, got)

	got, err = ParseList("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseList("1,two,3")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))
}

func TestInlineSource(t *testing.T) {
	a, b, err := InlineSource{A: "80,75,85", B: "78,77,83"}.Samples()
	require.NoError(t, err)
	assert.Equal(t, []float64{80, 75, 85}, a)
	assert.Equal(t, []float64{78, 77, 83}, b)

	_, _, err = InlineSource{A: "1", B: "x"}.Samples()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample 2")
}

func TestDataReader_CSVColumns(t *testing.T) {
	path := writeCSV(t, "subject,before,after,note\n1,80,78,a\n2,75,77\n3,85,,c\n4,90,88,d\n")
	reader := NewDataReader(path, "", logging.Discard())

	a, b, err := reader.ReadColumns("before", "AFTER")
	require.NoError(t, err)
	assert.Equal(t, []float64{80, 75, 85, 90}, a)
	assert.Equal(t, []float64{78, 77, 88}, b)
}

func TestDataReader_CSVErrors(t *testing.T) {
	path := writeCSV(t, "a,b\n1,x\n")
	reader := NewDataReader(path, "", logging.Discard())

	_, _, err := reader.ReadColumns("a", "b")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "row 2")

	_, _, err = reader.ReadColumns("a", "missing")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))

	headerOnly := NewDataReader(writeCSV(t, "a,b\n"), "", logging.Discard())
	_, err = headerOnly.ReadTable()
	assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))

	_, err = NewDataReader(filepath.Join(t.TempDir(), "nope.csv"), "", logging.Discard()).ReadTable()
	assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))
}

func TestDataReader_XLSXColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.xlsx")

	f := excelize.NewFile()
	_, err := f.NewSheet("Trial")
	require.NoError(t, err)
	rows := [][]interface{}{
		{"group1", "group2"},
		{25, 20},
		{30, 26},
		{28, 32},
		{35, 29},
		{40, 33},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Trial", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	src := FileSource{Reader: NewDataReader(path, "Trial", logging.Discard()), ColA: "group1", ColB: "group2"}
	a, b, err := src.Samples()
	require.NoError(t, err)
	assert.Equal(t, []float64{25, 30, 28, 35, 40}, a)
	assert.Equal(t, []float64{20, 26, 32, 29, 33}, b)

	_, _, err = FileSource{Reader: src.Reader, ColA: "group1"}.Samples()
	assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))
}

func TestDataReader_PairsKeepRowsAligned(t *testing.T) {
	path := writeCSV(t, "before,after\n80,78\n,\n85,83\n82,85\n")
	src := FileSource{Reader: NewDataReader(path, "", logging.Discard()), ColA: "before", ColB: "after", Paired: true}

	a, b, err := src.Samples()
	require.NoError(t, err)
	assert.Equal(t, []float64{80, 85, 82}, a)
	assert.Equal(t, []float64{78, 83, 85}, b)
}

func TestDataReader_PairsRejectHalfBlankRows(t *testing.T) {
	path := writeCSV(t, "before,after\n80,78\n,77\n85,83\n90,\n82,85\n")
	reader := NewDataReader(path, "", logging.Discard())

	_, _, err := FileSource{Reader: reader, ColA: "before", ColB: "after", Paired: true}.Samples()
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "row 3")

	// unpaired reads still skip blanks column by column
	a, b, err := reader.ReadColumns("before", "after")
	require.NoError(t, err)
	assert.Equal(t, []float64{80, 85, 90, 82}, a)
	assert.Equal(t, []float64{78, 77, 83, 85}, b)
}
