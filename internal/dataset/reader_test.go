package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeFixture(t, "responses.csv", []byte("ResponseId,Q179\nR_1,21-30 Stunden\nR_2,\n"))

	table, err := ReadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"ResponseId", "Q179"}, table.Columns())
	assert.Equal(t, 2, table.NumRows())
	assert.Equal(t, []string{"R_2", ""}, table.Row(1))
}

func TestReadCSV_BOM(t *testing.T) {
	path := writeFixture(t, "bom.csv", append([]byte{0xEF, 0xBB, 0xBF}, []byte("ResponseId\nR_1\n")...))

	table, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ResponseId"}, table.Columns())
}

func TestReadCSV_InvalidUTF8(t *testing.T) {
	// 0xFC is ü in latin-1, never valid as a lone UTF-8 byte
	path := writeFixture(t, "latin.csv", []byte{'a', '\n', 0xFC, '\n'})

	_, err := ReadCSV(path)
	assert.Error(t, err)
}

func TestReadCSVWithFallback(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantEnc  Encoding
		wantCell string
	}{
		{
			name:     "valid utf-8 wins first",
			data:     []byte("PLZ,Bundesland\n01067,Sachsen\n"),
			wantEnc:  EncodingUTF8,
			wantCell: "Sachsen",
		},
		{
			name:     "latin-1 umlaut falls through",
			data:     []byte{'P', 'L', 'Z', ',', 'B', '\n', '1', ',', 'T', 0xFC, 'r', '\n'},
			wantEnc:  EncodingLatin1,
			wantCell: "Tür",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, "regions.csv", tt.data)

			table, enc, err := ReadCSVWithFallback(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEnc, enc)
			cell := table.Row(0)[len(table.Row(0))-1]
			assert.Equal(t, tt.wantCell, cell)
		})
	}
}

func TestReadCSVWithFallback_MissingFile(t *testing.T) {
	_, _, err := ReadCSVWithFallback(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"ResponseId", "Q1"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"R_1", "Ja"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"R_2"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := ReadXLSX(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"ResponseId", "Q1"}, table.Columns())
	require.Equal(t, 2, table.NumRows())
	assert.Equal(t, []string{"R_2", ""}, table.Row(1), "short sheet rows are padded")
}

func TestReadTable_DispatchesOnExtension(t *testing.T) {
	path := writeFixture(t, "plain.csv", []byte("a\n1\n"))

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.NumRows())
}

func TestWriteCSV_RoundTripAndIdempotence(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")

	table := New([]string{"ResponseId", "zip_code"})
	require.NoError(t, table.AppendRow([]string{"R_1", "01067"}))
	require.NoError(t, table.AppendRow([]string{"R_2", ""}))

	require.NoError(t, WriteCSV(out, table))
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	require.NoError(t, WriteCSV(out, table))
	second, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, first, second, "re-writing unchanged data must be byte-identical")

	back, err := ReadCSV(out)
	require.NoError(t, err)
	assert.Equal(t, table.Columns(), back.Columns())
	assert.Equal(t, table.Row(0), back.Row(0))
	assert.Equal(t, table.Row(1), back.Row(1))
}
