package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"surveypipe/internal/errors"
)

// WriteCSV writes the table to a CSV file, header first, with a UTF-8 BOM
// for spreadsheet compatibility. Existing files are truncated, so
// re-running a stage on unchanged inputs produces identical bytes.
func WriteCSV(path string, t *Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to create %s", filepath.Base(path)), err)
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return errors.NewStorageError("failed to write BOM", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Columns()); err != nil {
		return errors.NewStorageError("failed to write header row", err)
	}
	for i := 0; i < t.NumRows(); i++ {
		if err := writer.Write(t.Row(i)); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to write row %d", i), err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush CSV output", err)
	}
	return nil
}
