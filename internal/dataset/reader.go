package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"surveypipe/internal/errors"
)

// utf8BOM is the byte-order mark some exports prepend for Excel.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encoding identifies a supported character encoding for delimited inputs.
type Encoding string

const (
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "latin-1"
	EncodingCP1252 Encoding = "cp1252"
)

// FallbackEncodings is the fixed order in which encodings are tried when a
// file is not valid UTF-8. Region exports come from spreadsheet tools that
// save German umlauts in legacy code pages.
var FallbackEncodings = []Encoding{EncodingUTF8, EncodingLatin1, EncodingCP1252}

// ReadTable reads a tabular file, dispatching on extension: .xlsx inputs
// are read with excelize, everything else as UTF-8 CSV. The first row is
// the header.
func ReadTable(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path)
	}
	return ReadCSV(path)
}

// ReadCSV reads a UTF-8 CSV file into a table.
func ReadCSV(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to read %s", filepath.Base(path)), err)
	}
	decoded, err := decode(data, EncodingUTF8)
	if err != nil {
		return nil, errors.NewEncodingError(fmt.Sprintf("%s is not valid UTF-8", filepath.Base(path)), err)
	}
	return parseCSV(decoded, path)
}

// ReadCSVWithFallback reads a CSV file, trying each encoding in
// FallbackEncodings order and stopping at the first that decodes without
// error. Exhausting the chain is fatal.
func ReadCSVWithFallback(path string) (*Table, Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errors.NewStorageError(fmt.Sprintf("failed to read %s", filepath.Base(path)), err)
	}

	var lastErr error
	for _, enc := range FallbackEncodings {
		decoded, err := decode(data, enc)
		if err != nil {
			lastErr = err
			continue
		}
		table, err := parseCSV(decoded, path)
		if err != nil {
			lastErr = err
			continue
		}
		return table, enc, nil
	}

	return nil, "", errors.NewEncodingError(
		fmt.Sprintf("all fallback encodings failed for %s", filepath.Base(path)), lastErr)
}

// ReadXLSX reads the first sheet of a spreadsheet into a table.
func ReadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open %s", filepath.Base(path)), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewParsingError(fmt.Sprintf("%s contains no sheets", filepath.Base(path)), nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read sheet %q", sheets[0]), err)
	}
	if len(rows) == 0 {
		return nil, errors.NewParsingError(fmt.Sprintf("%s has no header row", filepath.Base(path)), nil)
	}

	table := New(rows[0])
	for _, row := range rows[1:] {
		// excelize trims trailing empty cells; AppendRow pads them back.
		if err := table.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// decode converts raw file bytes to UTF-8 text under the given encoding.
func decode(data []byte, enc Encoding) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	switch enc {
	case EncodingUTF8:
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("invalid UTF-8 byte sequence")
		}
		return data, nil
	case EncodingLatin1:
		return decodeCharmap(data, charmap.ISO8859_1)
	case EncodingCP1252:
		return decodeCharmap(data, charmap.Windows1252)
	default:
		return nil, fmt.Errorf("unsupported encoding %q", enc)
	}
}

func decodeCharmap(data []byte, cm *charmap.Charmap) ([]byte, error) {
	decoded, err := io.ReadAll(cm.NewDecoder().Reader(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

// parseCSV parses decoded CSV text. The first record is the header; every
// data record must have the header's field count.
func parseCSV(data []byte, path string) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewParsingError(fmt.Sprintf("%s is empty", filepath.Base(path)), nil)
	}
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read header of %s", filepath.Base(path)), err)
	}

	table := New(header)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("malformed row in %s", filepath.Base(path)), err)
		}
		if err := table.AppendRow(record); err != nil {
			return nil, err
		}
	}
	return table, nil
}
