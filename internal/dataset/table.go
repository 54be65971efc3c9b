package dataset

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"surveypipe/internal/errors"
)

// Missing is the cell value representing a missing observation.
const Missing = ""

// Table is an ordered, in-memory tabular dataset. Cells are strings and
// the empty string marks a missing value, matching how the survey exports
// represent absent answers.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New creates an empty table with the given column names.
func New(columns []string) *Table {
	t := &Table{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	copy(t.columns, columns)
	for i, name := range t.columns {
		t.index[name] = i
	}
	return t
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.columns)
}

// HasColumn reports whether a column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AppendRow adds a data row. Short rows are padded with missing values;
// rows longer than the header are rejected.
func (t *Table) AppendRow(row []string) error {
	if len(row) > len(t.columns) {
		return errors.NewParsingError(
			fmt.Sprintf("row has %d fields, table has %d columns", len(row), len(t.columns)), nil)
	}
	padded := make([]string, len(t.columns))
	copy(padded, row)
	t.rows = append(t.rows, padded)
	return nil
}

// Row returns the i-th data row. The returned slice is shared with the
// table and must not be modified.
func (t *Table) Row(i int) []string {
	return t.rows[i]
}

// Cell returns the value at row i of the named column. A missing column is
// a data-shape error and aborts the run.
func (t *Table) Cell(i int, name string) (string, error) {
	idx, ok := t.index[name]
	if !ok {
		return "", errors.NewValidationError(fmt.Sprintf("expected column %q is absent", name))
	}
	return t.rows[i][idx], nil
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) ([]string, error) {
	idx, ok := t.index[name]
	if !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("expected column %q is absent", name))
	}
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, nil
}

// SetCell overwrites the value at row i of the named column.
func (t *Table) SetCell(i int, name, value string) error {
	idx, ok := t.index[name]
	if !ok {
		return errors.NewValidationError(fmt.Sprintf("expected column %q is absent", name))
	}
	t.rows[i][idx] = value
	return nil
}

// AddColumn appends a new column with the given values. The value count
// must match the current row count.
func (t *Table) AddColumn(name string, values []string) error {
	if t.HasColumn(name) {
		return errors.NewValidationError(fmt.Sprintf("column %q already exists", name))
	}
	if len(values) != len(t.rows) {
		return errors.NewValidationError(
			fmt.Sprintf("column %q has %d values for %d rows", name, len(values), len(t.rows)))
	}
	t.index[name] = len(t.columns)
	t.columns = append(t.columns, name)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], values[i])
	}
	return nil
}

// DropColumn removes the named column. Dropping an absent column is a
// no-op.
func (t *Table) DropColumn(name string) {
	idx, ok := t.index[name]
	if !ok {
		return
	}
	t.columns = append(t.columns[:idx], t.columns[idx+1:]...)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i][:idx], t.rows[i][idx+1:]...)
	}
	t.index = make(map[string]int, len(t.columns))
	for i, col := range t.columns {
		t.index[col] = i
	}
}

// NonMissingCount returns the number of non-missing values in a column.
func (t *Table) NonMissingCount(name string) (int, error) {
	values, err := t.Column(name)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, v := range values {
		if v != Missing {
			count++
		}
	}
	return count, nil
}

// IsMissing reports whether a cell value represents a missing observation.
func IsMissing(value string) bool {
	return strings.TrimSpace(value) == Missing
}

// ParseNumber reports the numeric value of a cell. Missing and
// non-numeric cells report ok=false; they are never an error.
func ParseNumber(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == Missing {
		return 0, false
	}
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, false
	}
	return f, true
}
