package regions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"surveypipe/internal/dataset"
	"surveypipe/internal/errors"
)

// KeyColumn is the postal-code column the regional lookup is keyed on
// after loading.
const KeyColumn = "region_plz"

// columnRenames maps the source columns of the regional reference file to
// their output names, in output column order. PLZ is the join key, the
// rest are the regional attributes appended to the merged dataset.
var columnRenames = []struct {
	From string
	To   string
}{
	{"PLZ", "region_plz"},
	{"Bundesland", "federal_state"},
	{"Kreis", "district"},
	{"Stadt.Dummy", "is_city"},
	{"EW.km2", "population_density"},
	{"Rural.Dummy", "is_rural"},
	{"EW", "population"},
	{"Metropol.Dummy", "is_metropolitan"},
}

// AttributeColumns returns the regional attribute columns in the order
// they are appended to the merged dataset. The join key is excluded.
func AttributeColumns() []string {
	out := make([]string, 0, len(columnRenames)-1)
	for _, r := range columnRenames {
		if r.To == KeyColumn {
			continue
		}
		out = append(out, r.To)
	}
	return out
}

// LoadStats describes what the loader did to the raw reference file.
type LoadStats struct {
	Encoding      dataset.Encoding
	RawRows       int
	RawCols       int
	ArtifactCols  int
	EmptyCols     int
	DuplicatePLZs int
	MissingPLZs   int
}

// Load reads the regional reference file and prepares it for joining:
// spreadsheet-artifact and fully empty columns are removed, rows are
// deduplicated by postal code keeping the first occurrence, and the
// surviving columns are projected and renamed to their output names. Rows
// without a postal code are dropped. A missing source column is fatal.
func Load(ctx context.Context, logger *slog.Logger, path string) (*dataset.Table, *LoadStats, error) {
	raw, encoding, err := dataset.ReadCSVWithFallback(path)
	if err != nil {
		return nil, nil, err
	}

	stats := &LoadStats{
		Encoding: encoding,
		RawRows:  raw.NumRows(),
		RawCols:  raw.NumCols(),
	}

	stats.ArtifactCols = dropArtifactColumns(raw)
	stats.EmptyCols = dropEmptyColumns(raw)

	for _, r := range columnRenames {
		if !raw.HasColumn(r.From) {
			return nil, nil, errors.NewValidationError(
				fmt.Sprintf("regional reference file is missing column %q", r.From))
		}
	}

	table, err := dedupeByPostalCode(raw, stats)
	if err != nil {
		return nil, nil, err
	}

	logger.InfoContext(ctx, "loaded regional reference data",
		slog.String("path", path),
		slog.String("encoding", string(encoding)),
		slog.Int("raw_rows", stats.RawRows),
		slog.Int("unique_postal_codes", table.NumRows()),
		slog.Int("duplicate_rows_dropped", stats.DuplicatePLZs),
		slog.Int("rows_without_postal_code", stats.MissingPLZs))

	return table, stats, nil
}

// dropArtifactColumns removes columns with blank names or the "Unnamed"
// prefix that spreadsheet exports leave behind. Returns the count removed.
func dropArtifactColumns(t *dataset.Table) int {
	dropped := 0
	for _, name := range t.Columns() {
		if strings.TrimSpace(name) == "" || strings.HasPrefix(name, "Unnamed") {
			t.DropColumn(name)
			dropped++
		}
	}
	return dropped
}

// dropEmptyColumns removes columns whose every cell is missing.
func dropEmptyColumns(t *dataset.Table) int {
	dropped := 0
	for _, name := range t.Columns() {
		count, err := t.NonMissingCount(name)
		if err != nil {
			continue
		}
		if count == 0 {
			t.DropColumn(name)
			dropped++
		}
	}
	return dropped
}

// dedupeByPostalCode projects the reference table onto the renamed output
// columns, keeping the first row seen for each postal code and dropping
// rows without one.
func dedupeByPostalCode(raw *dataset.Table, stats *LoadStats) (*dataset.Table, error) {
	names := make([]string, len(columnRenames))
	sources := make([][]string, len(columnRenames))
	for i, r := range columnRenames {
		names[i] = r.To
		values, err := raw.Column(r.From)
		if err != nil {
			return nil, err
		}
		sources[i] = values
	}

	table := dataset.New(names)
	seen := make(map[string]bool, raw.NumRows())
	row := make([]string, len(columnRenames))
	for i := 0; i < raw.NumRows(); i++ {
		plz := sources[0][i]
		if dataset.IsMissing(plz) {
			stats.MissingPLZs++
			continue
		}
		if seen[plz] {
			stats.DuplicatePLZs++
			continue
		}
		seen[plz] = true
		for j := range sources {
			row[j] = sources[j][i]
		}
		if err := table.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return table, nil
}
