package regions

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"surveypipe/internal/dataset"
	"surveypipe/internal/errors"
)

// maxUnmatchedExamples caps how many distinct unmatched postal codes the
// merge summary reports.
const maxUnmatchedExamples = 10

// Merger runs stage 2 of the pipeline: joining regional attributes onto
// the cleaned dataset by postal code.
type Merger struct {
	logger   *slog.Logger
	progress io.Writer
}

// NewMerger creates a merger. The progress writer receives the
// operational narrative; pass io.Discard to silence it.
func NewMerger(logger *slog.Logger, progress io.Writer) *Merger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Merger{logger: logger, progress: progress}
}

// MergeStats summarizes a merge run.
type MergeStats struct {
	TotalRows     int
	MatchedRows   int
	UnmatchedRows int
	MissingZips   int

	// UnmatchedExamples holds up to maxUnmatchedExamples distinct postal
	// codes that had no regional match, in first-seen order.
	UnmatchedExamples []string
}

// Run loads the regional reference file and left-joins its attribute
// columns onto the cleaned dataset. Every cleaned row survives; rows
// whose postal code has no regional match get missing attributes. The
// cleaned table is extended in place and returned.
func (m *Merger) Run(ctx context.Context, cleaned *dataset.Table, regionsPath string) (*dataset.Table, *MergeStats, error) {
	m.banner("REGIONAL DATA MERGE PIPELINE")

	fmt.Fprintf(m.progress, "\n1. Loading cleaned data...\n")
	withZip, err := cleaned.NonMissingCount("zip_code")
	if err != nil {
		return nil, nil, err
	}
	fmt.Fprintf(m.progress, "   Loaded %d observations, %d with zip code\n",
		cleaned.NumRows(), withZip)

	fmt.Fprintf(m.progress, "\n2. Loading regional data...\n")
	lookup, loadStats, err := Load(ctx, m.logger, regionsPath)
	if err != nil {
		return nil, nil, err
	}
	fmt.Fprintf(m.progress, "   Loaded %d rows, %d columns (encoding: %s)\n",
		loadStats.RawRows, loadStats.RawCols, loadStats.Encoding)
	fmt.Fprintf(m.progress, "   Unique postal codes after deduplication: %d\n", lookup.NumRows())

	fmt.Fprintf(m.progress, "\n3. Merging regional variables by zip code...\n")
	stats, err := m.join(cleaned, lookup)
	if err != nil {
		return nil, nil, err
	}

	m.printSummary(stats)
	m.logger.InfoContext(ctx, "merged regional data",
		slog.Int("rows", stats.TotalRows),
		slog.Int("matched", stats.MatchedRows),
		slog.Int("unmatched", stats.UnmatchedRows),
		slog.Int("missing_zip_codes", stats.MissingZips))

	return cleaned, stats, nil
}

// join appends the regional attribute columns to the cleaned table via a
// left join on the postal code.
func (m *Merger) join(cleaned, lookup *dataset.Table) (*MergeStats, error) {
	zips, err := cleaned.Column("zip_code")
	if err != nil {
		return nil, err
	}

	keys, err := lookup.Column(KeyColumn)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]int, len(keys))
	for i, key := range keys {
		canon := canonicalKey(key)
		if canon == "" {
			continue
		}
		if _, seen := byKey[canon]; !seen {
			byKey[canon] = i
		}
	}

	attributes := AttributeColumns()
	columns := make(map[string][]string, len(attributes))
	for _, name := range attributes {
		values, err := lookup.Column(name)
		if err != nil {
			return nil, err
		}
		columns[name] = values
	}

	stats := &MergeStats{TotalRows: len(zips)}
	seenUnmatched := make(map[string]bool)
	appended := make(map[string][]string, len(attributes))
	for _, name := range attributes {
		appended[name] = make([]string, len(zips))
	}

	for i, zip := range zips {
		if dataset.IsMissing(zip) {
			stats.MissingZips++
			stats.UnmatchedRows++
			continue
		}
		idx, ok := byKey[canonicalKey(zip)]
		if !ok {
			stats.UnmatchedRows++
			if !seenUnmatched[zip] {
				seenUnmatched[zip] = true
				if len(stats.UnmatchedExamples) < maxUnmatchedExamples {
					stats.UnmatchedExamples = append(stats.UnmatchedExamples, zip)
				}
			}
			continue
		}
		stats.MatchedRows++
		for _, name := range attributes {
			appended[name][i] = columns[name][idx]
		}
	}

	for _, name := range attributes {
		if err := cleaned.AddColumn(name, appended[name]); err != nil {
			return nil, errors.NewValidationError(
				fmt.Sprintf("cannot append regional column %q: %v", name, err))
		}
	}
	return stats, nil
}

// canonicalKey normalizes a postal code for matching. Numeric codes lose
// leading zeros and any decimal residue from spreadsheet exports, so
// "01067", "1067" and "1067.0" all match the same region. Non-numeric
// codes match on their trimmed text.
func canonicalKey(cell string) string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return ""
	}
	if f, ok := dataset.ParseNumber(s); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s
}

func (m *Merger) printSummary(stats *MergeStats) {
	m.banner("MERGE SUMMARY")
	pct := 0.0
	if stats.TotalRows > 0 {
		pct = float64(stats.MatchedRows) / float64(stats.TotalRows) * 100
	}
	fmt.Fprintf(m.progress, "\nObservations: %d\n", stats.TotalRows)
	fmt.Fprintf(m.progress, "Matched to a region: %d (%.1f%%)\n", stats.MatchedRows, pct)
	fmt.Fprintf(m.progress, "Unmatched: %d (of which %d without a zip code)\n",
		stats.UnmatchedRows, stats.MissingZips)
	if len(stats.UnmatchedExamples) > 0 {
		fmt.Fprintf(m.progress, "\nWARNING: some zip codes had no regional match, e.g.: %s\n",
			strings.Join(stats.UnmatchedExamples, ", "))
	}
}

func (m *Merger) banner(title string) {
	line := strings.Repeat("=", 80)
	fmt.Fprintf(m.progress, "\n%s\n%s\n%s\n", line, title, line)
}
