package dictionary

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"surveypipe/internal/dataset"
	"surveypipe/internal/errors"
)

// Column types as they appear in the dictionary. They mirror the dtypes
// statistical tooling infers when re-reading the CSV output, so the
// dictionary describes the data the way analysts will see it.
const (
	TypeInt64   = "int64"
	TypeFloat64 = "float64"
	TypeObject  = "object"
)

// maxValueCounts is the distinct-value threshold above which a textual
// column's value counts are omitted.
const maxValueCounts = 10

// Generator renders a plain-text data dictionary for a dataset.
type Generator struct {
	Title string
}

// NewGenerator creates a generator with the given dictionary title.
func NewGenerator(title string) *Generator {
	return &Generator{Title: title}
}

// Generate renders the dictionary for the table: a title banner followed
// by one block per column with its description, inferred type, missing
// counts and either numeric summary statistics or value counts.
func (g *Generator) Generate(t *dataset.Table) string {
	lines := []string{
		strings.Repeat("=", 80),
		g.Title,
		strings.Repeat("=", 80),
		"",
	}

	for _, name := range t.Columns() {
		values, err := t.Column(name)
		if err != nil {
			continue
		}
		lines = append(lines, g.columnBlock(name, values)...)
	}

	return strings.Join(lines, "\n")
}

// WriteFile renders the dictionary and writes it to path.
func (g *Generator) WriteFile(path string, t *dataset.Table) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to create directory %s", dir), err)
		}
	}
	if err := os.WriteFile(path, []byte(g.Generate(t)), 0o644); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to write %s", filepath.Base(path)), err)
	}
	return nil
}

func (g *Generator) columnBlock(name string, values []string) []string {
	total := len(values)
	missing := 0
	for _, v := range values {
		if v == dataset.Missing {
			missing++
		}
	}
	nonMissing := total - missing

	pct := 0.0
	if total > 0 {
		pct = float64(missing) / float64(total) * 100
	}

	description, ok := Descriptions[name]
	if !ok {
		description = "No description"
	}

	dtype := inferType(values)
	lines := []string{
		"",
		name,
		strings.Repeat("-", 40),
		"Description: " + description,
		"Type: " + dtype,
		fmt.Sprintf("Missing: %d (%.1f%%)", missing, pct),
		fmt.Sprintf("Non-missing: %d", nonMissing),
	}

	switch dtype {
	case TypeInt64, TypeFloat64:
		if nonMissing > 0 {
			lines = append(lines, numericSummary(values)...)
		}
	case TypeObject:
		lines = append(lines, valueCounts(values)...)
	}

	lines = append(lines, "")
	return lines
}

// inferType reports the dtype a CSV reader with type inference would give
// the column: int64 when every value is present and integral, float64
// when every present value is numeric (including an all-missing column),
// and object otherwise.
func inferType(values []string) string {
	allInt := true
	for _, v := range values {
		if v == dataset.Missing {
			allInt = false
			continue
		}
		if _, ok := dataset.ParseNumber(v); !ok {
			return TypeObject
		}
		if _, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			allInt = false
		}
	}
	if allInt && len(values) > 0 {
		return TypeInt64
	}
	return TypeFloat64
}

// numericSummary returns the Mean/Std/Min/Max lines for a numeric column.
// The standard deviation is the sample deviation; with a single
// observation it is undefined and rendered as NaN.
func numericSummary(values []string) []string {
	var nums []float64
	for _, v := range values {
		if v == dataset.Missing {
			continue
		}
		if f, ok := dataset.ParseNumber(v); ok {
			nums = append(nums, f)
		}
	}
	if len(nums) == 0 {
		return nil
	}

	sum := 0.0
	minimum, maximum := nums[0], nums[0]
	for _, f := range nums {
		sum += f
		if f < minimum {
			minimum = f
		}
		if f > maximum {
			maximum = f
		}
	}
	mean := sum / float64(len(nums))

	std := math.NaN()
	if len(nums) > 1 {
		ss := 0.0
		for _, f := range nums {
			d := f - mean
			ss += d * d
		}
		std = math.Sqrt(ss / float64(len(nums)-1))
	}

	return []string{
		fmt.Sprintf("Mean: %.2f", mean),
		fmt.Sprintf("Std: %.2f", std),
		"Min: " + strconv.FormatFloat(minimum, 'f', -1, 64),
		"Max: " + strconv.FormatFloat(maximum, 'f', -1, 64),
	}
}

// valueCounts returns the Unique values line and, for columns with at
// most maxValueCounts distinct values, the per-value counts in
// descending order with ties broken by first appearance.
func valueCounts(values []string) []string {
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		if v == dataset.Missing {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	lines := []string{fmt.Sprintf("Unique values: %d", len(order))}
	if len(order) == 0 || len(order) > maxValueCounts {
		return lines
	}

	firstSeen := make(map[string]int, len(order))
	for i, v := range order {
		firstSeen[v] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	lines = append(lines, "Value counts:")
	for _, v := range order {
		lines = append(lines, fmt.Sprintf("  %s: %d", v, counts[v]))
	}
	return lines
}
