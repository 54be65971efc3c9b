package cleaning

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"surveypipe/internal/dataset"
	"surveypipe/internal/errors"
	"surveypipe/pkg/contracts/domain"
)

// auxMetadataRows is the number of leading question-text/metadata rows in
// the original survey export that precede the first participant row.
const auxMetadataRows = 2

// Cleaner runs stage 1 of the pipeline: it turns the raw exogenous
// variables export into the cleaned, analysis-ready dataset.
type Cleaner struct {
	logger   *slog.Logger
	progress io.Writer
}

// NewCleaner creates a cleaner. The progress writer receives the
// operational narrative (step-by-step counts) that accompanies each run;
// pass io.Discard to silence it.
func NewCleaner(logger *slog.Logger, progress io.Writer) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{logger: logger, progress: progress}
}

// Result holds the cleaned dataset and the run diagnostics reported in
// the cleaning summary.
type Result struct {
	Table   *dataset.Table
	Records []*domain.CleanedRecord

	RawRows int
	RawCols int

	ImputedValues         int
	ChildrenMissingBefore int
	ChildrenMissingAfter  int
}

// Run executes the cleaning stage: load the raw export and the living
// situation indicator, encode and derive every output column, impute
// household counts for participants living alone, and assemble the
// cleaned table. ResponseId is preserved verbatim and row order follows
// the raw input.
func (c *Cleaner) Run(ctx context.Context, responsesPath, surveyExportPath string) (*Result, error) {
	c.banner("DATA CLEANING PIPELINE")

	fmt.Fprintf(c.progress, "\n1. Loading data...\n")
	raw, err := dataset.ReadTable(responsesPath)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(c.progress, "   Loaded %d observations, %d variables\n", raw.NumRows(), raw.NumCols())
	c.logger.InfoContext(ctx, "loaded raw responses",
		slog.String("path", responsesPath),
		slog.Int("rows", raw.NumRows()),
		slog.Int("cols", raw.NumCols()))

	fmt.Fprintf(c.progress, "   Loading Q1 (living situation) from original dataset...\n")
	q1, err := c.loadLivingSituation(ctx, surveyExportPath, raw)
	if err != nil {
		return nil, err
	}

	cols, err := newRawColumns(raw)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(c.progress, "\n2. Preserving ID variable...\n")
	fmt.Fprintf(c.progress, "\n3. Adding living situation indicator (Q1)...\n")
	fmt.Fprintf(c.progress, "\n4. Encoding respondent work hours (Q179)...\n")
	fmt.Fprintf(c.progress, "\n5. Processing household composition variables...\n")

	records := make([]*domain.CleanedRecord, raw.NumRows())
	for i := range records {
		records[i] = buildRecord(cols, q1, i)
	}

	fmt.Fprintf(c.progress, "   Fixing missing values: People living alone have 0 household members...\n")
	before := missingCount(cols.numChildren)
	imputed := ImputeHouseholdCounts(records)
	after := 0
	for _, r := range records {
		if r.NumChildren == nil {
			after++
		}
	}
	pct := 0.0
	if len(records) > 0 {
		pct = float64(after) / float64(len(records)) * 100
	}
	fmt.Fprintf(c.progress, "   Missing values reduced: %d → %d (%.1f%%)\n", before, after, pct)
	c.logger.InfoContext(ctx, "imputed household counts",
		slog.Int("values_filled", imputed),
		slog.Int("num_children_missing_before", before),
		slog.Int("num_children_missing_after", after))

	fmt.Fprintf(c.progress, "\n6. Processing demographic variables...\n")
	fmt.Fprintf(c.progress, "\n7. Processing vocational qualifications (Q191)...\n")
	fmt.Fprintf(c.progress, "\n8. Processing physical characteristics...\n")
	fmt.Fprintf(c.progress, "\n9. Processing risk tolerance (Q84)...\n")
	fmt.Fprintf(c.progress, "\n10. Processing work and income changes (Q219_3, Q219_4)...\n")
	fmt.Fprintf(c.progress, "\n11. Processing household task division (Q243_*)...\n")
	fmt.Fprintf(c.progress, "\n12. Processing health status (Q211)...\n")
	fmt.Fprintf(c.progress, "\n13. Processing income variables (Q86, Q87)...\n")

	table, err := BuildTable(records)
	if err != nil {
		return nil, err
	}

	c.printSummary(raw, table)

	return &Result{
		Table:                 table,
		Records:               records,
		RawRows:               raw.NumRows(),
		RawCols:               raw.NumCols(),
		ImputedValues:         imputed,
		ChildrenMissingBefore: before,
		ChildrenMissingAfter:  after,
	}, nil
}

// loadLivingSituation returns the raw Q1 answer for each row of the
// primary table. When the survey export carries a ResponseId column the
// indicator is joined by key; otherwise the join is positional and the
// row counts of the two exports (after dropping the metadata rows) must
// match exactly.
func (c *Cleaner) loadLivingSituation(ctx context.Context, path string, raw *dataset.Table) ([]string, error) {
	aux, err := dataset.ReadTable(path)
	if err != nil {
		return nil, err
	}

	start := auxMetadataRows
	if aux.NumRows() < start {
		start = aux.NumRows()
	}

	ids, err := raw.Column("ResponseId")
	if err != nil {
		return nil, err
	}

	q1 := make([]string, raw.NumRows())

	if aux.HasColumn("ResponseId") {
		byID := make(map[string]string)
		for i := start; i < aux.NumRows(); i++ {
			id, err := aux.Cell(i, "ResponseId")
			if err != nil {
				return nil, err
			}
			if _, seen := byID[id]; seen || id == dataset.Missing {
				continue
			}
			value, err := aux.Cell(i, "Q1")
			if err != nil {
				return nil, err
			}
			byID[id] = value
		}
		for i, id := range ids {
			q1[i] = byID[id]
		}
		c.logger.InfoContext(ctx, "joined living situation by ResponseId",
			slog.String("path", path),
			slog.Int("aux_rows", aux.NumRows()-start))
		return q1, nil
	}

	// Positional fallback: row order and row count must line up exactly,
	// or the imputation would silently attach answers to the wrong
	// participants.
	if aux.NumRows()-start != raw.NumRows() {
		return nil, errors.NewValidationError(fmt.Sprintf(
			"survey export has %d data rows but the response table has %d; positional Q1 join requires identical row order and count",
			aux.NumRows()-start, raw.NumRows()))
	}
	for i := 0; i < raw.NumRows(); i++ {
		value, err := aux.Cell(start+i, "Q1")
		if err != nil {
			return nil, err
		}
		q1[i] = value
	}
	c.logger.WarnContext(ctx, "survey export has no ResponseId column, joined living situation by row position",
		slog.String("path", path))
	return q1, nil
}

// rawColumns holds the survey-question columns stage 1 consumes, fetched
// once so that a missing column fails fast before any row is processed.
type rawColumns struct {
	responseID  []string
	workHours   []string
	numChildren []string
	numPartners []string
	numParents  []string
	numSiblings []string
	age         []string
	gender      []string
	education   []string
	zipCode     []string
	vocational  []string
	heightCm    []string
	weightKg    []string
	riskTol     []string
	persChange  []string
	partChange  []string
	taskFood    []string
	taskChild   []string
	taskEdu     []string
	taskHouse   []string
	health      []string
	hhIncome    []string
	persIncome  []string
}

func newRawColumns(raw *dataset.Table) (*rawColumns, error) {
	cols := &rawColumns{}
	for _, c := range []struct {
		name string
		dst  *[]string
	}{
		{"ResponseId", &cols.responseID},
		{"Q179", &cols.workHours},
		{"Q4_4", &cols.numChildren},
		{"Q4_2", &cols.numPartners},
		{"Q4_3", &cols.numParents},
		{"Q4_5", &cols.numSiblings},
		{"Q80_1", &cols.age},
		{"Q256", &cols.gender},
		{"Q190", &cols.education},
		{"Q120", &cols.zipCode},
		{"Q191", &cols.vocational},
		{"Q82_1", &cols.heightCm},
		{"Q83_1", &cols.weightKg},
		{"Q84", &cols.riskTol},
		{"Q219_3", &cols.persChange},
		{"Q219_4", &cols.partChange},
		{"Q243_1", &cols.taskFood},
		{"Q243_2", &cols.taskChild},
		{"Q243_3", &cols.taskEdu},
		{"Q243_9", &cols.taskHouse},
		{"Q211", &cols.health},
		{"Q86", &cols.hhIncome},
		{"Q87", &cols.persIncome},
	} {
		values, err := raw.Column(c.name)
		if err != nil {
			return nil, err
		}
		*c.dst = values
	}
	return cols, nil
}

// buildRecord encodes one raw row into a cleaned record.
func buildRecord(cols *rawColumns, q1 []string, i int) *domain.CleanedRecord {
	r := &domain.CleanedRecord{
		ResponseID: cols.responseID[i],

		LivesWithOthers: EncodeLivingSituation(q1[i]),
		NumChildren:     passthrough(cols.numChildren[i]),
		NumPartners:     passthrough(cols.numPartners[i]),
		NumParents:      passthrough(cols.numParents[i]),
		NumSiblings:     passthrough(cols.numSiblings[i]),

		WorkHours:    EncodeWorkHours(cols.workHours[i]),
		WorkHoursCat: passthrough(cols.workHours[i]),

		Age:            passthrough(cols.age[i]),
		Gender:         EncodeGender(cols.gender[i]),
		GenderCode:     EncodeGenderCode(cols.gender[i]),
		EducationLevel: EncodeEducation(cols.education[i]),
		EducationCat:   passthrough(cols.education[i]),
		ZipCode:        passthrough(cols.zipCode[i]),

		VocationalQualification: passthrough(cols.vocational[i]),
		HasUniversityDegree:     HasUniversityDegree(cols.vocational[i]),

		HeightCm: passthrough(cols.heightCm[i]),
		WeightKg: passthrough(cols.weightKg[i]),

		RiskTolerance:        ExtractRiskTolerance(cols.riskTol[i]),
		PersonalIncomeChange: EncodeChange(cols.persChange[i]),
		PartnerIncomeChange:  EncodeChange(cols.partChange[i]),

		TaskShareFood:      passthrough(cols.taskFood[i]),
		TaskShareChildcare: passthrough(cols.taskChild[i]),
		TaskShareEducation: passthrough(cols.taskEdu[i]),
		TaskShareHousework: passthrough(cols.taskHouse[i]),

		HealthStatus:    EncodeHealthStatus(cols.health[i]),
		HealthStatusCat: passthrough(cols.health[i]),

		HouseholdIncome:    ParseIncomeRange(cols.hhIncome[i]),
		PersonalIncome:     ParseIncomeRange(cols.persIncome[i]),
		HouseholdIncomeCat: passthrough(cols.hhIncome[i]),
		PersonalIncomeCat:  passthrough(cols.persIncome[i]),
	}

	if height, hok := dataset.ParseNumber(cols.heightCm[i]); hok {
		if weight, wok := dataset.ParseNumber(cols.weightKg[i]); wok {
			bmi := CalculateBMI(height, weight)
			r.BMI = &bmi
		}
	}

	return r
}

// passthrough copies a raw cell, mapping the empty string to missing.
func passthrough(cell string) *string {
	if cell == dataset.Missing {
		return nil
	}
	return &cell
}

func missingCount(values []string) int {
	count := 0
	for _, v := range values {
		if v == dataset.Missing {
			count++
		}
	}
	return count
}

// printSummary prints the cleaning summary block: dataset shapes and the
// per-variable missing percentages above zero, in column order.
func (c *Cleaner) printSummary(raw, cleaned *dataset.Table) {
	c.banner("CLEANING SUMMARY")
	fmt.Fprintf(c.progress, "\nOriginal dataset: (%d, %d)\n", raw.NumRows(), raw.NumCols())
	fmt.Fprintf(c.progress, "Cleaned dataset: (%d, %d)\n", cleaned.NumRows(), cleaned.NumCols())
	fmt.Fprintf(c.progress, "\nMissing values by variable:\n")
	for _, name := range cleaned.Columns() {
		nonMissing, err := cleaned.NonMissingCount(name)
		if err != nil {
			continue
		}
		missing := cleaned.NumRows() - nonMissing
		if missing == 0 || cleaned.NumRows() == 0 {
			continue
		}
		pct := float64(missing) / float64(cleaned.NumRows()) * 100
		fmt.Fprintf(c.progress, "  %-30s: %5.1f%%\n", name, pct)
	}
}

func (c *Cleaner) banner(title string) {
	line := strings.Repeat("=", 80)
	fmt.Fprintf(c.progress, "\n%s\n%s\n%s\n", line, title, line)
}
