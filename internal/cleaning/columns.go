package cleaning

import (
	"strconv"

	"surveypipe/internal/dataset"
	"surveypipe/pkg/contracts/domain"
)

// ColumnSpec describes one column of the cleaned output: its name and how
// to render its cell from a cleaned record.
type ColumnSpec struct {
	Name  string
	Value func(r *domain.CleanedRecord) string
}

// Columns returns the cleaned output columns in their fixed output order.
// The order is part of the dataset contract and must not change between
// runs.
func Columns() []ColumnSpec {
	return []ColumnSpec{
		{"ResponseId", func(r *domain.CleanedRecord) string { return r.ResponseID }},
		{"lives_with_others", stringCol(func(r *domain.CleanedRecord) *string { return r.LivesWithOthers })},
		{"respondent_work_hours", floatCol(func(r *domain.CleanedRecord) *float64 { return r.WorkHours })},
		{"respondent_work_hours_cat", stringCol(func(r *domain.CleanedRecord) *string { return r.WorkHoursCat })},
		{"num_children", stringCol(func(r *domain.CleanedRecord) *string { return r.NumChildren })},
		{"num_partners", stringCol(func(r *domain.CleanedRecord) *string { return r.NumPartners })},
		{"num_parents", stringCol(func(r *domain.CleanedRecord) *string { return r.NumParents })},
		{"num_siblings", stringCol(func(r *domain.CleanedRecord) *string { return r.NumSiblings })},
		{"age", stringCol(func(r *domain.CleanedRecord) *string { return r.Age })},
		{"gender", stringCol(func(r *domain.CleanedRecord) *string { return r.Gender })},
		{"gender_code", intCol(func(r *domain.CleanedRecord) *int { return r.GenderCode })},
		{"education_level", intCol(func(r *domain.CleanedRecord) *int { return r.EducationLevel })},
		{"education_cat", stringCol(func(r *domain.CleanedRecord) *string { return r.EducationCat })},
		{"zip_code", stringCol(func(r *domain.CleanedRecord) *string { return r.ZipCode })},
		{"vocational_qualification", stringCol(func(r *domain.CleanedRecord) *string { return r.VocationalQualification })},
		{"has_university_degree", func(r *domain.CleanedRecord) string { return strconv.Itoa(r.HasUniversityDegree) }},
		{"height_cm", stringCol(func(r *domain.CleanedRecord) *string { return r.HeightCm })},
		{"weight_kg", stringCol(func(r *domain.CleanedRecord) *string { return r.WeightKg })},
		{"bmi", floatCol(func(r *domain.CleanedRecord) *float64 { return r.BMI })},
		{"risk_tolerance", floatCol(func(r *domain.CleanedRecord) *float64 { return r.RiskTolerance })},
		{"personal_income_change", intCol(func(r *domain.CleanedRecord) *int { return r.PersonalIncomeChange })},
		{"partner_income_change", intCol(func(r *domain.CleanedRecord) *int { return r.PartnerIncomeChange })},
		{"task_share_food", stringCol(func(r *domain.CleanedRecord) *string { return r.TaskShareFood })},
		{"task_share_childcare", stringCol(func(r *domain.CleanedRecord) *string { return r.TaskShareChildcare })},
		{"task_share_education", stringCol(func(r *domain.CleanedRecord) *string { return r.TaskShareEducation })},
		{"task_share_housework", stringCol(func(r *domain.CleanedRecord) *string { return r.TaskShareHousework })},
		{"health_status", intCol(func(r *domain.CleanedRecord) *int { return r.HealthStatus })},
		{"health_status_cat", stringCol(func(r *domain.CleanedRecord) *string { return r.HealthStatusCat })},
		{"household_income", floatCol(func(r *domain.CleanedRecord) *float64 { return r.HouseholdIncome })},
		{"personal_income", floatCol(func(r *domain.CleanedRecord) *float64 { return r.PersonalIncome })},
		{"household_income_cat", stringCol(func(r *domain.CleanedRecord) *string { return r.HouseholdIncomeCat })},
		{"personal_income_cat", stringCol(func(r *domain.CleanedRecord) *string { return r.PersonalIncomeCat })},
	}
}

// BuildTable renders cleaned records into the output table using the
// fixed column order.
func BuildTable(records []*domain.CleanedRecord) (*dataset.Table, error) {
	specs := Columns()
	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name
	}

	table := dataset.New(names)
	row := make([]string, len(specs))
	for _, r := range records {
		for i, spec := range specs {
			row[i] = spec.Value(r)
		}
		if err := table.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func stringCol(get func(r *domain.CleanedRecord) *string) func(r *domain.CleanedRecord) string {
	return func(r *domain.CleanedRecord) string {
		if v := get(r); v != nil {
			return *v
		}
		return dataset.Missing
	}
}

func floatCol(get func(r *domain.CleanedRecord) *float64) func(r *domain.CleanedRecord) string {
	return func(r *domain.CleanedRecord) string {
		if v := get(r); v != nil {
			return strconv.FormatFloat(*v, 'f', -1, 64)
		}
		return dataset.Missing
	}
}

func intCol(get func(r *domain.CleanedRecord) *int) func(r *domain.CleanedRecord) string {
	return func(r *domain.CleanedRecord) string {
		if v := get(r); v != nil {
			return strconv.Itoa(*v)
		}
		return dataset.Missing
	}
}
