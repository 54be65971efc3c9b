package domain

// Living situation values for the lives_with_others indicator.
const (
	LivesWithOthersYes = "Yes"
	LivesWithOthersNo  = "No"
)

// Gender labels produced by the gender encoder.
const (
	GenderMale    = "Male"
	GenderFemale  = "Female"
	GenderDiverse = "Diverse"
)

// CleanedRecord is one participant's row of the cleaned exogenous
// variables dataset. Nil pointers are missing values; passthrough fields
// keep the raw export text verbatim so the cleaned CSV stays faithful to
// the source.
type CleanedRecord struct {
	ResponseID string `json:"response_id"`

	// Household composition
	LivesWithOthers *string `json:"lives_with_others"`
	NumChildren     *string `json:"num_children"`
	NumPartners     *string `json:"num_partners"`
	NumParents      *string `json:"num_parents"`
	NumSiblings     *string `json:"num_siblings"`

	// Work
	WorkHours    *float64 `json:"respondent_work_hours"`
	WorkHoursCat *string  `json:"respondent_work_hours_cat"`

	// Demographics
	Age            *string `json:"age"`
	Gender         *string `json:"gender"`
	GenderCode     *int    `json:"gender_code"`
	EducationLevel *int    `json:"education_level"`
	EducationCat   *string `json:"education_cat"`
	ZipCode        *string `json:"zip_code"`

	// Qualifications
	VocationalQualification *string `json:"vocational_qualification"`
	HasUniversityDegree     int     `json:"has_university_degree"`

	// Physical characteristics
	HeightCm *string  `json:"height_cm"`
	WeightKg *string  `json:"weight_kg"`
	BMI      *float64 `json:"bmi"`

	// Attitudes and changes
	RiskTolerance        *float64 `json:"risk_tolerance"`
	PersonalIncomeChange *int     `json:"personal_income_change"`
	PartnerIncomeChange  *int     `json:"partner_income_change"`

	// Household task division (percent shares)
	TaskShareFood      *string `json:"task_share_food"`
	TaskShareChildcare *string `json:"task_share_childcare"`
	TaskShareEducation *string `json:"task_share_education"`
	TaskShareHousework *string `json:"task_share_housework"`

	// Health
	HealthStatus    *int    `json:"health_status"`
	HealthStatusCat *string `json:"health_status_cat"`

	// Income
	HouseholdIncome    *float64 `json:"household_income"`
	PersonalIncome     *float64 `json:"personal_income"`
	HouseholdIncomeCat *string  `json:"household_income_cat"`
	PersonalIncomeCat  *string  `json:"personal_income_cat"`
}
