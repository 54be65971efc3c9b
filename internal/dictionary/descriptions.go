package dictionary

// Dictionary titles for the two pipeline stages.
const (
	TitleCleaned = "DATA DICTIONARY - Cleaned Exogenous Variables Dataset"
	TitleMerged  = "DATA DICTIONARY - Cleaned Exogenous Variables with Regional Data"
)

// Descriptions documents every variable the pipeline can produce. Columns
// without an entry fall back to "No description".
var Descriptions = map[string]string{
	"ResponseId":                "Unique survey response identifier",
	"lives_with_others":         "Lives with others in household (Yes/No)",
	"respondent_work_hours":     "Respondent's weekly work hours (numeric midpoint)",
	"respondent_work_hours_cat": "Respondent's weekly work hours (categorical)",
	"num_children":              "Number of children in household (0 if living alone)",
	"num_partners":              "Number of partners in household (0 if living alone)",
	"num_parents":               "Number of parents in household (0 if living alone)",
	"num_siblings":              "Number of siblings in household (0 if living alone)",
	"age":                       "Respondent's age in years",
	"gender":                    "Gender (Male/Female/Diverse)",
	"gender_code":               "Gender code (1=Male, 2=Female, 3=Diverse)",
	"education_level":           "Education level (1=None to 4=Abitur)",
	"education_cat":             "Education level (categorical, German)",
	"zip_code":                  "Zip code of residence",
	"vocational_qualification":  "Vocational qualification (text)",
	"has_university_degree":     "Has university degree (1=Yes, 0=No)",
	"height_cm":                 "Height in centimeters",
	"weight_kg":                 "Weight in kilograms",
	"bmi":                       "Body Mass Index (calculated)",
	"risk_tolerance":            "Risk tolerance (0=not willing to 10=very willing)",
	"personal_income_change":    "Personal income change (-2=strongly decreased to +2=strongly increased)",
	"partner_income_change":     "Partner income change (-2=strongly decreased to +2=strongly increased)",
	"task_share_food":           "Personal share of food shopping/preparation (%)",
	"task_share_childcare":      "Personal share of childcare (%)",
	"task_share_education":      "Personal share of children's education (%)",
	"task_share_housework":      "Personal share of housework (%)",
	"health_status":             "Health status (1=Poor to 5=Very good)",
	"health_status_cat":         "Health status (categorical, German)",
	"household_income":          "Monthly household net income (euros, midpoint)",
	"personal_income":           "Monthly personal net income (euros, midpoint)",
	"household_income_cat":      "Monthly household net income (categorical)",
	"personal_income_cat":       "Monthly personal net income (categorical)",
	"federal_state":             "Federal state (Bundesland) based on postal code",
	"district":                  "District/county (Kreis) based on postal code",
	"is_city":                   "City indicator (1=City, 0=Not city)",
	"population_density":        "Population density (inhabitants per km²)",
	"is_rural":                  "Rural area indicator (1=Rural, 0=Not rural)",
	"population":                "Total population in the region",
	"is_metropolitan":           "Metropolitan area indicator (1=Metropolitan, 0=Not metropolitan)",
}
