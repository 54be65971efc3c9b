package cleaning

import (
	"surveypipe/pkg/contracts/domain"
)

// The encoder tables below are the fixed survey codebook for wave 2. They
// are kept as data rather than switch statements so they can be audited
// against the questionnaire and tested independently of the pipeline.
// Unmapped and missing raw values encode to nil, never to an error.

// WorkHoursMidpoints maps Q179 work-hour buckets to the numeric midpoint
// of the bucket. "Nicht erwerbstätig" (not employed) counts as 0 hours.
var WorkHoursMidpoints = map[string]float64{
	"0 Stunden":           0,
	"1-10 Stunden":        5.5,
	"11-20 Stunden":       15.5,
	"21-30 Stunden":       25.5,
	"31-40 Stunden":       35.5,
	"41-50 Stunden":       45.5,
	"Mehr als 50 Stunden": 55,
	"Nicht erwerbstätig":  0,
}

// LivingSituationLabels maps the Q1 indicator to normalized labels.
var LivingSituationLabels = map[string]string{
	"Ja":   domain.LivesWithOthersYes,
	"Nein": domain.LivesWithOthersNo,
}

// GenderLabels maps Q256 to normalized English labels.
var GenderLabels = map[string]string{
	"Männlich": domain.GenderMale,
	"Weiblich": domain.GenderFemale,
	"Divers":   domain.GenderDiverse,
}

// GenderCodes maps Q256 to integer codes (1=Male, 2=Female, 3=Diverse).
var GenderCodes = map[string]int{
	"Männlich": 1,
	"Weiblich": 2,
	"Divers":   3,
}

// EducationLevels maps Q190 school certificates to an ordinal scale from
// 1 (no certificate) to 4 (Abitur). The GDR polytechnic certificate and
// the Realschulabschluss share level 3.
var EducationLevels = map[string]int{
	"Ohne allgemeinen Schulabschluss": 1,
	"Haupt- oder Volksschulabschluss (Abschluss der Pflichtschule)":    2,
	"Abschluss der Polytechnischen Oberschule der DDR":                 3,
	"Mittleren Schulabschluss (z.B. Realschulabschluss)":               3,
	"Abitur oder Fachabitur (Höchster Schulabschluss/ Hochschulreife)": 4,
}

// HealthStatusLevels maps Q211 to an ordinal scale from 1 (poor) to
// 5 (very good).
var HealthStatusLevels = map[string]int{
	"Schlecht":          1,
	"Weniger gut":       2,
	"Zufriedenstellend": 3,
	"Gut":               4,
	"Sehr gut":          5,
}

// ChangeScale maps the bidirectional change answers (Q219_*) to a signed
// ordinal scale from -2 (strongly decreased) to +2 (strongly increased).
var ChangeScale = map[string]int{
	"stark abgenommen":     -2,
	"leicht abgenommen":    -1,
	"sich nicht verändert": 0,
	"leicht zugenommen":    1,
	"stark zugenommen":     2,
}

// EncodeWorkHours encodes a Q179 answer to its hour-bucket midpoint.
func EncodeWorkHours(raw string) *float64 {
	if v, ok := WorkHoursMidpoints[raw]; ok {
		return &v
	}
	return nil
}

// EncodeLivingSituation normalizes a Q1 answer to Yes/No.
func EncodeLivingSituation(raw string) *string {
	if v, ok := LivingSituationLabels[raw]; ok {
		return &v
	}
	return nil
}

// EncodeGender normalizes a Q256 answer to an English label.
func EncodeGender(raw string) *string {
	if v, ok := GenderLabels[raw]; ok {
		return &v
	}
	return nil
}

// EncodeGenderCode encodes a Q256 answer to its integer code.
func EncodeGenderCode(raw string) *int {
	if v, ok := GenderCodes[raw]; ok {
		return &v
	}
	return nil
}

// EncodeEducation encodes a Q190 answer to its ordinal level.
func EncodeEducation(raw string) *int {
	if v, ok := EducationLevels[raw]; ok {
		return &v
	}
	return nil
}

// EncodeHealthStatus encodes a Q211 answer to its ordinal level.
func EncodeHealthStatus(raw string) *int {
	if v, ok := HealthStatusLevels[raw]; ok {
		return &v
	}
	return nil
}

// EncodeChange encodes a Q219_* answer to the signed change scale.
func EncodeChange(raw string) *int {
	if v, ok := ChangeScale[raw]; ok {
		return &v
	}
	return nil
}
