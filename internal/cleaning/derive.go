package cleaning

import (
	"strings"
)

// degreeMarkers are the substrings of Q191 free text that indicate a
// university-level qualification. Matching is case-insensitive.
var degreeMarkers = []string{
	"universität",
	"hochschule",
	"bachelor",
	"master",
	"diplom",
	"promotion",
}

// CalculateBMI computes the body mass index in kg/m² from height in
// centimetres and weight in kilograms. The computation is deliberately
// unguarded: a zero height yields +Inf and the caller must propagate
// non-finite results unchanged, leaving range validation to downstream
// analysis.
func CalculateBMI(heightCm, weightKg float64) float64 {
	return weightKg * 1e4 / (heightCm * heightCm)
}

// HasUniversityDegree reports 1 when the Q191 vocational-qualification
// text mentions a university-level qualification, otherwise 0. Missing
// text counts as 0.
func HasUniversityDegree(raw string) int {
	lower := strings.ToLower(raw)
	for _, marker := range degreeMarkers {
		if strings.Contains(lower, marker) {
			return 1
		}
	}
	return 0
}
