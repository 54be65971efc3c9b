package cleaning

import (
	"regexp"
	"strconv"
)

// digitRun matches a contiguous run of digits inside free text.
var digitRun = regexp.MustCompile(`\d+`)

// ExtractRiskTolerance extracts the Q84 risk-tolerance score (0-10) from a
// possibly mixed-format answer. The first digit run in the text wins; an
// answer without digits is missing.
func ExtractRiskTolerance(raw string) *float64 {
	m := digitRun.FindString(raw)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseIncomeRange parses an income bracket answer (Q86, Q87) such as
// "1001-1500€" into euros. Two or more numbers yield the midpoint of the
// first two, a single number is returned as-is, and no numbers means
// missing.
func ParseIncomeRange(raw string) *float64 {
	numbers := digitRun.FindAllString(raw, -1)
	switch {
	case len(numbers) >= 2:
		lo, err := strconv.ParseFloat(numbers[0], 64)
		if err != nil {
			return nil
		}
		hi, err := strconv.ParseFloat(numbers[1], 64)
		if err != nil {
			return nil
		}
		v := (lo + hi) / 2
		return &v
	case len(numbers) == 1:
		v, err := strconv.ParseFloat(numbers[0], 64)
		if err != nil {
			return nil
		}
		return &v
	default:
		return nil
	}
}
