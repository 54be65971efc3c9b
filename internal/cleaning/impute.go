package cleaning

import (
	"surveypipe/pkg/contracts/domain"
)

// ImputeHouseholdCounts fills missing household-composition counts with
// zero for participants who live alone (lives_with_others == "No"): a
// respondent without housemates has zero co-resident children, partners,
// parents and siblings. Rows with a "Yes" or missing indicator are left
// untouched. Returns the number of values filled.
func ImputeHouseholdCounts(records []*domain.CleanedRecord) int {
	filled := 0
	for _, r := range records {
		if r.LivesWithOthers == nil || *r.LivesWithOthers != domain.LivesWithOthersNo {
			continue
		}
		for _, field := range []**string{&r.NumChildren, &r.NumPartners, &r.NumParents, &r.NumSiblings} {
			if *field == nil {
				zero := "0"
				*field = &zero
				filled++
			}
		}
	}
	return filled
}
