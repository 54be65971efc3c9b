package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveypipe/pkg/contracts/domain"
)

func TestImputeHouseholdCounts(t *testing.T) {
	yes := domain.LivesWithOthersYes
	no := domain.LivesWithOthersNo
	two := "2"

	livesAlone := &domain.CleanedRecord{LivesWithOthers: &no}
	livesAloneWithAnswer := &domain.CleanedRecord{LivesWithOthers: &no, NumChildren: &two}
	livesTogether := &domain.CleanedRecord{LivesWithOthers: &yes}
	unknown := &domain.CleanedRecord{}

	filled := ImputeHouseholdCounts([]*domain.CleanedRecord{
		livesAlone, livesAloneWithAnswer, livesTogether, unknown,
	})

	// livesAlone gets all four counts, livesAloneWithAnswer only the
	// three it left blank.
	assert.Equal(t, 7, filled)

	for _, field := range []*string{
		livesAlone.NumChildren, livesAlone.NumPartners,
		livesAlone.NumParents, livesAlone.NumSiblings,
	} {
		require.NotNil(t, field)
		assert.Equal(t, "0", *field)
	}

	// An existing answer is never overwritten.
	require.NotNil(t, livesAloneWithAnswer.NumChildren)
	assert.Equal(t, "2", *livesAloneWithAnswer.NumChildren)
	require.NotNil(t, livesAloneWithAnswer.NumSiblings)
	assert.Equal(t, "0", *livesAloneWithAnswer.NumSiblings)

	// "Yes" and missing indicators stay untouched.
	assert.Nil(t, livesTogether.NumChildren)
	assert.Nil(t, livesTogether.NumPartners)
	assert.Nil(t, unknown.NumChildren)
	assert.Nil(t, unknown.NumSiblings)
}

func TestImputeHouseholdCountsEmpty(t *testing.T) {
	assert.Equal(t, 0, ImputeHouseholdCounts(nil))
}
