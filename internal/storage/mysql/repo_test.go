package mysql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"talent_reviews/internal/domain"
)

func TestSplitByCreatedAt(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	in := []domain.Review{
		{ID: "a", CreatedAt: day},
		{ID: "b"},
		{ID: "c", CreatedAt: day},
	}

	dated, undated := splitByCreatedAt(in, func(r domain.Review) time.Time { return r.CreatedAt })
	assert.Equal(t, []string{"a", "c"}, []string{dated[0].ID, dated[1].ID})
	assert.Len(t, undated, 1)
	assert.Equal(t, "b", undated[0].ID)
}

func TestUndatedUpsertLeavesCreatedAtAlone(t *testing.T) {
	assert.NotContains(t, upsertReviewsOnDupUndated, "created_at")
	assert.NotContains(t, upsertDisputesOnDupUndated, "created_at")
	assert.Contains(t, upsertReviewsOnDupDated, "created_at    = VALUES(created_at)")
	assert.Contains(t, reviewRowUndated, "UTC_TIMESTAMP(6)")
	assert.Contains(t, disputeRowUndated, "UTC_TIMESTAMP(6)")
}
