package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent_reviews/internal/domain"
	"talent_reviews/internal/engine"
)

func TestSortReviews_Fields(t *testing.T) {
	tests := []struct {
		field domain.SortField
		dir   domain.SortDirection
		want  []string
	}{
		{domain.SortByCreatedAt, domain.SortAsc, []string{"r1", "r2", "r3", "r4"}},
		{domain.SortByCreatedAt, domain.SortDesc, []string{"r4", "r3", "r2", "r1"}},
		{domain.SortByRating, domain.SortDesc, []string{"r1", "r3", "r4", "r2"}},
		{domain.SortByRating, domain.SortAsc, []string{"r2", "r4", "r3", "r1"}},
		// missing value sorts lowest
		{domain.SortByProjectValue, domain.SortAsc, []string{"r4", "r2", "r1", "r3"}},
		{domain.SortByProjectValue, domain.SortDesc, []string{"r3", "r1", "r2", "r4"}},
		// case-insensitive, missing title is ""
		{domain.SortByProjectTitle, domain.SortAsc, []string{"r4", "r2", "r3", "r1"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.field)+"_"+string(tt.dir), func(t *testing.T) {
			out, err := engine.SortReviews(fixture(), tt.field, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(out))
		})
	}
}

func TestSortReviews_DefaultsToNewestFirst(t *testing.T) {
	out, err := engine.SortReviews(fixture(), "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"r4", "r3", "r2", "r1"}, ids(out))
}

func TestSortReviews_ExampleAscending(t *testing.T) {
	in := []domain.Review{
		{ID: "1", Rating: 5, ProjectTitle: ptr("Website redesign"), CreatedAt: day("2024-01-01")},
		{ID: "2", Rating: 2, ProjectTitle: ptr("Logo work"), CreatedAt: day("2024-02-01")},
	}
	out, err := engine.SortReviews(in, domain.SortByCreatedAt, domain.SortAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(out))
}

func TestSortReviews_Stable(t *testing.T) {
	in := []domain.Review{
		{ID: "a", Rating: 4},
		{ID: "b", Rating: 5},
		{ID: "c", Rating: 4},
		{ID: "d", Rating: 5},
	}
	asc, err := engine.SortReviews(in, domain.SortByRating, domain.SortAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(asc))

	desc, err := engine.SortReviews(in, domain.SortByRating, domain.SortDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(desc))
}

func TestSortReviews_Idempotent(t *testing.T) {
	once, err := engine.SortReviews(fixture(), domain.SortByProjectTitle, domain.SortDesc)
	require.NoError(t, err)
	twice, err := engine.SortReviews(once, domain.SortByProjectTitle, domain.SortDesc)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestSortReviews_DoesNotMutateInput(t *testing.T) {
	in := fixture()
	_, err := engine.SortReviews(in, domain.SortByRating, domain.SortAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2", "r3", "r4"}, ids(in))
}

func TestSortReviews_InvalidArguments(t *testing.T) {
	_, err := engine.SortReviews(fixture(), "helpfulness", domain.SortAsc)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = engine.SortReviews(fixture(), domain.SortByRating, "sideways")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
