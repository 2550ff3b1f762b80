package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent_reviews/internal/domain"
	"talent_reviews/internal/engine"
)

func TestQuery_EmptySpecSortsNewestFirst(t *testing.T) {
	res, err := engine.Query(fixture(), domain.FilterSpec{}, engine.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"r4", "r3", "r2", "r1"}, ids(res.FilteredReviews))
	assert.Equal(t, 4, res.TotalResults)
	assert.False(t, res.HasActiveFilters)
	assert.Empty(t, res.ActiveFiltersSummary)
	assert.Equal(t, []string{"Design", "Dev"}, res.AvailableProjectTypes)
	for _, sr := range res.SearchResults {
		assert.Zero(t, sr.RelevanceScore)
	}
}

func TestQuery_ScoringRanksAndBypassesSort(t *testing.T) {
	spec := domain.FilterSpec{}.WithSearch("website").WithSort(domain.SortByRating, domain.SortAsc)
	res, err := engine.Query(fixture(), spec, engine.Options{EnableSearchScoring: true})
	require.NoError(t, err)

	// r1 matches in the title, r2 in the comment; the rest are kept with zero score
	assert.Equal(t, []string{"r1", "r2", "r3", "r4"}, ids(res.FilteredReviews))
	assert.Equal(t, ids(res.FilteredReviews), resultIDs(res.SearchResults))
	assert.Greater(t, res.SearchResults[0].RelevanceScore, res.SearchResults[1].RelevanceScore)
	assert.Zero(t, res.SearchResults[3].RelevanceScore)
	assert.Equal(t, 4, res.TotalResults)
}

func TestQuery_WithoutScoringSearchFiltersThenSorts(t *testing.T) {
	spec := domain.FilterSpec{}.WithSearch("website").WithSort(domain.SortByRating, domain.SortAsc)
	res, err := engine.Query(fixture(), spec, engine.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"r2", "r1"}, ids(res.FilteredReviews))
	assert.Equal(t, 2, res.TotalResults)
}

func TestQuery_FacetsApplyBeforeScoring(t *testing.T) {
	spec := domain.FilterSpec{}.WithSearch("website").WithRating(ptr(4), nil)
	res, err := engine.Query(fixture(), spec, engine.Options{EnableSearchScoring: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r3"}, ids(res.FilteredReviews))
	assert.Equal(t, []string{"Design", "Dev"}, res.AvailableProjectTypes, "facets come from the unfiltered set")
	assert.Equal(t, []string{"Rating: 4+ stars", `Search: "website"`}, res.ActiveFiltersSummary)
}

func TestQuery_InvalidSortFailsFast(t *testing.T) {
	_, err := engine.Query(fixture(), domain.FilterSpec{SortBy: "price"}, engine.Options{EnableSearchScoring: true})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = engine.Query(fixture(), domain.FilterSpec{SortDirection: "up"}, engine.Options{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestQuery_EmptyInput(t *testing.T) {
	res, err := engine.Query(nil, domain.FilterSpec{}.WithSearch("x"), engine.Options{EnableSearchScoring: true})
	require.NoError(t, err)
	assert.Empty(t, res.FilteredReviews)
	assert.Zero(t, res.TotalResults)
	assert.True(t, res.HasActiveFilters)
}
