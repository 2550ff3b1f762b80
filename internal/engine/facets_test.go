package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"talent_reviews/internal/domain"
	"talent_reviews/internal/engine"
)

func TestAvailableProjectTypes(t *testing.T) {
	in := append(fixture(), domain.Review{ID: "r5", ProjectType: ptr("")}, domain.Review{ID: "r6", ProjectType: ptr("Copywriting")})
	assert.Equal(t, []string{"Copywriting", "Design", "Dev"}, engine.AvailableProjectTypes(in))
	assert.Empty(t, engine.AvailableProjectTypes(nil))
}

func TestHasActiveFilters_SingleSetter(t *testing.T) {
	empty := domain.FilterSpec{}
	assert.False(t, engine.HasActiveFilters(empty))
	assert.False(t, engine.HasActiveFilters(empty.WithSearch("x").Reset()))

	active := map[string]domain.FilterSpec{
		"rating":        empty.WithRating(ptr(3), nil),
		"date":          empty.WithDateRange(nil, ptr(day("2024-01-01"))),
		"project types": empty.WithProjectTypes("Design"),
		"search":        empty.WithSearch("logo"),
		"sort field":    empty.WithSort(domain.SortByRating, ""),
		"sort dir":      empty.WithSort("", domain.SortAsc),
	}
	for name, spec := range active {
		assert.True(t, engine.HasActiveFilters(spec), name)
	}

	inactive := map[string]domain.FilterSpec{
		"rating cleared":   empty.WithRating(nil, nil),
		"empty range":      {Rating: &domain.RatingRange{}},
		"date cleared":     empty.WithDateRange(nil, nil),
		"types cleared":    empty.WithProjectTypes(),
		"blank search":     empty.WithSearch("   "),
		"default sort set": empty.WithSort(domain.SortByCreatedAt, domain.SortDesc),
	}
	for name, spec := range inactive {
		assert.False(t, engine.HasActiveFilters(spec), name)
	}
}

func TestActiveFiltersSummary_Order(t *testing.T) {
	spec := domain.FilterSpec{}.
		WithSort(domain.SortByProjectValue, domain.SortAsc).
		WithSearch(" website ").
		WithProjectTypes("Design", "Dev").
		WithDateRange(ptr(day("2024-01-01")), ptr(day("2024-02-01"))).
		WithRating(ptr(3), ptr(5))

	assert.Equal(t, []string{
		"Rating: 3 - 5 stars",
		"Date: 2024-01-01 - 2024-02-01",
		"Project types: Design, Dev",
		`Search: "website"`,
		"Sort: Project value (ascending)",
	}, engine.ActiveFiltersSummary(spec))
}

func TestActiveFiltersSummary_OpenBounds(t *testing.T) {
	assert.Equal(t, []string{"Rating: 4+ stars", "Date: from 2024-03-01"},
		engine.ActiveFiltersSummary(domain.FilterSpec{}.WithRating(ptr(4), nil).WithDateRange(ptr(day("2024-03-01")), nil)))
	assert.Equal(t, []string{"Rating: up to 2 stars", "Date: until 2024-03-01"},
		engine.ActiveFiltersSummary(domain.FilterSpec{}.WithRating(nil, ptr(2)).WithDateRange(nil, ptr(day("2024-03-01")))))
	assert.Empty(t, engine.ActiveFiltersSummary(domain.FilterSpec{}))
}
