package engine

import "talent_reviews/internal/domain"

type Options struct {
	// EnableSearchScoring ranks by relevance instead of substring-filtering and sorting.
	EnableSearchScoring bool
}

type Result struct {
	FilteredReviews       []domain.Review       `json:"filtered_reviews"`
	SearchResults         []domain.SearchResult `json:"search_results"`
	AvailableProjectTypes []string              `json:"available_project_types"`
	HasActiveFilters      bool                  `json:"has_active_filters"`
	ActiveFiltersSummary  []string              `json:"active_filters_summary"`
	TotalResults          int                   `json:"total_results"`
}

// Query runs the full pipeline: non-search facets, then either relevance ranking (when
// scoring is enabled and a search is set) or substring search followed by sorting.
// Facet metadata is always derived from the unfiltered reviews.
func Query(reviews []domain.Review, spec domain.FilterSpec, opts Options) (Result, error) {
	if err := spec.Validate(); err != nil {
		return Result{}, err
	}

	filtered := applyFacets(reviews, spec)

	var (
		final   []domain.Review
		results []domain.SearchResult
	)
	if q := spec.SearchQuery(); opts.EnableSearchScoring && q != "" {
		results = SearchReviews(filtered, q)
		final = make([]domain.Review, len(results))
		for i, sr := range results {
			final[i] = sr.Review
		}
	} else {
		if q != "" {
			filtered = filterBySubstring(filtered, q)
		}
		field, dir := spec.Sort()
		sorted, err := SortReviews(filtered, field, dir)
		if err != nil {
			return Result{}, err
		}
		final = sorted
		results = make([]domain.SearchResult, len(final))
		for i, r := range final {
			results[i] = domain.SearchResult{Review: r}
		}
	}

	return Result{
		FilteredReviews:       final,
		SearchResults:         results,
		AvailableProjectTypes: AvailableProjectTypes(reviews),
		HasActiveFilters:      HasActiveFilters(spec),
		ActiveFiltersSummary:  ActiveFiltersSummary(spec),
		TotalResults:          len(final),
	}, nil
}
