// Package engine filters, ranks and sorts in-memory review collections. Every function is
// pure: inputs are never modified and results are freshly allocated.
package engine

import (
	"strings"

	"talent_reviews/internal/domain"
)

// ApplyFilters keeps the reviews that satisfy every populated facet of spec, in input order.
// Search is applied as a case-insensitive substring match over title, comment and project type.
func ApplyFilters(reviews []domain.Review, spec domain.FilterSpec) []domain.Review {
	out := applyFacets(reviews, spec)
	if q := spec.SearchQuery(); q != "" {
		out = filterBySubstring(out, q)
	}
	return out
}

// applyFacets applies every facet except search.
func applyFacets(reviews []domain.Review, spec domain.FilterSpec) []domain.Review {
	types := projectTypeSet(spec.ProjectTypes)
	out := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if !matchesRating(r, spec.Rating) || !matchesDate(r, spec.DateRange) {
			continue
		}
		if types != nil && !matchesProjectType(r, types) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func filterBySubstring(reviews []domain.Review, q string) []domain.Review {
	needle := strings.ToLower(q)
	out := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if strings.Contains(searchableText(r), needle) {
			out = append(out, r)
		}
	}
	return out
}

func matchesRating(r domain.Review, rr *domain.RatingRange) bool {
	if rr == nil {
		return true
	}
	if rr.Min != nil && r.Rating < *rr.Min {
		return false
	}
	if rr.Max != nil && r.Rating > *rr.Max {
		return false
	}
	return true
}

func matchesDate(r domain.Review, dr *domain.DateRange) bool {
	if dr == nil {
		return true
	}
	if dr.From != nil && r.CreatedAt.Before(*dr.From) {
		return false
	}
	if dr.To != nil && r.CreatedAt.After(*dr.To) {
		return false
	}
	return true
}

func matchesProjectType(r domain.Review, set map[string]struct{}) bool {
	if r.ProjectType == nil {
		return false
	}
	_, ok := set[normalizeProjectType(*r.ProjectType)]
	return ok
}

// projectTypeSet returns nil when the facet imposes no constraint.
func projectTypeSet(types []string) map[string]struct{} {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		if t = normalizeProjectType(t); t != "" {
			set[t] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

// normalizeProjectType is the label form shared by the facet list and the filter.
func normalizeProjectType(t string) string { return strings.TrimSpace(t) }

// searchableText is the lowercased title, comment and project type joined by spaces.
func searchableText(r domain.Review) string {
	return strings.ToLower(strings.Join([]string{deref(r.ProjectTitle), deref(r.Comment), deref(r.ProjectType)}, " "))
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
