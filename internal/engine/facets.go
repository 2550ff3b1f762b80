package engine

import (
	"fmt"
	"slices"
	"strings"

	"talent_reviews/internal/domain"
)

const summaryDateLayout = "2006-01-02"

var sortLabels = map[domain.SortField]string{
	domain.SortByRating:       "Rating",
	domain.SortByCreatedAt:    "Date",
	domain.SortByProjectTitle: "Project title",
	domain.SortByProjectValue: "Project value",
}

// AvailableProjectTypes lists the distinct non-empty project types in reviews, A-Z.
func AvailableProjectTypes(reviews []domain.Review) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range reviews {
		t := normalizeProjectType(deref(r.ProjectType))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// HasActiveFilters reports whether spec would produce a different result than the empty spec.
func HasActiveFilters(spec domain.FilterSpec) bool {
	return ratingActive(spec.Rating) ||
		dateActive(spec.DateRange) ||
		len(spec.ProjectTypes) > 0 ||
		spec.SearchQuery() != "" ||
		sortActive(spec)
}

// ActiveFiltersSummary describes each active facet, in the order
// rating, date range, project types, search, sort.
func ActiveFiltersSummary(spec domain.FilterSpec) []string {
	out := []string{}
	if rr := spec.Rating; ratingActive(rr) {
		switch {
		case rr.Min != nil && rr.Max != nil:
			out = append(out, fmt.Sprintf("Rating: %d - %d stars", *rr.Min, *rr.Max))
		case rr.Min != nil:
			out = append(out, fmt.Sprintf("Rating: %d+ stars", *rr.Min))
		default:
			out = append(out, fmt.Sprintf("Rating: up to %d stars", *rr.Max))
		}
	}
	if dr := spec.DateRange; dateActive(dr) {
		switch {
		case dr.From != nil && dr.To != nil:
			out = append(out, fmt.Sprintf("Date: %s - %s", dr.From.Format(summaryDateLayout), dr.To.Format(summaryDateLayout)))
		case dr.From != nil:
			out = append(out, "Date: from "+dr.From.Format(summaryDateLayout))
		default:
			out = append(out, "Date: until "+dr.To.Format(summaryDateLayout))
		}
	}
	if len(spec.ProjectTypes) > 0 {
		out = append(out, "Project types: "+strings.Join(spec.ProjectTypes, ", "))
	}
	if q := spec.SearchQuery(); q != "" {
		out = append(out, fmt.Sprintf("Search: %q", q))
	}
	if sortActive(spec) {
		field, dir := spec.Sort()
		label, ok := sortLabels[field]
		if !ok {
			label = string(field)
		}
		order := "descending"
		if dir == domain.SortAsc {
			order = "ascending"
		}
		out = append(out, fmt.Sprintf("Sort: %s (%s)", label, order))
	}
	return out
}

func ratingActive(rr *domain.RatingRange) bool {
	return rr != nil && (rr.Min != nil || rr.Max != nil)
}

func dateActive(dr *domain.DateRange) bool {
	return dr != nil && (dr.From != nil || dr.To != nil)
}

// sortActive is false for the default created_at/desc ordering, spelled out or not.
func sortActive(spec domain.FilterSpec) bool {
	field, dir := spec.Sort()
	return field != domain.SortByCreatedAt || dir != domain.SortDesc
}
