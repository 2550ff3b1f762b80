package engine

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"talent_reviews/internal/domain"
)

// SortReviews returns a stably sorted copy of reviews. An empty field sorts by created_at
// and an empty direction means descending. Unknown values fail with domain.ErrInvalidArgument.
func SortReviews(reviews []domain.Review, field domain.SortField, dir domain.SortDirection) ([]domain.Review, error) {
	field, dir = domain.FilterSpec{SortBy: field, SortDirection: dir}.Sort()
	cmpFn, err := comparator(field)
	if err != nil {
		return nil, err
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: unknown sort direction %q", domain.ErrInvalidArgument, dir)
	}

	out := slices.Clone(reviews)
	if out == nil {
		out = []domain.Review{}
	}
	if dir == domain.SortDesc {
		slices.SortStableFunc(out, func(a, b domain.Review) int { return cmpFn(b, a) })
	} else {
		slices.SortStableFunc(out, cmpFn)
	}
	return out, nil
}

func comparator(field domain.SortField) (func(a, b domain.Review) int, error) {
	switch field {
	case domain.SortByRating:
		return func(a, b domain.Review) int { return cmp.Compare(a.Rating, b.Rating) }, nil
	case domain.SortByCreatedAt:
		return func(a, b domain.Review) int { return a.CreatedAt.Compare(b.CreatedAt) }, nil
	case domain.SortByProjectTitle:
		return func(a, b domain.Review) int {
			return strings.Compare(strings.ToLower(deref(a.ProjectTitle)), strings.ToLower(deref(b.ProjectTitle)))
		}, nil
	case domain.SortByProjectValue:
		return func(a, b domain.Review) int { return compareValue(a.ProjectValue, b.ProjectValue) }, nil
	}
	return nil, fmt.Errorf("%w: unknown sort field %q", domain.ErrInvalidArgument, field)
}

// compareValue orders a missing project value below every present one.
func compareValue(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(*a, *b)
}
