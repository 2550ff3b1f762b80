package domain

import (
	"fmt"
	"strings"
	"time"
)

type SortField string

const (
	SortByRating       SortField = "rating"
	SortByCreatedAt    SortField = "created_at"
	SortByProjectTitle SortField = "project_title"
	SortByProjectValue SortField = "project_value"
)

func (f SortField) Valid() bool {
	switch f {
	case SortByRating, SortByCreatedAt, SortByProjectTitle, SortByProjectValue:
		return true
	}
	return false
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (d SortDirection) Valid() bool { return d == SortAsc || d == SortDesc }

// RatingRange bounds are inclusive; a nil bound leaves that side open.
type RatingRange struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// DateRange bounds are inclusive on Review.CreatedAt.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// FilterSpec describes one review query. The zero value matches everything and sorts
// newest first. The With* setters return a copy with exactly one facet replaced.
type FilterSpec struct {
	Rating        *RatingRange  `json:"rating,omitempty"`
	DateRange     *DateRange    `json:"date_range,omitempty"`
	ProjectTypes  []string      `json:"project_types,omitempty"`
	Search        string        `json:"search,omitempty"`
	SortBy        SortField     `json:"sort_by,omitempty"`
	SortDirection SortDirection `json:"sort_direction,omitempty"`
}

func (f FilterSpec) WithRating(min, max *int) FilterSpec {
	if min == nil && max == nil {
		f.Rating = nil
		return f
	}
	f.Rating = &RatingRange{Min: copyPtr(min), Max: copyPtr(max)}
	return f
}

func (f FilterSpec) WithDateRange(from, to *time.Time) FilterSpec {
	if from == nil && to == nil {
		f.DateRange = nil
		return f
	}
	f.DateRange = &DateRange{From: copyPtr(from), To: copyPtr(to)}
	return f
}

func (f FilterSpec) WithProjectTypes(types ...string) FilterSpec {
	if len(types) == 0 {
		f.ProjectTypes = nil
		return f
	}
	f.ProjectTypes = append([]string(nil), types...)
	return f
}

func (f FilterSpec) WithSearch(q string) FilterSpec {
	f.Search = q
	return f
}

func (f FilterSpec) WithSort(field SortField, dir SortDirection) FilterSpec {
	f.SortBy = field
	f.SortDirection = dir
	return f
}

// Reset returns the empty spec.
func (f FilterSpec) Reset() FilterSpec { return FilterSpec{} }

// SearchQuery returns the trimmed search text; "" means search is unset.
func (f FilterSpec) SearchQuery() string { return strings.TrimSpace(f.Search) }

// Sort resolves the effective sort, applying the created_at/desc defaults.
func (f FilterSpec) Sort() (SortField, SortDirection) {
	field, dir := f.SortBy, f.SortDirection
	if field == "" {
		field = SortByCreatedAt
	}
	if dir == "" {
		dir = SortDesc
	}
	return field, dir
}

// Validate rejects sort selectors the engine does not know. Bad data in the reviews
// themselves is never an error.
func (f FilterSpec) Validate() error {
	if f.SortBy != "" && !f.SortBy.Valid() {
		return fmt.Errorf("%w: unknown sort field %q", ErrInvalidArgument, f.SortBy)
	}
	if f.SortDirection != "" && !f.SortDirection.Valid() {
		return fmt.Errorf("%w: unknown sort direction %q", ErrInvalidArgument, f.SortDirection)
	}
	return nil
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
