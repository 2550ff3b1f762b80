package engine_test

import (
	"time"

	"talent_reviews/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ids(rs []domain.Review) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func resultIDs(rs []domain.SearchResult) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Review.ID
	}
	return out
}

// fixture is a small mixed collection; r4 has no optional fields at all.
func fixture() []domain.Review {
	return []domain.Review{
		{ID: "r1", Rating: 5, CreatedAt: day("2024-01-01"), ProjectType: ptr("Design"), ProjectTitle: ptr("Website redesign"), ProjectValue: ptr(1200.0), Comment: ptr("Fast and clean work")},
		{ID: "r2", Rating: 2, CreatedAt: day("2024-02-01"), ProjectType: ptr("Dev"), ProjectTitle: ptr("Logo work"), ProjectValue: ptr(300.0), Comment: ptr("Missed the website deadline")},
		{ID: "r3", Rating: 4, CreatedAt: day("2024-03-15"), ProjectType: ptr("Design"), ProjectTitle: ptr("mobile app"), ProjectValue: ptr(5000.0)},
		{ID: "r4", Rating: 3, CreatedAt: day("2024-04-20")},
	}
}
