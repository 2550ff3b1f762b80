package engine

import (
	"slices"
	"strings"
	"time"

	"talent_reviews/internal/domain"
)

// FilterDisputes applies a substring search over id, project title and reason, a same-day
// date match and an exact status match, then orders the survivors newest first.
func FilterDisputes(disputes []domain.Dispute, f domain.DisputeFilter) []domain.Dispute {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]domain.Dispute, 0, len(disputes))
	for _, d := range disputes {
		if needle != "" && !strings.Contains(disputeText(d), needle) {
			continue
		}
		if f.Date != nil && !sameDay(d.CreatedAt, *f.Date) {
			continue
		}
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		out = append(out, d)
	}
	slices.SortStableFunc(out, func(a, b domain.Dispute) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out
}

func disputeText(d domain.Dispute) string {
	return strings.ToLower(d.ID + " " + d.ProjectTitle + " " + d.Reason)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
