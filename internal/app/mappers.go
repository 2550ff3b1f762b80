package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"talent_reviews/internal/domain"
)

/********** alias registries (single source of truth) **********/

var reviewAliases = map[string][]string{
	"id":            {"id", "review_id", "reviewId"},
	"rating":        {"rating", "stars", "score", "rating.value"},
	"created_at":    {"created_at", "createdAt", "submitted_at", "date"},
	"project_type":  {"project_type", "projectType", "project.type", "project.category", "category"},
	"project_title": {"project_title", "projectTitle", "project.title", "title"},
	"project_value": {"project_value", "projectValue", "project.value", "project.budget", "amount"},
	"comment":       {"comment", "text", "review", "body", "content", "message"},
	"reviewer":      {"reviewer_name", "reviewer.name", "client_name", "client.name"},
}

var disputeAliases = map[string][]string{
	"id":            {"id", "dispute_id", "disputeId"},
	"project_title": {"project_title", "projectTitle", "project.title", "title"},
	"reason":        {"reason", "description", "details"},
	"status":        {"status", "state"},
	"created_at":    {"created_at", "createdAt", "opened_at", "date"},
}

// reviewNamespace seeds deterministic IDs for exports that carry none.
var reviewNamespace = uuid.MustParse("8f0e6c1e-5a7d-4c55-9b0a-2d4f3b7e9c11")

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		switch t := v.(type) {
		case string:
			return strings.TrimSpace(t)
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		}
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set.
func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) *string {
	for _, p := range aliases[key] {
		if s := lookupStr(m, p); s != "" {
			return &s
		}
	}
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// getFloatFlexible: number from several paths (float64/int/string like "8,0").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// getTimeFlexible: RFC3339/date strings or unix seconds.
func getTimeFlexible(m map[string]any, paths ...string) *time.Time {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			t := time.Unix(int64(v), 0).UTC()
			return &t
		case string:
			s := strings.TrimSpace(v)
			for _, layout := range timeLayouts {
				if t, err := time.Parse(layout, s); err == nil {
					t = t.UTC()
					return &t
				}
			}
		}
	}
	return nil
}

/********** reviews mapper **********/

// mapReviews converts raw export rows into reviews. Rows without a rating in 1..5 are
// dropped. Rows without a timestamp keep a zero CreatedAt; storage stamps them once on
// first insert, so re-imports of the same undated row keep their original date.
func mapReviews(freelancerID int64, in []map[string]any) []domain.Review {
	out := make([]domain.Review, 0, len(in))
	for _, r := range in {
		f := getFloatFlexible(r, reviewAliases["rating"]...)
		if f == nil {
			log.Warn().Int64("freelancer", freelancerID).Str("context", "mapReviews").Msg("review without rating skipped")
			continue
		}
		rating := int(math.Round(*f))
		if rating < domain.MinRating || rating > domain.MaxRating {
			log.Warn().Int64("freelancer", freelancerID).Float64("rating", *f).Str("context", "mapReviews").Msg("review rating out of range skipped")
			continue
		}

		rv := domain.Review{
			FreelancerID: freelancerID,
			Rating:       rating,
			ProjectType:  firstNonEmptyAlias(r, reviewAliases, "project_type"),
			ProjectTitle: firstNonEmptyAlias(r, reviewAliases, "project_title"),
			ProjectValue: getFloatFlexible(r, reviewAliases["project_value"]...),
			Comment:      firstNonEmptyAlias(r, reviewAliases, "comment"),
			ReviewerName: firstNonEmptyAlias(r, reviewAliases, "reviewer"),
		}
		if t := getTimeFlexible(r, reviewAliases["created_at"]...); t != nil {
			rv.CreatedAt = *t
		}

		// ID → prefer explicit; else synthesize a stable one from the content.
		if s := firstNonEmptyAlias(r, reviewAliases, "id"); s != nil {
			rv.ID = *s
		} else {
			sig := strings.Join([]string{
				strconv.FormatInt(freelancerID, 10),
				strconv.Itoa(rv.Rating),
				deref(rv.ProjectTitle),
				deref(rv.Comment),
				deref(rv.ReviewerName),
			}, "|")
			rv.ID = uuid.NewSHA1(reviewNamespace, []byte(sig)).String()
		}

		out = append(out, rv)
	}
	return out
}

/********** disputes mapper **********/

func mapDisputes(freelancerID int64, in []map[string]any) []domain.Dispute {
	out := make([]domain.Dispute, 0, len(in))
	for _, r := range in {
		d := domain.Dispute{
			FreelancerID: freelancerID,
			ProjectTitle: deref(firstNonEmptyAlias(r, disputeAliases, "project_title")),
			Reason:       deref(firstNonEmptyAlias(r, disputeAliases, "reason")),
			Status:       domain.DisputeStatus(strings.ToLower(deref(firstNonEmptyAlias(r, disputeAliases, "status")))),
		}
		if !d.Status.Valid() {
			d.Status = domain.DisputeOpen
		}
		if t := getTimeFlexible(r, disputeAliases["created_at"]...); t != nil {
			d.CreatedAt = *t
		}
		if s := firstNonEmptyAlias(r, disputeAliases, "id"); s != nil {
			d.ID = *s
		} else {
			sig := fmt.Sprintf("dispute|%d|%s|%s", freelancerID, d.ProjectTitle, d.Reason)
			d.ID = uuid.NewSHA1(reviewNamespace, []byte(sig)).String()
		}
		out = append(out, d)
	}
	return out
}
