package engine

import (
	"slices"
	"strings"

	"talent_reviews/internal/domain"
)

// Relevance weights. Title matches always outrank matches found only in the comment
// or project type: the comment-only ceiling is commentMatch+typeMatch+maxTokens*commentToken.
const (
	titleExact     = 100.0
	titleContains  = 50.0
	commentMatch   = 20.0
	typeMatch      = 10.0
	titleToken     = 5.0
	commentToken   = 2.0
	maxQueryTokens = 5
)

// SearchReviews scores every review against query and returns them ranked by score,
// highest first. Reviews that do not match stay in the result with a zero score; ties
// keep their input order.
func SearchReviews(reviews []domain.Review, query string) []domain.SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.SearchResult, len(reviews))
	if q == "" {
		for i, r := range reviews {
			out[i] = domain.SearchResult{Review: r}
		}
		return out
	}

	tokens := queryTokens(q)
	for i, r := range reviews {
		out[i] = domain.SearchResult{Review: r, RelevanceScore: score(r, q, tokens)}
	}
	slices.SortStableFunc(out, func(a, b domain.SearchResult) int {
		switch {
		case a.RelevanceScore > b.RelevanceScore:
			return -1
		case a.RelevanceScore < b.RelevanceScore:
			return 1
		}
		return 0
	})
	return out
}

func score(r domain.Review, q string, tokens []string) float64 {
	title := strings.ToLower(strings.TrimSpace(deref(r.ProjectTitle)))
	comment := strings.ToLower(deref(r.Comment))
	ptype := strings.ToLower(deref(r.ProjectType))

	var s float64
	switch {
	case title == "":
	case title == q:
		s += titleExact
	case strings.Contains(title, q):
		s += titleContains
	}
	if comment != "" && strings.Contains(comment, q) {
		s += commentMatch
	}
	if ptype != "" && strings.Contains(ptype, q) {
		s += typeMatch
	}

	for _, t := range tokens {
		if title != "" && strings.Contains(title, t) {
			s += titleToken
		}
		if comment != "" && strings.Contains(comment, t) {
			s += commentToken
		}
	}
	return s
}

// queryTokens returns up to maxQueryTokens distinct words, or nil for single-word queries
// whose only token is the query itself.
func queryTokens(q string) []string {
	fields := strings.Fields(q)
	if len(fields) < 2 {
		return nil
	}
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, maxQueryTokens)
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
		if len(out) == maxQueryTokens {
			break
		}
	}
	return out
}
