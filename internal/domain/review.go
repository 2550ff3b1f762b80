package domain

import "time"

// Review is a client's rating of a finished project. Optional fields are nil when the
// marketplace export did not carry them.
type Review struct {
	ID           string    `json:"id"`
	FreelancerID int64     `json:"freelancer_id"`
	Rating       int       `json:"rating"` // 1..5
	CreatedAt    time.Time `json:"created_at"`
	ProjectType  *string   `json:"project_type,omitempty"`
	ProjectTitle *string   `json:"project_title,omitempty"`
	ProjectValue *float64  `json:"project_value,omitempty"`
	Comment      *string   `json:"comment,omitempty"`
	ReviewerName *string   `json:"reviewer_name,omitempty"`
}

// SearchResult pairs a review with its relevance to a search query.
// A zero score means no search was applied or nothing matched.
type SearchResult struct {
	Review         Review  `json:"review"`
	RelevanceScore float64 `json:"relevance_score"`
}

const (
	MinRating = 1
	MaxRating = 5
)
