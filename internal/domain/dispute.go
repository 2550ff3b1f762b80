package domain

import "time"

type DisputeStatus string

const (
	DisputeOpen        DisputeStatus = "open"
	DisputeUnderReview DisputeStatus = "under_review"
	DisputeResolved    DisputeStatus = "resolved"
	DisputeClosed      DisputeStatus = "closed"
)

func (s DisputeStatus) Valid() bool {
	switch s {
	case DisputeOpen, DisputeUnderReview, DisputeResolved, DisputeClosed:
		return true
	}
	return false
}

type Dispute struct {
	ID           string        `json:"id"`
	FreelancerID int64         `json:"freelancer_id"`
	ProjectTitle string        `json:"project_title"`
	Reason       string        `json:"reason"`
	Status       DisputeStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

// DisputeFilter narrows a dispute list. Date matches the calendar day (UTC) of CreatedAt.
type DisputeFilter struct {
	Search string
	Date   *time.Time
	Status DisputeStatus
}
