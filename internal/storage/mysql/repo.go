package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"talent_reviews/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// Repo implements domain.ReviewRepository on MySQL.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// UpsertReviews writes reviews in at most two statements: rows carrying a created_at
// overwrite the stored one, rows without one (zero CreatedAt) keep it.
func (r *Repo) UpsertReviews(ctx context.Context, rs []domain.Review) error {
	dated, undated := splitByCreatedAt(rs, func(rv domain.Review) time.Time { return rv.CreatedAt })
	if err := r.upsertReviews(ctx, dated, reviewRowDated, upsertReviewsOnDupDated, true); err != nil {
		return err
	}
	return r.upsertReviews(ctx, undated, reviewRowUndated, upsertReviewsOnDupUndated, false)
}

func (r *Repo) upsertReviews(ctx context.Context, rs []domain.Review, row, onDup string, withCreated bool) error {
	if len(rs) == 0 {
		return nil
	}
	values := make([]string, 0, len(rs))
	args := make([]any, 0, len(rs)*9) // up to 9 params per row
	for _, rv := range rs {
		values = append(values, row)
		args = append(args, rv.FreelancerID, rv.ID, rv.Rating)
		if withCreated {
			args = append(args, rv.CreatedAt.UTC())
		}
		args = append(args,
			valStr(rv.ProjectType),
			valStr(rv.ProjectTitle),
			valF64(rv.ProjectValue),
			valStr(rv.Comment),
			valStr(rv.ReviewerName),
		)
	}
	sqlStr := upsertReviewsPrefix + strings.Join(values, ",") + onDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) UpsertDisputes(ctx context.Context, ds []domain.Dispute) error {
	dated, undated := splitByCreatedAt(ds, func(d domain.Dispute) time.Time { return d.CreatedAt })
	if err := r.upsertDisputes(ctx, dated, disputeRowDated, upsertDisputesOnDupDated, true); err != nil {
		return err
	}
	return r.upsertDisputes(ctx, undated, disputeRowUndated, upsertDisputesOnDupUndated, false)
}

func (r *Repo) upsertDisputes(ctx context.Context, ds []domain.Dispute, row, onDup string, withCreated bool) error {
	if len(ds) == 0 {
		return nil
	}
	values := make([]string, 0, len(ds))
	args := make([]any, 0, len(ds)*6)
	for _, d := range ds {
		values = append(values, row)
		args = append(args, d.FreelancerID, d.ID, d.ProjectTitle, d.Reason, string(d.Status))
		if withCreated {
			args = append(args, d.CreatedAt.UTC())
		}
	}
	sqlStr := upsertDisputesPrefix + strings.Join(values, ",") + onDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func splitByCreatedAt[T any](in []T, createdAt func(T) time.Time) (dated, undated []T) {
	for _, v := range in {
		if createdAt(v).IsZero() {
			undated = append(undated, v)
		} else {
			dated = append(dated, v)
		}
	}
	return dated, undated
}

func (r *Repo) LogMiss(ctx context.Context, freelancerID int64, status int, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, freelancerID, reason, status)
	return err
}

// ListReviews returns every review of a freelancer, newest first. No rows is an empty
// slice, not an error.
func (r *Repo) ListReviews(ctx context.Context, freelancerID int64) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsSQL, freelancerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		var (
			ptype, title, comment, reviewer sql.NullString
			value                           sql.NullFloat64
		)
		if err := rows.Scan(
			&rv.ID,
			&rv.FreelancerID,
			&rv.Rating,
			&rv.CreatedAt,
			&ptype,
			&title,
			&value,
			&comment,
			&reviewer,
		); err != nil {
			return nil, err
		}
		rv.CreatedAt = rv.CreatedAt.UTC()
		rv.ProjectType = strPtr(ptype)
		rv.ProjectTitle = strPtr(title)
		rv.Comment = strPtr(comment)
		rv.ReviewerName = strPtr(reviewer)
		if value.Valid {
			f := value.Float64
			rv.ProjectValue = &f
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) ListDisputes(ctx context.Context, freelancerID int64) ([]domain.Dispute, error) {
	rows, err := r.db.QueryContext(ctx, listDisputesSQL, freelancerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Dispute{}
	for rows.Next() {
		var d domain.Dispute
		var status string
		if err := rows.Scan(&d.ID, &d.FreelancerID, &d.ProjectTitle, &d.Reason, &status, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.Status = domain.DisputeStatus(status)
		d.CreatedAt = d.CreatedAt.UTC()
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
