package domain

import "context"

type ReviewRepository interface {
	// Write paths
	UpsertReviews(ctx context.Context, rs []Review) error
	UpsertDisputes(ctx context.Context, ds []Dispute) error
	LogMiss(ctx context.Context, freelancerID int64, status int, reason string) error

	// Read paths
	ListReviews(ctx context.Context, freelancerID int64) ([]Review, error)
	ListDisputes(ctx context.Context, freelancerID int64) ([]Dispute, error)
}

type MarketplaceClient interface {
	GetReviews(ctx context.Context, freelancerID int64, count int) ([]map[string]any, error)
	GetDisputes(ctx context.Context, freelancerID int64) ([]map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
