package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"talent_reviews/internal/adapters/observability"
	"talent_reviews/internal/domain"
	"talent_reviews/internal/engine"
)

type QueryService struct {
	repo     domain.ReviewRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.ReviewRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func reviewsKey(freelancerID int64) string  { return fmt.Sprintf("reviews:%d", freelancerID) }
func disputesKey(freelancerID int64) string { return fmt.Sprintf("disputes:%d", freelancerID) }

// SearchReviews runs the query engine over a freelancer's full review collection.
// The collection is read through the cache; filtering always happens in-process so
// facet metadata reflects every review, not just the matching ones.
func (s *QueryService) SearchReviews(ctx context.Context, freelancerID int64, spec domain.FilterSpec, opts engine.Options) (engine.Result, error) {
	if err := spec.Validate(); err != nil {
		return engine.Result{}, err
	}
	reviews, err := s.loadReviews(ctx, freelancerID)
	if err != nil {
		return engine.Result{}, err
	}

	start := time.Now()
	res, err := engine.Query(reviews, spec, opts)
	if err != nil {
		return engine.Result{}, err
	}
	observability.ObserveQuery("reviews", opts.EnableSearchScoring, res.TotalResults, time.Since(start))
	return res, nil
}

func (s *QueryService) SearchDisputes(ctx context.Context, freelancerID int64, f domain.DisputeFilter) ([]domain.Dispute, error) {
	key := disputesKey(freelancerID)
	var ds []domain.Dispute
	ok, err := s.cache.Get(ctx, key, &ds)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if !ok {
		ds, err = s.repo.ListDisputes(ctx, freelancerID)
		if err != nil {
			return nil, err
		}
		_ = s.cache.Set(ctx, key, ds, int(s.cacheTTL.Seconds()))
	}

	start := time.Now()
	out := engine.FilterDisputes(ds, f)
	observability.ObserveQuery("disputes", false, len(out), time.Since(start))
	return out, nil
}

func (s *QueryService) loadReviews(ctx context.Context, freelancerID int64) ([]domain.Review, error) {
	key := reviewsKey(freelancerID)
	var rs []domain.Review
	if ok, err := s.cache.Get(ctx, key, &rs); ok {
		return rs, nil
	} else if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	rs, err := s.repo.ListReviews(ctx, freelancerID)
	if err != nil {
		return nil, err
	}

	// copy slice to avoid aliasing the repo's backing array
	out := make([]domain.Review, len(rs))
	copy(out, rs)

	// optional size guard
	if b, _ := json.Marshal(out); len(b) < 1_000_000 {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}
