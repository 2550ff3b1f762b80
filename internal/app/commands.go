package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"talent_reviews/internal/domain"
)

type ImportService struct {
	client domain.MarketplaceClient
	repo   domain.ReviewRepository
	cache  domain.Cache
}

func NewImportService(c domain.MarketplaceClient, r domain.ReviewRepository, cache domain.Cache) *ImportService {
	return &ImportService{client: c, repo: r, cache: cache}
}

// missStatus classifies errors that mean "nothing to import" rather than a failure.
func missStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, true
	}
	return 0, false
}

func (s *ImportService) ImportFreelancer(ctx context.Context, id int64, reviewCount int) error {
	// 1) Reviews. 404/401/403 are recorded as misses; the cache is evicted either way
	// so we never keep serving a snapshot the marketplace no longer has.
	revs, err := s.client.GetReviews(ctx, id, reviewCount)
	if err != nil {
		status, miss := missStatus(err)
		if !miss {
			return err
		}
		_ = s.repo.LogMiss(ctx, id, status, "reviews")
		s.invalidate(ctx, reviewsKey(id))
	} else {
		if mapped := mapReviews(id, revs); len(mapped) > 0 {
			if err := s.repo.UpsertReviews(ctx, mapped); err != nil {
				return fmt.Errorf("upsert reviews failed for %d: %w", id, err)
			}
		}
		s.invalidate(ctx, reviewsKey(id))
	}

	// 2) Disputes: best-effort on the same terms.
	ds, err := s.client.GetDisputes(ctx, id)
	if err != nil {
		status, miss := missStatus(err)
		if !miss {
			return err
		}
		_ = s.repo.LogMiss(ctx, id, status, "disputes")
		s.invalidate(ctx, disputesKey(id))
		return nil
	}
	if mapped := mapDisputes(id, ds); len(mapped) > 0 {
		if err := s.repo.UpsertDisputes(ctx, mapped); err != nil {
			return fmt.Errorf("upsert disputes failed for %d: %w", id, err)
		}
	}
	s.invalidate(ctx, disputesKey(id))
	return nil
}

func (s *ImportService) invalidate(ctx context.Context, key string) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, key)
	}
}
