// Package recommend implements the product-association recommendation core:
// per-product co-occurrence suggestions and the cached global frequent-pair
// view.
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"souqStore/domain"
	"souqStore/pkg/cache"
	"souqStore/pkg/logger"
	"souqStore/pkg/metrics"
)

// DefaultMinSupport is applied when the min_support parameter is absent or
// not numeric. The fallback is the contract, not an error path.
const DefaultMinSupport = 0.1

const associationsCacheKey = "associations"

type RecommendationRepository interface {
	CoOccurrences(ctx context.Context, productID uint64, minSupport float64) ([]domain.ProductSuggestion, error)
	TopAssociations(ctx context.Context) ([]domain.AssociationPair, error)
}

type Service struct {
	repo     RecommendationRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewService(repo RecommendationRepository, resultCache cache.Cache, cacheTTL time.Duration) *Service {
	return &Service{
		repo:     repo,
		cache:    resultCache,
		cacheTTL: cacheTTL,
	}
}

// Suggestions returns up to 5 products that co-occur with productID in past
// orders, with support >= minSupport, ordered by support descending. The
// order of candidates with equal support is arbitrary. An unknown product id
// yields an empty result, not an error: no orders reference it, so it has no
// co-occurrences.
func (s *Service) Suggestions(ctx context.Context, productID uint64, minSupport float64) ([]domain.ProductSuggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	suggestions, err := s.repo.CoOccurrences(ctx, productID, minSupport)
	if err != nil {
		return nil, err
	}

	if suggestions == nil {
		suggestions = []domain.ProductSuggestion{}
	}

	return suggestions, nil
}

// TopAssociations returns the 10 most frequent precomputed product pairs,
// served from the result cache while the entry is fresh. Within the TTL the
// response does not reflect changes to the underlying table; that staleness
// is the accepted trade-off for skipping the join. Cache failures degrade to
// a recompute, never to a failed request, and concurrent misses each
// recompute independently since the query is idempotent.
func (s *Service) TopAssociations(ctx context.Context) ([]domain.AssociationPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	raw, hit, err := s.cache.Get(ctx, associationsCacheKey)
	if err != nil {
		logger.Warn("association cache read failed, recomputing", err)
		hit = false
	}
	if hit {
		var pairs []domain.AssociationPair
		if err := json.Unmarshal(raw, &pairs); err == nil {
			metrics.AssociationCacheHits.Inc()
			return pairs, nil
		}
		logger.Warn("corrupt association cache entry, recomputing")
	}

	metrics.AssociationCacheMisses.Inc()

	pairs, err := s.repo.TopAssociations(ctx)
	if err != nil {
		return nil, err
	}

	if pairs == nil {
		pairs = []domain.AssociationPair{}
	}

	encoded, err := json.Marshal(pairs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode associations: %w", err)
	}

	if err := s.cache.Set(ctx, associationsCacheKey, encoded, s.cacheTTL); err != nil {
		logger.Warn("association cache write failed", err)
	}

	return pairs, nil
}
