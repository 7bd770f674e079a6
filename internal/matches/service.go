package matches

import (
	"context"
	"time"

	"skincare-recommender/internal/catalog"
	"skincare-recommender/internal/profile"
	"skincare-recommender/internal/recommendations"
	"skincare-recommender/internal/shared/metrics"
	"skincare-recommender/internal/shared/telemetry"
)

// Service ranks the shared catalog for incoming profiles.
type Service struct {
	Catalog *catalog.Catalog
	Policy  recommendations.Policy
	// Limit caps the returned matches; 0 returns all of them.
	Limit   int
	Metrics *metrics.Collector
}

// Result is one ranking outcome.
type Result struct {
	CatalogVersion string
	Profile        profile.Profile
	Matches        []recommendations.Match
	// Total counts qualifying services before Limit was applied.
	Total int
}

// Recommend ranks the catalog for p. limit overrides the service limit
// when positive.
func (s *Service) Recommend(ctx context.Context, p profile.Profile, limit int) (Result, error) {
	if s == nil || s.Catalog == nil {
		return Result{}, ErrCatalogUnavailable
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if limit < 0 {
		s.Metrics.ObserveRecommendation(metrics.OutcomeInvalid, 0, 0)
		return Result{}, ErrInvalidInput
	}
	if limit == 0 {
		limit = s.Limit
	}

	start := time.Now()
	ranked := recommendations.Rank(s.Catalog, p, s.Policy)
	elapsed := time.Since(start)

	total := len(ranked)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	outcome := metrics.OutcomeMatched
	if total == 0 {
		outcome = metrics.OutcomeEmpty
		telemetry.Info("recommendations.empty", map[string]any{
			"catalog_version": s.Catalog.Version(),
			"catalog_size":    s.Catalog.Len(),
		})
	}
	s.Metrics.ObserveRecommendation(outcome, elapsed, len(ranked))

	return Result{
		CatalogVersion: s.Catalog.Version(),
		Profile:        p,
		Matches:        ranked,
		Total:          total,
	}, nil
}
