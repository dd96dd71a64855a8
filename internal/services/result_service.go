package services

import (
	"context"

	"github.com/xosoviet/xoso-backend/internal/cache"
	"github.com/xosoviet/xoso-backend/internal/models"
	"github.com/xosoviet/xoso-backend/internal/repositories"
	"github.com/xosoviet/xoso-backend/pkg/upstream"
	"golang.org/x/exp/slog"
)

// ResultService defines the interface for result resolution
type ResultService interface {
	// Resolve returns results for a draw date and region. It never fails:
	// a fetch failure degrades to the fixed demo tables.
	Resolve(ctx context.Context, date string, region models.Region) models.ResultSet

	// History returns archived results for a region within a draw-date
	// range, newest first
	History(ctx context.Context, region models.Region, from, to string) ([]*models.ArchivedResult, error)

	// Publish stores an operator-supplied result in the archive and warms
	// the cache for its (date, region) key
	Publish(ctx context.Context, region models.Region, result *models.RegionResult) error

	// CacheStats returns a snapshot of the result cache
	CacheStats() cache.Stats

	// ClearCache empties the result cache
	ClearCache()
}

// Compile-time check to ensure ResultServiceImpl implements ResultService
var _ ResultService = (*ResultServiceImpl)(nil)

// ResultServiceImpl resolves lottery results through a cache-first,
// fetch-on-miss, demo-data-on-failure pipeline
type ResultServiceImpl struct {
	 cache      *cache.ResultCache
	 feed       *upstream.Client
	 resultRepo repositories.ResultRepository
}

// NewResultService creates a new ResultServiceImpl. resultRepo may be nil,
// which disables archiving.
func NewResultService(resultCache *cache.ResultCache, feed *upstream.Client, resultRepo repositories.ResultRepository) *ResultServiceImpl {
	return &ResultServiceImpl{
		 cache:      resultCache,
		 feed:       feed,
		 resultRepo: resultRepo,
	}
}

// Resolve returns results for date and region, consulting the cache first.
// On a miss it fetches the live feed; a successful fetch is cached and
// archived. On any fetch failure it returns the fixed demo tables WITHOUT
// caching them, so the next call retries the feed. Callers never see the
// underlying fetch error.
func (s *ResultServiceImpl) Resolve(ctx context.Context, date string, region models.Region) models.ResultSet {
	 key := cacheKey(date, region)
	 if set, ok := s.cache.Get(key); ok {
		 return set
	 }

	 set, err := s.feed.FetchResults(ctx, date, region)
	 if err != nil {
		 slog.Warn("results fetch failed, serving demo data", "date", date, "region", region, "error", err)
		 return upstream.MockResults(date, region)
	 }

	 s.cache.Set(key, set)
	 s.archive(ctx, set)
	 return set
}

// History returns archived results for a region within a date range
func (s *ResultServiceImpl) History(ctx context.Context, region models.Region, from, to string) ([]*models.ArchivedResult, error) {
	 if s.resultRepo == nil {
		 return []*models.ArchivedResult{}, nil
	 }
	 return s.resultRepo.FindByRegionAndDateRange(ctx, region, from, to)
}

// Publish stores an operator-supplied result and warms the cache
func (s *ResultServiceImpl) Publish(ctx context.Context, region models.Region, result *models.RegionResult) error {
	 if s.resultRepo != nil {
		 if err := s.resultRepo.Upsert(ctx, region, result, models.ResultSourceAdmin); err != nil {
			 return err
		 }
	 }
	 s.cache.Set(cacheKey(result.Date, region), models.ResultSet{region: result})
	 slog.Info("result published", "date", result.Date, "region", region)
	 return nil
}

// CacheStats returns a snapshot of the result cache
func (s *ResultServiceImpl) CacheStats() cache.Stats {
	return s.cache.Snapshot()
}

// ClearCache empties the result cache
func (s *ResultServiceImpl) ClearCache() {
	 s.cache.Clear()
	 slog.Info("result cache cleared")
}

// archive writes every region in the set to the archive. Failures are
// logged, not surfaced: archiving is a side effect of resolution.
func (s *ResultServiceImpl) archive(ctx context.Context, set models.ResultSet) {
	 if s.resultRepo == nil {
		 return
	 }
	 for region, result := range set {
		 if result == nil {
			 continue
		 }
		 if err := s.resultRepo.Upsert(ctx, region, result, models.ResultSourceUpstream); err != nil {
			 slog.Error("failed to archive result", "region", region, "date", result.Date, "error", err)
		 }
	 }
}

// cacheKey builds the composite cache key for a (date, region) request
func cacheKey(date string, region models.Region) string {
	return date + ":" + string(region)
}
