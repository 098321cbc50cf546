package analyzing

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spotfinder/parking-analytics-api/infrastructure/cache"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/internal/metrics"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const cacheKeyPrefix = "analytics:"

// CachedService memoriza as visões por identidade do principal e visão durante ttl
type CachedService struct {
	next  Analyzer
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedService(next Analyzer, c cache.Cache, ttl time.Duration) *CachedService {
	if c == nil {
		c = cache.NewNoopCache()
	}

	return &CachedService{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

func (s *CachedService) GetTotals(ctx context.Context, principal domain.Principal, parkingID *int64) domain.TotalsKpi {
	return memoize(ctx, s, viewTotals, cacheKey(principal, viewTotals, parkingID), func(ctx context.Context) domain.TotalsKpi {
		return s.next.GetTotals(ctx, principal, parkingID)
	})
}

func (s *CachedService) GetRevenueByMonth(ctx context.Context, principal domain.Principal, parkingID *int64) []domain.RevenueByMonth {
	return memoize(ctx, s, viewRevenue, cacheKey(principal, viewRevenue, parkingID), func(ctx context.Context) []domain.RevenueByMonth {
		return s.next.GetRevenueByMonth(ctx, principal, parkingID)
	})
}

func (s *CachedService) GetOccupancyByHour(ctx context.Context, principal domain.Principal, parkingID *int64) []domain.OccupancyByHour {
	return memoize(ctx, s, viewOccupancy, cacheKey(principal, viewOccupancy, parkingID), func(ctx context.Context) []domain.OccupancyByHour {
		return s.next.GetOccupancyByHour(ctx, principal, parkingID)
	})
}

func (s *CachedService) GetActivity(ctx context.Context, principal domain.Principal, parkingID *int64) []domain.ActivityItem {
	return memoize(ctx, s, viewActivity, cacheKey(principal, viewActivity, parkingID), func(ctx context.Context) []domain.ActivityItem {
		return s.next.GetActivity(ctx, principal, parkingID)
	})
}

func (s *CachedService) GetTopParkings(ctx context.Context, principal domain.Principal) []domain.TopParking {
	return memoize(ctx, s, viewTopParkings, cacheKey(principal, viewTopParkings, nil), func(ctx context.Context) []domain.TopParking {
		return s.next.GetTopParkings(ctx, principal)
	})
}

// GetSummary não passa pelo cache, o profileID é texto livre
func (s *CachedService) GetSummary(ctx context.Context, principal domain.Principal, profileID string) []domain.AnalyticsSummary {
	return s.next.GetSummary(ctx, principal, profileID)
}

// Invalidate remove todas as visões memorizadas do principal
func (s *CachedService) Invalidate(ctx context.Context, principal domain.Principal) error {
	if principal.IsZero() {
		return nil
	}

	prefix := cacheKeyPrefix + principal.Identity() + ":"
	if err := s.cache.DeletePrefix(ctx, prefix); err != nil {
		return errors.Wrapf(err, "erro ao invalidar cache %s", prefix)
	}

	return nil
}

func cacheKey(principal domain.Principal, view string, parkingID *int64) string {
	key := cacheKeyPrefix + principal.Identity() + ":" + view
	if parkingID != nil {
		key += fmt.Sprintf(":p%d", *parkingID)
	}
	return key
}

// memoize lê do cache e, na ausência, calcula e grava. Falhas do cache só são registradas.
// Resultados vazios produzidos por falha dos provedores não são gravados.
func memoize[T any](ctx context.Context, s *CachedService, view, key string, compute func(context.Context) T) T {
	logger := log.ForContext(ctx).WithFields(log.Fields{"view": view, "cache": key})

	raw, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var cached T
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			metrics.CacheRequestsTotal.WithLabelValues(view, metrics.CacheHit).Inc()
			return cached
		}
		logger.Warn("analytics: valor em cache inválido, recalculando")
		metrics.CacheRequestsTotal.WithLabelValues(view, metrics.CacheError).Inc()
	case errors.Is(err, cache.ErrCacheMiss):
		metrics.CacheRequestsTotal.WithLabelValues(view, metrics.CacheMiss).Inc()
	default:
		logger.WithError(err).Warn("analytics: falha ao ler cache")
		metrics.CacheRequestsTotal.WithLabelValues(view, metrics.CacheError).Inc()
	}

	computeCtx, tracker := trackDegradation(ctx)
	result := compute(computeCtx)
	if tracker.Degraded() {
		logger.Debug("analytics: resultado degradado, cache não gravado")
		metrics.CacheRequestsTotal.WithLabelValues(view, metrics.CacheSkipped).Inc()
		return result
	}

	payload, err := json.Marshal(result)
	if err != nil {
		logger.WithError(err).Warn("analytics: falha ao serializar resultado")
		return result
	}
	if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
		logger.WithError(err).Warn("analytics: falha ao gravar cache")
	}

	return result
}
