package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	CacheHit     = "hit"
	CacheMiss    = "miss"
	CacheError   = "error"
	CacheSkipped = "skipped"
)

var (
	// Métricas do motor de analytics
	AggregationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parking_analytics_aggregation_duration_seconds",
		Help:    "Duração do cálculo de cada visão de analytics",
		Buckets: prometheus.DefBuckets,
	}, []string{"view"})

	FailSoftTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parking_analytics_failsoft_total",
		Help: "Total de cálculos convertidos em resultado vazio por erro",
	}, []string{"view"})

	CacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parking_analytics_cache_requests_total",
		Help: "Total de consultas ao cache de analytics por resultado",
	}, []string{"view", "result"})

	// Métricas de snapshots
	SnapshotsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parking_analytics_snapshots_created_total",
		Help: "Total de snapshots de KPIs gravados",
	}, []string{"origin"})
)
