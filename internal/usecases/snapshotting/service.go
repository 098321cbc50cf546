package snapshotting

import (
	"context"

	"github.com/spotfinder/parking-analytics-api/infrastructure/repository"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/internal/metrics"
	"github.com/spotfinder/parking-analytics-api/pkg/apiErrors"
	"github.com/spotfinder/parking-analytics-api/pkg/clock"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
	"github.com/spotfinder/parking-analytics-api/pkg/utils"
)

const (
	OriginAPI       = "api"
	OriginScheduler = "scheduler"
)

type Snapshotter interface {
	CreateSnapshot(ctx context.Context, ownerID *int64, totals domain.TotalsKpi) (string, error)
}

type Service struct {
	snapshotRepo repository.AnalyticsSnapshotRepository
	clock        clock.Clock
	origin       string
	generateID   func() (string, error)
}

type Option func(*Service)

func WithOrigin(origin string) Option {
	return func(s *Service) {
		s.origin = origin
	}
}

func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

func NewService(snapshotRepo repository.AnalyticsSnapshotRepository, opts ...Option) Snapshotter {
	s := &Service{
		snapshotRepo: snapshotRepo,
		clock:        clock.NewRealClock(),
		origin:       OriginAPI,
		generateID:   utils.GenerateID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSnapshot grava uma cópia dos totais e devolve o id gerado. ownerID nil
// identifica um snapshot da plataforma inteira.
func (s *Service) CreateSnapshot(ctx context.Context, ownerID *int64, totals domain.TotalsKpi) (string, error) {
	id, err := s.generateID()
	if err != nil {
		return "", NewSnapshotError(ErrIDGeneration, apiErrors.ErrInternalServer, err.Error())
	}

	snapshot := &domain.AnalyticsSnapshot{
		ID:         id,
		OwnerID:    ownerID,
		Totals:     totals,
		CapturedAt: s.clock.Now().UTC(),
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"snapshot_id": id,
		"origin":      s.origin,
	})
	if ownerID != nil {
		logger = logger.WithFields(log.Fields{"owner_id": *ownerID})
	}

	if err := s.snapshotRepo.SaveSnapshot(ctx, snapshot); err != nil {
		logger.WithError(err).Error("Erro ao gravar snapshot de analytics")
		return "", NewSnapshotError(ErrSnapshotNotAvailable, apiErrors.ErrSnapshotNotAvailable, err.Error())
	}

	metrics.SnapshotsCreatedTotal.WithLabelValues(s.origin).Inc()
	logger.Info("Snapshot de analytics gravado")

	return id, nil
}
