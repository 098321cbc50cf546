// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/spotfinder/parking-analytics-api/infrastructure/repository"
	"github.com/spotfinder/parking-analytics-api/internal/config"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/analyzing"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/snapshotting"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
)

const SnapshotJobType = "snapshots"

type SnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	parkingRepo         repository.ParkingRepository
	analyzer            analyzing.Analyzer
	snapshotter         snapshotting.Snapshotter
	config              SnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncSnapshots   int
	lastSyncFailures    int
}

func NewSnapshotSyncService(
	parkingRepo repository.ParkingRepository,
	analyzer analyzing.Analyzer,
	snapshotter snapshotting.Snapshotter,
	cfg *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: cfg.SnapshotSync.CronSchedule, // Default: 2h da manhã todos os dias
		SyncEnabled:  cfg.SnapshotSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotSyncService{
		scheduler:   gocron.NewScheduler(cfg.App.Location()),
		parkingRepo: parkingRepo,
		analyzer:    analyzer,
		snapshotter: snapshotter,
		config:      syncConfig,
	}
}

func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshots de analytics desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots de analytics")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshots(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots de analytics: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots de analytics")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSnapshots grava um snapshot dos totais de cada proprietário com parkings
func (s *SnapshotSyncService) syncSnapshots(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshots de analytics já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)
	logger.Info("Iniciando snapshots de analytics para todos os proprietários")

	created, failures := 0, 0
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastSyncSnapshots = created
		s.lastSyncFailures = failures
		s.syncMutex.Unlock()
	}()

	ownerIDs, err := s.parkingRepo.ListOwnerIDs(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar proprietários para snapshots de analytics")
		failures++
		return
	}

	if len(ownerIDs) == 0 {
		logger.Info("Nenhum proprietário com parkings para snapshots de analytics")
		return
	}

	for _, ownerID := range ownerIDs {
		if ctx.Err() != nil {
			logger.WithError(ctx.Err()).Warn("Snapshots de analytics interrompidos")
			return
		}

		if err := s.snapshotOwner(ctx, ownerID); err != nil {
			logger.WithFields(log.Fields{"owner_id": ownerID}).WithError(err).Error("Erro ao gravar snapshot do proprietário")
			failures++
			continue
		}
		created++
	}

	logger.WithFields(log.Fields{
		"owners":    len(ownerIDs),
		"snapshots": created,
		"failures":  failures,
	}).Info("Snapshots de analytics concluídos")
}

func (s *SnapshotSyncService) snapshotOwner(ctx context.Context, ownerID int64) error {
	totals := s.analyzer.GetTotals(ctx, analyzing.OwnerPrincipal(ownerID), nil)

	_, err := s.snapshotter.CreateSnapshot(ctx, &ownerID, totals)
	return err
}

// TriggerManualSync inicia manualmente os snapshots; devolve false quando já há uma execução
func (s *SnapshotSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshots de analytics já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshots manuais de analytics")
	go s.syncSnapshots(context.Background())

	return true
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_snapshots":    s.lastSyncSnapshots,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
