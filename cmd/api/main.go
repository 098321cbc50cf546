package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spotfinder/parking-analytics-api/infrastructure/cache"
	"github.com/spotfinder/parking-analytics-api/infrastructure/database/postgres"
	"github.com/spotfinder/parking-analytics-api/infrastructure/migration"
	"github.com/spotfinder/parking-analytics-api/infrastructure/repository"
	"github.com/spotfinder/parking-analytics-api/internal/api"
	"github.com/spotfinder/parking-analytics-api/internal/config"
	"github.com/spotfinder/parking-analytics-api/internal/scheduler"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/analyzing"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/authenticating"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/managing"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/reserving"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/snapshotting"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Migrate(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	analyticsCache := cache.New(ctx, cfg.Cache.Driver, cfg.Cache.RedisURL)
	defer analyticsCache.Close()

	userRepo := repository.NewUserRepository(pgConn)
	parkingRepo := repository.NewParkingRepository(pgConn)
	spotRepo := repository.NewParkingSpotRepository(pgConn)
	reservationRepo := repository.NewReservationRepository(pgConn)
	snapshotRepo := repository.NewAnalyticsSnapshotRepository(pgConn)

	location := cfg.App.Location()

	authenticator := authenticating.NewService(userRepo, cfg)

	// O analyzer sem cache alimenta os snapshots agendados
	analyzer := analyzing.NewService(
		parkingRepo,
		reservationRepo,
		authenticator, // Implementa OwnerResolver
		analyzing.WithLocation(location),
		analyzing.WithLocale(cfg.Analytics.Locale),
	)
	cachedAnalyzer := analyzing.NewCachedService(analyzer, analyticsCache, cfg.Cache.TTL)

	parkingManager := managing.NewService(parkingRepo, spotRepo, cachedAnalyzer)
	reserver := reserving.NewService(reservationRepo, parkingRepo, spotRepo, cachedAnalyzer, location)

	snapshotSyncService := scheduler.NewSnapshotSyncService(
		parkingRepo,
		analyzer,
		snapshotting.NewService(snapshotRepo, snapshotting.WithOrigin(snapshotting.OriginScheduler)),
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de analytics")
	} else {
		logrus.Info("Agendador de snapshots de analytics iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:  authenticator,
		Analyzer:       cachedAnalyzer,
		Invalidator:    cachedAnalyzer,
		Snapshotter:    snapshotting.NewService(snapshotRepo),
		ParkingManager: parkingManager,
		Reserver:       reserver,
		SnapshotSync:   snapshotSyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
