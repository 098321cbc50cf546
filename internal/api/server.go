package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/spotfinder/parking-analytics-api/internal/api/handler"
	"github.com/spotfinder/parking-analytics-api/internal/api/handler/router"
	"github.com/spotfinder/parking-analytics-api/internal/config"
	"github.com/spotfinder/parking-analytics-api/internal/scheduler"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/analyzing"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/authenticating"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/managing"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/reserving"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/snapshotting"
	"github.com/spotfinder/parking-analytics-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator  authenticating.Authenticator
	Analyzer       analyzing.Analyzer
	Invalidator    analyzing.Invalidator
	Snapshotter    snapshotting.Snapshotter
	ParkingManager managing.ParkingManager
	Reserver       reserving.Reserver
	SnapshotSync   *scheduler.SnapshotSyncService
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil || services.Analyzer == nil {
		return nil, fmt.Errorf("serviços de autenticação e analytics são obrigatórios")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Analytics(services.Analyzer, services.Invalidator, services.Snapshotter)...),
		router.WithRoutes(handler.Parkings(services.ParkingManager)...),
		router.WithRoutes(handler.Reservations(services.Reserver)...),
		router.WithRoutes(handler.CronJobs(handler.NewCronJobServices(services.SnapshotSync))...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
