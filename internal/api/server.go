package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/horizonhq/horizon-api/infrastructure/database/postgres"
	"github.com/horizonhq/horizon-api/internal/api/handler"
	"github.com/horizonhq/horizon-api/internal/api/handler/router"
	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/internal/scheduler"
	"github.com/horizonhq/horizon-api/internal/usecases/cohorting"
	"github.com/horizonhq/horizon-api/internal/usecases/forecasting"
	"github.com/horizonhq/horizon-api/internal/usecases/fundraising"
	"github.com/horizonhq/horizon-api/internal/usecases/projecting"
	"github.com/horizonhq/horizon-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

// shutdownTimeout é o prazo do desligamento gracioso
const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	conn postgres.Conn,
	scenarioService projecting.ScenarioService,
	predictionService fundraising.PredictionService,
	forecastService forecasting.ForecastService,
	cohortService cohorting.CohortService,
	runwayRefreshService *scheduler.RunwayRefreshService,
	anomalyScanService *scheduler.AnomalyScanService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		RunwayRefreshService: runwayRefreshService,
		AnomalyScanService:   anomalyScanService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(conn)...),
		router.WithRoutes(handler.RunwayScenarios(scenarioService)...),
		router.WithRoutes(handler.FundraisingPredictions(predictionService)...),
		router.WithRoutes(handler.CashflowForecasts(forecastService)...),
		router.WithRoutes(handler.RevenueCohorts(cohortService)...),
		router.WithRoutes(handler.CronJobs(cronServices, config.Auth)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors),
		middleware.TenantAuthMiddleware(config.Auth),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
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

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
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
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
