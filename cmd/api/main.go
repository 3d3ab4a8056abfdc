package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/horizonhq/horizon-api/infrastructure/database/postgres"
	"github.com/horizonhq/horizon-api/infrastructure/integrator/comparables"
	"github.com/horizonhq/horizon-api/infrastructure/repository"
	"github.com/horizonhq/horizon-api/internal/api"
	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/internal/scheduler"
	"github.com/horizonhq/horizon-api/internal/usecases/cohorting"
	"github.com/horizonhq/horizon-api/internal/usecases/forecasting"
	"github.com/horizonhq/horizon-api/internal/usecases/fundraising"
	"github.com/horizonhq/horizon-api/internal/usecases/projecting"
	"github.com/horizonhq/horizon-api/pkg/clock"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	tenantRepo := repository.NewTenantRepository(pgConn)
	financialsRepo := repository.NewFinancialsRepository(pgConn)
	kpiSnapshotRepo := repository.NewKpiSnapshotRepository(pgConn)
	runwayScenarioRepo := repository.NewRunwayScenarioRepository(pgConn)
	fundraisingPredictionRepo := repository.NewFundraisingPredictionRepository(pgConn)
	cashflowForecastRepo := repository.NewCashflowForecastRepository(pgConn)
	revenueCohortRepo := repository.NewRevenueCohortRepository(pgConn)

	marketProvider := comparables.NewStaticProvider(cfg)
	systemClock := clock.System()

	scenarioService := projecting.NewService(runwayScenarioRepo, financialsRepo, tenantRepo, systemClock, cfg)
	predictionService := fundraising.NewService(
		fundraisingPredictionRepo,
		financialsRepo,
		kpiSnapshotRepo,
		tenantRepo,
		marketProvider,
		systemClock,
		cfg,
	)
	forecastService := forecasting.NewService(cashflowForecastRepo, financialsRepo, tenantRepo, systemClock, cfg)
	cohortService := cohorting.NewService(revenueCohortRepo, tenantRepo, systemClock, cfg)

	// Inicializa os agendadores de recálculo e varredura
	runwayRefreshService := scheduler.NewRunwayRefreshService(tenantRepo, scenarioService, cfg)
	anomalyScanService := scheduler.NewAnomalyScanService(tenantRepo, financialsRepo, cfg)

	// Inicia os agendadores em background
	if err := runwayRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recálculo de runway")
	} else {
		logrus.Info("Agendador de recálculo de runway iniciado com sucesso")
	}

	if err := anomalyScanService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de varredura de anomalias")
	} else {
		logrus.Info("Agendador de varredura de anomalias iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		scenarioService,
		predictionService,
		forecastService,
		cohortService,
		runwayRefreshService,
		anomalyScanService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
