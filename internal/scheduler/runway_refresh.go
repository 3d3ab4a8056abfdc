package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/horizonhq/horizon-api/infrastructure/repository"
	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/internal/usecases/projecting"
	"github.com/sirupsen/logrus"
)

// baseScenarioName é o nome do cenário de sistema recalculado diariamente
const baseScenarioName = "Base"

// RunwayRefreshConfig representa a configuração do agendador de recálculo de runway
type RunwayRefreshConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// RunwayRefreshService recalcula o cenário base de runway de cada tenant
// ativo, mantendo o comparativo do dashboard alinhado com a posição
// financeira mais recente
type RunwayRefreshService struct {
	scheduler           *gocron.Scheduler
	config              RunwayRefreshConfig
	tenantRepo          repository.TenantRepository
	scenarioService     projecting.ScenarioService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewRunwayRefreshService cria uma nova instância do agendador de recálculo de runway
func NewRunwayRefreshService(
	tenantRepo repository.TenantRepository,
	scenarioService projecting.ScenarioService,
	appConfig *config.Config,
) *RunwayRefreshService {
	refreshConfig := RunwayRefreshConfig{
		CronSchedule:      appConfig.RunwayRefresh.CronSchedule,
		MaxConcurrentJobs: appConfig.RunwayRefresh.MaxConcurrentJobs,
		SyncEnabled:       appConfig.RunwayRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       refreshConfig.CronSchedule,
		"max_concurrent_jobs": refreshConfig.MaxConcurrentJobs,
		"sync_enabled":        refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de recálculo de runway carregada")

	return &RunwayRefreshService{
		scheduler:       scheduler,
		config:          refreshConfig,
		tenantRepo:      tenantRepo,
		scenarioService: scenarioService,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *RunwayRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recálculo de runway desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recálculo de runway")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAllTenants()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recálculo de runway: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recálculo de runway")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshAllTenants recalcula o cenário base de todos os tenants ativos
func (s *RunwayRefreshService) refreshAllTenants() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de runway já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando recálculo do cenário base para todos os tenants ativos")

	tenants, err := s.tenantRepo.ListByStatus([]domain.TenantStatus{domain.TenantStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar tenants ativos para recálculo de runway")
		return
	}

	if len(tenants) == 0 {
		logrus.Info("Nenhum tenant ativo encontrado para recálculo de runway")
		return
	}

	// Canal como semáforo para limitar cenários recalculados em paralelo
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, tenant := range tenants {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(t *domain.Tenant) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.refreshTenantScenario(t)
		}(tenant)
	}

	wg.Wait()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"tenants":  len(tenants),
	}).Info("Recálculo do cenário base concluído")

	s.lastSyncCompletedAt = time.Now()
}

// refreshTenantScenario remove o cenário base anterior do tenant e deriva um
// novo a partir da posição financeira corrente
func (s *RunwayRefreshService) refreshTenantScenario(tenant *domain.Tenant) {
	logrus.WithFields(logrus.Fields{
		"tenant_id":   tenant.ID,
		"tenant_name": tenant.Name,
	}).Info("Recalculando cenário base do tenant")

	scenarios, err := s.scenarioService.ListRunwayScenarios(tenant.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenant.ID,
			"error":     err.Error(),
		}).Error("Erro ao listar cenários do tenant para recálculo")
		return
	}

	// Cenários base anteriores são supostos pelo novo; a exclusão é lógica e
	// o histórico segue recuperável no banco
	var previous *domain.RunwayScenario
	for _, scenario := range scenarios {
		if scenario.Type != domain.ScenarioTypeBase || scenario.Name != baseScenarioName {
			continue
		}
		if previous == nil {
			previous = scenario
		}
		if err := s.scenarioService.DeleteRunwayScenario(tenant.ID, scenario.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id":   tenant.ID,
				"scenario_id": scenario.ID,
				"error":       err.Error(),
			}).Warn("Erro ao remover cenário base anterior")
		}
	}

	request := &domain.CreateScenarioRequest{
		Name: baseScenarioName,
		Type: string(domain.ScenarioTypeBase),
	}

	// Premissas de crescimento ajustadas no cenário anterior sobrevivem ao
	// recálculo; só a posição financeira congelada é rederivada
	if previous != nil {
		if burn := previous.AssumptionFor(domain.AssumptionMetricBurn); burn != nil {
			request.BurnGrowthRate = burn.MonthlyGrowthRate
		}
		if revenue := previous.AssumptionFor(domain.AssumptionMetricRevenue); revenue != nil {
			request.RevenueGrowthRate = revenue.MonthlyGrowthRate
		}
		request.ProjectionMonths = previous.ProjectionMonths
	}

	scenario, err := s.scenarioService.CreateRunwayScenario(context.Background(), tenant.ID, request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenant.ID,
			"error":     err.Error(),
		}).Error("Erro ao recalcular cenário base do tenant")
		return
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":     tenant.ID,
		"scenario_id":   scenario.ID,
		"runway_months": scenario.TotalRunwayMonths,
	}).Info("Cenário base recalculado com sucesso")
}

// TriggerManualSync inicia manualmente um recálculo de cenários base
func (s *RunwayRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de runway já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recálculo manual de cenários base")
	go s.refreshAllTenants()
}

// GetStatus retorna o status atual do agendador
func (s *RunwayRefreshService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"base_scenario_name":     baseScenarioName,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
