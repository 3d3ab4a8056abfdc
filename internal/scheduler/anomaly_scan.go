package scheduler

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/horizonhq/horizon-api/infrastructure/repository"
	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/pkg/numeric"
	"github.com/horizonhq/horizon-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// anomalyTopExpenses limita o detalhamento de um período anômalo às maiores
// despesas individuais
const anomalyTopExpenses = 3

// AnomalyScanConfig representa a configuração do agendador de varredura de anomalias
type AnomalyScanConfig struct {
	CronSchedule   string
	LookbackMonths int
	SyncEnabled    bool
}

// AnomalyScanService varre os totais mensais de despesas de cada tenant ativo
// em busca de meses fora das cercas interquartílicas. As ocorrências são
// apenas registradas em log; nenhuma notificação é disparada
type AnomalyScanService struct {
	scheduler           *gocron.Scheduler
	config              AnomalyScanConfig
	tenantRepo          repository.TenantRepository
	financialsRepo      repository.FinancialsRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAnomalyScanService cria uma nova instância do agendador de varredura de anomalias
func NewAnomalyScanService(
	tenantRepo repository.TenantRepository,
	financialsRepo repository.FinancialsRepository,
	appConfig *config.Config,
) *AnomalyScanService {
	scanConfig := AnomalyScanConfig{
		CronSchedule:   appConfig.AnomalyScan.CronSchedule,
		LookbackMonths: appConfig.AnomalyScan.LookbackMonths,
		SyncEnabled:    appConfig.AnomalyScan.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   scanConfig.CronSchedule,
		"lookback_months": scanConfig.LookbackMonths,
		"sync_enabled":    scanConfig.SyncEnabled,
	}).Info("Configuração do agendador de varredura de anomalias carregada")

	return &AnomalyScanService{
		scheduler:      scheduler,
		config:         scanConfig,
		tenantRepo:     tenantRepo,
		financialsRepo: financialsRepo,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *AnomalyScanService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Varredura de anomalias desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de varredura de anomalias")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.scanAllTenants()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de anomalias: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de varredura de anomalias")
		s.scheduler.Stop()
	}()

	return nil
}

// scanAllTenants varre as despesas de todos os tenants ativos
func (s *AnomalyScanService) scanAllTenants() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de anomalias já em andamento, ignorando")
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

	logrus.Info("Iniciando varredura de anomalias de despesas")

	tenants, err := s.tenantRepo.ListByStatus([]domain.TenantStatus{domain.TenantStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar tenants ativos para varredura de anomalias")
		return
	}

	if len(tenants) == 0 {
		logrus.Info("Nenhum tenant ativo encontrado para varredura de anomalias")
		return
	}

	totalAnomalies := 0
	for _, tenant := range tenants {
		totalAnomalies += s.scanTenantExpenses(tenant)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"tenants":   len(tenants),
		"anomalies": totalAnomalies,
	}).Info("Varredura de anomalias de despesas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// scanTenantExpenses varre os totais mensais de despesas do tenant e retorna
// a quantidade de anomalias encontradas
func (s *AnomalyScanService) scanTenantExpenses(tenant *domain.Tenant) int {
	endDate := time.Now()
	startDate := endDate.AddDate(0, -s.config.LookbackMonths, 0)

	totals, err := s.financialsRepo.MonthlyExpenseTotals(tenant.ID, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenant.ID,
			"error":     err.Error(),
		}).Error("Erro ao buscar totais mensais de despesas do tenant")
		return 0
	}

	// Agregados em moedas distintas da moeda base formariam uma série sem
	// sentido para as cercas interquartílicas
	observed := make([]*domain.MonthlyTotal, 0, len(totals))
	series := make([]float64, 0, len(totals))
	for _, total := range totals {
		if total.Currency != tenant.BaseCurrency {
			continue
		}
		observed = append(observed, total)
		series = append(series, total.Total)
	}

	anomalies := numeric.DetectAnomalies(series, numeric.DefaultAnomalyFactor)
	if len(anomalies) == 0 {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenant.ID,
			"months":    len(series),
		}).Debug("Nenhuma anomalia de despesas encontrada para o tenant")
		return 0
	}

	for _, anomaly := range anomalies {
		direction := "low"
		if anomaly.High() {
			direction = "high"
		}
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenant.ID,
			"period":    observed[anomaly.Index].PeriodKey(),
			"value":     anomaly.Value,
			"direction": direction,
			"currency":  tenant.BaseCurrency,
		}).Warn("Anomalia de despesas detectada")

		s.logAnomalyContributors(tenant, observed[anomaly.Index])
	}

	logrus.Debugf("Anomalias do tenant %s: %s", tenant.ID, utils.PrettyJson(anomalies))

	return len(anomalies)
}

// logAnomalyContributors registra as maiores despesas individuais do período
// anômalo para dar contexto à ocorrência. O detalhamento é melhor esforço: uma
// falha na consulta não interrompe a varredura
func (s *AnomalyScanService) logAnomalyContributors(tenant *domain.Tenant, total *domain.MonthlyTotal) {
	monthStart := time.Date(total.Year, time.Month(total.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	expenses, err := s.financialsRepo.ListExpensesByPeriod(tenant.ID, monthStart, monthEnd)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenant.ID,
			"period":    total.PeriodKey(),
			"error":     err.Error(),
		}).Warn("Erro ao detalhar despesas do período anômalo")
		return
	}

	filtered := make([]*domain.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if expense.Currency == tenant.BaseCurrency {
			filtered = append(filtered, expense)
		}
	}
	if len(filtered) == 0 {
		return
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Amount > filtered[j].Amount
	})
	if len(filtered) > anomalyTopExpenses {
		filtered = filtered[:anomalyTopExpenses]
	}

	contributors := make([]string, 0, len(filtered))
	for _, expense := range filtered {
		contributors = append(contributors, fmt.Sprintf("%s: %.2f", expense.Category, expense.Amount))
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":    tenant.ID,
		"period":       total.PeriodKey(),
		"top_expenses": strings.Join(contributors, "; "),
	}).Info("Maiores despesas do período anômalo")
}

// TriggerManualSync inicia manualmente uma varredura de anomalias
func (s *AnomalyScanService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de anomalias já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de anomalias")
	go s.scanAllTenants()
}

// GetStatus retorna o status atual do agendador
func (s *AnomalyScanService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"lookback_months":        s.config.LookbackMonths,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
