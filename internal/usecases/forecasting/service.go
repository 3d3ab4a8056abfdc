package forecasting

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/horizonhq/horizon-api/infrastructure/repository"
	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/pkg/apiErrors"
	"github.com/horizonhq/horizon-api/pkg/clock"
	"github.com/horizonhq/horizon-api/pkg/validate"
	"github.com/sirupsen/logrus"
)

type ForecastService interface {
	CreateCashflowForecast(ctx context.Context, tenantID string, request *domain.CreateForecastRequest) (*domain.CashflowForecast, error)
	ListCashflowForecasts(tenantID string) ([]*domain.CashflowForecast, error)
	GetCashflowForecast(tenantID, forecastID string) (*domain.CashflowForecast, error)
	DeleteCashflowForecast(tenantID, forecastID string) error
}

type Service struct {
	forecastRepository   repository.CashflowForecastRepository
	financialsRepository repository.FinancialsRepository
	tenantRepository     repository.TenantRepository
	clk                  clock.Clock
	cfg                  *config.Config
}

func NewService(
	forecastRepository repository.CashflowForecastRepository,
	financialsRepository repository.FinancialsRepository,
	tenantRepository repository.TenantRepository,
	clk clock.Clock,
	cfg *config.Config,
) ForecastService {
	return &Service{
		forecastRepository:   forecastRepository,
		financialsRepository: financialsRepository,
		tenantRepository:     tenantRepository,
		clk:                  clk,
		cfg:                  cfg,
	}
}

// CreateCashflowForecast decompõe o histórico mensal do tenant, projeta o
// fluxo de caixa semanal e persiste a previsão como a ativa do tenant.
// Quando a posição de caixa não vem na requisição, ela é derivada das contas
// bancárias e dos recebimentos pendentes registrados até a data da previsão.
func (s *Service) CreateCashflowForecast(ctx context.Context, tenantID string, request *domain.CreateForecastRequest) (*domain.CashflowForecast, error) {
	if details := validate.Struct(request); details != nil {
		return nil, NewForecastError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, strings.Join(details, "; "))
	}

	granularity := domain.GranularityWeekly
	if request.Granularity != "" {
		parsed, err := domain.ParseForecastGranularity(request.Granularity)
		if err != nil {
			return nil, NewForecastError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
		}
		granularity = parsed
	}

	tenant, err := s.tenantRepository.GetByID(tenantID)
	if err != nil {
		logrus.Error("Error fetching tenant from database:", err)
		return nil, NewForecastError(ErrFetchTenant, apiErrors.ErrDatabaseOperation, "Falha ao consultar tenant no banco de dados")
	}
	if tenant == nil {
		return nil, NewForecastError(ErrTenantNotFound, apiErrors.ErrArtifactNotFound, "Tenant não encontrado")
	}

	now := s.clk.Now().UTC()
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	historyStart := firstOfMonth.AddDate(0, -s.cfg.Forecast.HistoryMonths, 0)
	historyEnd := firstOfMonth.AddDate(0, 0, -1)

	expenseHistory, err := s.financialsRepository.MonthlyExpenseTotalsByCategory(tenantID, historyStart, historyEnd)
	if err != nil {
		logrus.Error("Error fetching monthly expense totals by category:", err)
		return nil, NewForecastError(ErrFetchFinancials, apiErrors.ErrDatabaseOperation, "Falha ao consultar despesas mensais por categoria")
	}

	revenueHistory, err := s.financialsRepository.MonthlyRevenueTotals(tenantID, historyStart, historyEnd)
	if err != nil {
		logrus.Error("Error fetching monthly revenue totals:", err)
		return nil, NewForecastError(ErrFetchFinancials, apiErrors.ErrDatabaseOperation, "Falha ao consultar receitas mensais")
	}

	var position domain.CashPosition
	if request.Position != nil {
		position = *request.Position
	} else {
		derived, derr := s.deriveCashPosition(tenantID, tenant.BaseCurrency, historyStart, startDate)
		if derr != nil {
			return nil, derr
		}
		position = derived
	}

	horizonMonths := request.HorizonMonths
	if horizonMonths <= 0 {
		horizonMonths = s.cfg.Forecast.DefaultHorizonMonths
	}
	endDate := startDate.AddDate(0, horizonMonths, 0)

	outcome, err := BuildForecast(ForecastInput{
		StartDate:      startDate,
		EndDate:        endDate,
		Position:       position,
		Currency:       tenant.BaseCurrency,
		ExpenseHistory: expenseHistory,
		RevenueHistory: revenueHistory,
	}, ForecastParams{
		LowCashThreshold:       s.cfg.Forecast.LowCashThreshold,
		WeeklyNetFlowThreshold: s.cfg.Forecast.WeeklyNetFlowThreshold,
		BestCaseMultiplier:     s.cfg.Forecast.BestCaseMultiplier,
		WorstCaseMultiplier:    s.cfg.Forecast.WorstCaseMultiplier,
	})
	if err != nil {
		logrus.Error("Error building cashflow forecast:", err)
		return nil, NewForecastError(ErrBuildForecast, apiErrors.ErrInternalServer, "Falha ao montar a previsão de fluxo de caixa")
	}

	forecast := &domain.CashflowForecast{
		ID:                        uuid.NewString(),
		TenantID:                  tenantID,
		Name:                      request.Name,
		Granularity:               granularity,
		Currency:                  tenant.BaseCurrency,
		StartDate:                 startDate,
		EndDate:                   endDate,
		HorizonMonths:             horizonMonths,
		InitialCashPosition:       position,
		CategoryForecasts:         outcome.CategoryForecasts,
		WeeklyForecasts:           outcome.WeeklyForecasts,
		ScenarioAnalysis:          outcome.ScenarioAnalysis,
		Alerts:                    outcome.Alerts,
		RequiresAdditionalFunding: outcome.RequiresAdditionalFunding,
		AdditionalFundingNeeded:   outcome.AdditionalFundingNeeded,
		IsActive:                  true,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	if err := s.forecastRepository.SaveAsActive(ctx, forecast); err != nil {
		logrus.Error("Error persisting cashflow forecast:", err)
		return nil, NewForecastError(ErrPersistForecast, apiErrors.ErrDatabaseOperation, "Falha ao salvar previsão no banco de dados")
	}

	return forecast, nil
}

// ListCashflowForecasts retorna as previsões ativas do tenant, da mais
// recente para a mais antiga
func (s *Service) ListCashflowForecasts(tenantID string) ([]*domain.CashflowForecast, error) {
	forecasts, err := s.forecastRepository.ListByTenant(tenantID, 0)
	if err != nil {
		logrus.Error("Error fetching forecasts from database:", err)
		return nil, NewForecastError(ErrFetchForecasts, apiErrors.ErrDatabaseOperation, "Falha ao listar previsões no banco de dados")
	}

	active := make([]*domain.CashflowForecast, 0, len(forecasts))
	for _, forecast := range forecasts {
		if forecast.IsActive {
			active = append(active, forecast)
		}
	}
	return active, nil
}

// GetCashflowForecast busca uma previsão ativa do tenant. Previsões
// desativadas são tratadas como inexistentes.
func (s *Service) GetCashflowForecast(tenantID, forecastID string) (*domain.CashflowForecast, error) {
	if _, err := uuid.Parse(forecastID); err != nil {
		return nil, NewForecastErrorWithID(ErrMalformedID, apiErrors.ErrMalformedID, forecastID, "Identificador de previsão malformado")
	}

	forecast, err := s.forecastRepository.GetByID(tenantID, forecastID)
	if err != nil {
		logrus.Error("Error fetching forecast from database:", err)
		return nil, NewForecastErrorWithID(ErrFetchForecasts, apiErrors.ErrDatabaseOperation, forecastID, "Falha ao consultar previsão no banco de dados")
	}
	if forecast == nil || !forecast.IsActive {
		return nil, NewForecastErrorWithID(ErrForecastNotFound, apiErrors.ErrArtifactNotFound, forecastID, "Previsão não encontrada")
	}

	return forecast, nil
}

// DeleteCashflowForecast desativa uma previsão do tenant. A exclusão é
// lógica: o artefato permanece no banco com is_active = false e some das
// listagens. Desativar uma previsão já desativada é tratado como inexistente.
func (s *Service) DeleteCashflowForecast(tenantID, forecastID string) error {
	if _, err := uuid.Parse(forecastID); err != nil {
		return NewForecastErrorWithID(ErrMalformedID, apiErrors.ErrMalformedID, forecastID, "Identificador de previsão malformado")
	}

	deactivated, err := s.forecastRepository.Deactivate(tenantID, forecastID)
	if err != nil {
		logrus.Error("Error deactivating forecast:", err)
		return NewForecastErrorWithID(ErrPersistForecast, apiErrors.ErrDatabaseOperation, forecastID, "Falha ao desativar previsão no banco de dados")
	}
	if !deactivated {
		return NewForecastErrorWithID(ErrForecastNotFound, apiErrors.ErrArtifactNotFound, forecastID, "Previsão não encontrada")
	}

	return nil
}

// deriveCashPosition deriva a posição de caixa corrente do tenant: caixa
// total das contas bancárias e recebíveis como a soma dos recebimentos
// pendentes registrados na janela de histórico. Não há entidade de contas a
// pagar no dashboard, então os pagáveis derivados são sempre zero.
func (s *Service) deriveCashPosition(tenantID string, currency domain.Currency, historyStart, asOf time.Time) (domain.CashPosition, error) {
	accounts, err := s.financialsRepository.ListBankAccounts(tenantID)
	if err != nil {
		logrus.Error("Error fetching bank accounts from database:", err)
		return domain.CashPosition{}, NewForecastError(ErrFetchFinancials, apiErrors.ErrDatabaseOperation, "Falha ao consultar contas bancárias")
	}

	totalCash, err := domain.SumBankBalances(accounts, currency)
	if err != nil {
		return domain.CashPosition{}, NewForecastError(ErrCurrencyMismatch, apiErrors.ErrInvalidRequest, "Contas bancárias em moeda diferente da moeda base do tenant")
	}

	revenues, err := s.financialsRepository.ListRevenuesByPeriod(tenantID, historyStart, asOf)
	if err != nil {
		logrus.Error("Error fetching revenues from database:", err)
		return domain.CashPosition{}, NewForecastError(ErrFetchFinancials, apiErrors.ErrDatabaseOperation, "Falha ao consultar receitas registradas")
	}

	receivables := 0.0
	for _, revenue := range revenues {
		if revenue.Status == domain.RevenueStatusPending && revenue.Currency == currency {
			receivables += revenue.Amount
		}
	}

	return domain.CashPosition{
		Cash:        totalCash,
		Receivables: receivables,
		Payables:    0,
	}, nil
}
