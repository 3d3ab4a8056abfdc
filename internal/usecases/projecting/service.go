package projecting

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/horizonhq/horizon-api/infrastructure/repository"
	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/pkg/apiErrors"
	"github.com/horizonhq/horizon-api/pkg/clock"
	"github.com/horizonhq/horizon-api/pkg/numeric"
	"github.com/horizonhq/horizon-api/pkg/utils"
	"github.com/horizonhq/horizon-api/pkg/validate"
	"github.com/sirupsen/logrus"
)

const (
	// positionWindowMonths é a janela de meses fechados usada para derivar a
	// posição financeira corrente
	positionWindowMonths = 3
	// maxComparedScenarios limita quantos cenários entram na comparação
	maxComparedScenarios = 5
)

type ScenarioService interface {
	CreateRunwayScenario(ctx context.Context, tenantID string, request *domain.CreateScenarioRequest) (*domain.RunwayScenario, error)
	ListRunwayScenarios(tenantID string) ([]*domain.RunwayScenario, error)
	CompareRunwayScenarios(tenantID string) (*domain.ScenarioComparison, error)
	GetRunwayScenario(tenantID, scenarioID string) (*domain.RunwayScenario, error)
	DeleteRunwayScenario(tenantID, scenarioID string) error
}

type Service struct {
	scenarioRepository   repository.RunwayScenarioRepository
	financialsRepository repository.FinancialsRepository
	tenantRepository     repository.TenantRepository
	clk                  clock.Clock
	cfg                  *config.Config
}

func NewService(
	scenarioRepository repository.RunwayScenarioRepository,
	financialsRepository repository.FinancialsRepository,
	tenantRepository repository.TenantRepository,
	clk clock.Clock,
	cfg *config.Config,
) ScenarioService {
	return &Service{
		scenarioRepository:   scenarioRepository,
		financialsRepository: financialsRepository,
		tenantRepository:     tenantRepository,
		clk:                  clk,
		cfg:                  cfg,
	}
}

// CreateRunwayScenario monta um cenário com premissas congeladas, roda a
// projeção determinística e a simulação Monte Carlo e persiste o artefato.
// Valores iniciais ausentes na requisição são derivados do histórico
// financeiro do tenant no momento da criação.
func (s *Service) CreateRunwayScenario(ctx context.Context, tenantID string, request *domain.CreateScenarioRequest) (*domain.RunwayScenario, error) {
	if details := validate.Struct(request); details != nil {
		return nil, NewScenarioError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, strings.Join(details, "; "))
	}

	scenarioType, err := domain.ParseScenarioType(request.Type)
	if err != nil {
		return nil, NewScenarioError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	tenant, err := s.tenantRepository.GetByID(tenantID)
	if err != nil {
		logrus.Error("Error fetching tenant from database:", err)
		return nil, NewScenarioError(ErrFetchTenant, apiErrors.ErrDatabaseOperation, "Falha ao consultar tenant no banco de dados")
	}
	if tenant == nil {
		return nil, NewScenarioError(ErrTenantNotFound, apiErrors.ErrArtifactNotFound, "Tenant não encontrado")
	}

	now := s.clk.Now().UTC()

	// Deriva a posição corrente apenas quando algum valor inicial não veio na
	// requisição; valores explícitos têm precedência sobre os derivados
	var initialCash, monthlyBurn, monthlyRevenue float64
	if request.InitialCash == nil || request.MonthlyBurn == nil || request.MonthlyRevenue == nil {
		position, derr := s.deriveFinancialPosition(tenantID, tenant.BaseCurrency, now)
		if derr != nil {
			return nil, derr
		}
		initialCash = position.TotalCash
		monthlyBurn = position.MonthlyBurn
		monthlyRevenue = position.MonthlyRevenue
	}
	if request.InitialCash != nil {
		initialCash = *request.InitialCash
	}
	if request.MonthlyBurn != nil {
		monthlyBurn = *request.MonthlyBurn
	}
	if request.MonthlyRevenue != nil {
		monthlyRevenue = *request.MonthlyRevenue
	}

	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	input := ProjectionInput{
		StartDate:         startDate,
		InitialCash:       initialCash,
		MonthlyBurn:       monthlyBurn,
		MonthlyRevenue:    monthlyRevenue,
		BurnGrowthRate:    request.BurnGrowthRate,
		RevenueGrowthRate: request.RevenueGrowthRate,
		FundraisingEvents: request.FundraisingEvents,
		ProjectionMonths:  request.ProjectionMonths,
	}

	outcome := ProjectRunway(input)

	iterations := request.Iterations
	if iterations <= 0 {
		iterations = s.cfg.MonteCarlo.Iterations
	}

	simulation, err := RunMonteCarlo(ctx, input, SimulationParams{
		Iterations:  iterations,
		Variance:    request.Variance,
		Seed:        request.Seed,
		MaxRetained: s.cfg.MonteCarlo.MaxRetained,
	}, now)
	if err != nil {
		logrus.Error("Monte Carlo simulation interrupted:", err)
		return nil, NewScenarioError(ErrSimulationAborted, apiErrors.ErrInternalServer, "Simulação Monte Carlo interrompida antes da conclusão")
	}

	scenario := &domain.RunwayScenario{
		ID:                    uuid.NewString(),
		TenantID:              tenantID,
		Name:                  request.Name,
		Type:                  scenarioType,
		Currency:              tenant.BaseCurrency,
		StartDate:             startDate,
		InitialCashBalance:    initialCash,
		InitialMonthlyBurn:    monthlyBurn,
		InitialMonthlyRevenue: monthlyRevenue,
		Assumptions: []domain.ScenarioAssumption{
			{Metric: domain.AssumptionMetricBurn, BaseValue: monthlyBurn, MonthlyGrowthRate: request.BurnGrowthRate},
			{Metric: domain.AssumptionMetricRevenue, BaseValue: monthlyRevenue, MonthlyGrowthRate: request.RevenueGrowthRate},
		},
		PlannedFundraisingEvents: request.FundraisingEvents,
		ProjectionMonths:         input.horizonMonths(),
		MonthlyProjections:       outcome.MonthlyProjections,
		TotalRunwayMonths:        outcome.TotalRunwayMonths,
		RunwayIsFloor:            outcome.RunwayIsFloor,
		BreakEvenMonth:           outcome.BreakEvenMonth,
		DateOfCashOut:            outcome.DateOfCashOut,
		Simulation:               simulation,
		IsActive:                 true,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	if err := s.scenarioRepository.SaveOrUpdate(scenario); err != nil {
		logrus.Error("Error persisting runway scenario:", err)
		return nil, NewScenarioError(ErrPersistScenario, apiErrors.ErrDatabaseOperation, "Falha ao salvar cenário no banco de dados")
	}

	return scenario, nil
}

// ListRunwayScenarios retorna os cenários ativos do tenant, do mais recente
// para o mais antigo
func (s *Service) ListRunwayScenarios(tenantID string) ([]*domain.RunwayScenario, error) {
	scenarios, err := s.scenarioRepository.ListByTenant(tenantID, true)
	if err != nil {
		logrus.Error("Error fetching scenarios from database:", err)
		return nil, NewScenarioError(ErrFetchScenarios, apiErrors.ErrDatabaseOperation, "Falha ao listar cenários no banco de dados")
	}

	if scenarios == nil {
		scenarios = make([]*domain.RunwayScenario, 0)
	}
	return scenarios, nil
}

// CompareRunwayScenarios compara os até cinco cenários ativos mais recentes,
// ordenados do maior para o menor runway, com um resumo de melhor, pior,
// média e amplitude
func (s *Service) CompareRunwayScenarios(tenantID string) (*domain.ScenarioComparison, error) {
	scenarios, err := s.scenarioRepository.ListByTenant(tenantID, true)
	if err != nil {
		logrus.Error("Error fetching scenarios for comparison:", err)
		return nil, NewScenarioError(ErrFetchScenarios, apiErrors.ErrDatabaseOperation, "Falha ao listar cenários no banco de dados")
	}

	if len(scenarios) > maxComparedScenarios {
		scenarios = scenarios[:maxComparedScenarios]
	}

	comparison := &domain.ScenarioComparison{
		Scenarios: scenarios,
	}
	if len(scenarios) == 0 {
		comparison.Scenarios = make([]*domain.RunwayScenario, 0)
		return comparison, nil
	}

	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].TotalRunwayMonths > scenarios[j].TotalRunwayMonths
	})

	runways := make([]float64, 0, len(scenarios))
	for _, scenario := range scenarios {
		runways = append(runways, float64(scenario.TotalRunwayMonths))
	}

	best := scenarios[0]
	worst := scenarios[len(scenarios)-1]
	comparison.Insights = &domain.ScenarioComparisonInsights{
		BestScenarioID:     best.ID,
		BestScenarioName:   best.Name,
		BestRunwayMonths:   best.TotalRunwayMonths,
		WorstScenarioID:    worst.ID,
		WorstScenarioName:  worst.Name,
		WorstRunwayMonths:  worst.TotalRunwayMonths,
		MeanRunwayMonths:   utils.RoundWithTwoDecimalPlace(numeric.Mean(runways)),
		ScenariosCompared:  len(scenarios),
		RunwaySpreadMonths: best.TotalRunwayMonths - worst.TotalRunwayMonths,
	}

	return comparison, nil
}

// GetRunwayScenario busca um cenário ativo do tenant. Cenários desativados
// são tratados como inexistentes.
func (s *Service) GetRunwayScenario(tenantID, scenarioID string) (*domain.RunwayScenario, error) {
	if _, err := uuid.Parse(scenarioID); err != nil {
		return nil, NewScenarioErrorWithID(ErrMalformedID, apiErrors.ErrMalformedID, scenarioID, "Identificador de cenário malformado")
	}

	scenario, err := s.scenarioRepository.GetByID(tenantID, scenarioID)
	if err != nil {
		logrus.Error("Error fetching scenario from database:", err)
		return nil, NewScenarioErrorWithID(ErrFetchScenarios, apiErrors.ErrDatabaseOperation, scenarioID, "Falha ao consultar cenário no banco de dados")
	}
	if scenario == nil || !scenario.IsActive {
		return nil, NewScenarioErrorWithID(ErrScenarioNotFound, apiErrors.ErrArtifactNotFound, scenarioID, "Cenário não encontrado")
	}

	return scenario, nil
}

// DeleteRunwayScenario desativa um cenário do tenant. A exclusão é lógica:
// o artefato permanece no banco com is_active = false e some das listagens.
// Desativar um cenário já desativado é tratado como inexistente.
func (s *Service) DeleteRunwayScenario(tenantID, scenarioID string) error {
	if _, err := uuid.Parse(scenarioID); err != nil {
		return NewScenarioErrorWithID(ErrMalformedID, apiErrors.ErrMalformedID, scenarioID, "Identificador de cenário malformado")
	}

	deactivated, err := s.scenarioRepository.Deactivate(tenantID, scenarioID)
	if err != nil {
		logrus.Error("Error deactivating scenario:", err)
		return NewScenarioErrorWithID(ErrPersistScenario, apiErrors.ErrDatabaseOperation, scenarioID, "Falha ao desativar cenário no banco de dados")
	}
	if !deactivated {
		return NewScenarioErrorWithID(ErrScenarioNotFound, apiErrors.ErrArtifactNotFound, scenarioID, "Cenário não encontrado")
	}

	return nil
}

// deriveFinancialPosition deriva a posição financeira corrente do tenant:
// caixa total das contas bancárias, burn e receita médios dos últimos meses
// fechados e headcount ativo
func (s *Service) deriveFinancialPosition(tenantID string, currency domain.Currency, now time.Time) (*domain.FinancialPosition, error) {
	accounts, err := s.financialsRepository.ListBankAccounts(tenantID)
	if err != nil {
		logrus.Error("Error fetching bank accounts from database:", err)
		return nil, NewScenarioError(ErrFetchFinancials, apiErrors.ErrDatabaseOperation, "Falha ao consultar contas bancárias")
	}

	totalCash, err := domain.SumBankBalances(accounts, currency)
	if err != nil {
		return nil, NewScenarioError(ErrCurrencyMismatch, apiErrors.ErrInvalidRequest, "Contas bancárias em moeda diferente da moeda base do tenant")
	}

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	startDate := firstOfMonth.AddDate(0, -positionWindowMonths, 0)
	endDate := firstOfMonth.AddDate(0, 0, -1)

	expenseTotals, err := s.financialsRepository.MonthlyExpenseTotals(tenantID, startDate, endDate)
	if err != nil {
		logrus.Error("Error fetching monthly expense totals:", err)
		return nil, NewScenarioError(ErrFetchFinancials, apiErrors.ErrDatabaseOperation, "Falha ao consultar despesas mensais")
	}

	revenueTotals, err := s.financialsRepository.MonthlyRevenueTotals(tenantID, startDate, endDate)
	if err != nil {
		logrus.Error("Error fetching monthly revenue totals:", err)
		return nil, NewScenarioError(ErrFetchFinancials, apiErrors.ErrDatabaseOperation, "Falha ao consultar receitas mensais")
	}

	members, err := s.financialsRepository.ListTeamMembers(tenantID, []domain.TeamMemberStatus{domain.TeamMemberStatusActive})
	if err != nil {
		logrus.Error("Error fetching team members from database:", err)
		return nil, NewScenarioError(ErrFetchFinancials, apiErrors.ErrDatabaseOperation, "Falha ao consultar membros do time")
	}

	return &domain.FinancialPosition{
		TotalCash:      totalCash,
		MonthlyBurn:    domain.MeanMonthlyTotal(expenseTotals, currency),
		MonthlyRevenue: domain.MeanMonthlyTotal(revenueTotals, currency),
		Headcount:      len(members),
		Currency:       currency,
		DerivedAt:      now,
	}, nil
}
