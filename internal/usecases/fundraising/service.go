package fundraising

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/horizonhq/horizon-api/infrastructure/integrator/comparables"
	"github.com/horizonhq/horizon-api/infrastructure/repository"
	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/pkg/apiErrors"
	"github.com/horizonhq/horizon-api/pkg/clock"
	"github.com/horizonhq/horizon-api/pkg/validate"
	"github.com/sirupsen/logrus"
)

const (
	// positionWindowMonths é a janela de meses fechados usada para derivar
	// burn, receita e runway correntes
	positionWindowMonths = 3
	// kpiSnapshotWindow é quantos snapshots diários entram no cálculo de
	// crescimento de DAU
	kpiSnapshotWindow = 90
	// predictionHistoryLimit limita o histórico devolvido na listagem
	predictionHistoryLimit = 20
)

type PredictionService interface {
	CreateFundraisingPrediction(ctx context.Context, tenantID string, request *domain.CreatePredictionRequest) (*domain.FundraisingPrediction, error)
	ListFundraisingPredictions(tenantID string) ([]*domain.FundraisingPrediction, error)
	GetFundraisingPrediction(tenantID, predictionID string) (*domain.FundraisingPrediction, error)
	DeleteFundraisingPrediction(tenantID, predictionID string) error
}

type Service struct {
	predictionRepository repository.FundraisingPredictionRepository
	financialsRepository repository.FinancialsRepository
	kpiRepository        repository.KpiSnapshotRepository
	tenantRepository     repository.TenantRepository
	marketProvider       comparables.Provider
	clk                  clock.Clock
	cfg                  *config.Config
}

func NewService(
	predictionRepository repository.FundraisingPredictionRepository,
	financialsRepository repository.FinancialsRepository,
	kpiRepository repository.KpiSnapshotRepository,
	tenantRepository repository.TenantRepository,
	marketProvider comparables.Provider,
	clk clock.Clock,
	cfg *config.Config,
) PredictionService {
	return &Service{
		predictionRepository: predictionRepository,
		financialsRepository: financialsRepository,
		kpiRepository:        kpiRepository,
		tenantRepository:     tenantRepository,
		marketProvider:       marketProvider,
		clk:                  clk,
		cfg:                  cfg,
	}
}

// CreateFundraisingPrediction deriva os insumos correntes do tenant, pontua
// a prontidão para captação, estima a janela da rodada e persiste o
// artefato. Scores externos informados na requisição têm precedência sobre
// o provider de mercado e os padrões configurados.
func (s *Service) CreateFundraisingPrediction(ctx context.Context, tenantID string, request *domain.CreatePredictionRequest) (*domain.FundraisingPrediction, error) {
	if details := validate.Struct(request); details != nil {
		return nil, NewPredictionError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, strings.Join(details, "; "))
	}

	roundType, err := domain.ParseRoundType(request.RoundType)
	if err != nil {
		return nil, NewPredictionError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	tenant, err := s.tenantRepository.GetByID(tenantID)
	if err != nil {
		logrus.Error("Error fetching tenant from database:", err)
		return nil, NewPredictionError(ErrFetchTenant, apiErrors.ErrDatabaseOperation, "Falha ao consultar tenant no banco de dados")
	}
	if tenant == nil {
		return nil, NewPredictionError(ErrTenantNotFound, apiErrors.ErrArtifactNotFound, "Tenant não encontrado")
	}

	now := s.clk.Now().UTC()

	inputs, err := s.deriveInputs(tenantID, tenant.BaseCurrency, now)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.marketProvider.MarketConditions(roundType)
	if err != nil {
		logrus.Error("Error fetching market conditions:", err)
		return nil, NewPredictionError(ErrMarketSignal, apiErrors.ErrInternalServer, "Falha ao consultar condições de mercado")
	}

	scoreInput := ScoreInput{
		RunwayMonths:     inputs.RunwayMonths,
		MonthlyRevenue:   inputs.MonthlyRevenue,
		DauGrowth:        inputs.DauGrowth,
		MarketConditions: snapshot.Score,
		TeamStrength:     s.cfg.Fundraising.TeamStrengthScore,
		ProductMarketFit: s.cfg.Fundraising.ProductMarketFitScore,
	}
	if request.MarketConditions != nil {
		scoreInput.MarketConditions = *request.MarketConditions
	}
	if request.TeamStrength != nil {
		scoreInput.TeamStrength = *request.TeamStrength
	}
	if request.ProductMarketFit != nil {
		scoreInput.ProductMarketFit = *request.ProductMarketFit
	}

	targetRoundSize := request.TargetRoundSize
	if targetRoundSize == 0 {
		targetRoundSize = snapshot.MedianRoundSize
	}

	score := ScoreReadiness(scoreInput)

	recommendations, err := BuildRecommendations(scoreInput, request.Milestones, now)
	if err != nil {
		logrus.Error("Error building recommendations:", err)
		return nil, NewPredictionError(ErrBuildPrediction, apiErrors.ErrInternalServer, "Falha ao montar as recomendações da predição")
	}

	prediction := &domain.FundraisingPrediction{
		ID:                  uuid.NewString(),
		TenantID:            tenantID,
		RoundType:           roundType,
		TargetRoundSize:     targetRoundSize,
		TargetValuation:     request.TargetValuation,
		Currency:            tenant.BaseCurrency,
		OverallProbability:  score.Overall,
		TimelineProbability: score.Timeline,
		AmountProbability:   score.Amount,
		ProbabilityFactors:  score.Factors,
		Timeline:            PredictTimeline(roundType, scoreInput, request.Milestones, now),
		Recommendations:     recommendations,
		Milestones:          request.Milestones,
		Inputs:              *inputs,
		CreatedAt:           now,
	}

	if err := s.predictionRepository.Save(prediction); err != nil {
		logrus.Error("Error persisting fundraising prediction:", err)
		return nil, NewPredictionError(ErrPersistPrediction, apiErrors.ErrDatabaseOperation, "Falha ao salvar predição no banco de dados")
	}

	return prediction, nil
}

// ListFundraisingPredictions retorna o histórico recente de predições do
// tenant, da mais recente para a mais antiga
func (s *Service) ListFundraisingPredictions(tenantID string) ([]*domain.FundraisingPrediction, error) {
	predictions, err := s.predictionRepository.ListByTenant(tenantID, predictionHistoryLimit)
	if err != nil {
		logrus.Error("Error fetching predictions from database:", err)
		return nil, NewPredictionError(ErrFetchPredictions, apiErrors.ErrDatabaseOperation, "Falha ao listar predições no banco de dados")
	}

	if predictions == nil {
		predictions = make([]*domain.FundraisingPrediction, 0)
	}
	return predictions, nil
}

// GetFundraisingPrediction busca uma predição do tenant
func (s *Service) GetFundraisingPrediction(tenantID, predictionID string) (*domain.FundraisingPrediction, error) {
	if _, err := uuid.Parse(predictionID); err != nil {
		return nil, NewPredictionErrorWithID(ErrMalformedID, apiErrors.ErrMalformedID, predictionID, "Identificador de predição malformado")
	}

	prediction, err := s.predictionRepository.GetByID(tenantID, predictionID)
	if err != nil {
		logrus.Error("Error fetching prediction from database:", err)
		return nil, NewPredictionErrorWithID(ErrFetchPredictions, apiErrors.ErrDatabaseOperation, predictionID, "Falha ao consultar predição no banco de dados")
	}
	if prediction == nil {
		return nil, NewPredictionErrorWithID(ErrPredictionNotFound, apiErrors.ErrArtifactNotFound, predictionID, "Predição não encontrada")
	}

	return prediction, nil
}

// DeleteFundraisingPrediction remove uma predição do tenant. Predições são
// pontuais e recalculáveis, então a exclusão é física.
func (s *Service) DeleteFundraisingPrediction(tenantID, predictionID string) error {
	if _, err := uuid.Parse(predictionID); err != nil {
		return NewPredictionErrorWithID(ErrMalformedID, apiErrors.ErrMalformedID, predictionID, "Identificador de predição malformado")
	}

	deleted, err := s.predictionRepository.Delete(tenantID, predictionID)
	if err != nil {
		logrus.Error("Error deleting prediction:", err)
		return NewPredictionErrorWithID(ErrPersistPrediction, apiErrors.ErrDatabaseOperation, predictionID, "Falha ao excluir predição no banco de dados")
	}
	if !deleted {
		return NewPredictionErrorWithID(ErrPredictionNotFound, apiErrors.ErrArtifactNotFound, predictionID, "Predição não encontrada")
	}

	return nil
}

// deriveInputs congela os insumos do score no momento do cálculo: caixa
// total, burn e receita médios dos meses fechados, runway na trajetória
// atual, crescimento de DAU da janela de snapshots e tamanho do time
func (s *Service) deriveInputs(tenantID string, currency domain.Currency, now time.Time) (*domain.FundraisingInputs, error) {
	accounts, err := s.financialsRepository.ListBankAccounts(tenantID)
	if err != nil {
		logrus.Error("Error fetching bank accounts from database:", err)
		return nil, NewPredictionError(ErrFetchFinancials, apiErrors.ErrDatabaseOperation, "Falha ao consultar contas bancárias")
	}

	totalCash, err := domain.SumBankBalances(accounts, currency)
	if err != nil {
		return nil, NewPredictionError(ErrCurrencyMismatch, apiErrors.ErrInvalidRequest, "Contas bancárias em moeda diferente da moeda base do tenant")
	}

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	startDate := firstOfMonth.AddDate(0, -positionWindowMonths, 0)
	endDate := firstOfMonth.AddDate(0, 0, -1)

	expenseTotals, err := s.financialsRepository.MonthlyExpenseTotals(tenantID, startDate, endDate)
	if err != nil {
		logrus.Error("Error fetching monthly expense totals:", err)
		return nil, NewPredictionError(ErrFetchFinancials, apiErrors.ErrDatabaseOperation, "Falha ao consultar despesas mensais")
	}

	revenueTotals, err := s.financialsRepository.MonthlyRevenueTotals(tenantID, startDate, endDate)
	if err != nil {
		logrus.Error("Error fetching monthly revenue totals:", err)
		return nil, NewPredictionError(ErrFetchFinancials, apiErrors.ErrDatabaseOperation, "Falha ao consultar receitas mensais")
	}

	snapshots, err := s.kpiRepository.ListRecent(tenantID, kpiSnapshotWindow)
	if err != nil {
		logrus.Error("Error fetching KPI snapshots from database:", err)
		return nil, NewPredictionError(ErrFetchSnapshots, apiErrors.ErrDatabaseOperation, "Falha ao consultar snapshots de KPI")
	}

	members, err := s.financialsRepository.ListTeamMembers(tenantID, []domain.TeamMemberStatus{domain.TeamMemberStatusActive})
	if err != nil {
		logrus.Error("Error fetching team members from database:", err)
		return nil, NewPredictionError(ErrFetchFinancials, apiErrors.ErrDatabaseOperation, "Falha ao consultar membros do time")
	}

	position := domain.FinancialPosition{
		TotalCash:      totalCash,
		MonthlyBurn:    domain.MeanMonthlyTotal(expenseTotals, currency),
		MonthlyRevenue: domain.MeanMonthlyTotal(revenueTotals, currency),
		Headcount:      len(members),
		Currency:       currency,
		DerivedAt:      now,
	}

	return &domain.FundraisingInputs{
		MonthlyBurn:    position.MonthlyBurn,
		MonthlyRevenue: position.MonthlyRevenue,
		TotalCash:      position.TotalCash,
		RunwayMonths:   position.RunwayMonths(),
		DauGrowth:      domain.DauGrowth(snapshots),
		TeamSize:       position.Headcount,
		DerivedAt:      now,
	}, nil
}
