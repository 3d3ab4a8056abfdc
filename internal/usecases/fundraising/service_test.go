package fundraising

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/horizonhq/horizon-api/infrastructure/integrator/comparables"
	comparablesmocks "github.com/horizonhq/horizon-api/infrastructure/integrator/comparables/mocks"
	"github.com/horizonhq/horizon-api/infrastructure/repository/mocks"
	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/pkg/apiErrors"
	"github.com/horizonhq/horizon-api/pkg/clock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testTenantID = "a3bb1896-1fc9-4d22-8e3a-8c4cbe5191f1"

func testConfig() *config.Config {
	return &config.Config{
		Fundraising: config.Fundraising{
			MarketConditionsScore: 0.7,
			TeamStrengthScore:     0.8,
			ProductMarketFitScore: 0.6,
		},
	}
}

func testTenant() *domain.Tenant {
	return &domain.Tenant{
		ID:           testTenantID,
		Name:         "Acme Labs",
		Status:       domain.TenantStatusActive,
		BaseCurrency: domain.CurrencyUSD,
	}
}

// monthlyTotals monta agregados mensais a partir de maio de 2026, em ordem
// cronológica
func monthlyTotals(currency domain.Currency, totals ...float64) []*domain.MonthlyTotal {
	aggregates := make([]*domain.MonthlyTotal, 0, len(totals))
	for i, total := range totals {
		aggregates = append(aggregates, &domain.MonthlyTotal{
			Year:     2026,
			Month:    5 + i,
			Total:    total,
			Currency: currency,
		})
	}
	return aggregates
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestService_CreateFundraisingPrediction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPredictionRepo := mocks.NewMockFundraisingPredictionRepository(ctrl)
	mockFinancialsRepo := mocks.NewMockFinancialsRepository(ctrl)
	mockKpiRepo := mocks.NewMockKpiSnapshotRepository(ctrl)
	mockTenantRepo := mocks.NewMockTenantRepository(ctrl)
	mockProvider := comparablesmocks.NewMockProvider(ctrl)

	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	service := NewService(mockPredictionRepo, mockFinancialsRepo, mockKpiRepo, mockTenantRepo, mockProvider, clock.NewFixed(now), testConfig())

	windowStart := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	setupDerivation := func(accounts []*domain.BankAccount, expenses, revenues []*domain.MonthlyTotal, snapshots []*domain.KpiSnapshot, members []*domain.TeamMember) {
		mockFinancialsRepo.EXPECT().ListBankAccounts(testTenantID).Return(accounts, nil)
		mockFinancialsRepo.EXPECT().MonthlyExpenseTotals(testTenantID, windowStart, windowEnd).Return(expenses, nil)
		mockFinancialsRepo.EXPECT().MonthlyRevenueTotals(testTenantID, windowStart, windowEnd).Return(revenues, nil)
		mockKpiRepo.EXPECT().ListRecent(testTenantID, 90).Return(snapshots, nil)
		mockFinancialsRepo.EXPECT().ListTeamMembers(testTenantID, []domain.TeamMemberStatus{domain.TeamMemberStatusActive}).Return(members, nil)
	}

	tests := []struct {
		name     string
		request  *domain.CreatePredictionRequest
		setup    func()
		validate func(t *testing.T, prediction *domain.FundraisingPrediction, err error)
	}{
		{
			name: "Deve criar predição com insumos derivados do histórico",
			request: &domain.CreatePredictionRequest{
				RoundType:       "seed",
				TargetRoundSize: 2_000_000,
			},
			setup: func() {
				mockTenantRepo.EXPECT().GetByID(testTenantID).Return(testTenant(), nil)
				setupDerivation(
					[]*domain.BankAccount{
						{ID: "BA001", TenantID: testTenantID, Name: "Operacional", CurrentBalance: 1_200_000, Currency: domain.CurrencyUSD},
					},
					monthlyTotals(domain.CurrencyUSD, 100_000, 100_000, 100_000),
					monthlyTotals(domain.CurrencyUSD, 30_000, 30_000, 30_000),
					[]*domain.KpiSnapshot{
						{ID: "KS003", DAU: 1_250, MAU: 4_000},
						{ID: "KS002", DAU: 1_100, MAU: 3_800},
						{ID: "KS001", DAU: 1_000, MAU: 3_500},
					},
					[]*domain.TeamMember{{ID: "TM1"}, {ID: "TM2"}, {ID: "TM3"}, {ID: "TM4"}},
				)
				mockProvider.EXPECT().MarketConditions(domain.RoundTypeSeed).
					Return(&comparables.Snapshot{Score: 0.7, MedianRoundSize: 3_000_000, SampleLabel: "static-defaults"}, nil)
				mockPredictionRepo.EXPECT().Save(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, prediction *domain.FundraisingPrediction, err error) {
				assert.NoError(t, err)
				if !assert.NotNil(t, prediction) {
					return
				}

				_, parseErr := uuid.Parse(prediction.ID)
				assert.NoError(t, parseErr)

				assert.Equal(t, testTenantID, prediction.TenantID)
				assert.Equal(t, domain.RoundTypeSeed, prediction.RoundType)
				assert.Equal(t, 2_000_000.0, prediction.TargetRoundSize)
				assert.Equal(t, domain.CurrencyUSD, prediction.Currency)
				assert.Equal(t, now, prediction.CreatedAt)

				// Insumos congelados: caixa de 1.2M com burn de 100k dá doze
				// meses exatos de runway, que pontua na faixa intermediária
				assert.Equal(t, 100_000.0, prediction.Inputs.MonthlyBurn)
				assert.Equal(t, 30_000.0, prediction.Inputs.MonthlyRevenue)
				assert.Equal(t, 1_200_000.0, prediction.Inputs.TotalCash)
				assert.InDelta(t, 12.0, prediction.Inputs.RunwayMonths, 1e-9)
				assert.InDelta(t, 0.25, prediction.Inputs.DauGrowth, 1e-9)
				assert.Equal(t, 4, prediction.Inputs.TeamSize)

				// 0.25·0.6 + 0.20·0.9 + 0.15·0.7 + 0.15·0.8 + 0.15·0.6 + 0.10·0.8
				assert.InDelta(t, 0.725, prediction.OverallProbability, 1e-9)
				assert.InDelta(t, 0.725*0.9, prediction.TimelineProbability, 1e-9)
				assert.InDelta(t, 0.725*0.85, prediction.AmountProbability, 1e-9)

				// Crescimento acima de 20% encurta o prazo base do estágio
				assert.Equal(t, 120, prediction.Timeline.BaseDays)
				assert.Equal(t, 108, prediction.Timeline.AdjustedDays)
				assert.Equal(t, now.AddDate(0, 0, 30), prediction.Timeline.PredictedStartDate)

				assert.Empty(t, prediction.Recommendations)
			},
		},
		{
			name: "Deve usar a mediana de mercado e os scores informados na requisição",
			request: &domain.CreatePredictionRequest{
				RoundType:        "seed",
				MarketConditions: floatPtr(0.9),
			},
			setup: func() {
				mockTenantRepo.EXPECT().GetByID(testTenantID).Return(testTenant(), nil)
				setupDerivation(nil, nil, nil, nil, nil)
				mockProvider.EXPECT().MarketConditions(domain.RoundTypeSeed).
					Return(&comparables.Snapshot{Score: 0.7, MedianRoundSize: 3_000_000, SampleLabel: "static-defaults"}, nil)
				mockPredictionRepo.EXPECT().Save(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, prediction *domain.FundraisingPrediction, err error) {
				assert.NoError(t, err)
				if !assert.NotNil(t, prediction) {
					return
				}

				// Sem tamanho alvo, vale a mediana do estágio
				assert.Equal(t, 3_000_000.0, prediction.TargetRoundSize)

				// O score informado substitui o sinal do provider
				assert.Equal(t, domain.FactorMarketConditions, prediction.ProbabilityFactors[2].Factor)
				assert.InDelta(t, 0.9, prediction.ProbabilityFactors[2].Score, 1e-9)

				// 0.25·0.3 + 0.20·0.4 + 0.15·0.9 + 0.15·0.8 + 0.15·0.6 + 0.10·0.3
				assert.InDelta(t, 0.53, prediction.OverallProbability, 1e-9)

				// Sem histórico o runway e o crescimento ficam zerados
				if assert.Len(t, prediction.Recommendations, 2) {
					assert.Equal(t, domain.PriorityHigh, prediction.Recommendations[0].Priority)
					assert.Equal(t, domain.PriorityHigh, prediction.Recommendations[1].Priority)
				}
			},
		},
		{
			name: "Tipo de rodada desconhecido - deve falhar na validação",
			request: &domain.CreatePredictionRequest{
				RoundType: "series_z",
			},
			setup: func() {},
			validate: func(t *testing.T, prediction *domain.FundraisingPrediction, err error) {
				assert.Nil(t, prediction)
				assert.ErrorIs(t, err, ErrInvalidRequest)

				var predictionErr *PredictionError
				if assert.ErrorAs(t, err, &predictionErr) {
					assert.Equal(t, apiErrors.ErrInvalidRequest, predictionErr.Code)
				}
			},
		},
		{
			name: "Marco fora do intervalo - deve falhar na validação",
			request: &domain.CreatePredictionRequest{
				RoundType: "seed",
				Milestones: []domain.Milestone{
					{Name: "MVP", Completion: 1.5},
				},
			},
			setup: func() {},
			validate: func(t *testing.T, prediction *domain.FundraisingPrediction, err error) {
				assert.Nil(t, prediction)
				assert.ErrorIs(t, err, ErrInvalidRequest)
			},
		},
		{
			name: "Tenant inexistente - deve reportar não encontrado",
			request: &domain.CreatePredictionRequest{
				RoundType: "seed",
			},
			setup: func() {
				mockTenantRepo.EXPECT().GetByID(testTenantID).Return(nil, nil)
			},
			validate: func(t *testing.T, prediction *domain.FundraisingPrediction, err error) {
				assert.Nil(t, prediction)
				assert.ErrorIs(t, err, ErrTenantNotFound)

				var predictionErr *PredictionError
				if assert.ErrorAs(t, err, &predictionErr) {
					assert.Equal(t, apiErrors.ErrArtifactNotFound, predictionErr.Code)
				}
			},
		},
		{
			name: "Falha no provider de mercado - deve reportar erro interno",
			request: &domain.CreatePredictionRequest{
				RoundType: "bridge",
			},
			setup: func() {
				mockTenantRepo.EXPECT().GetByID(testTenantID).Return(testTenant(), nil)
				setupDerivation(nil, nil, nil, nil, nil)
				mockProvider.EXPECT().MarketConditions(domain.RoundTypeBridge).
					Return(nil, errors.New("upstream timeout"))
			},
			validate: func(t *testing.T, prediction *domain.FundraisingPrediction, err error) {
				assert.Nil(t, prediction)
				assert.ErrorIs(t, err, ErrMarketSignal)

				var predictionErr *PredictionError
				if assert.ErrorAs(t, err, &predictionErr) {
					assert.Equal(t, apiErrors.ErrInternalServer, predictionErr.Code)
				}
			},
		},
		{
			name: "Falha ao persistir - deve propagar erro de banco de dados",
			request: &domain.CreatePredictionRequest{
				RoundType: "seed",
			},
			setup: func() {
				mockTenantRepo.EXPECT().GetByID(testTenantID).Return(testTenant(), nil)
				setupDerivation(nil, nil, nil, nil, nil)
				mockProvider.EXPECT().MarketConditions(domain.RoundTypeSeed).
					Return(&comparables.Snapshot{Score: 0.7, MedianRoundSize: 3_000_000}, nil)
				mockPredictionRepo.EXPECT().Save(gomock.Any()).Return(errors.New("connection reset"))
			},
			validate: func(t *testing.T, prediction *domain.FundraisingPrediction, err error) {
				assert.Nil(t, prediction)
				assert.ErrorIs(t, err, ErrPersistPrediction)

				var predictionErr *PredictionError
				if assert.ErrorAs(t, err, &predictionErr) {
					assert.Equal(t, apiErrors.ErrDatabaseOperation, predictionErr.Code)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			prediction, err := service.CreateFundraisingPrediction(context.Background(), testTenantID, tt.request)
			tt.validate(t, prediction, err)
		})
	}
}

func TestService_ListFundraisingPredictions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPredictionRepo := mocks.NewMockFundraisingPredictionRepository(ctrl)
	service := NewService(mockPredictionRepo, nil, nil, nil, nil, clock.System(), testConfig())

	t.Run("Deve listar o histórico recente de predições", func(t *testing.T) {
		mockPredictionRepo.EXPECT().ListByTenant(testTenantID, 20).Return([]*domain.FundraisingPrediction{
			{ID: "P2", TenantID: testTenantID},
			{ID: "P1", TenantID: testTenantID},
		}, nil)

		predictions, err := service.ListFundraisingPredictions(testTenantID)

		assert.NoError(t, err)
		assert.Len(t, predictions, 2)
	})

	t.Run("Deve devolver lista vazia quando não há predições", func(t *testing.T) {
		mockPredictionRepo.EXPECT().ListByTenant(testTenantID, 20).Return(nil, nil)

		predictions, err := service.ListFundraisingPredictions(testTenantID)

		assert.NoError(t, err)
		assert.NotNil(t, predictions)
		assert.Empty(t, predictions)
	})
}

func TestService_GetFundraisingPrediction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPredictionRepo := mocks.NewMockFundraisingPredictionRepository(ctrl)
	service := NewService(mockPredictionRepo, nil, nil, nil, nil, clock.System(), testConfig())

	predictionID := uuid.NewString()

	t.Run("Deve retornar predição do tenant", func(t *testing.T) {
		mockPredictionRepo.EXPECT().GetByID(testTenantID, predictionID).
			Return(&domain.FundraisingPrediction{ID: predictionID, TenantID: testTenantID}, nil)

		prediction, err := service.GetFundraisingPrediction(testTenantID, predictionID)

		assert.NoError(t, err)
		if assert.NotNil(t, prediction) {
			assert.Equal(t, predictionID, prediction.ID)
		}
	})

	t.Run("Predição inexistente - deve reportar não encontrada", func(t *testing.T) {
		mockPredictionRepo.EXPECT().GetByID(testTenantID, predictionID).Return(nil, nil)

		prediction, err := service.GetFundraisingPrediction(testTenantID, predictionID)

		assert.Nil(t, prediction)
		assert.ErrorIs(t, err, ErrPredictionNotFound)
	})

	t.Run("Identificador malformado - não deve consultar o banco", func(t *testing.T) {
		prediction, err := service.GetFundraisingPrediction(testTenantID, "not-a-uuid")

		assert.Nil(t, prediction)
		assert.ErrorIs(t, err, ErrMalformedID)

		var predictionErr *PredictionError
		if assert.ErrorAs(t, err, &predictionErr) {
			assert.Equal(t, apiErrors.ErrMalformedID, predictionErr.Code)
			assert.Equal(t, "not-a-uuid", predictionErr.PredictionID)
		}
	})
}

func TestService_DeleteFundraisingPrediction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPredictionRepo := mocks.NewMockFundraisingPredictionRepository(ctrl)
	service := NewService(mockPredictionRepo, nil, nil, nil, nil, clock.System(), testConfig())

	predictionID := uuid.NewString()

	t.Run("Deve excluir predição existente", func(t *testing.T) {
		mockPredictionRepo.EXPECT().Delete(testTenantID, predictionID).Return(true, nil)

		assert.NoError(t, service.DeleteFundraisingPrediction(testTenantID, predictionID))
	})

	t.Run("Predição inexistente - deve reportar não encontrada", func(t *testing.T) {
		mockPredictionRepo.EXPECT().Delete(testTenantID, predictionID).Return(false, nil)

		assert.ErrorIs(t, service.DeleteFundraisingPrediction(testTenantID, predictionID), ErrPredictionNotFound)
	})

	t.Run("Identificador malformado - não deve consultar o banco", func(t *testing.T) {
		assert.ErrorIs(t, service.DeleteFundraisingPrediction(testTenantID, "42"), ErrMalformedID)
	})
}
