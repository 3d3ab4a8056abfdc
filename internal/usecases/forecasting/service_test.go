package forecasting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
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
		Forecast: config.Forecast{
			LowCashThreshold:       100_000,
			WeeklyNetFlowThreshold: -50_000,
			BestCaseMultiplier:     1.2,
			WorstCaseMultiplier:    0.7,
			DefaultHorizonMonths:   3,
			HistoryMonths:          6,
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

func TestService_CreateCashflowForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockForecastRepo := mocks.NewMockCashflowForecastRepository(ctrl)
	mockFinancialsRepo := mocks.NewMockFinancialsRepository(ctrl)
	mockTenantRepo := mocks.NewMockTenantRepository(ctrl)

	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	service := NewService(mockForecastRepo, mockFinancialsRepo, mockTenantRepo, clock.NewFixed(now), testConfig())

	// Janela de histórico: seis meses fechados antes do mês corrente
	startDate := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	historyStart := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	historyEnd := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		request  *domain.CreateForecastRequest
		setup    func()
		validate func(t *testing.T, forecast *domain.CashflowForecast, err error)
	}{
		{
			name: "Deve criar previsão com posição explícita e horizonte padrão",
			request: &domain.CreateForecastRequest{
				Name:     "Trimestre",
				Position: &domain.CashPosition{Cash: 200_000, Receivables: 50_000, Payables: 10_000},
			},
			setup: func() {
				mockTenantRepo.EXPECT().GetByID(testTenantID).Return(testTenant(), nil)
				mockFinancialsRepo.EXPECT().MonthlyExpenseTotalsByCategory(testTenantID, historyStart, historyEnd).
					Return(monthlyExpenses(domain.CategorySalaries, domain.CurrencyUSD, 60_000, 60_000, 60_000), nil)
				mockFinancialsRepo.EXPECT().MonthlyRevenueTotals(testTenantID, historyStart, historyEnd).
					Return(monthlyRevenues(domain.CurrencyUSD, 30_000, 30_000, 30_000), nil)
				mockForecastRepo.EXPECT().SaveAsActive(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, forecast *domain.CashflowForecast, err error) {
				assert.NoError(t, err)
				if !assert.NotNil(t, forecast) {
					return
				}

				_, parseErr := uuid.Parse(forecast.ID)
				assert.NoError(t, parseErr)

				assert.Equal(t, testTenantID, forecast.TenantID)
				assert.Equal(t, domain.GranularityWeekly, forecast.Granularity)
				assert.Equal(t, domain.CurrencyUSD, forecast.Currency)
				assert.Equal(t, startDate, forecast.StartDate)
				assert.Equal(t, startDate.AddDate(0, 3, 0), forecast.EndDate)
				assert.Equal(t, 3, forecast.HorizonMonths)
				assert.True(t, forecast.IsActive)
				assert.Equal(t, now, forecast.CreatedAt)

				// A posição explícita fica registrada no artefato
				assert.Equal(t, 200_000.0, forecast.InitialCashPosition.Cash)
				assert.Equal(t, 50_000.0, forecast.InitialCashPosition.Receivables)
				assert.Equal(t, 10_000.0, forecast.InitialCashPosition.Payables)

				// Receita e folha decompostas do histórico
				if assert.Len(t, forecast.CategoryForecasts, 2) {
					assert.Equal(t, domain.CategoryRevenue, forecast.CategoryForecasts[0].Category)
					assert.Equal(t, domain.CategorySalaries, forecast.CategoryForecasts[1].Category)
				}

				if assert.NotEmpty(t, forecast.WeeklyForecasts) {
					first := forecast.WeeklyForecasts[0]
					assert.InDelta(t, 7_500, first.Inflows, 1e-6)
					assert.InDelta(t, 15_000, first.PayrollExpenses, 1e-6)
					assert.InDelta(t, 192_500, first.CashBalance, 1e-6)
				}
			},
		},
		{
			name: "Deve derivar a posição de caixa quando não informada",
			request: &domain.CreateForecastRequest{
				Name: "Derivada",
			},
			setup: func() {
				mockTenantRepo.EXPECT().GetByID(testTenantID).Return(testTenant(), nil)
				mockFinancialsRepo.EXPECT().MonthlyExpenseTotalsByCategory(testTenantID, historyStart, historyEnd).
					Return([]*domain.MonthlyCategoryTotal{}, nil)
				mockFinancialsRepo.EXPECT().MonthlyRevenueTotals(testTenantID, historyStart, historyEnd).
					Return([]*domain.MonthlyTotal{}, nil)
				mockFinancialsRepo.EXPECT().ListBankAccounts(testTenantID).Return([]*domain.BankAccount{
					{ID: "BA001", TenantID: testTenantID, Name: "Operacional", CurrentBalance: 120_000, Currency: domain.CurrencyUSD},
					{ID: "BA002", TenantID: testTenantID, Name: "Reserva", CurrentBalance: 30_000, Currency: domain.CurrencyUSD},
				}, nil)
				mockFinancialsRepo.EXPECT().ListRevenuesByPeriod(testTenantID, historyStart, startDate).Return([]*domain.Revenue{
					{ID: "RV001", Amount: 20_000, Status: domain.RevenueStatusReceived, Currency: domain.CurrencyUSD},
					{ID: "RV002", Amount: 25_000, Status: domain.RevenueStatusPending, Currency: domain.CurrencyUSD},
					{ID: "RV003", Amount: 5_000, Status: domain.RevenueStatusPending, Currency: domain.CurrencyBRL},
				}, nil)
				mockForecastRepo.EXPECT().SaveAsActive(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, forecast *domain.CashflowForecast, err error) {
				assert.NoError(t, err)
				if !assert.NotNil(t, forecast) {
					return
				}

				// Caixa somado das contas; recebíveis apenas dos pendentes na
				// moeda base; não há contas a pagar no dashboard
				assert.Equal(t, 150_000.0, forecast.InitialCashPosition.Cash)
				assert.Equal(t, 25_000.0, forecast.InitialCashPosition.Receivables)
				assert.Equal(t, 0.0, forecast.InitialCashPosition.Payables)

				assert.Empty(t, forecast.CategoryForecasts)
			},
		},
		{
			name: "Deve respeitar o horizonte e a granularidade informados",
			request: &domain.CreateForecastRequest{
				Name:          "Mensal",
				Granularity:   "monthly",
				HorizonMonths: 1,
				Position:      &domain.CashPosition{Cash: 300_000},
			},
			setup: func() {
				mockTenantRepo.EXPECT().GetByID(testTenantID).Return(testTenant(), nil)
				mockFinancialsRepo.EXPECT().MonthlyExpenseTotalsByCategory(testTenantID, historyStart, historyEnd).
					Return([]*domain.MonthlyCategoryTotal{}, nil)
				mockFinancialsRepo.EXPECT().MonthlyRevenueTotals(testTenantID, historyStart, historyEnd).
					Return([]*domain.MonthlyTotal{}, nil)
				mockForecastRepo.EXPECT().SaveAsActive(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, forecast *domain.CashflowForecast, err error) {
				assert.NoError(t, err)
				if !assert.NotNil(t, forecast) {
					return
				}

				assert.Equal(t, domain.GranularityMonthly, forecast.Granularity)
				assert.Equal(t, 1, forecast.HorizonMonths)
				assert.Equal(t, startDate.AddDate(0, 1, 0), forecast.EndDate)
			},
		},
		{
			name: "Granularidade desconhecida - deve falhar na validação",
			request: &domain.CreateForecastRequest{
				Name:        "Horária",
				Granularity: "hourly",
			},
			setup: func() {},
			validate: func(t *testing.T, forecast *domain.CashflowForecast, err error) {
				assert.Nil(t, forecast)
				assert.ErrorIs(t, err, ErrInvalidRequest)

				var forecastErr *ForecastError
				if assert.ErrorAs(t, err, &forecastErr) {
					assert.Equal(t, apiErrors.ErrInvalidRequest, forecastErr.Code)
				}
			},
		},
		{
			name:    "Nome ausente - deve falhar na validação da requisição",
			request: &domain.CreateForecastRequest{},
			setup:   func() {},
			validate: func(t *testing.T, forecast *domain.CashflowForecast, err error) {
				assert.Nil(t, forecast)
				assert.ErrorIs(t, err, ErrInvalidRequest)
			},
		},
		{
			name: "Tenant inexistente - deve reportar não encontrado",
			request: &domain.CreateForecastRequest{
				Name: "Trimestre",
			},
			setup: func() {
				mockTenantRepo.EXPECT().GetByID(testTenantID).Return(nil, nil)
			},
			validate: func(t *testing.T, forecast *domain.CashflowForecast, err error) {
				assert.Nil(t, forecast)
				assert.ErrorIs(t, err, ErrTenantNotFound)

				var forecastErr *ForecastError
				if assert.ErrorAs(t, err, &forecastErr) {
					assert.Equal(t, apiErrors.ErrArtifactNotFound, forecastErr.Code)
				}
			},
		},
		{
			name: "Contas bancárias em moedas distintas - deve recusar a derivação",
			request: &domain.CreateForecastRequest{
				Name: "Derivada",
			},
			setup: func() {
				mockTenantRepo.EXPECT().GetByID(testTenantID).Return(testTenant(), nil)
				mockFinancialsRepo.EXPECT().MonthlyExpenseTotalsByCategory(testTenantID, historyStart, historyEnd).
					Return([]*domain.MonthlyCategoryTotal{}, nil)
				mockFinancialsRepo.EXPECT().MonthlyRevenueTotals(testTenantID, historyStart, historyEnd).
					Return([]*domain.MonthlyTotal{}, nil)
				mockFinancialsRepo.EXPECT().ListBankAccounts(testTenantID).Return([]*domain.BankAccount{
					{ID: "BA001", CurrentBalance: 120_000, Currency: domain.CurrencyUSD},
					{ID: "BA002", CurrentBalance: 30_000, Currency: domain.CurrencyBRL},
				}, nil)
			},
			validate: func(t *testing.T, forecast *domain.CashflowForecast, err error) {
				assert.Nil(t, forecast)
				assert.ErrorIs(t, err, ErrCurrencyMismatch)

				var forecastErr *ForecastError
				if assert.ErrorAs(t, err, &forecastErr) {
					assert.Equal(t, apiErrors.ErrInvalidRequest, forecastErr.Code)
				}
			},
		},
		{
			name: "Falha ao persistir - deve propagar erro de banco de dados",
			request: &domain.CreateForecastRequest{
				Name:     "Trimestre",
				Position: &domain.CashPosition{Cash: 200_000},
			},
			setup: func() {
				mockTenantRepo.EXPECT().GetByID(testTenantID).Return(testTenant(), nil)
				mockFinancialsRepo.EXPECT().MonthlyExpenseTotalsByCategory(testTenantID, historyStart, historyEnd).
					Return([]*domain.MonthlyCategoryTotal{}, nil)
				mockFinancialsRepo.EXPECT().MonthlyRevenueTotals(testTenantID, historyStart, historyEnd).
					Return([]*domain.MonthlyTotal{}, nil)
				mockForecastRepo.EXPECT().SaveAsActive(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			validate: func(t *testing.T, forecast *domain.CashflowForecast, err error) {
				assert.Nil(t, forecast)
				assert.ErrorIs(t, err, ErrPersistForecast)

				var forecastErr *ForecastError
				if assert.ErrorAs(t, err, &forecastErr) {
					assert.Equal(t, apiErrors.ErrDatabaseOperation, forecastErr.Code)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			forecast, err := service.CreateCashflowForecast(context.Background(), testTenantID, tt.request)
			tt.validate(t, forecast, err)
		})
	}
}

func TestService_ListCashflowForecasts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockForecastRepo := mocks.NewMockCashflowForecastRepository(ctrl)
	service := NewService(mockForecastRepo, nil, nil, clock.System(), testConfig())

	t.Run("Deve listar apenas previsões ativas", func(t *testing.T) {
		mockForecastRepo.EXPECT().ListByTenant(testTenantID, 0).Return([]*domain.CashflowForecast{
			{ID: "F1", TenantID: testTenantID, IsActive: true},
			{ID: "F2", TenantID: testTenantID, IsActive: false},
			{ID: "F3", TenantID: testTenantID, IsActive: true},
		}, nil)

		forecasts, err := service.ListCashflowForecasts(testTenantID)

		assert.NoError(t, err)
		if assert.Len(t, forecasts, 2) {
			assert.Equal(t, "F1", forecasts[0].ID)
			assert.Equal(t, "F3", forecasts[1].ID)
		}
	})

	t.Run("Deve devolver lista vazia quando não há previsões", func(t *testing.T) {
		mockForecastRepo.EXPECT().ListByTenant(testTenantID, 0).Return(nil, nil)

		forecasts, err := service.ListCashflowForecasts(testTenantID)

		assert.NoError(t, err)
		assert.NotNil(t, forecasts)
		assert.Empty(t, forecasts)
	})

	t.Run("Deve propagar falha de banco de dados", func(t *testing.T) {
		mockForecastRepo.EXPECT().ListByTenant(testTenantID, 0).Return(nil, errors.New("connection reset"))

		forecasts, err := service.ListCashflowForecasts(testTenantID)

		assert.Nil(t, forecasts)
		assert.ErrorIs(t, err, ErrFetchForecasts)
	})
}

func TestService_GetCashflowForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockForecastRepo := mocks.NewMockCashflowForecastRepository(ctrl)
	service := NewService(mockForecastRepo, nil, nil, clock.System(), testConfig())

	forecastID := uuid.NewString()

	tests := []struct {
		name       string
		forecastID string
		setup      func()
		validate   func(t *testing.T, forecast *domain.CashflowForecast, err error)
	}{
		{
			name:       "Deve retornar previsão ativa do tenant",
			forecastID: forecastID,
			setup: func() {
				mockForecastRepo.EXPECT().GetByID(testTenantID, forecastID).
					Return(&domain.CashflowForecast{ID: forecastID, TenantID: testTenantID, IsActive: true}, nil)
			},
			validate: func(t *testing.T, forecast *domain.CashflowForecast, err error) {
				assert.NoError(t, err)
				if assert.NotNil(t, forecast) {
					assert.Equal(t, forecastID, forecast.ID)
				}
			},
		},
		{
			name:       "Identificador malformado - não deve consultar o banco",
			forecastID: "not-a-uuid",
			setup:      func() {},
			validate: func(t *testing.T, forecast *domain.CashflowForecast, err error) {
				assert.Nil(t, forecast)
				assert.ErrorIs(t, err, ErrMalformedID)

				var forecastErr *ForecastError
				if assert.ErrorAs(t, err, &forecastErr) {
					assert.Equal(t, apiErrors.ErrMalformedID, forecastErr.Code)
					assert.Equal(t, "not-a-uuid", forecastErr.ForecastID)
				}
			},
		},
		{
			name:       "Previsão inexistente - deve reportar não encontrada",
			forecastID: forecastID,
			setup: func() {
				mockForecastRepo.EXPECT().GetByID(testTenantID, forecastID).Return(nil, nil)
			},
			validate: func(t *testing.T, forecast *domain.CashflowForecast, err error) {
				assert.Nil(t, forecast)
				assert.ErrorIs(t, err, ErrForecastNotFound)
			},
		},
		{
			name:       "Previsão desativada - deve ser tratada como inexistente",
			forecastID: forecastID,
			setup: func() {
				mockForecastRepo.EXPECT().GetByID(testTenantID, forecastID).
					Return(&domain.CashflowForecast{ID: forecastID, TenantID: testTenantID, IsActive: false}, nil)
			},
			validate: func(t *testing.T, forecast *domain.CashflowForecast, err error) {
				assert.Nil(t, forecast)
				assert.ErrorIs(t, err, ErrForecastNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			forecast, err := service.GetCashflowForecast(testTenantID, tt.forecastID)
			tt.validate(t, forecast, err)
		})
	}
}

func TestService_DeleteCashflowForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockForecastRepo := mocks.NewMockCashflowForecastRepository(ctrl)
	service := NewService(mockForecastRepo, nil, nil, clock.System(), testConfig())

	forecastID := uuid.NewString()

	t.Run("Deve desativar previsão existente", func(t *testing.T) {
		mockForecastRepo.EXPECT().Deactivate(testTenantID, forecastID).Return(true, nil)

		assert.NoError(t, service.DeleteCashflowForecast(testTenantID, forecastID))
	})

	t.Run("Segunda exclusão da mesma previsão - deve reportar não encontrada", func(t *testing.T) {
		mockForecastRepo.EXPECT().Deactivate(testTenantID, forecastID).Return(true, nil)
		mockForecastRepo.EXPECT().Deactivate(testTenantID, forecastID).Return(false, nil)

		assert.NoError(t, service.DeleteCashflowForecast(testTenantID, forecastID))
		assert.ErrorIs(t, service.DeleteCashflowForecast(testTenantID, forecastID), ErrForecastNotFound)
	})

	t.Run("Identificador malformado - não deve consultar o banco", func(t *testing.T) {
		err := service.DeleteCashflowForecast(testTenantID, "42")

		assert.ErrorIs(t, err, ErrMalformedID)
	})
}
