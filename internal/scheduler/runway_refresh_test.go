package scheduler

import (
	"testing"
	"time"

	"github.com/horizonhq/horizon-api/infrastructure/repository/mocks"
	"github.com/horizonhq/horizon-api/internal/domain"
	projectingmocks "github.com/horizonhq/horizon-api/internal/usecases/projecting/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func activeTenant(id, name string) *domain.Tenant {
	return &domain.Tenant{
		ID:           id,
		Name:         name,
		Status:       domain.TenantStatusActive,
		BaseCurrency: domain.CurrencyUSD,
		CreatedAt:    time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
	}
}

func baseScenarioRequest() *domain.CreateScenarioRequest {
	return &domain.CreateScenarioRequest{
		Name: baseScenarioName,
		Type: string(domain.ScenarioTypeBase),
	}
}

func TestRunwayRefreshService_refreshTenantScenario(t *testing.T) {
	tenant := activeTenant("TEN001", "Acme Labs")

	tests := []struct {
		name  string
		setup func(scenarioService *projectingmocks.MockScenarioService)
	}{
		{
			name: "Tenant sem cenário base anterior - deve apenas criar o novo cenário",
			setup: func(scenarioService *projectingmocks.MockScenarioService) {
				scenarioService.EXPECT().
					ListRunwayScenarios("TEN001").
					Return([]*domain.RunwayScenario{
						{ID: "SCN001", Name: "Corte agressivo", Type: domain.ScenarioTypeCustom},
					}, nil)

				scenarioService.EXPECT().
					CreateRunwayScenario(gomock.Any(), "TEN001", baseScenarioRequest()).
					Return(&domain.RunwayScenario{ID: "SCN002", TotalRunwayMonths: 14}, nil)
			},
		},
		{
			name: "Tenant com cenário base anterior - deve remover antes de criar",
			setup: func(scenarioService *projectingmocks.MockScenarioService) {
				scenarioService.EXPECT().
					ListRunwayScenarios("TEN001").
					Return([]*domain.RunwayScenario{
						{ID: "SCN001", Name: baseScenarioName, Type: domain.ScenarioTypeBase},
						{ID: "SCN002", Name: "Corte agressivo", Type: domain.ScenarioTypeCustom},
					}, nil)

				scenarioService.EXPECT().
					DeleteRunwayScenario("TEN001", "SCN001").
					Return(nil)

				scenarioService.EXPECT().
					CreateRunwayScenario(gomock.Any(), "TEN001", baseScenarioRequest()).
					Return(&domain.RunwayScenario{ID: "SCN003", TotalRunwayMonths: 11}, nil)
			},
		},
		{
			name: "Cenário base anterior com premissas ajustadas - deve preservá-las no recálculo",
			setup: func(scenarioService *projectingmocks.MockScenarioService) {
				scenarioService.EXPECT().
					ListRunwayScenarios("TEN001").
					Return([]*domain.RunwayScenario{
						{
							ID:   "SCN001",
							Name: baseScenarioName,
							Type: domain.ScenarioTypeBase,
							Assumptions: []domain.ScenarioAssumption{
								{Metric: domain.AssumptionMetricBurn, BaseValue: 52000, MonthlyGrowthRate: 0.03},
								{Metric: domain.AssumptionMetricRevenue, BaseValue: 31000, MonthlyGrowthRate: 0.08},
							},
							ProjectionMonths: 18,
						},
					}, nil)

				scenarioService.EXPECT().
					DeleteRunwayScenario("TEN001", "SCN001").
					Return(nil)

				carried := baseScenarioRequest()
				carried.BurnGrowthRate = 0.03
				carried.RevenueGrowthRate = 0.08
				carried.ProjectionMonths = 18

				scenarioService.EXPECT().
					CreateRunwayScenario(gomock.Any(), "TEN001", carried).
					Return(&domain.RunwayScenario{ID: "SCN002", TotalRunwayMonths: 13}, nil)
			},
		},
		{
			name: "Cenário custom com nome Base - não deve ser removido",
			setup: func(scenarioService *projectingmocks.MockScenarioService) {
				scenarioService.EXPECT().
					ListRunwayScenarios("TEN001").
					Return([]*domain.RunwayScenario{
						{ID: "SCN001", Name: baseScenarioName, Type: domain.ScenarioTypeCustom},
					}, nil)

				scenarioService.EXPECT().
					CreateRunwayScenario(gomock.Any(), "TEN001", baseScenarioRequest()).
					Return(&domain.RunwayScenario{ID: "SCN002", TotalRunwayMonths: 9}, nil)
			},
		},
		{
			name: "Erro ao listar cenários - não deve criar novo cenário",
			setup: func(scenarioService *projectingmocks.MockScenarioService) {
				scenarioService.EXPECT().
					ListRunwayScenarios("TEN001").
					Return(nil, assert.AnError)
			},
		},
		{
			name: "Erro ao remover cenário anterior - deve criar mesmo assim",
			setup: func(scenarioService *projectingmocks.MockScenarioService) {
				scenarioService.EXPECT().
					ListRunwayScenarios("TEN001").
					Return([]*domain.RunwayScenario{
						{ID: "SCN001", Name: baseScenarioName, Type: domain.ScenarioTypeBase},
					}, nil)

				scenarioService.EXPECT().
					DeleteRunwayScenario("TEN001", "SCN001").
					Return(assert.AnError)

				scenarioService.EXPECT().
					CreateRunwayScenario(gomock.Any(), "TEN001", baseScenarioRequest()).
					Return(&domain.RunwayScenario{ID: "SCN002", TotalRunwayMonths: 14}, nil)
			},
		},
		{
			name: "Erro ao criar cenário - apenas registra a falha",
			setup: func(scenarioService *projectingmocks.MockScenarioService) {
				scenarioService.EXPECT().
					ListRunwayScenarios("TEN001").
					Return([]*domain.RunwayScenario{}, nil)

				scenarioService.EXPECT().
					CreateRunwayScenario(gomock.Any(), "TEN001", baseScenarioRequest()).
					Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockScenarioService := projectingmocks.NewMockScenarioService(ctrl)
			tt.setup(mockScenarioService)

			service := &RunwayRefreshService{
				config:          RunwayRefreshConfig{MaxConcurrentJobs: 3},
				scenarioService: mockScenarioService,
			}

			service.refreshTenantScenario(tenant)
		})
	}
}

func TestRunwayRefreshService_refreshAllTenants(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(tenantRepo *mocks.MockTenantRepository, scenarioService *projectingmocks.MockScenarioService)
		validate func(t *testing.T, service *RunwayRefreshService)
	}{
		{
			name: "Dois tenants ativos - deve recalcular o cenário base de cada um",
			setup: func(tenantRepo *mocks.MockTenantRepository, scenarioService *projectingmocks.MockScenarioService) {
				tenantRepo.EXPECT().
					ListByStatus([]domain.TenantStatus{domain.TenantStatusActive}).
					Return([]*domain.Tenant{
						activeTenant("TEN001", "Acme Labs"),
						activeTenant("TEN002", "Polar Analytics"),
					}, nil)

				for _, tenantID := range []string{"TEN001", "TEN002"} {
					scenarioService.EXPECT().
						ListRunwayScenarios(tenantID).
						Return([]*domain.RunwayScenario{}, nil)

					scenarioService.EXPECT().
						CreateRunwayScenario(gomock.Any(), tenantID, baseScenarioRequest()).
						Return(&domain.RunwayScenario{ID: "SCN-" + tenantID, TotalRunwayMonths: 12}, nil)
				}
			},
			validate: func(t *testing.T, service *RunwayRefreshService) {
				assert.False(t, service.lastSyncStartedAt.IsZero())
				assert.False(t, service.lastSyncCompletedAt.IsZero())
				assert.False(t, service.syncRunning)
			},
		},
		{
			name: "Erro ao buscar tenants - não deve tocar nos cenários",
			setup: func(tenantRepo *mocks.MockTenantRepository, scenarioService *projectingmocks.MockScenarioService) {
				tenantRepo.EXPECT().
					ListByStatus([]domain.TenantStatus{domain.TenantStatusActive}).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, service *RunwayRefreshService) {
				assert.True(t, service.lastSyncCompletedAt.IsZero())
				assert.False(t, service.syncRunning)
			},
		},
		{
			name: "Nenhum tenant ativo - deve encerrar sem recalcular",
			setup: func(tenantRepo *mocks.MockTenantRepository, scenarioService *projectingmocks.MockScenarioService) {
				tenantRepo.EXPECT().
					ListByStatus([]domain.TenantStatus{domain.TenantStatusActive}).
					Return([]*domain.Tenant{}, nil)
			},
			validate: func(t *testing.T, service *RunwayRefreshService) {
				assert.True(t, service.lastSyncCompletedAt.IsZero())
				assert.False(t, service.syncRunning)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTenantRepo := mocks.NewMockTenantRepository(ctrl)
			mockScenarioService := projectingmocks.NewMockScenarioService(ctrl)
			tt.setup(mockTenantRepo, mockScenarioService)

			service := &RunwayRefreshService{
				config:          RunwayRefreshConfig{MaxConcurrentJobs: 2},
				tenantRepo:      mockTenantRepo,
				scenarioService: mockScenarioService,
			}

			service.refreshAllTenants()

			tt.validate(t, service)
		})
	}
}

func TestRunwayRefreshService_refreshAllTenants_AlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa registrada: qualquer chamada falharia o teste
	mockTenantRepo := mocks.NewMockTenantRepository(ctrl)
	mockScenarioService := projectingmocks.NewMockScenarioService(ctrl)

	service := &RunwayRefreshService{
		config:          RunwayRefreshConfig{MaxConcurrentJobs: 2},
		tenantRepo:      mockTenantRepo,
		scenarioService: mockScenarioService,
		syncRunning:     true,
	}

	service.refreshAllTenants()

	assert.True(t, service.lastSyncStartedAt.IsZero())
	assert.True(t, service.syncRunning)
}
