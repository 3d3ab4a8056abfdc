package projecting

import (
	"testing"
	"time"

	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProjectRunway(t *testing.T) {
	startDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    ProjectionInput
		validate func(t *testing.T, outcome ProjectionOutcome)
	}{
		{
			name: "Caixa esgota no décimo mês - deve reportar runway e data de esgotamento",
			input: ProjectionInput{
				StartDate:        startDate,
				InitialCash:      1_000_000,
				MonthlyBurn:      100_000,
				MonthlyRevenue:   0,
				ProjectionMonths: 24,
			},
			validate: func(t *testing.T, outcome ProjectionOutcome) {
				assert.Equal(t, 10, outcome.TotalRunwayMonths)
				assert.False(t, outcome.RunwayIsFloor)
				assert.Nil(t, outcome.BreakEvenMonth)

				// A projeção para no mês do esgotamento
				assert.Len(t, outcome.MonthlyProjections, 10)

				last := outcome.MonthlyProjections[9]
				assert.Equal(t, 10, last.Month)
				assert.True(t, last.IsOutOfCash)
				assert.Equal(t, 0.0, last.EndingCash)

				if assert.NotNil(t, outcome.DateOfCashOut) {
					assert.Equal(t, startDate.AddDate(0, 10, 0), *outcome.DateOfCashOut)
				}
			},
		},
		{
			name: "Receita alcança o burn no quinto mês - deve marcar o ponto de equilíbrio",
			input: ProjectionInput{
				StartDate:         startDate,
				InitialCash:       500_000,
				MonthlyBurn:       50_000,
				MonthlyRevenue:    10_000,
				RevenueGrowthRate: 0.5,
				ProjectionMonths:  24,
			},
			validate: func(t *testing.T, outcome ProjectionOutcome) {
				// 10000·1.5^3 = 33750 < 50000; 10000·1.5^4 = 50625 >= 50000
				if assert.NotNil(t, outcome.BreakEvenMonth) {
					assert.Equal(t, 5, *outcome.BreakEvenMonth)
				}

				// A receita crescente evita o esgotamento dentro do horizonte
				assert.Equal(t, 24, outcome.TotalRunwayMonths)
				assert.True(t, outcome.RunwayIsFloor)
				assert.Nil(t, outcome.DateOfCashOut)
			},
		},
		{
			name: "Evento de captação entra ponderado pela probabilidade no mês planejado",
			input: ProjectionInput{
				StartDate:      startDate,
				InitialCash:    100_000,
				MonthlyBurn:    50_000,
				MonthlyRevenue: 0,
				FundraisingEvents: []domain.FundraisingEvent{
					{Name: "Ponte", Month: 2, Amount: 100_000, Probability: 0.5},
				},
				ProjectionMonths: 12,
			},
			validate: func(t *testing.T, outcome ProjectionOutcome) {
				assert.Len(t, outcome.MonthlyProjections, 3)

				second := outcome.MonthlyProjections[1]
				assert.Equal(t, 50_000.0, second.FundraisingInflow)
				assert.Equal(t, 0.0, second.NetCashFlow)
				assert.Equal(t, 50_000.0, second.EndingCash)

				// Caixa chega exatamente a zero no terceiro mês; zero conta
				// como esgotado
				third := outcome.MonthlyProjections[2]
				assert.True(t, third.IsOutOfCash)
				assert.Equal(t, 3, outcome.TotalRunwayMonths)
			},
		},
		{
			name: "Sem esgotamento no horizonte padrão - runway é o horizonte como piso",
			input: ProjectionInput{
				StartDate:      startDate,
				InitialCash:    100_000,
				MonthlyBurn:    1_000,
				MonthlyRevenue: 5_000,
			},
			validate: func(t *testing.T, outcome ProjectionOutcome) {
				assert.Equal(t, defaultProjectionMonths, outcome.TotalRunwayMonths)
				assert.True(t, outcome.RunwayIsFloor)
				assert.Len(t, outcome.MonthlyProjections, defaultProjectionMonths)

				// Receita já supera o burn no primeiro mês
				if assert.NotNil(t, outcome.BreakEvenMonth) {
					assert.Equal(t, 1, *outcome.BreakEvenMonth)
				}
			},
		},
		{
			name: "Sem receita e sem eventos - caixa estritamente decrescente",
			input: ProjectionInput{
				StartDate:        startDate,
				InitialCash:      200_000,
				MonthlyBurn:      10_000,
				BurnGrowthRate:   0.1,
				MonthlyRevenue:   0,
				ProjectionMonths: 12,
			},
			validate: func(t *testing.T, outcome ProjectionOutcome) {
				for _, row := range outcome.MonthlyProjections {
					assert.Less(t, row.EndingCash, row.StartingCash, "mês %d", row.Month)
				}
			},
		},
		{
			name: "Horizonte acima do teto - deve ser grampeado em sessenta meses",
			input: ProjectionInput{
				StartDate:        startDate,
				InitialCash:      10_000_000,
				MonthlyBurn:      1_000,
				MonthlyRevenue:   0,
				ProjectionMonths: 120,
			},
			validate: func(t *testing.T, outcome ProjectionOutcome) {
				assert.Equal(t, maxProjectionMonths, outcome.TotalRunwayMonths)
				assert.True(t, outcome.RunwayIsFloor)
				assert.Len(t, outcome.MonthlyProjections, maxProjectionMonths)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := ProjectRunway(tt.input)
			tt.validate(t, outcome)
		})
	}
}

func TestProjectRunway_Deterministico(t *testing.T) {
	input := ProjectionInput{
		StartDate:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		InitialCash:       750_000,
		MonthlyBurn:       80_000,
		MonthlyRevenue:    20_000,
		BurnGrowthRate:    0.02,
		RevenueGrowthRate: 0.08,
		FundraisingEvents: []domain.FundraisingEvent{
			{Month: 6, Amount: 500_000, Probability: 0.6},
		},
		ProjectionMonths: 36,
	}

	first := ProjectRunway(input)
	second := ProjectRunway(input)

	assert.Equal(t, first, second)
}

func TestProjectRunway_MesDaLinha(t *testing.T) {
	outcome := ProjectRunway(ProjectionInput{
		StartDate:        time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		InitialCash:      50_000,
		MonthlyBurn:      10_000,
		ProjectionMonths: 3,
	})

	// Índice base 1 e data da linha um mês à frente do início por mês projetado
	assert.Equal(t, 1, outcome.MonthlyProjections[0].Month)
	assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), outcome.MonthlyProjections[0].Date)
	assert.Equal(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), outcome.MonthlyProjections[2].Date)
}
