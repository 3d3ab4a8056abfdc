package forecasting

import (
	"testing"
	"time"

	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultForecastParams() ForecastParams {
	return ForecastParams{
		LowCashThreshold:       100_000,
		WeeklyNetFlowThreshold: -50_000,
		BestCaseMultiplier:     1.2,
		WorstCaseMultiplier:    0.7,
	}
}

// monthlyExpenses monta o histórico mensal de uma categoria a partir de
// julho de 2025, em ordem cronológica
func monthlyExpenses(category string, currency domain.Currency, totals ...float64) []*domain.MonthlyCategoryTotal {
	history := make([]*domain.MonthlyCategoryTotal, 0, len(totals))
	for i, total := range totals {
		history = append(history, &domain.MonthlyCategoryTotal{
			Year:     2025,
			Month:    7 + i,
			Category: category,
			Total:    total,
			Currency: currency,
		})
	}
	return history
}

func monthlyRevenues(currency domain.Currency, totals ...float64) []*domain.MonthlyTotal {
	history := make([]*domain.MonthlyTotal, 0, len(totals))
	for i, total := range totals {
		history = append(history, &domain.MonthlyTotal{
			Year:     2025,
			Month:    7 + i,
			Total:    total,
			Currency: currency,
		})
	}
	return history
}

func TestBuildForecast(t *testing.T) {
	startDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    ForecastInput
		params   ForecastParams
		validate func(t *testing.T, outcome *ForecastOutcome)
	}{
		{
			name: "Folha de oitenta mil consome o caixa em três semanas - deve alertar saldo negativo",
			input: ForecastInput{
				StartDate:      startDate,
				EndDate:        startDate.AddDate(0, 1, 0),
				Position:       domain.CashPosition{Cash: 50_000},
				Currency:       domain.CurrencyUSD,
				ExpenseHistory: monthlyExpenses(domain.CategorySalaries, domain.CurrencyUSD, 80_000, 80_000, 80_000, 80_000, 80_000, 80_000),
			},
			params: defaultForecastParams(),
			validate: func(t *testing.T, outcome *ForecastOutcome) {
				require.Len(t, outcome.CategoryForecasts, 1)
				payroll := outcome.CategoryForecasts[0]
				assert.Equal(t, domain.CategorySalaries, payroll.Category)
				assert.Equal(t, domain.CategoryKindPayroll, payroll.Kind)
				assert.InDelta(t, 80_000, payroll.BaseAmount, 1e-6)
				assert.InDelta(t, 0, payroll.GrowthRate, 1e-9)
				assert.InDelta(t, 1.0, payroll.Confidence, 1e-9)
				assert.Equal(t, 6, payroll.DataPoints)

				// Janeiro tem cinco inícios de semana dentro do horizonte
				require.Len(t, outcome.WeeklyForecasts, 5)

				first := outcome.WeeklyForecasts[0]
				assert.InDelta(t, 20_000, first.PayrollExpenses, 1e-6)
				assert.InDelta(t, 0, first.Inflows, 1e-9)
				assert.InDelta(t, 30_000, first.CashBalance, 1e-6)

				// O saldo fica negativo a partir da terceira semana
				assert.InDelta(t, 10_000, outcome.WeeklyForecasts[1].CashBalance, 1e-6)
				assert.Negative(t, outcome.WeeklyForecasts[2].CashBalance)

				criticals := 0
				lowCashWarnings := 0
				for _, alert := range outcome.Alerts {
					assert.NotEmpty(t, alert.ID)
					switch {
					case alert.Severity == domain.AlertSeverityCritical:
						assert.Equal(t, "cashBalance", alert.Metric)
						criticals++
					case alert.Severity == domain.AlertSeverityWarning && alert.Metric == "cashBalance":
						assert.Equal(t, 1, alert.Week)
						assert.InDelta(t, 100_000, alert.Threshold, 1e-9)
						assert.InDelta(t, 30_000, alert.Value, 1e-6)
						lowCashWarnings++
					default:
						t.Errorf("alerta inesperado: %+v", alert)
					}
				}
				assert.Equal(t, 3, criticals)
				assert.Equal(t, 1, lowCashWarnings)

				// Déficit máximo de cinquenta mil na quinta semana
				assert.True(t, outcome.RequiresAdditionalFunding)
				assert.InDelta(t, 50_000, outcome.AdditionalFundingNeeded, 1e-6)
			},
		},
		{
			name: "Receita estável acima das despesas - deve acumular saldo sem alertas",
			input: ForecastInput{
				StartDate:      startDate,
				EndDate:        startDate.AddDate(0, 3, 0),
				Position:       domain.CashPosition{Cash: 100_000, Receivables: 15_000},
				Currency:       domain.CurrencyUSD,
				RevenueHistory: monthlyRevenues(domain.CurrencyUSD, 40_000, 40_000, 40_000, 40_000, 40_000, 40_000),
				ExpenseHistory: monthlyExpenses("Cloud & Hosting", domain.CurrencyUSD, 20_000, 20_000, 20_000, 20_000, 20_000, 20_000),
			},
			params: defaultForecastParams(),
			validate: func(t *testing.T, outcome *ForecastOutcome) {
				require.Len(t, outcome.CategoryForecasts, 2)
				assert.Equal(t, domain.CategoryRevenue, outcome.CategoryForecasts[0].Category)
				assert.Equal(t, domain.CategoryKindInflow, outcome.CategoryForecasts[0].Kind)
				assert.Equal(t, domain.CategoryKindOperating, outcome.CategoryForecasts[1].Kind)

				require.Len(t, outcome.WeeklyForecasts, 13)

				first := outcome.WeeklyForecasts[0]
				assert.InDelta(t, 10_000, first.Inflows, 1e-6)
				assert.InDelta(t, 5_000, first.OperatingExpenses, 1e-6)
				assert.InDelta(t, 0, first.PayrollExpenses, 1e-9)
				assert.InDelta(t, 5_000, first.NetCashFlow, 1e-6)
				assert.InDelta(t, 105_000, first.CashBalance, 1e-6)

				last := outcome.WeeklyForecasts[12]
				assert.InDelta(t, 65_000, last.CumulativeCashFlow, 1e-6)
				assert.InDelta(t, 165_000, last.CashBalance, 1e-6)

				// Envelope sobre o saldo final e o saldo mínimo da janela
				assert.InDelta(t, 198_000, outcome.ScenarioAnalysis.BestCase.EndingBalance, 1e-6)
				assert.InDelta(t, 115_500, outcome.ScenarioAnalysis.WorstCase.EndingBalance, 1e-6)
				assert.InDelta(t, 165_000, outcome.ScenarioAnalysis.MostLikely.EndingBalance, 1e-6)
				assert.InDelta(t, 120_000, outcome.ScenarioAnalysis.BestCase.MinimumBalance, 1e-6)
				assert.InDelta(t, 70_000, outcome.ScenarioAnalysis.WorstCase.MinimumBalance, 1e-6)
				assert.InDelta(t, 100_000, outcome.ScenarioAnalysis.MostLikely.MinimumBalance, 1e-6)
				assert.InDelta(t, 0.25, outcome.ScenarioAnalysis.BestCase.Probability, 1e-9)
				assert.InDelta(t, 0.25, outcome.ScenarioAnalysis.WorstCase.Probability, 1e-9)
				assert.InDelta(t, 0.5, outcome.ScenarioAnalysis.MostLikely.Probability, 1e-9)

				assert.Empty(t, outcome.Alerts)
				assert.False(t, outcome.RequiresAdditionalFunding)
				assert.InDelta(t, 0, outcome.AdditionalFundingNeeded, 1e-9)
			},
		},
		{
			name: "Histórico curto usa o último mês como valor base",
			input: ForecastInput{
				StartDate:      startDate,
				EndDate:        startDate.AddDate(0, 1, 0),
				Position:       domain.CashPosition{Cash: 500_000},
				Currency:       domain.CurrencyUSD,
				ExpenseHistory: monthlyExpenses("Marketing", domain.CurrencyUSD, 10_000, 12_000),
			},
			params: defaultForecastParams(),
			validate: func(t *testing.T, outcome *ForecastOutcome) {
				require.Len(t, outcome.CategoryForecasts, 1)
				marketing := outcome.CategoryForecasts[0]
				assert.InDelta(t, 12_000, marketing.BaseAmount, 1e-9)
				assert.InDelta(t, 0.2, marketing.GrowthRate, 1e-9)
				assert.InDelta(t, 1.0, marketing.Confidence, 1e-9)
				assert.Equal(t, 2, marketing.DataPoints)
			},
		},
		{
			name: "Média móvel pondera os meses recentes e crescimento usa a mediana",
			input: ForecastInput{
				StartDate:      startDate,
				EndDate:        startDate.AddDate(0, 1, 0),
				Position:       domain.CashPosition{Cash: 500_000},
				Currency:       domain.CurrencyUSD,
				ExpenseHistory: monthlyExpenses("Marketing", domain.CurrencyUSD, 80_000, 100_000, 75_000),
			},
			params: defaultForecastParams(),
			validate: func(t *testing.T, outcome *ForecastOutcome) {
				require.Len(t, outcome.CategoryForecasts, 1)
				marketing := outcome.CategoryForecasts[0]

				// 0.2·80000 + 0.3·100000 + 0.5·75000
				assert.InDelta(t, 83_500, marketing.BaseAmount, 1e-6)

				// Variações de +25% e -25%: mediana zero, desvio padrão 0.25
				assert.InDelta(t, 0, marketing.GrowthRate, 1e-9)
				assert.InDelta(t, 0.75, marketing.Confidence, 1e-9)
			},
		},
		{
			name: "Mês anterior zerado não entra no cálculo de crescimento",
			input: ForecastInput{
				StartDate:      startDate,
				EndDate:        startDate.AddDate(0, 1, 0),
				Position:       domain.CashPosition{Cash: 500_000},
				Currency:       domain.CurrencyUSD,
				ExpenseHistory: monthlyExpenses("Legal", domain.CurrencyUSD, 0, 30_000),
			},
			params: defaultForecastParams(),
			validate: func(t *testing.T, outcome *ForecastOutcome) {
				require.Len(t, outcome.CategoryForecasts, 1)
				legal := outcome.CategoryForecasts[0]
				assert.InDelta(t, 30_000, legal.BaseAmount, 1e-9)
				assert.InDelta(t, 0, legal.GrowthRate, 1e-9)
				assert.InDelta(t, 1.0, legal.Confidence, 1e-9)
			},
		},
		{
			name: "Histórico em outra moeda fica fora da decomposição",
			input: ForecastInput{
				StartDate:      startDate,
				EndDate:        startDate.AddDate(0, 1, 0),
				Position:       domain.CashPosition{Cash: 500_000},
				Currency:       domain.CurrencyUSD,
				RevenueHistory: monthlyRevenues(domain.CurrencyBRL, 40_000, 40_000, 40_000),
				ExpenseHistory: monthlyExpenses("Marketing", domain.CurrencyBRL, 10_000, 10_000, 10_000),
			},
			params: defaultForecastParams(),
			validate: func(t *testing.T, outcome *ForecastOutcome) {
				assert.Empty(t, outcome.CategoryForecasts)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := BuildForecast(tt.input, tt.params)

			require.NoError(t, err)
			tt.validate(t, outcome)
		})
	}
}

// TestBuildForecast_DecaimentoDeConfianca percorre um horizonte de um ano e
// verifica o decaimento por trechos da confiança e o teto da variância
func TestBuildForecast_DecaimentoDeConfianca(t *testing.T) {
	startDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	outcome, err := BuildForecast(ForecastInput{
		StartDate: startDate,
		EndDate:   startDate.AddDate(0, 12, 0),
		Position:  domain.CashPosition{Cash: 500_000},
		Currency:  domain.CurrencyUSD,
	}, defaultForecastParams())

	require.NoError(t, err)
	require.Len(t, outcome.WeeklyForecasts, 53)

	checkpoints := map[int]float64{
		1:  0.90,
		4:  0.85,
		12: 0.70,
		26: 0.50,
		53: 0.365,
	}

	for _, week := range outcome.WeeklyForecasts {
		assert.GreaterOrEqual(t, week.ConfidenceLevel, 0.10)
		assert.LessOrEqual(t, week.ConfidenceLevel, 0.90)
		assert.Greater(t, week.Variance, 0.0)
		assert.LessOrEqual(t, week.Variance, 0.5)

		if expected, ok := checkpoints[week.Week]; ok {
			assert.InDelta(t, expected, week.ConfidenceLevel, 1e-9, "semana %d", week.Week)
		}
	}

	// A variância cresce por semana até saturar no teto
	assert.InDelta(t, 0.015, outcome.WeeklyForecasts[0].Variance, 1e-9)
	assert.InDelta(t, 0.30, outcome.WeeklyForecasts[19].Variance, 1e-9)
	assert.InDelta(t, 0.5, outcome.WeeklyForecasts[39].Variance, 1e-9)

	// Sem histórico não há categorias nem movimento projetado
	assert.Empty(t, outcome.CategoryForecasts)
	assert.InDelta(t, 500_000, outcome.WeeklyForecasts[52].CashBalance, 1e-9)
}
