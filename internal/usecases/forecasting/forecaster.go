package forecasting

import (
	"math"
	"time"

	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/pkg/numeric"
	"github.com/horizonhq/horizon-api/pkg/utils"
)

const (
	// confidenceFloor é o piso absoluto da confiança semanal
	confidenceFloor = 0.10
	// maxWeeklyVariance é o teto do envelope de variância semanal
	maxWeeklyVariance = 0.5
	// weeklyVarianceStep é o acréscimo de variância por semana projetada
	weeklyVarianceStep = 0.015
	// minCategoryConfidence é o piso da confiança por categoria
	minCategoryConfidence = 0.5
)

// baseAmountWeights são os pesos da média móvel do valor base por categoria;
// o último peso recai sobre o mês mais recente
var baseAmountWeights = []float64{0.2, 0.3, 0.5}

// ForecastInput reúne a posição de caixa e o histórico mensal que alimentam
// a previsão. As séries chegam em ordem cronológica, como o repositório
// devolve os agregados.
type ForecastInput struct {
	StartDate      time.Time
	EndDate        time.Time
	Position       domain.CashPosition
	Currency       domain.Currency
	ExpenseHistory []*domain.MonthlyCategoryTotal
	RevenueHistory []*domain.MonthlyTotal
}

// ForecastParams são os limiares e multiplicadores configuráveis da previsão
type ForecastParams struct {
	LowCashThreshold       float64
	WeeklyNetFlowThreshold float64
	BestCaseMultiplier     float64
	WorstCaseMultiplier    float64
}

// ForecastOutcome é o resultado calculado da previsão de fluxo de caixa
type ForecastOutcome struct {
	CategoryForecasts         []domain.CategoryForecast
	WeeklyForecasts           []domain.WeeklyCashFlow
	ScenarioAnalysis          domain.ScenarioEnvelope
	Alerts                    []domain.CashflowAlert
	RequiresAdditionalFunding bool
	AdditionalFundingNeeded   float64
}

// BuildForecast decompõe o histórico por categoria, projeta o fluxo semanal
// até a data final e deriva envelope de cenários, alertas e necessidade de
// captação adicional. O saldo projetado parte do caixa corrente; recebíveis
// e pagáveis ficam registrados na posição inicial do artefato.
func BuildForecast(input ForecastInput, params ForecastParams) (*ForecastOutcome, error) {
	categories := decomposeCategories(input)
	weekly := projectWeeks(input, categories)

	alerts, err := buildAlerts(weekly, params)
	if err != nil {
		return nil, err
	}

	outcome := &ForecastOutcome{
		CategoryForecasts: categories,
		WeeklyForecasts:   weekly,
		ScenarioAnalysis:  buildEnvelope(weekly, input.Position.Cash, params),
		Alerts:            alerts,
	}

	// O gap de captação é o pior saldo projetado abaixo de zero
	worst := 0.0
	for _, week := range weekly {
		if week.CashBalance < worst {
			worst = week.CashBalance
		}
	}
	outcome.RequiresAdditionalFunding = worst < 0
	outcome.AdditionalFundingNeeded = math.Abs(worst)

	return outcome, nil
}

// decomposeCategories transforma o histórico mensal em uma previsão por
// categoria: receita vira uma categoria própria de entrada; despesas são
// classificadas entre folha de pagamento e operacionais
func decomposeCategories(input ForecastInput) []domain.CategoryForecast {
	forecasts := make([]domain.CategoryForecast, 0)

	revenueSeries := make([]float64, 0, len(input.RevenueHistory))
	for _, total := range input.RevenueHistory {
		if total.Currency != input.Currency {
			continue
		}
		revenueSeries = append(revenueSeries, total.Total)
	}
	if len(revenueSeries) > 0 {
		forecasts = append(forecasts, decomposeSeries(domain.CategoryRevenue, domain.CategoryKindInflow, revenueSeries))
	}

	seriesByCategory := make(map[string][]float64)
	order := make([]string, 0)
	for _, total := range input.ExpenseHistory {
		if total.Currency != input.Currency {
			continue
		}
		if _, seen := seriesByCategory[total.Category]; !seen {
			order = append(order, total.Category)
		}
		seriesByCategory[total.Category] = append(seriesByCategory[total.Category], total.Total)
	}

	for _, category := range order {
		kind := domain.CategoryKindOperating
		if category == domain.CategorySalaries {
			kind = domain.CategoryKindPayroll
		}
		forecasts = append(forecasts, decomposeSeries(category, kind, seriesByCategory[category]))
	}

	return forecasts
}

// decomposeSeries deriva valor base, taxa de crescimento e confiança de uma
// série mensal. O valor base é a média móvel ponderada dos meses recentes;
// com menos observações que pesos, vale o último mês. O crescimento é a
// mediana das variações mês a mês; a confiança cai com a volatilidade dessas
// variações, nunca abaixo do piso por categoria.
func decomposeSeries(category string, kind domain.CategoryKind, series []float64) domain.CategoryForecast {
	baseAmount := series[len(series)-1]
	if len(series) >= len(baseAmountWeights) {
		baseAmount = numeric.WeightedMovingAverage(series, baseAmountWeights)
	}

	growths := make([]float64, 0, len(series))
	for i := 1; i < len(series); i++ {
		previous := series[i-1]
		if previous == 0 {
			continue
		}
		growths = append(growths, (series[i]-previous)/previous)
	}

	growthRate := 0.0
	confidence := 1.0
	if len(growths) > 0 {
		growthRate = numeric.Median(growths)
		confidence = math.Max(minCategoryConfidence, 1-numeric.StdDev(growths))
	}

	return domain.CategoryForecast{
		Category:   category,
		Kind:       kind,
		BaseAmount: baseAmount,
		GrowthRate: growthRate,
		Confidence: confidence,
		DataPoints: len(series),
	}
}

// projectWeeks itera semana a semana até a data final. O valor semanal de
// cada categoria é um quarto do valor base, composto pelo crescimento
// mensal rateado por semana.
func projectWeeks(input ForecastInput, categories []domain.CategoryForecast) []domain.WeeklyCashFlow {
	weekly := make([]domain.WeeklyCashFlow, 0)
	cumulative := 0.0
	balance := input.Position.Cash

	for week := 1; ; week++ {
		weekStart := input.StartDate.AddDate(0, 0, (week-1)*7)
		if !weekStart.Before(input.EndDate) {
			break
		}

		inflows := 0.0
		payroll := 0.0
		operating := 0.0
		for _, category := range categories {
			amount := (category.BaseAmount / 4) * math.Pow(1+category.GrowthRate, float64(week-1)/4)
			if !numeric.IsFinite(amount) || amount < 0 {
				amount = 0
			}

			switch category.Kind {
			case domain.CategoryKindInflow:
				inflows += amount
			case domain.CategoryKindPayroll:
				payroll += amount
			default:
				operating += amount
			}
		}

		outflows := payroll + operating
		net := inflows - outflows
		cumulative += net
		balance += net

		weekly = append(weekly, domain.WeeklyCashFlow{
			Week:               week,
			WeekStartDate:      weekStart,
			Inflows:            inflows,
			PayrollExpenses:    payroll,
			OperatingExpenses:  operating,
			TotalOutflows:      outflows,
			NetCashFlow:        net,
			CumulativeCashFlow: cumulative,
			CashBalance:        balance,
			ConfidenceLevel:    confidenceForWeek(week),
			Variance:           math.Min(maxWeeklyVariance, weeklyVarianceStep*float64(week)),
		})
	}

	return weekly
}

// confidenceForWeek devolve a confiança da semana, decaindo por trechos
// lineares e respeitando o piso absoluto
func confidenceForWeek(week int) float64 {
	var confidence float64
	switch {
	case week <= 4:
		confidence = interpolateWeeks(week, 1, 4, 0.90, 0.85)
	case week <= 12:
		confidence = interpolateWeeks(week, 5, 12, 0.85, 0.70)
	case week <= 26:
		confidence = interpolateWeeks(week, 13, 26, 0.70, 0.50)
	default:
		confidence = math.Max(0.30, 0.50-float64(week-26)*0.005)
	}

	return math.Max(confidenceFloor, confidence)
}

func interpolateWeeks(week, startWeek, endWeek int, startValue, endValue float64) float64 {
	fraction := float64(week-startWeek) / float64(endWeek-startWeek)
	return startValue + fraction*(endValue-startValue)
}

// buildEnvelope projeta os ramos melhor, pior e mais provável sobre o saldo
// final e o saldo mínimo da janela
func buildEnvelope(weekly []domain.WeeklyCashFlow, initialCash float64, params ForecastParams) domain.ScenarioEnvelope {
	ending := initialCash
	if len(weekly) > 0 {
		ending = weekly[len(weekly)-1].CashBalance
	}
	minimum := minimumBalance(weekly, initialCash)

	return domain.ScenarioEnvelope{
		BestCase: domain.EnvelopeCase{
			EndingBalance:  ending * params.BestCaseMultiplier,
			MinimumBalance: minimum * params.BestCaseMultiplier,
			Probability:    0.25,
		},
		WorstCase: domain.EnvelopeCase{
			EndingBalance:  ending * params.WorstCaseMultiplier,
			MinimumBalance: minimum * params.WorstCaseMultiplier,
			Probability:    0.25,
		},
		MostLikely: domain.EnvelopeCase{
			EndingBalance:  ending,
			MinimumBalance: minimum,
			Probability:    0.5,
		},
	}
}

// buildAlerts percorre a projeção semanal emitindo alertas de saldo negativo,
// caixa baixo na primeira semana e queima semanal acima do limiar
func buildAlerts(weekly []domain.WeeklyCashFlow, params ForecastParams) ([]domain.CashflowAlert, error) {
	alerts := make([]domain.CashflowAlert, 0)

	for _, week := range weekly {
		if week.CashBalance < 0 {
			alert, err := newAlert(domain.AlertSeverityCritical, "cashBalance", week.Week, 0, week.CashBalance,
				"Saldo de caixa projetado negativo")
			if err != nil {
				return nil, err
			}
			alerts = append(alerts, alert)
		}

		if week.Week == 1 && week.CashBalance >= 0 && week.CashBalance < params.LowCashThreshold {
			alert, err := newAlert(domain.AlertSeverityWarning, "cashBalance", week.Week, params.LowCashThreshold, week.CashBalance,
				"Caixa abaixo do limite mínimo de segurança já na primeira semana")
			if err != nil {
				return nil, err
			}
			alerts = append(alerts, alert)
		}

		if week.NetCashFlow < params.WeeklyNetFlowThreshold {
			alert, err := newAlert(domain.AlertSeverityWarning, "netCashFlow", week.Week, params.WeeklyNetFlowThreshold, week.NetCashFlow,
				"Queima semanal acima do limiar configurado")
			if err != nil {
				return nil, err
			}
			alerts = append(alerts, alert)
		}
	}

	return alerts, nil
}

func newAlert(severity domain.AlertSeverity, metric string, week int, threshold, value float64, message string) (domain.CashflowAlert, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return domain.CashflowAlert{}, err
	}

	return domain.CashflowAlert{
		ID:        id,
		Severity:  severity,
		Metric:    metric,
		Week:      week,
		Message:   message,
		Threshold: threshold,
		Value:     value,
	}, nil
}

func minimumBalance(weekly []domain.WeeklyCashFlow, initialCash float64) float64 {
	minBalance := initialCash
	for _, week := range weekly {
		if week.CashBalance < minBalance {
			minBalance = week.CashBalance
		}
	}
	return minBalance
}
