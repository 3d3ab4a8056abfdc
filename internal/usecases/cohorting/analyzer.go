package cohorting

import (
	"fmt"
	"math"

	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/pkg/numeric"
	"github.com/horizonhq/horizon-api/pkg/utils"
)

const (
	// defaultProjectionHorizon limita quantos períodos são projetados além
	// do histórico quando não configurado
	defaultProjectionHorizon = 24
	// defaultPaybackWarningMonths é o limiar de payback longo quando não
	// configurado
	defaultPaybackWarningMonths = 12
	// arpuSmoothingAlpha é o fator de suavização da série de receita por
	// usuário ativo
	arpuSmoothingAlpha = 0.3
	// powerLawMinPeriods é o histórico mínimo para ajustar lei de potência
	powerLawMinPeriods = 6
	// exponentialMinPeriods é o histórico mínimo para o ajuste exponencial
	exponentialMinPeriods = 3
	// lowRetentionThreshold dispara o insight crítico de retenção
	lowRetentionThreshold = 0.2
	// ltvCacCriticalThreshold marca coortes que não recuperam a aquisição
	ltvCacCriticalThreshold = 1.0
	// ltvCacExcellentThreshold marca coortes com retorno excepcional
	ltvCacExcellentThreshold = 3.0
)

// AnalysisParams são os parâmetros configuráveis da análise de coorte
type AnalysisParams struct {
	AnnualDiscountRate   float64
	ProjectionHorizon    int
	PaybackWarningMonths int
}

// AnalysisOutcome é o resultado calculado da análise de coorte
type AnalysisOutcome struct {
	RetentionModel      domain.RetentionModelKind
	ProjectedMetrics    []domain.CohortMetric
	LTVPerUser          float64
	ProjectedLTV        float64
	LtvCacRatio         float64
	PaybackPeriodMonths *int
	Insights            []domain.CohortInsight
}

// retentionCurve avalia a retenção projetada para um período absoluto
type retentionCurve func(period int) float64

// AnalyzeCohort ajusta um modelo de retenção ao histórico, projeta os
// períodos futuros e deriva LTV, razão LTV:CAC, payback e insights. As
// métricas da coorte chegam ordenadas por período, como o serviço persiste.
func AnalyzeCohort(cohort *domain.RevenueCohort, params AnalysisParams) (*AnalysisOutcome, error) {
	horizon := params.ProjectionHorizon
	if horizon <= 0 {
		horizon = defaultProjectionHorizon
	}
	paybackWarningMonths := params.PaybackWarningMonths
	if paybackWarningMonths <= 0 {
		paybackWarningMonths = defaultPaybackWarningMonths
	}

	hist := cohort.HistoricalMetrics()
	model, curve := selectRetentionModel(hist)
	projected := projectMetrics(hist, cohort.InitialUsers, curve, horizon)

	ltvPerUser := lifetimeValuePerUser(hist, projected, params.AnnualDiscountRate)
	averageCAC := cohort.AverageCAC()

	ratio := 0.0
	if numeric.IsFinite(ltvPerUser) && numeric.IsFinite(averageCAC) && averageCAC > 0 {
		ratio = ltvPerUser / averageCAC
	}

	payback := paybackPeriod(hist, cohort.InitialUsers, averageCAC)

	insights, err := buildInsights(cohort, ratio, payback, paybackWarningMonths)
	if err != nil {
		return nil, err
	}

	return &AnalysisOutcome{
		RetentionModel:      model,
		ProjectedMetrics:    projected,
		LTVPerUser:          ltvPerUser,
		ProjectedLTV:        ltvPerUser * float64(cohort.InitialUsers),
		LtvCacRatio:         ratio,
		PaybackPeriodMonths: payback,
		Insights:            insights,
	}, nil
}

// selectRetentionModel escolhe o modelo pela extensão do histórico: lei de
// potência com seis ou mais períodos, decaimento exponencial com três ou
// mais. Quando o ajuste log-linear não tem pontos positivos suficientes, o
// decaimento geométrico simples assume.
func selectRetentionModel(hist []domain.CohortMetric) (domain.RetentionModelKind, retentionCurve) {
	if len(hist) >= powerLawMinPeriods {
		if curve, ok := fitPowerLaw(hist); ok {
			return domain.RetentionModelPowerLaw, curve
		}
	}
	if len(hist) >= exponentialMinPeriods {
		if curve, ok := fitExponential(hist); ok {
			return domain.RetentionModelExponential, curve
		}
	}
	return domain.RetentionModelSimpleDecay, fitSimpleDecay(hist)
}

// fitPowerLaw ajusta retention = a·t^b por regressão em log–log
func fitPowerLaw(hist []domain.CohortMetric) (retentionCurve, bool) {
	xs := make([]float64, 0, len(hist))
	ys := make([]float64, 0, len(hist))
	for _, metric := range hist {
		if metric.PeriodNumber > 0 && metric.RetentionRate > 0 {
			xs = append(xs, math.Log(float64(metric.PeriodNumber)))
			ys = append(ys, math.Log(metric.RetentionRate))
		}
	}
	if len(xs) < 2 {
		return nil, false
	}

	slope, intercept := numeric.LinearRegression(xs, ys)
	return func(period int) float64 {
		return math.Exp(intercept) * math.Pow(float64(period), slope)
	}, true
}

// fitExponential ajusta log(retention) contra o período
func fitExponential(hist []domain.CohortMetric) (retentionCurve, bool) {
	xs := make([]float64, 0, len(hist))
	ys := make([]float64, 0, len(hist))
	for _, metric := range hist {
		if metric.RetentionRate > 0 {
			xs = append(xs, float64(metric.PeriodNumber))
			ys = append(ys, math.Log(metric.RetentionRate))
		}
	}
	if len(xs) < 2 {
		return nil, false
	}

	slope, intercept := numeric.LinearRegression(xs, ys)
	return func(period int) float64 {
		return math.Exp(intercept + slope*float64(period))
	}, true
}

// fitSimpleDecay decai a última retenção observada pela média geométrica
// das retenções do histórico
func fitSimpleDecay(hist []domain.CohortMetric) retentionCurve {
	rates := make([]float64, 0, len(hist))
	for _, metric := range hist {
		if metric.RetentionRate > 0 {
			rates = append(rates, metric.RetentionRate)
		}
	}
	ratio := numeric.GeometricMean(rates)

	base := 1.0
	lastPeriod := 0
	if len(hist) > 0 {
		last := hist[len(hist)-1]
		base = last.RetentionRate
		lastPeriod = last.PeriodNumber
	}

	return func(period int) float64 {
		return base * math.Pow(ratio, float64(period-lastPeriod))
	}
}

// projectMetrics avalia a curva de retenção e o ARPU suavizado período a
// período além do histórico, mantendo a receita acumulada contínua
func projectMetrics(hist []domain.CohortMetric, initialUsers int, curve retentionCurve, horizon int) []domain.CohortMetric {
	lastPeriod := 0
	prevActive := initialUsers
	cumulative := 0.0
	if len(hist) > 0 {
		last := hist[len(hist)-1]
		lastPeriod = last.PeriodNumber
		prevActive = last.ActiveUsers
		cumulative = last.CumulativeRevenue
	}

	arpuSeries := make([]float64, 0, len(hist))
	for _, metric := range hist {
		arpuSeries = append(arpuSeries, observedArpu(metric))
	}
	projectedArpu := numeric.ExponentialSmoothing(arpuSeries, arpuSmoothingAlpha, horizon)

	projected := make([]domain.CohortMetric, 0, horizon)
	for step := 1; step <= horizon; step++ {
		period := lastPeriod + step
		retention := numeric.Clamp(numeric.Sanitize(curve(period), 0), 0, 1)
		active := int(math.Round(float64(initialUsers) * retention))
		churned := prevActive - active
		if churned < 0 {
			churned = 0
		}
		arpu := projectedArpu[step-1]
		revenue := arpu * float64(active)
		cumulative += revenue

		projected = append(projected, domain.CohortMetric{
			PeriodNumber:          period,
			ActiveUsers:           active,
			ChurnedUsers:          churned,
			RetentionRate:         retention,
			Revenue:               revenue,
			AverageRevenuePerUser: arpu,
			CumulativeRevenue:     cumulative,
			IsProjected:           true,
		})
		prevActive = active
	}

	return projected
}

// observedArpu extrai a receita por usuário ativo de um período observado,
// recalculando quando o campo não veio preenchido
func observedArpu(metric domain.CohortMetric) float64 {
	if metric.AverageRevenuePerUser > 0 {
		return metric.AverageRevenuePerUser
	}
	if metric.ActiveUsers > 0 {
		return metric.Revenue / float64(metric.ActiveUsers)
	}
	return 0
}

// lifetimeValuePerUser soma a contribuição de cada período, observado e
// projetado, descontada a valor presente pela taxa mensal
func lifetimeValuePerUser(hist, projected []domain.CohortMetric, annualRate float64) float64 {
	monthlyRate := annualRate / 12

	total := 0.0
	for _, metric := range hist {
		total += discountedContribution(metric, observedArpu(metric), monthlyRate)
	}
	for _, metric := range projected {
		total += discountedContribution(metric, metric.AverageRevenuePerUser, monthlyRate)
	}

	return numeric.Sanitize(total, 0)
}

func discountedContribution(metric domain.CohortMetric, arpu, monthlyRate float64) float64 {
	discount := math.Pow(1+monthlyRate, -float64(metric.PeriodNumber))
	return numeric.Sanitize(arpu*metric.RetentionRate*discount, 0)
}

// paybackPeriod encontra o mês em que a receita acumulada por usuário
// recupera o CAC: primeiro varrendo o histórico, depois extrapolando com a
// receita média por usuário. Sem trajetória finita de recuperação, nil.
func paybackPeriod(hist []domain.CohortMetric, initialUsers int, averageCAC float64) *int {
	if initialUsers <= 0 {
		return nil
	}

	users := float64(initialUsers)
	perUser := make([]float64, 0, len(hist))
	accumulated := 0.0
	for _, metric := range hist {
		revenue := metric.Revenue / users
		perUser = append(perUser, revenue)
		accumulated += revenue
		if accumulated >= averageCAC {
			period := metric.PeriodNumber
			return &period
		}
	}

	meanRevenuePerUser := numeric.Mean(perUser)
	if meanRevenuePerUser <= 0 {
		return nil
	}

	lastPeriod := 0
	if len(hist) > 0 {
		lastPeriod = hist[len(hist)-1].PeriodNumber
	}

	remaining := math.Ceil((averageCAC - accumulated) / meanRevenuePerUser)
	if !numeric.IsFinite(remaining) {
		return nil
	}

	period := lastPeriod + int(remaining)
	return &period
}

// buildInsights emite observações determinísticas sobre retenção, razão
// LTV:CAC e payback. A razão zero indica coorte sem custo de aquisição e
// não gera insight.
func buildInsights(cohort *domain.RevenueCohort, ratio float64, payback *int, paybackWarningMonths int) ([]domain.CohortInsight, error) {
	insights := make([]domain.CohortInsight, 0)

	if retention, ok := cohort.LatestHistoricalRetention(); ok && retention < lowRetentionThreshold {
		insight, err := newInsight(domain.InsightSeverityCritical, "retentionRate",
			"Retenção criticamente baixa no último período observado")
		if err != nil {
			return nil, err
		}
		insights = append(insights, insight)
	}

	if ratio > 0 && ratio < ltvCacCriticalThreshold {
		insight, err := newInsight(domain.InsightSeverityCritical, "ltvCacRatio",
			"LTV:CAC abaixo de 1: a coorte não recupera o custo de aquisição")
		if err != nil {
			return nil, err
		}
		insights = append(insights, insight)
	}
	if ratio > ltvCacExcellentThreshold {
		insight, err := newInsight(domain.InsightSeverityPositive, "ltvCacRatio",
			"LTV:CAC acima de 3: excelente retorno sobre o custo de aquisição")
		if err != nil {
			return nil, err
		}
		insights = append(insights, insight)
	}

	if payback != nil && *payback > paybackWarningMonths {
		insight, err := newInsight(domain.InsightSeverityWarning, "paybackPeriodMonths",
			fmt.Sprintf("Payback longo: %d meses para recuperar o custo de aquisição", *payback))
		if err != nil {
			return nil, err
		}
		insights = append(insights, insight)
	}

	return insights, nil
}

func newInsight(severity domain.InsightSeverity, metric, message string) (domain.CohortInsight, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return domain.CohortInsight{}, err
	}

	return domain.CohortInsight{
		ID:       id,
		Severity: severity,
		Metric:   metric,
		Message:  message,
	}, nil
}
