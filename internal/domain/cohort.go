package domain

import "time"

// RetentionModelKind identifica o modelo ajustado à curva de retenção
type RetentionModelKind string

const (
	RetentionModelPowerLaw    RetentionModelKind = "power_law"
	RetentionModelExponential RetentionModelKind = "exponential"
	RetentionModelSimpleDecay RetentionModelKind = "simple_decay"
)

// IsValid verifica se o modelo de retenção é conhecido
func (m RetentionModelKind) IsValid() bool {
	switch m {
	case RetentionModelPowerLaw, RetentionModelExponential, RetentionModelSimpleDecay:
		return true
	}
	return false
}

// InsightSeverity gradua um insight de coorte
type InsightSeverity string

const (
	InsightSeverityCritical InsightSeverity = "critical"
	InsightSeverityWarning  InsightSeverity = "warning"
	InsightSeverityPositive InsightSeverity = "positive"
)

// CohortInsight é uma observação determinística sobre a saúde da coorte
type CohortInsight struct {
	ID       string          `json:"id"`
	Severity InsightSeverity `json:"severity"`
	Metric   string          `json:"metric"`
	Message  string          `json:"message"`
}

// CohortMetric é a observação de um período da coorte. Períodos projetados
// carregam IsProjected = true e sempre sucedem os históricos.
type CohortMetric struct {
	PeriodNumber          int     `json:"period_number" validate:"gte=1"`
	ActiveUsers           int     `json:"active_users" validate:"gte=0"`
	ChurnedUsers          int     `json:"churned_users" validate:"gte=0"`
	RetentionRate         float64 `json:"retention_rate" validate:"gte=0,lte=1"`
	Revenue               float64 `json:"revenue" validate:"gte=0"`
	AverageRevenuePerUser float64 `json:"average_revenue_per_user" validate:"gte=0"`
	CumulativeRevenue     float64 `json:"cumulative_revenue" validate:"gte=0"`
	IsProjected           bool    `json:"is_projected"`
}

// CreateCohortRequest é o corpo da requisição de criação de coorte de
// receita. Métricas enviadas na criação entram como períodos históricos.
type CreateCohortRequest struct {
	Name            string         `json:"name" validate:"required,max=120"`
	CohortStartDate time.Time      `json:"cohort_start_date" validate:"required"`
	InitialUsers    int            `json:"initial_users" validate:"gte=1"`
	AcquisitionCost float64        `json:"acquisition_cost" validate:"gte=0"`
	Metrics         []CohortMetric `json:"metrics,omitempty" validate:"omitempty,dive"`
}

// UpdateCohortMetricsRequest substitui o vetor de métricas históricas da
// coorte
type UpdateCohortMetricsRequest struct {
	Metrics []CohortMetric `json:"metrics" validate:"required,dive"`
}

// RevenueCohort é o artefato de análise de coorte de receita
type RevenueCohort struct {
	ID                  string             `json:"id"`
	TenantID            string             `json:"tenant_id"`
	Name                string             `json:"name"`
	CohortStartDate     time.Time          `json:"cohort_start_date"`
	InitialUsers        int                `json:"initial_users"`
	AcquisitionCost     float64            `json:"acquisition_cost"`
	Currency            Currency           `json:"currency"`
	Metrics             []CohortMetric     `json:"metrics"`
	RetentionModel      RetentionModelKind `json:"retention_model,omitempty"`
	ProjectedLTV        float64            `json:"projected_ltv"`
	LTVPerUser          float64            `json:"ltv_per_user"`
	LtvCacRatio         float64            `json:"ltv_cac_ratio"`
	PaybackPeriodMonths *int               `json:"payback_period_months,omitempty"`
	Insights            []CohortInsight    `json:"insights,omitempty"`
	Version             int                `json:"version"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// HistoricalMetrics retorna apenas os períodos observados, na ordem original
func (c *RevenueCohort) HistoricalMetrics() []CohortMetric {
	out := make([]CohortMetric, 0, len(c.Metrics))
	for _, m := range c.Metrics {
		if !m.IsProjected {
			out = append(out, m)
		}
	}
	return out
}

// AverageCAC retorna o custo de aquisição por usuário da coorte
func (c *RevenueCohort) AverageCAC() float64 {
	if c.InitialUsers <= 0 {
		return 0
	}
	return c.AcquisitionCost / float64(c.InitialUsers)
}

// ReplaceProjections remove períodos projetados anteriores e anexa os novos,
// mantendo os históricos intactos
func (c *RevenueCohort) ReplaceProjections(projected []CohortMetric) {
	kept := c.HistoricalMetrics()
	c.Metrics = append(kept, projected...)
}

// LatestHistoricalRetention retorna a retenção do último período observado
func (c *RevenueCohort) LatestHistoricalRetention() (float64, bool) {
	hist := c.HistoricalMetrics()
	if len(hist) == 0 {
		return 0, false
	}
	return hist[len(hist)-1].RetentionRate, true
}
