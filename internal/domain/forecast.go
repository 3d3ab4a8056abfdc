package domain

import (
	"fmt"
	"time"
)

// ForecastGranularity é a resolução temporal registrada no artefato de
// previsão. A projeção calculada é sempre semanal; os demais valores existem
// para interoperabilidade com o dashboard.
type ForecastGranularity string

const (
	GranularityDaily   ForecastGranularity = "daily"
	GranularityWeekly  ForecastGranularity = "weekly"
	GranularityMonthly ForecastGranularity = "monthly"
)

// IsValid verifica se a granularidade é conhecida
func (g ForecastGranularity) IsValid() bool {
	switch g {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return true
	}
	return false
}

// ParseForecastGranularity converte a forma canônica em ForecastGranularity
func ParseForecastGranularity(s string) (ForecastGranularity, error) {
	g := ForecastGranularity(s)
	if !g.IsValid() {
		return "", fmt.Errorf("granularidade desconhecida: %q", s)
	}
	return g, nil
}

// CategoryKind classifica para onde o fluxo de uma categoria é despachado
type CategoryKind string

const (
	CategoryKindInflow    CategoryKind = "inflow"
	CategoryKindPayroll   CategoryKind = "payroll"
	CategoryKindOperating CategoryKind = "operating"
)

// CashPosition é a posição de caixa corrente usada como semente da projeção
type CashPosition struct {
	Cash        float64 `json:"cash"`
	Receivables float64 `json:"receivables"`
	Payables    float64 `json:"payables"`
}

// CategoryForecast é a decomposição de uma categoria do histórico: valor base
// semanalizável, taxa de crescimento e confiança derivada da volatilidade
type CategoryForecast struct {
	Category   string       `json:"category"`
	Kind       CategoryKind `json:"kind"`
	BaseAmount float64      `json:"base_amount"`
	GrowthRate float64      `json:"growth_rate"`
	Confidence float64      `json:"confidence"`
	DataPoints int          `json:"data_points"`
}

// WeeklyCashFlow é uma linha da projeção semanal. Week é base 1.
type WeeklyCashFlow struct {
	Week               int       `json:"week"`
	WeekStartDate      time.Time `json:"week_start_date"`
	Inflows            float64   `json:"inflows"`
	PayrollExpenses    float64   `json:"payroll_expenses"`
	OperatingExpenses  float64   `json:"operating_expenses"`
	TotalOutflows      float64   `json:"total_outflows"`
	NetCashFlow        float64   `json:"net_cash_flow"`
	CumulativeCashFlow float64   `json:"cumulative_cash_flow"`
	CashBalance        float64   `json:"cash_balance"`
	ConfidenceLevel    float64   `json:"confidence_level"`
	Variance           float64   `json:"variance"`
}

// EnvelopeCase é um dos ramos do envelope de cenários da previsão
type EnvelopeCase struct {
	EndingBalance  float64 `json:"ending_balance"`
	MinimumBalance float64 `json:"minimum_balance"`
	Probability    float64 `json:"probability"`
}

// ScenarioEnvelope agrega os ramos melhor/pior/mais provável
type ScenarioEnvelope struct {
	BestCase   EnvelopeCase `json:"best_case"`
	WorstCase  EnvelopeCase `json:"worst_case"`
	MostLikely EnvelopeCase `json:"most_likely"`
}

// AlertSeverity gradua a severidade de um alerta de caixa
type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityWarning  AlertSeverity = "warning"
)

// CashflowAlert sinaliza uma condição de caixa digna de atenção
type CashflowAlert struct {
	ID        string        `json:"id"`
	Severity  AlertSeverity `json:"severity"`
	Metric    string        `json:"metric"`
	Week      int           `json:"week"`
	Message   string        `json:"message"`
	Threshold float64       `json:"threshold"`
	Value     float64       `json:"value"`
}

// CreateForecastRequest é o corpo da requisição de criação de previsão de
// fluxo de caixa. A posição de caixa é opcional: quando ausente, é derivada
// das contas bancárias e dos recebimentos pendentes do tenant.
type CreateForecastRequest struct {
	Name          string        `json:"name" validate:"required,max=120"`
	Granularity   string        `json:"granularity,omitempty"`
	HorizonMonths int           `json:"horizon_months" validate:"gte=0,lte=12"`
	Position      *CashPosition `json:"position,omitempty"`
}

// CashflowForecast é o artefato de previsão de fluxo de caixa
type CashflowForecast struct {
	ID                        string              `json:"id"`
	TenantID                  string              `json:"tenant_id"`
	Name                      string              `json:"name"`
	Granularity               ForecastGranularity `json:"granularity"`
	Currency                  Currency            `json:"currency"`
	StartDate                 time.Time           `json:"start_date"`
	EndDate                   time.Time           `json:"end_date"`
	HorizonMonths             int                 `json:"horizon_months"`
	InitialCashPosition       CashPosition        `json:"initial_cash_position"`
	CategoryForecasts         []CategoryForecast  `json:"category_forecasts"`
	WeeklyForecasts           []WeeklyCashFlow    `json:"weekly_forecasts"`
	ScenarioAnalysis          ScenarioEnvelope    `json:"scenario_analysis"`
	Alerts                    []CashflowAlert     `json:"alerts,omitempty"`
	RequiresAdditionalFunding bool                `json:"requires_additional_funding"`
	AdditionalFundingNeeded   float64             `json:"additional_funding_needed"`
	IsActive                  bool                `json:"is_active"`
	CreatedAt                 time.Time           `json:"created_at"`
	UpdatedAt                 time.Time           `json:"updated_at"`
}
