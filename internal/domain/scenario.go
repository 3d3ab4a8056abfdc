package domain

import (
	"fmt"
	"time"
)

// ScenarioType classifica a postura das premissas de um cenário de runway
type ScenarioType string

const (
	ScenarioTypeConservative ScenarioType = "conservative"
	ScenarioTypeBase         ScenarioType = "base"
	ScenarioTypeOptimistic   ScenarioType = "optimistic"
	ScenarioTypeCustom       ScenarioType = "custom"
)

// IsValid verifica se o tipo de cenário é conhecido
func (t ScenarioType) IsValid() bool {
	switch t {
	case ScenarioTypeConservative, ScenarioTypeBase, ScenarioTypeOptimistic, ScenarioTypeCustom:
		return true
	}
	return false
}

// ParseScenarioType converte a forma canônica em ScenarioType
func ParseScenarioType(s string) (ScenarioType, error) {
	t := ScenarioType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("tipo de cenário desconhecido: %q", s)
	}
	return t, nil
}

// AssumptionMetric identifica a grandeza sobre a qual uma premissa atua
type AssumptionMetric string

const (
	AssumptionMetricBurn    AssumptionMetric = "burn"
	AssumptionMetricRevenue AssumptionMetric = "revenue"
)

// IsValid verifica se a métrica da premissa é conhecida
func (m AssumptionMetric) IsValid() bool {
	return m == AssumptionMetricBurn || m == AssumptionMetricRevenue
}

// ScenarioAssumption define o valor base e a taxa de crescimento mensal de
// uma grandeza do cenário
type ScenarioAssumption struct {
	Metric            AssumptionMetric `json:"metric"`
	BaseValue         float64          `json:"base_value"`
	MonthlyGrowthRate float64          `json:"monthly_growth_rate"`
}

// FundraisingEvent é uma captação planejada dentro do horizonte do cenário.
// O aporte entra ponderado pela probabilidade no mês indicado (base 1).
type FundraisingEvent struct {
	Name        string  `json:"name,omitempty"`
	Month       int     `json:"month" validate:"gte=1,lte=60"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Probability float64 `json:"probability" validate:"gte=0,lte=1"`
}

// MonthlyProjection é uma linha da projeção determinística de caixa.
// O índice de mês é base 1: o primeiro mês projetado é o mês 1.
type MonthlyProjection struct {
	Month             int       `json:"month"`
	Date              time.Time `json:"date"`
	StartingCash      float64   `json:"starting_cash"`
	Revenue           float64   `json:"revenue"`
	Expenses          float64   `json:"expenses"`
	FundraisingInflow float64   `json:"fundraising_inflow"`
	NetCashFlow       float64   `json:"net_cash_flow"`
	EndingCash        float64   `json:"ending_cash"`
	RunwayRemaining   int       `json:"runway_remaining"`
	IsOutOfCash       bool      `json:"is_out_of_cash"`
}

// SimulationResult é o resumo estatístico da simulação Monte Carlo sobre o
// runway em meses
type SimulationResult struct {
	Iterations   int       `json:"iterations"`
	Variance     float64   `json:"variance"`
	Seed         *int64    `json:"seed,omitempty"`
	P10          float64   `json:"p10"`
	P50          float64   `json:"p50"`
	P90          float64   `json:"p90"`
	Mean         float64   `json:"mean"`
	StdDev       float64   `json:"std_dev"`
	RawRunways   []float64 `json:"raw_runways,omitempty"`
	AbortedEarly int       `json:"aborted_early"`
	CompletedAt  time.Time `json:"completed_at"`
}

// RunwayScenario é o artefato de projeção de runway. Os valores iniciais são
// congelados na criação para que reexecuções sejam reprodutíveis.
type RunwayScenario struct {
	ID                       string               `json:"id"`
	TenantID                 string               `json:"tenant_id"`
	Name                     string               `json:"name"`
	Type                     ScenarioType         `json:"type"`
	Currency                 Currency             `json:"currency"`
	StartDate                time.Time            `json:"start_date"`
	InitialCashBalance       float64              `json:"initial_cash_balance"`
	InitialMonthlyBurn       float64              `json:"initial_monthly_burn"`
	InitialMonthlyRevenue    float64              `json:"initial_monthly_revenue"`
	Assumptions              []ScenarioAssumption `json:"assumptions"`
	PlannedFundraisingEvents []FundraisingEvent   `json:"planned_fundraising_events,omitempty"`
	ProjectionMonths         int                  `json:"projection_months"`
	MonthlyProjections       []MonthlyProjection  `json:"monthly_projections"`
	TotalRunwayMonths        int                  `json:"total_runway_months"`
	RunwayIsFloor            bool                 `json:"runway_is_floor"`
	BreakEvenMonth           *int                 `json:"break_even_month,omitempty"`
	DateOfCashOut            *time.Time           `json:"date_of_cash_out,omitempty"`
	Simulation               *SimulationResult    `json:"simulation,omitempty"`
	IsActive                 bool                 `json:"is_active"`
	CreatedAt                time.Time            `json:"created_at"`
	UpdatedAt                time.Time            `json:"updated_at"`
}

// AssumptionFor retorna a premissa da métrica, se declarada no cenário
func (s *RunwayScenario) AssumptionFor(metric AssumptionMetric) *ScenarioAssumption {
	for i := range s.Assumptions {
		if s.Assumptions[i].Metric == metric {
			return &s.Assumptions[i]
		}
	}
	return nil
}

// CreateScenarioRequest é o corpo da requisição de criação de cenário de
// runway. Os valores iniciais são opcionais: quando ausentes, a posição
// financeira corrente do tenant é derivada do histórico e congelada no
// artefato.
type CreateScenarioRequest struct {
	Name              string             `json:"name" validate:"required,max=120"`
	Type              string             `json:"type" validate:"required"`
	InitialCash       *float64           `json:"initial_cash,omitempty" validate:"omitempty,gte=0"`
	MonthlyBurn       *float64           `json:"monthly_burn,omitempty" validate:"omitempty,gte=0"`
	MonthlyRevenue    *float64           `json:"monthly_revenue,omitempty" validate:"omitempty,gte=0"`
	BurnGrowthRate    float64            `json:"burn_growth_rate" validate:"gte=-1,lte=1"`
	RevenueGrowthRate float64            `json:"revenue_growth_rate" validate:"gte=-1,lte=1"`
	ProjectionMonths  int                `json:"projection_months" validate:"gte=0,lte=60"`
	FundraisingEvents []FundraisingEvent `json:"fundraising_events,omitempty" validate:"omitempty,dive"`
	Variance          float64            `json:"variance" validate:"gte=0"`
	Iterations        int                `json:"iterations" validate:"gte=0,lte=10000"`
	Seed              *int64             `json:"seed,omitempty"`
}

// ScenarioComparisonInsights resume o conjunto de cenários comparados
type ScenarioComparisonInsights struct {
	BestScenarioID     string  `json:"best_scenario_id"`
	BestScenarioName   string  `json:"best_scenario_name"`
	BestRunwayMonths   int     `json:"best_runway_months"`
	WorstScenarioID    string  `json:"worst_scenario_id"`
	WorstScenarioName  string  `json:"worst_scenario_name"`
	WorstRunwayMonths  int     `json:"worst_runway_months"`
	MeanRunwayMonths   float64 `json:"mean_runway_months"`
	ScenariosCompared  int     `json:"scenarios_compared"`
	RunwaySpreadMonths int     `json:"runway_spread_months"`
}

// ScenarioComparison é o resultado da comparação de cenários ativos
type ScenarioComparison struct {
	Scenarios []*RunwayScenario           `json:"scenarios"`
	Insights  *ScenarioComparisonInsights `json:"insights,omitempty"`
}
