package domain

import (
	"fmt"
	"time"
)

// RoundType identifica o estágio da rodada de captação
type RoundType string

const (
	RoundTypePreSeed RoundType = "pre_seed"
	RoundTypeSeed    RoundType = "seed"
	RoundTypeSeriesA RoundType = "series_a"
	RoundTypeSeriesB RoundType = "series_b"
	RoundTypeBridge  RoundType = "bridge"
)

// IsValid verifica se o tipo de rodada é conhecido
func (r RoundType) IsValid() bool {
	switch r {
	case RoundTypePreSeed, RoundTypeSeed, RoundTypeSeriesA, RoundTypeSeriesB, RoundTypeBridge:
		return true
	}
	return false
}

// ParseRoundType converte a forma canônica em RoundType
func ParseRoundType(s string) (RoundType, error) {
	r := RoundType(s)
	if !r.IsValid() {
		return "", fmt.Errorf("tipo de rodada desconhecido: %q", s)
	}
	return r, nil
}

// FactorKind identifica um fator do score de prontidão para captação
type FactorKind string

const (
	FactorBurnRate         FactorKind = "burnRate"
	FactorGrowth           FactorKind = "growth"
	FactorMarketConditions FactorKind = "marketConditions"
	FactorTeamStrength     FactorKind = "teamStrength"
	FactorProductMarketFit FactorKind = "productMarketFit"
	FactorRevenue          FactorKind = "revenue"
)

// ProbabilityFactor é a contribuição de um fator para o score agregado
type ProbabilityFactor struct {
	Factor FactorKind `json:"factor"`
	Score  float64    `json:"score"`
	Weight float64    `json:"weight"`
	Detail string     `json:"detail,omitempty"`
}

// RecommendationPriority gradua a urgência de uma recomendação
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

// Recommendation é uma ação sugerida pela análise de prontidão
type Recommendation struct {
	ID       string                 `json:"id"`
	Priority RecommendationPriority `json:"priority"`
	Action   string                 `json:"action"`
	Reason   string                 `json:"reason"`
	Deadline *time.Time             `json:"deadline,omitempty"`
}

// Milestone é um marco de produto informado na requisição de previsão.
// Completion é a fração concluída em [0,1].
type Milestone struct {
	Name       string  `json:"name" validate:"required,max=120"`
	Completion float64 `json:"completion" validate:"gte=0,lte=1"`
}

// TimelinePrediction é a janela prevista para a rodada
type TimelinePrediction struct {
	PredictedStartDate     time.Time `json:"predicted_start_date"`
	PredictedCloseDate     time.Time `json:"predicted_close_date"`
	BaseDays               int       `json:"base_days"`
	AdjustedDays           int       `json:"adjusted_days"`
	ConfidenceIntervalDays int       `json:"confidence_interval_days"`
}

// CreatePredictionRequest é o corpo da requisição de predição de captação.
// Os scores externos são opcionais: quando ausentes, valem o sinal do
// provider de comparáveis e os padrões configurados. Um tamanho de rodada
// zerado é substituído pela mediana de mercado do estágio.
type CreatePredictionRequest struct {
	RoundType        string      `json:"round_type" validate:"required"`
	TargetRoundSize  float64     `json:"target_round_size" validate:"gte=0"`
	TargetValuation  *float64    `json:"target_valuation,omitempty" validate:"omitempty,gte=0"`
	Milestones       []Milestone `json:"milestones,omitempty" validate:"omitempty,dive"`
	MarketConditions *float64    `json:"market_conditions,omitempty" validate:"omitempty,gte=0,lte=1"`
	TeamStrength     *float64    `json:"team_strength,omitempty" validate:"omitempty,gte=0,lte=1"`
	ProductMarketFit *float64    `json:"product_market_fit,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// FundraisingInputs são os insumos derivados do histórico no momento do
// cálculo, congelados no artefato
type FundraisingInputs struct {
	MonthlyBurn    float64   `json:"monthly_burn"`
	MonthlyRevenue float64   `json:"monthly_revenue"`
	TotalCash      float64   `json:"total_cash"`
	RunwayMonths   float64   `json:"runway_months"`
	DauGrowth      float64   `json:"dau_growth"`
	TeamSize       int       `json:"team_size"`
	DerivedAt      time.Time `json:"derived_at"`
}

// FundraisingPrediction é o artefato de prontidão para captação
type FundraisingPrediction struct {
	ID                  string              `json:"id"`
	TenantID            string              `json:"tenant_id"`
	RoundType           RoundType           `json:"round_type"`
	TargetRoundSize     float64             `json:"target_round_size"`
	TargetValuation     *float64            `json:"target_valuation,omitempty"`
	Currency            Currency            `json:"currency"`
	OverallProbability  float64             `json:"overall_probability"`
	TimelineProbability float64             `json:"timeline_probability"`
	AmountProbability   float64             `json:"amount_probability"`
	ProbabilityFactors  []ProbabilityFactor `json:"probability_factors"`
	Timeline            TimelinePrediction  `json:"timeline"`
	Recommendations     []Recommendation    `json:"recommendations"`
	Milestones          []Milestone         `json:"milestones,omitempty"`
	Inputs              FundraisingInputs   `json:"inputs"`
	CreatedAt           time.Time           `json:"created_at"`
}
