package fundraising

import (
	"fmt"
	"math"
	"time"

	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/pkg/utils"
)

const (
	// leadTimeDays separa a data da predição do início previsto da rodada
	leadTimeDays = 30
	// fundraisingDeadlineDays é o prazo sugerido para começar a captar
	// quando o runway está curto
	fundraisingDeadlineDays = 14
	// confidenceIntervalRatio é a fração do prazo ajustado usada como
	// intervalo de confiança
	confidenceIntervalRatio = 0.2
	// timelineProbabilityRatio desconta o score agregado para a chance de
	// cumprir a janela prevista
	timelineProbabilityRatio = 0.9
	// amountProbabilityRatio desconta o score agregado para a chance de
	// levantar o valor alvo
	amountProbabilityRatio = 0.85
)

// factorWeights são os pesos de agregação do score de prontidão
var factorWeights = map[domain.FactorKind]float64{
	domain.FactorBurnRate:         0.25,
	domain.FactorGrowth:           0.20,
	domain.FactorMarketConditions: 0.15,
	domain.FactorTeamStrength:     0.15,
	domain.FactorProductMarketFit: 0.15,
	domain.FactorRevenue:          0.10,
}

// baseDaysByRound é o prazo típico de fechamento por estágio de rodada
var baseDaysByRound = map[domain.RoundType]int{
	domain.RoundTypePreSeed: 90,
	domain.RoundTypeSeed:    120,
	domain.RoundTypeSeriesA: 150,
	domain.RoundTypeSeriesB: 180,
	domain.RoundTypeBridge:  60,
}

// ScoreInput reúne os insumos do score: métricas derivadas do histórico do
// tenant e sinais externos já resolvidos
type ScoreInput struct {
	RunwayMonths     float64
	MonthlyRevenue   float64
	DauGrowth        float64
	MarketConditions float64
	TeamStrength     float64
	ProductMarketFit float64
}

// ReadinessScore é o resultado agregado do score de prontidão
type ReadinessScore struct {
	Overall  float64
	Timeline float64
	Amount   float64
	Factors  []domain.ProbabilityFactor
}

// ScoreReadiness pontua cada fator, agrega pela média ponderada e deriva as
// probabilidades de janela e de valor a partir do score geral
func ScoreReadiness(input ScoreInput) ReadinessScore {
	factors := []domain.ProbabilityFactor{
		{
			Factor: domain.FactorBurnRate,
			Score:  burnScore(input.RunwayMonths),
			Detail: fmt.Sprintf("Runway de %.1f meses na trajetória atual", input.RunwayMonths),
		},
		{
			Factor: domain.FactorGrowth,
			Score:  growthScore(input.DauGrowth),
			Detail: fmt.Sprintf("Crescimento de DAU de %.1f%% na janela", input.DauGrowth*100),
		},
		{
			Factor: domain.FactorMarketConditions,
			Score:  input.MarketConditions,
		},
		{
			Factor: domain.FactorTeamStrength,
			Score:  input.TeamStrength,
		},
		{
			Factor: domain.FactorProductMarketFit,
			Score:  input.ProductMarketFit,
		},
		{
			Factor: domain.FactorRevenue,
			Score:  revenueScore(input.MonthlyRevenue),
			Detail: revenueDetail(input.MonthlyRevenue),
		},
	}

	weighted := 0.0
	totalWeight := 0.0
	for i := range factors {
		weight := factorWeights[factors[i].Factor]
		factors[i].Weight = weight
		weighted += weight * factors[i].Score
		totalWeight += weight
	}

	overall := 0.0
	if totalWeight > 0 {
		overall = weighted / totalWeight
	}

	return ReadinessScore{
		Overall:  overall,
		Timeline: overall * timelineProbabilityRatio,
		Amount:   overall * amountProbabilityRatio,
		Factors:  factors,
	}
}

// burnScore pontua o fôlego de caixa; acima de doze meses a rodada pode ser
// negociada sem pressão
func burnScore(runwayMonths float64) float64 {
	switch {
	case runwayMonths > 12:
		return 0.8
	case runwayMonths > 6:
		return 0.6
	default:
		return 0.3
	}
}

func growthScore(dauGrowth float64) float64 {
	switch {
	case dauGrowth > 0.2:
		return 0.9
	case dauGrowth > 0.1:
		return 0.7
	default:
		return 0.4
	}
}

func revenueScore(monthlyRevenue float64) float64 {
	if monthlyRevenue > 0 {
		return 0.8
	}
	return 0.3
}

func revenueDetail(monthlyRevenue float64) string {
	if monthlyRevenue > 0 {
		return "Receita mensal recorrente presente"
	}
	return "Sem receita mensal registrada"
}

// PredictTimeline estima a janela da rodada: o prazo base do estágio é
// encurtado quando o caixa aperta, quando o crescimento acelera e quando a
// maioria dos marcos está perto da conclusão
func PredictTimeline(roundType domain.RoundType, input ScoreInput, milestones []domain.Milestone, now time.Time) domain.TimelinePrediction {
	baseDays := baseDaysByRound[roundType]

	adjustment := 1.0
	if input.RunwayMonths < 6 {
		adjustment *= 0.8
	}
	if input.DauGrowth > 0.2 {
		adjustment *= 0.9
	}
	if halfMilestonesNearDone(milestones) {
		adjustment *= 0.9
	}

	adjustedDays := int(math.Round(float64(baseDays) * adjustment))
	startDate := now.AddDate(0, 0, leadTimeDays)

	return domain.TimelinePrediction{
		PredictedStartDate:     startDate,
		PredictedCloseDate:     startDate.AddDate(0, 0, adjustedDays),
		BaseDays:               baseDays,
		AdjustedDays:           adjustedDays,
		ConfidenceIntervalDays: int(math.Round(confidenceIntervalRatio * float64(adjustedDays))),
	}
}

// halfMilestonesNearDone indica se ao menos metade dos marcos informados
// passou de oitenta por cento de conclusão
func halfMilestonesNearDone(milestones []domain.Milestone) bool {
	if len(milestones) == 0 {
		return false
	}

	nearDone := 0
	for _, milestone := range milestones {
		if milestone.Completion > 0.8 {
			nearDone++
		}
	}
	return 2*nearDone >= len(milestones)
}

// BuildRecommendations aplica o conjunto fixo de regras de ação sobre os
// insumos derivados e os marcos informados
func BuildRecommendations(input ScoreInput, milestones []domain.Milestone, now time.Time) ([]domain.Recommendation, error) {
	recommendations := make([]domain.Recommendation, 0)

	if input.RunwayMonths < 9 {
		deadline := now.AddDate(0, 0, fundraisingDeadlineDays)
		recommendation, err := newRecommendation(domain.PriorityHigh,
			"Iniciar a captação imediatamente",
			fmt.Sprintf("Runway de %.1f meses, abaixo do mínimo de nove", input.RunwayMonths),
			&deadline)
		if err != nil {
			return nil, err
		}
		recommendations = append(recommendations, recommendation)
	}

	if input.DauGrowth < 0.1 {
		recommendation, err := newRecommendation(domain.PriorityHigh,
			"Focar na aquisição de usuários",
			"Crescimento de DAU abaixo de dez por cento na janela",
			nil)
		if err != nil {
			return nil, err
		}
		recommendations = append(recommendations, recommendation)
	}

	for _, milestone := range milestones {
		if milestone.Completion < 0.5 {
			recommendation, err := newRecommendation(domain.PriorityMedium,
				"Concluir os marcos principais",
				fmt.Sprintf("Marco %q com menos da metade concluída", milestone.Name),
				nil)
			if err != nil {
				return nil, err
			}
			recommendations = append(recommendations, recommendation)
			break
		}
	}

	return recommendations, nil
}

func newRecommendation(priority domain.RecommendationPriority, action, reason string, deadline *time.Time) (domain.Recommendation, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return domain.Recommendation{}, err
	}

	return domain.Recommendation{
		ID:       id,
		Priority: priority,
		Action:   action,
		Reason:   reason,
		Deadline: deadline,
	}, nil
}
