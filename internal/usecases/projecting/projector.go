package projecting

import (
	"time"

	"github.com/horizonhq/horizon-api/internal/domain"
)

const (
	// defaultProjectionMonths é o horizonte usado quando a requisição não informa
	defaultProjectionMonths = 24
	// maxProjectionMonths é o teto do horizonte de projeção
	maxProjectionMonths = 60
)

// ProjectionInput são as premissas congeladas de uma projeção de runway.
// Os valores não mudam durante a projeção; burn e receita evoluem apenas
// pelas taxas de crescimento mensal.
type ProjectionInput struct {
	StartDate         time.Time
	InitialCash       float64
	MonthlyBurn       float64
	MonthlyRevenue    float64
	BurnGrowthRate    float64
	RevenueGrowthRate float64
	FundraisingEvents []domain.FundraisingEvent
	ProjectionMonths  int
}

// horizonMonths retorna o horizonte efetivo, aplicando padrão e teto
func (in ProjectionInput) horizonMonths() int {
	months := in.ProjectionMonths
	if months <= 0 {
		months = defaultProjectionMonths
	}
	if months > maxProjectionMonths {
		months = maxProjectionMonths
	}
	return months
}

// ProjectionOutcome é o resultado da projeção determinística de caixa
type ProjectionOutcome struct {
	MonthlyProjections []domain.MonthlyProjection
	TotalRunwayMonths  int
	RunwayIsFloor      bool
	BreakEvenMonth     *int
	DateOfCashOut      *time.Time
}

// ProjectRunway percorre o horizonte mês a mês a partir das premissas
// congeladas. Índices de mês são base 1. O aporte de cada evento de captação
// entra ponderado pela probabilidade no mês planejado. Caixa igual a zero
// conta como esgotado; o primeiro mês com caixa não positivo encerra a
// projeção. O ponto de equilíbrio é o primeiro mês em que a receita alcança
// o burn, avaliado antes do passo de crescimento. Sem esgotamento dentro do
// horizonte, o runway reportado é o próprio horizonte e fica marcado como
// piso, não como certeza.
func ProjectRunway(input ProjectionInput) ProjectionOutcome {
	months := input.horizonMonths()

	outcome := ProjectionOutcome{
		MonthlyProjections: make([]domain.MonthlyProjection, 0, months),
	}

	cash := input.InitialCash
	burn := input.MonthlyBurn
	revenue := input.MonthlyRevenue

	for month := 1; month <= months; month++ {
		inflow := fundraisingInflowFor(input.FundraisingEvents, month)
		netCashFlow := revenue - burn + inflow
		endingCash := cash + netCashFlow

		runwayRemaining := 0
		if endingCash > 0 && burn > 0 {
			runwayRemaining = int(endingCash / burn)
		}

		outOfCash := endingCash <= 0
		outcome.MonthlyProjections = append(outcome.MonthlyProjections, domain.MonthlyProjection{
			Month:             month,
			Date:              input.StartDate.AddDate(0, month, 0),
			StartingCash:      cash,
			Revenue:           revenue,
			Expenses:          burn,
			FundraisingInflow: inflow,
			NetCashFlow:       netCashFlow,
			EndingCash:        endingCash,
			RunwayRemaining:   runwayRemaining,
			IsOutOfCash:       outOfCash,
		})

		if outOfCash {
			cashOutDate := input.StartDate.AddDate(0, month, 0)
			outcome.TotalRunwayMonths = month
			outcome.DateOfCashOut = &cashOutDate
			return outcome
		}

		if outcome.BreakEvenMonth == nil && revenue >= burn {
			breakEven := month
			outcome.BreakEvenMonth = &breakEven
		}

		cash = endingCash
		burn *= 1 + input.BurnGrowthRate
		revenue *= 1 + input.RevenueGrowthRate
	}

	outcome.TotalRunwayMonths = months
	outcome.RunwayIsFloor = true
	return outcome
}

func fundraisingInflowFor(events []domain.FundraisingEvent, month int) float64 {
	total := 0.0
	for _, event := range events {
		if event.Month == month {
			total += event.Amount * event.Probability
		}
	}
	return total
}
