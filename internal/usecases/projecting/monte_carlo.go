package projecting

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/pkg/numeric"
	"golang.org/x/sync/errgroup"
)

const (
	// simulationBatchSize é o tamanho do lote de iterações por goroutine
	simulationBatchSize = 100
	// maxVariance é o teto da variância aceita pela simulação
	maxVariance = 0.5
	// divergenceBurnMultiple aborta a iteração quando o burn ultrapassa esse
	// múltiplo do caixa inicial
	divergenceBurnMultiple = 10.0
)

// SimulationParams parametriza a simulação Monte Carlo de runway
type SimulationParams struct {
	Iterations  int
	Variance    float64
	Seed        *int64
	MaxRetained int
}

// RunMonteCarlo repete a projeção de runway com ruído multiplicativo mensal
// sobre burn e receita, em lotes paralelos canceláveis pelo contexto da
// requisição. A variância é grampeada em [0, 0.5]. Com seed informada a
// simulação é determinística: cada lote usa um gerador derivado da seed.
// Os percentis são calculados sobre todas as iterações; apenas as primeiras
// MaxRetained permanecem no artefato para inspeção.
func RunMonteCarlo(ctx context.Context, input ProjectionInput, params SimulationParams, now time.Time) (*domain.SimulationResult, error) {
	iterations := params.Iterations
	if iterations <= 0 {
		iterations = 1000
	}
	variance := numeric.Clamp(params.Variance, 0, maxVariance)
	months := input.horizonMonths()

	batches := (iterations + simulationBatchSize - 1) / simulationBatchSize
	runwaysByBatch := make([][]float64, batches)
	abortedByBatch := make([]int, batches)

	g, ctx := errgroup.WithContext(ctx)
	for batch := 0; batch < batches; batch++ {
		size := simulationBatchSize
		if remaining := iterations - batch*simulationBatchSize; remaining < size {
			size = remaining
		}

		batch := batch
		rng := batchRNG(params.Seed, batch)
		g.Go(func() error {
			runways := make([]float64, 0, size)
			for i := 0; i < size; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				runway, aborted := simulateRunway(rng, input, variance, months)
				runways = append(runways, runway)
				if aborted {
					abortedByBatch[batch]++
				}
			}
			runwaysByBatch[batch] = runways
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	runways := make([]float64, 0, iterations)
	aborted := 0
	for batch := range runwaysByBatch {
		runways = append(runways, runwaysByBatch[batch]...)
		aborted += abortedByBatch[batch]
	}

	retained := runways
	if params.MaxRetained > 0 && len(retained) > params.MaxRetained {
		retained = retained[:params.MaxRetained]
	}

	return &domain.SimulationResult{
		Iterations:   iterations,
		Variance:     variance,
		Seed:         params.Seed,
		P10:          numeric.Quantile(runways, 0.10),
		P50:          numeric.Quantile(runways, 0.50),
		P90:          numeric.Quantile(runways, 0.90),
		Mean:         numeric.Mean(runways),
		StdDev:       numeric.StdDev(runways),
		RawRunways:   retained,
		AbortedEarly: aborted,
		CompletedAt:  now,
	}, nil
}

// batchRNG deriva um gerador próprio por lote. Sem seed, cada lote parte de
// uma origem aleatória; com seed, a derivação é estável entre execuções.
func batchRNG(seed *int64, batch int) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewSource(rand.Int63()))
	}
	return rand.New(rand.NewSource(*seed + int64(batch)))
}

// simulateRunway executa uma iteração da simulação. O burn e a receita de
// cada mês recebem um fator max(0, Normal(1, variância)) antes do fluxo do
// mês; eventos de captação entram ponderados pela probabilidade, como na
// projeção determinística. A iteração é abortada quando o burn diverge além
// de divergenceBurnMultiple vezes o caixa inicial; o runway reportado nesse
// caso é o número de meses simulados até ali.
func simulateRunway(rng *rand.Rand, input ProjectionInput, variance float64, months int) (runway float64, aborted bool) {
	cash := input.InitialCash
	burn := input.MonthlyBurn
	revenue := input.MonthlyRevenue

	for month := 1; month <= months; month++ {
		if burn > divergenceBurnMultiple*input.InitialCash {
			return float64(month - 1), true
		}

		actualBurn := burn * math.Max(0, numeric.NormalSample(rng, 1, variance))
		actualRevenue := revenue * math.Max(0, numeric.NormalSample(rng, 1, variance))
		inflow := fundraisingInflowFor(input.FundraisingEvents, month)

		cash += actualRevenue - actualBurn + inflow
		if cash <= 0 {
			return float64(month), false
		}

		burn *= 1 + input.BurnGrowthRate
		revenue *= 1 + input.RevenueGrowthRate
	}

	return float64(months), false
}
