package numeric

import "math"

// trendDampening controls how fast the projected trend decays per step ahead.
const trendDampening = 0.05

// ExponentialSmoothing smooths series with factor alpha and projects the next
// `periods` values. Alpha is clamped to [0,1]; non-finite or negative inputs
// are filtered out; an empty series yields a zero-filled projection.
//
// Step k ahead is forecast as last-smoothed * (1 + trend*e^(-0.05k))^k, a
// dampened-trend projection that bounds runaway growth. Every output is
// finite and >= 0; a non-finite step falls back to the last observed value.
func ExponentialSmoothing(series []float64, alpha float64, periods int) []float64 {
	if periods <= 0 {
		return []float64{}
	}

	alpha = Clamp(alpha, 0, 1)

	filtered := make([]float64, 0, len(series))
	for _, v := range series {
		if IsFinite(v) && v >= 0 {
			filtered = append(filtered, v)
		}
	}
	if len(filtered) == 0 {
		return make([]float64, periods)
	}

	if cached, ok := defaultSmoothingCache.get(filtered, alpha, periods); ok {
		return cached
	}

	smoothed := filtered[0]
	for _, v := range filtered[1:] {
		smoothed = alpha*v + (1-alpha)*smoothed
	}

	trend := CalculateTrend(filtered)
	last := filtered[len(filtered)-1]

	out := make([]float64, periods)
	for k := 1; k <= periods; k++ {
		damped := trend * math.Exp(-trendDampening*float64(k))
		value := smoothed * math.Pow(1+damped, float64(k))
		if !IsFinite(value) {
			value = last
		}
		if value < 0 {
			value = 0
		}
		out[k-1] = value
	}

	defaultSmoothingCache.put(filtered, alpha, periods, out)
	return out
}

// WeightedMovingAverage averages the most recent len(weights) values of
// series, most recent value taking the last weight. Weights not summing to 1
// are normalised. A series shorter than the weight vector degrades to the
// plain mean; an empty series yields 0.
func WeightedMovingAverage(series, weights []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	if len(weights) == 0 || len(series) < len(weights) {
		return Mean(series)
	}

	sumW := 0.0
	for _, w := range weights {
		sumW += w
	}
	if sumW == 0 {
		return Mean(series)
	}

	window := series[len(series)-len(weights):]
	acc := 0.0
	for i, v := range window {
		acc += v * (weights[i] / sumW)
	}
	return Sanitize(acc, series[len(series)-1])
}
