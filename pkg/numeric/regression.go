package numeric

// LinearRegression fits y = slope*x + intercept by least squares over the
// paired samples. Degenerate input (fewer than two points, mismatched lengths
// or zero variance in x) yields slope 0 and the mean of ys as intercept.
func LinearRegression(xs, ys []float64) (slope, intercept float64) {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return 0, Mean(ys)
	}

	meanX := Mean(xs)
	meanY := Mean(ys)

	var num, den float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		num += dx * (ys[i] - meanY)
		den += dx * dx
	}
	if den == 0 {
		return 0, meanY
	}

	slope = Sanitize(num/den, 0)
	intercept = Sanitize(meanY-slope*meanX, meanY)
	return slope, intercept
}

// SlopeOverIndex fits a least-squares slope over series indexed 0..n-1.
func SlopeOverIndex(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	xs := make([]float64, len(series))
	for i := range xs {
		xs[i] = float64(i)
	}
	slope, _ := LinearRegression(xs, series)
	return slope
}

// CalculateTrend estimates the per-period relative growth of series: the
// least-squares slope over IQR-trimmed data divided by the trimmed mean,
// clamped to [-0.5, 0.5]. Series too short or too flat to carry a trend
// yield 0.
func CalculateTrend(series []float64) float64 {
	trimmed := TrimOutliersIQR(FilterFinite(series), 1.5)
	if len(trimmed) < 2 {
		return 0
	}

	mean := Mean(trimmed)
	if mean == 0 {
		return 0
	}

	slope := SlopeOverIndex(trimmed)
	return Clamp(Sanitize(slope/mean, 0), -0.5, 0.5)
}
