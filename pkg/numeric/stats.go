// Package numeric contains the statistical primitives behind the projection
// engine: descriptive statistics, IQR outlier handling, regression, moving
// averages, exponential smoothing, seasonality extraction and normal sampling.
//
// Every function is pure and recovers locally from pathological input (empty
// series, NaN, Inf, division by zero) so callers never observe a non-finite
// number.
package numeric

import (
	"math"
	"sort"
)

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Clamp bounds v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sanitize replaces a non-finite v with fallback.
func Sanitize(v, fallback float64) float64 {
	if !IsFinite(v) {
		return fallback
	}
	return v
}

// SafeDiv divides num by den, returning 0 when the denominator is zero or the
// result would not be finite.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return Sanitize(num/den, 0)
}

// FilterFinite returns the finite values of series, preserving order.
func FilterFinite(series []float64) []float64 {
	out := make([]float64, 0, len(series))
	for _, v := range series {
		if IsFinite(v) {
			out = append(out, v)
		}
	}
	return out
}

// Mean returns the arithmetic mean of series, 0 for an empty series.
func Mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range series {
		sum += v
	}
	return Sanitize(sum/float64(len(series)), 0)
}

// StdDev returns the population standard deviation of series. Series with
// fewer than two values have zero deviation.
func StdDev(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}

	mean := Mean(series)
	sumSq := 0.0
	for _, v := range series {
		d := v - mean
		sumSq += d * d
	}
	return Sanitize(math.Sqrt(sumSq/float64(len(series))), 0)
}

// Median returns the middle value of series. The input is not modified; even
// lengths return the midpoint of the two central values.
func Median(series []float64) float64 {
	n := len(series)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, series)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// Quantile returns the q-quantile (q in [0,1]) of series using linear
// interpolation between closest ranks. The input is not modified.
func Quantile(series []float64, q float64) float64 {
	n := len(series)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return series[0]
	}
	q = Clamp(q, 0, 1)

	sorted := make([]float64, n)
	copy(sorted, series)
	sort.Float64s(sorted)

	pos := q * float64(n-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}

	frac := pos - float64(lower)
	return Sanitize(sorted[lower]+(sorted[upper]-sorted[lower])*frac, sorted[lower])
}

// GeometricMean returns the geometric mean of the strictly positive values of
// series, 0 when none exist.
func GeometricMean(series []float64) float64 {
	logSum := 0.0
	count := 0
	for _, v := range series {
		if IsFinite(v) && v > 0 {
			logSum += math.Log(v)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return Sanitize(math.Exp(logSum/float64(count)), 0)
}

// TrimOutliersIQR returns the values of series lying inside the inter-quartile
// fences [q1-k*iqr, q3+k*iqr]. Series shorter than four values are returned
// unchanged since quartiles are meaningless there.
func TrimOutliersIQR(series []float64, k float64) []float64 {
	if len(series) < 4 {
		out := make([]float64, len(series))
		copy(out, series)
		return out
	}

	q1 := Quantile(series, 0.25)
	q3 := Quantile(series, 0.75)
	iqr := q3 - q1
	lower := q1 - k*iqr
	upper := q3 + k*iqr

	out := make([]float64, 0, len(series))
	for _, v := range series {
		if v >= lower && v <= upper {
			out = append(out, v)
		}
	}
	return out
}
