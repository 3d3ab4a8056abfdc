package numeric

import "time"

const (
	// minSeasonalityMonths is the number of distinct calendar months required
	// before monthly factors are considered meaningful.
	minSeasonalityMonths = 6

	seasonalFactorFloor   = 0.5
	seasonalFactorCeiling = 2.0
)

// DatedValue is an observation tagged with its calendar date.
type DatedValue struct {
	Date  time.Time
	Value float64
}

// CalculateSeasonality extracts 12 monthly factors (index 0 = January) from a
// dated series. Data covering fewer than 6 distinct calendar months yields
// all-ones. Each factor is the ratio of the month's mean to the overall mean,
// clamped to [0.5, 2.0]; months without observations are linearly
// interpolated from the nearest observed months, wrapping around the year.
func CalculateSeasonality(points []DatedValue) [12]float64 {
	var factors [12]float64
	for i := range factors {
		factors[i] = 1
	}

	sums := make([]float64, 12)
	counts := make([]int, 12)
	for _, p := range points {
		if !IsFinite(p.Value) {
			continue
		}
		m := int(p.Date.Month()) - 1
		sums[m] += p.Value
		counts[m]++
	}

	present := 0
	monthMeans := make([]float64, 12)
	total := 0.0
	for m := 0; m < 12; m++ {
		if counts[m] > 0 {
			monthMeans[m] = sums[m] / float64(counts[m])
			total += monthMeans[m]
			present++
		}
	}
	if present < minSeasonalityMonths {
		return factors
	}

	overall := total / float64(present)
	if overall == 0 {
		return factors
	}

	for m := 0; m < 12; m++ {
		if counts[m] > 0 {
			factors[m] = Clamp(Sanitize(monthMeans[m]/overall, 1), seasonalFactorFloor, seasonalFactorCeiling)
		}
	}

	interpolateMissingMonths(&factors, counts)
	return factors
}

// interpolateMissingMonths fills gaps in the factor circle by linear
// interpolation between the nearest observed months on each side.
func interpolateMissingMonths(factors *[12]float64, counts []int) {
	for m := 0; m < 12; m++ {
		if counts[m] > 0 {
			continue
		}

		prev, prevDist := nearestObserved(counts, m, -1)
		next, nextDist := nearestObserved(counts, m, +1)
		if prev < 0 || next < 0 {
			continue
		}

		span := float64(prevDist + nextDist)
		if span == 0 {
			continue
		}
		weightNext := float64(prevDist) / span
		value := factors[prev]*(1-weightNext) + factors[next]*weightNext
		factors[m] = Clamp(Sanitize(value, 1), seasonalFactorFloor, seasonalFactorCeiling)
	}
}

// nearestObserved walks the month circle from start in the given direction and
// returns the first observed month and its distance, or (-1, 0) when none.
func nearestObserved(counts []int, start, dir int) (int, int) {
	for step := 1; step < 12; step++ {
		m := ((start+dir*step)%12 + 12) % 12
		if counts[m] > 0 {
			return m, step
		}
	}
	return -1, 0
}
