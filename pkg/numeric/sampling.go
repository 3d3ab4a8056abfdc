package numeric

import (
	"math"
	"math/rand"
)

// NormalSample draws one sample from N(mean, stddev^2) using the Box-Muller
// transform. A non-positive stddev returns the mean unchanged.
func NormalSample(rng *rand.Rand, mean, stddev float64) float64 {
	if stddev <= 0 {
		return mean
	}

	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()

	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return Sanitize(mean+stddev*z, mean)
}
