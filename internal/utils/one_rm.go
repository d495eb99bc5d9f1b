package utils

// Brzycki coefficients.
const (
	brzyckiBase  = 1.0278
	brzyckiSlope = 0.0278
)

// EstimatedOneRepMax estimates a 1RM from a submaximal set with the Brzycki
// formula, rounded to DefaultIncrement. A single rep is its own max.
func EstimatedOneRepMax(weight float64, reps int) float64 {
	if reps <= 0 {
		return 0
	}
	if reps == 1 {
		return RoundToIncrement(weight, DefaultIncrement)
	}

	denominator := brzyckiBase - brzyckiSlope*float64(reps)
	if denominator <= 0 {
		return 0
	}

	return RoundToIncrement(weight/denominator, DefaultIncrement)
}
