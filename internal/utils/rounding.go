package utils

import (
	"math"

	"github.com/misterclayt0n/wendler/internal/models"
)

const (
	// DefaultIncrement is the general purpose plate increment.
	DefaultIncrement = 2.5

	// DefaultTrainingMaxPercentage is the share of the 1RM used as training max.
	DefaultTrainingMaxPercentage = 0.9

	// BarbellLb is the reference bar weight.
	BarbellLb = 45.0

	LbPerKg = 2.20462
)

// RoundToIncrement rounds weight to the nearest multiple of increment.
// A non-positive increment falls back to DefaultIncrement.
func RoundToIncrement(weight, increment float64) float64 {
	if increment <= 0 {
		increment = DefaultIncrement
	}
	return math.Round(weight/increment) * increment
}

// TrainingMax scales a 1RM by pct. No rounding happens here.
func TrainingMax(oneRepMax, pct float64) float64 {
	if pct <= 0 {
		pct = DefaultTrainingMaxPercentage
	}
	return oneRepMax * pct
}

// RoundForUnitSystem applies the loading policy of the unit system.
// Imperial weights land on 45 + 10k so that a pair of 5 lb plates is the
// smallest jump; metric weights land on multiples of 5 kg. The result is
// never negative.
func RoundForUnitSystem(weight float64, unit models.UnitSystem) float64 {
	if weight <= 0 || math.IsNaN(weight) {
		return 0
	}

	var rounded float64
	if unit == models.Imperial {
		rounded = math.Round((weight-5)/10)*10 + 5
	} else {
		rounded = math.Round(weight/5) * 5
	}

	return math.Max(rounded, 0)
}

// BarWeight returns the reference bar in the given unit system. The metric
// bar is the 45 lb bar converted and rounded to half a kilo.
func BarWeight(unit models.UnitSystem) float64 {
	if unit == models.Metric {
		return RoundToIncrement(BarbellLb/LbPerKg, 0.5)
	}
	return BarbellLb
}
