package wendler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/utils"
)

// FormatWeight renders a total weight the way the lifter wants to read it.
// The numeric model always keeps the total.
func FormatWeight(weight float64, profile *models.UserProfile) string {
	if profile == nil {
		return fmt.Sprintf("%s units", FormatNumber(weight))
	}

	suffix := profile.UnitSystem.Suffix()
	if profile.WeightDisplay != models.DisplayPlatesPerSide {
		return fmt.Sprintf("%s %s", FormatNumber(weight), suffix)
	}

	bar := utils.BarWeight(profile.UnitSystem)
	if weight <= bar {
		return fmt.Sprintf("%s %s (Barbell)", FormatNumber(weight), suffix)
	}

	perSide := utils.RoundToIncrement((weight-bar)/2, utils.DefaultIncrement)
	if perSide <= 0 {
		return fmt.Sprintf("%s %s (Barbell)", FormatNumber(weight), suffix)
	}
	return fmt.Sprintf("%s %s per side", FormatNumber(perSide), suffix)
}

// FormatNumber prints the shortest decimal form: 90, 112.5.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercentage prints 0.65 as "65%".
func FormatPercentage(pct float64) string {
	return FormatNumber(utils.RoundToIncrement(pct*100, 0.5)) + "%"
}

// BaseReps returns the numeric part of a reps string ("5+" -> 5).
func BaseReps(reps string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(reps), "+"))
	if err != nil {
		return 0
	}
	return n
}
