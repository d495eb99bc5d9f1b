package wendler

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/utils"
)

// NewProfile builds a profile anchored on start with training maxes derived
// from oneRepMaxes. Lifts missing from oneRepMaxes start at zero.
func NewProfile(name string, start time.Time, unit models.UnitSystem, display models.WeightDisplay,
	schedule []models.ScheduleEntry, oneRepMaxes map[models.Lift]float64) models.UserProfile {
	p := models.UserProfile{
		ID:            uuid.New().String(),
		Name:          name,
		StartDate:     utils.FormatDate(start),
		UnitSystem:    unit,
		WeightDisplay: display,
		Schedule:      append([]models.ScheduleEntry(nil), schedule...),
	}
	ApplyOneRepMaxes(&p, oneRepMaxes)
	return p
}

// ApplyOneRepMaxes stores the given maxes and snapshots the training maxes as
// round(1RM * 0.9). This is the only place training maxes are derived.
func ApplyOneRepMaxes(p *models.UserProfile, oneRepMaxes map[models.Lift]float64) {
	p.OneRepMaxes = make(map[models.Lift]float64, len(models.MainLifts))
	p.TrainingMaxes = make(map[models.Lift]float64, len(models.MainLifts))
	for _, lift := range models.MainLifts {
		orm := oneRepMaxes[lift]
		p.OneRepMaxes[lift] = orm
		p.TrainingMaxes[lift] = math.Round(utils.TrainingMax(orm, utils.DefaultTrainingMaxPercentage))
	}
}

// StaleTrainingMaxes lists the lifts whose stored training max no longer
// matches round(1RM * 0.9), e.g. after one field was edited by hand.
func StaleTrainingMaxes(p *models.UserProfile) []models.Lift {
	var stale []models.Lift
	for _, lift := range models.MainLifts {
		want := math.Round(utils.TrainingMax(p.OneRepMaxes[lift], utils.DefaultTrainingMaxPercentage))
		if p.TrainingMaxes[lift] != want {
			stale = append(stale, lift)
		}
	}
	return stale
}
