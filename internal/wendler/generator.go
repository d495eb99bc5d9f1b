package wendler

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/utils"
)

var (
	ErrNoProfile     = errors.New("no profile")
	ErrNoStartDate   = errors.New("profile has no valid start date")
	ErrInvalidCycle  = errors.New("cycle number must be at least 1")
	ErrNoSchedule    = errors.New("profile has no scheduled workout days")
	ErrNotStartedYet = errors.New("program has not started yet")
)

// GenerateCycle computes the dated plan of the given 1-based cycle.
//
// The result only depends on its inputs: the training maxes are copied into
// the sets, so a later profile change is only visible after regenerating.
// An empty schedule yields four weeks without days.
func GenerateCycle(profile *models.UserProfile, cycleNumber int) (*models.WorkoutCycle, error) {
	if profile == nil {
		return nil, ErrNoProfile
	}
	start, ok := profile.Start()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoStartDate, profile.StartDate)
	}
	if cycleNumber < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCycle, cycleNumber)
	}

	cycleStart := start.AddDate(0, 0, (cycleNumber-1)*CycleWeeks*7)
	schedule := sortedSchedule(profile.Schedule)

	cycle := &models.WorkoutCycle{
		CycleNumber: cycleNumber,
		StartDate:   utils.FormatDate(cycleStart),
		EndDate:     utils.FormatDate(cycleStart.AddDate(0, 0, CycleWeeks*7-1)),
		Weeks:       make([]models.WeeklyWorkout, 0, CycleWeeks),
	}

	for weekIdx, tmpl := range Templates {
		weekStart := cycleStart.AddDate(0, 0, weekIdx*7)
		days := make([]models.DailyWorkout, 0, len(schedule))

		for _, entry := range schedule {
			date := dateInWeek(weekStart, time.Weekday(entry.Day))
			days = append(days, models.DailyWorkout{
				Date:      utils.FormatDate(date),
				DayOfWeek: entry.Day,
				MainLift:  entry.Lift,
				Sets:      prescribeSets(tmpl, profile.TrainingMaxes[entry.Lift], profile.UnitSystem),
			})
		}

		// ISO dates sort lexically.
		sort.SliceStable(days, func(i, j int) bool {
			if days[i].Date != days[j].Date {
				return days[i].Date < days[j].Date
			}
			return days[i].MainLift < days[j].MainLift
		})

		cycle.Weeks = append(cycle.Weeks, models.WeeklyWorkout{
			WeekNumber: weekIdx + 1,
			WeekName:   tmpl.Name,
			Days:       days,
		})
	}

	return cycle, nil
}

// dateInWeek returns the date in the 7-day window starting at weekStart that
// falls on the requested weekday.
func dateInWeek(weekStart time.Time, day time.Weekday) time.Time {
	offset := (int(day) - int(weekStart.Weekday()) + 7) % 7
	return weekStart.AddDate(0, 0, offset)
}

func prescribeSets(tmpl WeekTemplate, trainingMax float64, unit models.UnitSystem) []models.WorkoutSet {
	sets := make([]models.WorkoutSet, len(tmpl.Sets))
	for i, scheme := range tmpl.Sets {
		sets[i] = models.WorkoutSet{
			Percentage:   scheme.Percentage,
			TargetReps:   scheme.Reps,
			TargetWeight: utils.RoundForUnitSystem(trainingMax*scheme.Percentage, unit),
			IsAmrap:      scheme.Amrap,
		}
	}
	return sets
}

// sortedSchedule orders the schedule Sunday first without touching the caller's slice.
func sortedSchedule(schedule []models.ScheduleEntry) []models.ScheduleEntry {
	out := append([]models.ScheduleEntry(nil), schedule...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Lift < out[j].Lift
	})
	return out
}
