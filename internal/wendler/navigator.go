package wendler

import (
	"errors"
	"fmt"
	"time"

	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/utils"
)

var ErrInvalidWeek = errors.New("week number must be between 1 and 4")

// Position is where a calendar date falls in the program.
type Position struct {
	CycleNumber int
	WeekNumber  int
	Cycle       *models.WorkoutCycle
	// Day is the workout scheduled exactly on the date, nil on rest days.
	Day *models.DailyWorkout
}

// LocateCycleAndDay derives the cycle, week and workout of asOf from the
// number of whole weeks elapsed since the start date. Weeks begin on the
// weekday of the start date. Nothing is cached: every call re-derives the
// position so paging through cycles can never drift.
//
// The "no data" states are reported with ErrNoProfile, ErrNoStartDate,
// ErrNoSchedule and ErrNotStartedYet.
func LocateCycleAndDay(profile *models.UserProfile, asOf time.Time) (Position, error) {
	if profile == nil {
		return Position{}, ErrNoProfile
	}
	start, ok := profile.Start()
	if !ok {
		return Position{}, fmt.Errorf("%w: %q", ErrNoStartDate, profile.StartDate)
	}
	if len(profile.Schedule) == 0 {
		return Position{}, ErrNoSchedule
	}

	days := utils.DaysBetween(start, asOf)
	if days < 0 {
		return Position{}, fmt.Errorf("%w: starts %s", ErrNotStartedYet, profile.StartDate)
	}
	weeksElapsed := days / 7
	cycleNumber := weeksElapsed/CycleWeeks + 1
	weekIdx := weeksElapsed % CycleWeeks

	cycle, err := GenerateCycle(profile, cycleNumber)
	if err != nil {
		return Position{}, err
	}

	week := cycle.Weeks[weekIdx]
	pos := Position{
		CycleNumber: cycleNumber,
		WeekNumber:  week.WeekNumber,
		Cycle:       cycle,
	}

	date := utils.FormatDate(asOf)
	for i := range week.Days {
		if week.Days[i].Date == date {
			day := week.Days[i].Clone()
			pos.Day = &day
			break
		}
	}

	return pos, nil
}

// WorkoutsInWeek returns the scheduled days of one week of one cycle.
func WorkoutsInWeek(profile *models.UserProfile, cycleNumber, weekNumber int) ([]models.DailyWorkout, error) {
	if weekNumber < 1 || weekNumber > CycleWeeks {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWeek, weekNumber)
	}
	cycle, err := GenerateCycle(profile, cycleNumber)
	if err != nil {
		return nil, err
	}
	for _, w := range cycle.Weeks {
		if w.WeekNumber == weekNumber {
			return w.Days, nil
		}
	}
	return nil, fmt.Errorf("%w: got %d", ErrInvalidWeek, weekNumber)
}

// CycleNumberFor returns the cycle asOf falls in, clamped to the first cycle
// for dates before the program starts.
func CycleNumberFor(profile *models.UserProfile, asOf time.Time) int {
	start, ok := profile.Start()
	if !ok {
		return 1
	}
	days := utils.DaysBetween(start, asOf)
	if days < 0 {
		return 1
	}
	return days/7/CycleWeeks + 1
}
