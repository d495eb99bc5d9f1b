package wendler

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/wendler/internal/models"
)

type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchStructural
	MatchPositional
)

func (k MatchKind) String() string {
	switch k {
	case MatchStructural:
		return "structural"
	case MatchPositional:
		return "positional"
	default:
		return "none"
	}
}

// SetMatch pairs a prescribed set with the completed record it was matched to.
// CompletedIndex is -1 when Kind is MatchNone.
type SetMatch struct {
	SetIndex       int
	CompletedIndex int
	Kind           MatchKind
}

const weightTolerance = 1e-9

// MatchSets pairs prescribed sets with completed records in two phases.
// First every set claims the first unclaimed record with the same weight,
// reps string and AMRAP flag. Sets still unmatched then take the record at
// their own index, if that record was not claimed in the first phase.
func MatchSets(prescribed []models.WorkoutSet, completed []models.CompletedSet) []SetMatch {
	matches := make([]SetMatch, len(prescribed))
	claimed := make([]bool, len(completed))

	for i, set := range prescribed {
		matches[i] = SetMatch{SetIndex: i, CompletedIndex: -1, Kind: MatchNone}
		for j, cs := range completed {
			if claimed[j] {
				continue
			}
			if math.Abs(cs.PrescribedWeight-set.TargetWeight) < weightTolerance &&
				cs.PrescribedReps == set.TargetReps &&
				cs.IsAmrap == set.IsAmrap {
				matches[i] = SetMatch{SetIndex: i, CompletedIndex: j, Kind: MatchStructural}
				claimed[j] = true
				break
			}
		}
	}

	for i := range matches {
		if matches[i].Kind != MatchNone {
			continue
		}
		if i < len(completed) && !claimed[i] {
			matches[i] = SetMatch{SetIndex: i, CompletedIndex: i, Kind: MatchPositional}
			claimed[i] = true
		}
	}

	return matches
}

// Reconciliation is the outcome of recording a completed workout.
type Reconciliation struct {
	// Cycle is a fresh copy of the input cycle with the day marked completed.
	// It is nil when no cycle was given.
	Cycle *models.WorkoutCycle
	Log   models.WorkoutLogEntry
	// Matched reports whether a day of Cycle matched date and lift. When it is
	// false the log is still valid: off-cycle and retroactive logging is allowed.
	Matched bool
	Matches []SetMatch
}

// RecordCompletion applies the reported sets to the matching day of cycle
// and builds the log entry to append to the history. The input cycle is left
// untouched. A nil profile rejects the operation because it supplies the
// training max snapshot.
func RecordCompletion(profile *models.UserProfile, cycle *models.WorkoutCycle, date string,
	lift models.Lift, completed []models.CompletedSet) (Reconciliation, error) {
	if profile == nil {
		return Reconciliation{}, ErrNoProfile
	}

	result := Reconciliation{
		Cycle: cycle.Clone(),
		Log: models.WorkoutLogEntry{
			LogID:           uuid.New().String(),
			Date:            date,
			Exercise:        lift,
			CompletedSets:   append([]models.CompletedSet(nil), completed...),
			TrainingMaxUsed: profile.TrainingMaxes[lift],
			LoggedAt:        time.Now().UTC(),
		},
	}

	if result.Cycle == nil {
		return result, nil
	}

	result.Matches, result.Matched = markCompleted(result.Cycle, date, lift, completed)
	return result, nil
}

// ApplyLogs replays logged workouts onto a copy of cycle, oldest first, so a
// freshly generated cycle shows what has already been done. Logs outside the
// cycle are ignored.
func ApplyLogs(cycle *models.WorkoutCycle, logs []models.WorkoutLogEntry) *models.WorkoutCycle {
	out := cycle.Clone()
	if out == nil {
		return nil
	}

	ordered := append([]models.WorkoutLogEntry(nil), logs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].LoggedAt.Before(ordered[j].LoggedAt)
	})
	for _, entry := range ordered {
		if entry.Date < out.StartDate || entry.Date > out.EndDate {
			continue
		}
		markCompleted(out, entry.Date, entry.Exercise, entry.CompletedSets)
	}
	return out
}

// markCompleted updates the day of cycle matching date and lift in place.
func markCompleted(cycle *models.WorkoutCycle, date string, lift models.Lift, completed []models.CompletedSet) ([]SetMatch, bool) {
	for wi := range cycle.Weeks {
		days := cycle.Weeks[wi].Days
		for di := range days {
			if days[di].Date != date || days[di].MainLift != lift {
				continue
			}
			day := &days[di]
			day.IsCompleted = true
			matches := MatchSets(day.Sets, completed)
			for _, m := range matches {
				if m.Kind == MatchNone {
					continue
				}
				reps := completed[m.CompletedIndex].ActualReps
				day.Sets[m.SetIndex].CompletedReps = &reps
			}
			return matches, true
		}
	}
	return nil, false
}

// DefaultCompletedSets prefills a report for day: fixed sets at their target
// reps, AMRAP sets at zero unless already logged.
func DefaultCompletedSets(day models.DailyWorkout) []models.CompletedSet {
	out := make([]models.CompletedSet, len(day.Sets))
	for i, s := range day.Sets {
		reps := 0
		switch {
		case s.CompletedReps != nil:
			reps = *s.CompletedReps
		case !s.IsAmrap:
			reps = BaseReps(s.TargetReps)
		}
		out[i] = models.CompletedSet{
			PrescribedWeight: s.TargetWeight,
			PrescribedReps:   s.TargetReps,
			ActualReps:       reps,
			IsAmrap:          s.IsAmrap,
		}
	}
	return out
}
