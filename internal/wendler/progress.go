package wendler

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/utils"
)

// AdviceHistoryLimit is how many recent sessions are sent for advice: one cycle.
const AdviceHistoryLimit = 4

var ErrNoHistory = errors.New("no workout history for lift")

// TrendPoint is one e1RM sample of the progress chart.
type TrendPoint struct {
	Date   string  `json:"date"`
	E1RM   float64 `json:"e1rm"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// TopSet returns the first AMRAP set of the entry, or its last set.
func TopSet(entry models.WorkoutLogEntry) (models.CompletedSet, bool) {
	for _, s := range entry.CompletedSets {
		if s.IsAmrap {
			return s, true
		}
	}
	if n := len(entry.CompletedSets); n > 0 {
		return entry.CompletedSets[n-1], true
	}
	return models.CompletedSet{}, false
}

// E1RMTrend folds the log of one lift into an ascending e1RM series.
// Entries without a usable top set are skipped.
func E1RMTrend(logs []models.WorkoutLogEntry, lift models.Lift) []TrendPoint {
	filtered := filterLift(logs, lift)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date < filtered[j].Date
	})

	var points []TrendPoint
	for _, entry := range filtered {
		top, ok := TopSet(entry)
		if !ok || top.ActualReps <= 0 {
			continue
		}
		e1rm := utils.EstimatedOneRepMax(top.PrescribedWeight, top.ActualReps)
		if e1rm <= 0 {
			continue
		}
		points = append(points, TrendPoint{
			Date:   entry.Date,
			E1RM:   e1rm,
			Weight: top.PrescribedWeight,
			Reps:   top.ActualReps,
		})
	}
	return points
}

// RecentLogs returns up to n entries of lift, most recent date first.
// A non-positive n returns all of them.
func RecentLogs(logs []models.WorkoutLogEntry, lift models.Lift, n int) []models.WorkoutLogEntry {
	filtered := filterLift(logs, lift)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})
	if n > 0 && len(filtered) > n {
		filtered = filtered[:n]
	}
	return filtered
}

func filterLift(logs []models.WorkoutLogEntry, lift models.Lift) []models.WorkoutLogEntry {
	var out []models.WorkoutLogEntry
	for _, l := range logs {
		if l.Exercise == lift {
			out = append(out, l)
		}
	}
	return out
}

// AdviceRequest is the plain data handed to the text generation collaborator.
type AdviceRequest struct {
	WorkoutHistory string  `json:"workoutHistory"`
	CurrentMax     float64 `json:"currentMax"`
	Exercise       string  `json:"exercise"`
}

type adviceHistoryItem struct {
	Date                string   `json:"date"`
	Exercise            string   `json:"exercise"`
	PrescribedWeight    *float64 `json:"prescribedWeight,omitempty"`
	ActualRepsCompleted *int     `json:"actualRepsCompleted,omitempty"`
	TargetReps          *string  `json:"targetReps,omitempty"`
	Notes               string   `json:"notes"`
}

// NewAdviceRequest serializes the most recent sessions of lift. The last set
// of each session is the one reported, since it carries the AMRAP effort.
func NewAdviceRequest(profile *models.UserProfile, logs []models.WorkoutLogEntry, lift models.Lift) (AdviceRequest, error) {
	if profile == nil {
		return AdviceRequest{}, ErrNoProfile
	}

	recent := RecentLogs(logs, lift, AdviceHistoryLimit)
	if len(recent) == 0 {
		return AdviceRequest{}, fmt.Errorf("%w: %s", ErrNoHistory, lift.Name())
	}

	items := make([]adviceHistoryItem, 0, len(recent))
	for _, entry := range recent {
		item := adviceHistoryItem{
			Date:     entry.Date,
			Exercise: lift.Name(),
			Notes:    fmt.Sprintf("TM used: %s", FormatNumber(entry.TrainingMaxUsed)),
		}
		if n := len(entry.CompletedSets); n > 0 {
			last := entry.CompletedSets[n-1]
			weight, reps := last.PrescribedWeight, last.ActualReps
			target := strings.Replace(last.PrescribedReps, "+", "", 1)
			item.PrescribedWeight = &weight
			item.ActualRepsCompleted = &reps
			item.TargetReps = &target
		}
		items = append(items, item)
	}

	history, err := json.Marshal(items)
	if err != nil {
		return AdviceRequest{}, fmt.Errorf("marshal workout history: %w", err)
	}

	return AdviceRequest{
		WorkoutHistory: string(history),
		CurrentMax:     profile.OneRepMaxes[lift],
		Exercise:       lift.Name(),
	}, nil
}
