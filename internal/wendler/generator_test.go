package wendler_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/wendler"
)

func squatProfile(unit models.UnitSystem, oneRepMax float64) *models.UserProfile {
	p := wendler.NewProfile("test", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), unit, models.DisplayTotal,
		[]models.ScheduleEntry{{Day: models.Weekday(time.Monday), Lift: models.Squat}},
		map[models.Lift]float64{models.Squat: oneRepMax})
	return &p
}

func fullProfile(unit models.UnitSystem) *models.UserProfile {
	p := wendler.NewProfile("test", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), unit, models.DisplayTotal,
		[]models.ScheduleEntry{
			{Day: models.Weekday(time.Friday), Lift: models.Deadlift},
			{Day: models.Weekday(time.Monday), Lift: models.Squat},
			{Day: models.Weekday(time.Saturday), Lift: models.OverheadPress},
			{Day: models.Weekday(time.Wednesday), Lift: models.BenchPress},
		},
		map[models.Lift]float64{
			models.Squat:         315,
			models.BenchPress:    225,
			models.Deadlift:      405,
			models.OverheadPress: 135,
		})
	return &p
}

func TestGenerateCycle_SquatExample(t *testing.T) {
	profile := squatProfile(models.Imperial, 300)
	if profile.TrainingMaxes[models.Squat] != 270 {
		t.Fatalf("training max = %v, want 270", profile.TrainingMaxes[models.Squat])
	}

	cycle, err := wendler.GenerateCycle(profile, 1)
	if err != nil {
		t.Fatalf("GenerateCycle: %v", err)
	}

	day := cycle.Weeks[0].Days[0]
	if day.Date != "2024-01-01" {
		t.Errorf("day date = %s, want 2024-01-01", day.Date)
	}
	if day.Sets[0].Percentage != 0.65 {
		t.Errorf("first set percentage = %v, want 0.65", day.Sets[0].Percentage)
	}

	want := [][]float64{
		{175, 205, 225},
		{185, 215, 245},
		{205, 225, 255},
		{105, 135, 165},
	}
	var got [][]float64
	for _, w := range cycle.Weeks {
		var weights []float64
		for _, s := range w.Days[0].Sets {
			weights = append(weights, s.TargetWeight)
		}
		got = append(got, weights)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("target weights mismatch (-want +got):\n%s", diff)
	}

	if cycle.StartDate != "2024-01-01" || cycle.EndDate != "2024-01-28" {
		t.Errorf("cycle bounds = %s..%s, want 2024-01-01..2024-01-28", cycle.StartDate, cycle.EndDate)
	}
}

func TestGenerateCycle_LaterCycleBounds(t *testing.T) {
	cycle, err := wendler.GenerateCycle(squatProfile(models.Imperial, 300), 3)
	if err != nil {
		t.Fatalf("GenerateCycle: %v", err)
	}
	if cycle.StartDate != "2024-02-26" || cycle.EndDate != "2024-03-24" {
		t.Errorf("cycle 3 bounds = %s..%s, want 2024-02-26..2024-03-24", cycle.StartDate, cycle.EndDate)
	}
	var dates []string
	for _, w := range cycle.Weeks {
		dates = append(dates, w.Days[0].Date)
	}
	if diff := cmp.Diff([]string{"2024-02-26", "2024-03-04", "2024-03-11", "2024-03-18"}, dates); diff != "" {
		t.Errorf("week dates mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateCycle_Deterministic(t *testing.T) {
	profile := fullProfile(models.Imperial)

	first, err := wendler.GenerateCycle(profile, 2)
	if err != nil {
		t.Fatalf("GenerateCycle: %v", err)
	}
	second, err := wendler.GenerateCycle(profile, 2)
	if err != nil {
		t.Fatalf("GenerateCycle: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("generation is not deterministic:\n%s\n%s", a, b)
	}
}

func TestGenerateCycle_RoundingPolicy(t *testing.T) {
	tests := []struct {
		name  string
		unit  models.UnitSystem
		valid func(w float64) bool
	}{
		{
			name:  "imperial loads on 45 plus pairs of 5s",
			unit:  models.Imperial,
			valid: func(w float64) bool { return math.Abs(math.Mod(w-45, 10)) < 1e-9 },
		},
		{
			name:  "metric loads on 5 kg steps",
			unit:  models.Metric,
			valid: func(w float64) bool { return math.Abs(math.Mod(w, 5)) < 1e-9 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for orm := 40.0; orm <= 700; orm += 7.5 {
				profile := squatProfile(tt.unit, orm)
				cycle, err := wendler.GenerateCycle(profile, 1)
				if err != nil {
					t.Fatalf("GenerateCycle: %v", err)
				}
				for _, w := range cycle.Weeks {
					for _, s := range w.Days[0].Sets {
						if s.TargetWeight < 0 {
							t.Fatalf("1RM %v: negative weight %v", orm, s.TargetWeight)
						}
						if s.TargetWeight > 0 && !tt.valid(s.TargetWeight) {
							t.Fatalf("1RM %v: weight %v breaks the rounding policy", orm, s.TargetWeight)
						}
					}
				}
			}
		})
	}
}

func TestGenerateCycle_WeekTemplates(t *testing.T) {
	cycle, err := wendler.GenerateCycle(fullProfile(models.Metric), 1)
	if err != nil {
		t.Fatalf("GenerateCycle: %v", err)
	}

	if len(cycle.Weeks) != 4 {
		t.Fatalf("got %d weeks, want 4", len(cycle.Weeks))
	}

	wantNames := []string{"Week 1 (3x5)", "Week 2 (3x3)", "Week 3 (5/3/1)", "Week 4 (Deload)"}
	wantReps := [][]string{{"5", "5", "5+"}, {"3", "3", "3+"}, {"5", "3", "1+"}, {"5", "5", "5"}}
	for i, w := range cycle.Weeks {
		if w.WeekNumber != i+1 || w.WeekName != wantNames[i] {
			t.Errorf("week %d = (%d, %q), want (%d, %q)", i, w.WeekNumber, w.WeekName, i+1, wantNames[i])
		}
		for _, day := range w.Days {
			var reps []string
			amraps := 0
			for _, s := range day.Sets {
				reps = append(reps, s.TargetReps)
				if s.IsAmrap {
					amraps++
				}
			}
			if diff := cmp.Diff(wantReps[i], reps); diff != "" {
				t.Errorf("week %d %s reps mismatch (-want +got):\n%s", i+1, day.MainLift, diff)
			}
			if i < 3 {
				if amraps != 1 || !day.Sets[len(day.Sets)-1].IsAmrap {
					t.Errorf("week %d %s: want exactly the last set AMRAP", i+1, day.MainLift)
				}
			} else if amraps != 0 {
				t.Errorf("deload %s has %d AMRAP sets", day.MainLift, amraps)
			}
			if day.IsCompleted {
				t.Errorf("generated day %s is already completed", day.Date)
			}
		}
	}
}

func TestGenerateCycle_DaysSortedAndAligned(t *testing.T) {
	p := wendler.NewProfile("", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), models.Imperial, models.DisplayTotal,
		[]models.ScheduleEntry{
			{Day: models.Weekday(time.Tuesday), Lift: models.BenchPress},
			{Day: models.Weekday(time.Monday), Lift: models.Squat},
			{Day: models.Weekday(time.Wednesday), Lift: models.Deadlift},
		}, nil)

	days, err := wendler.WorkoutsInWeek(&p, 1, 1)
	if err != nil {
		t.Fatalf("WorkoutsInWeek: %v", err)
	}

	type dayLift struct {
		Date string
		Lift models.Lift
	}
	var got []dayLift
	for _, d := range days {
		got = append(got, dayLift{d.Date, d.MainLift})
	}
	want := []dayLift{
		{"2024-01-03", models.Deadlift},
		{"2024-01-08", models.Squat},
		{"2024-01-09", models.BenchPress},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("days mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateCycle_EdgeCases(t *testing.T) {
	t.Run("zero training max", func(t *testing.T) {
		cycle, err := wendler.GenerateCycle(squatProfile(models.Imperial, 0), 1)
		if err != nil {
			t.Fatalf("GenerateCycle: %v", err)
		}
		for _, w := range cycle.Weeks {
			for _, s := range w.Days[0].Sets {
				if s.TargetWeight != 0 {
					t.Errorf("weight = %v, want 0", s.TargetWeight)
				}
			}
		}
	})

	t.Run("empty schedule", func(t *testing.T) {
		p := squatProfile(models.Metric, 100)
		p.Schedule = nil
		cycle, err := wendler.GenerateCycle(p, 1)
		if err != nil {
			t.Fatalf("GenerateCycle: %v", err)
		}
		if len(cycle.Weeks) != 4 {
			t.Fatalf("got %d weeks, want 4", len(cycle.Weeks))
		}
		for _, w := range cycle.Weeks {
			if len(w.Days) != 0 {
				t.Errorf("week %d has %d days, want 0", w.WeekNumber, len(w.Days))
			}
		}
	})

	t.Run("errors", func(t *testing.T) {
		noStart := squatProfile(models.Metric, 100)
		noStart.StartDate = ""

		tests := []struct {
			name    string
			profile *models.UserProfile
			cycle   int
			want    error
		}{
			{"nil profile", nil, 1, wendler.ErrNoProfile},
			{"missing start date", noStart, 1, wendler.ErrNoStartDate},
			{"cycle zero", squatProfile(models.Metric, 100), 0, wendler.ErrInvalidCycle},
		}
		for _, tt := range tests {
			if _, err := wendler.GenerateCycle(tt.profile, tt.cycle); !errors.Is(err, tt.want) {
				t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
			}
		}
	})
}

func TestStaleTrainingMaxes(t *testing.T) {
	p := fullProfile(models.Imperial)
	if stale := wendler.StaleTrainingMaxes(p); len(stale) != 0 {
		t.Fatalf("fresh profile has stale maxes: %v", stale)
	}
	p.OneRepMaxes[models.Deadlift] = 455
	if diff := cmp.Diff([]models.Lift{models.Deadlift}, wendler.StaleTrainingMaxes(p)); diff != "" {
		t.Errorf("stale lifts mismatch (-want +got):\n%s", diff)
	}
}
