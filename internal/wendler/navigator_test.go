package wendler_test

import (
	"errors"
	"testing"
	"time"

	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/utils"
	"github.com/misterclayt0n/wendler/internal/wendler"
)

func date(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLocateCycleAndDay(t *testing.T) {
	profile := fullProfile(models.Imperial)

	tests := []struct {
		name     string
		asOf     string
		cycle    int
		week     int
		wantLift models.Lift // empty for rest days
	}{
		{"start date", "2024-01-01", 1, 1, models.Squat},
		{"rest day", "2024-01-02", 1, 1, ""},
		{"end of first week", "2024-01-07", 1, 1, ""},
		{"second week", "2024-01-10", 1, 2, models.BenchPress},
		{"deload saturday", "2024-01-27", 1, 4, models.OverheadPress},
		{"last day of cycle", "2024-01-28", 1, 4, ""},
		{"first day of cycle two", "2024-01-29", 2, 1, models.Squat},
		{"deep into the program", "2024-06-14", 6, 4, models.Deadlift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := wendler.LocateCycleAndDay(profile, date(tt.asOf))
			if err != nil {
				t.Fatalf("LocateCycleAndDay: %v", err)
			}
			if pos.CycleNumber != tt.cycle || pos.WeekNumber != tt.week {
				t.Errorf("position = cycle %d week %d, want cycle %d week %d",
					pos.CycleNumber, pos.WeekNumber, tt.cycle, tt.week)
			}
			if tt.wantLift == "" {
				if pos.Day != nil {
					t.Errorf("want rest day, got %s on %s", pos.Day.MainLift, pos.Day.Date)
				}
				return
			}
			if pos.Day == nil {
				t.Fatalf("want %s, got rest day", tt.wantLift)
			}
			if pos.Day.MainLift != tt.wantLift || pos.Day.Date != tt.asOf {
				t.Errorf("day = %s on %s, want %s on %s", pos.Day.MainLift, pos.Day.Date, tt.wantLift, tt.asOf)
			}
		})
	}
}

func TestLocateCycleAndDay_DayMatchesDate(t *testing.T) {
	profile := fullProfile(models.Metric)
	profile.StartDate = "2024-03-14" // a Thursday
	zone := time.FixedZone("UTC-3", -3*60*60)

	start := time.Date(2024, 3, 14, 23, 30, 0, 0, zone)
	for i := 0; i < 200; i++ {
		asOf := start.AddDate(0, 0, i)
		pos, err := wendler.LocateCycleAndDay(profile, asOf)
		if err != nil {
			t.Fatalf("day %d: %v", i, err)
		}
		if pos.Day != nil && pos.Day.Date != utils.FormatDate(asOf) {
			t.Fatalf("day %d: located %s for %s", i, pos.Day.Date, utils.FormatDate(asOf))
		}
		if want := i/28 + 1; pos.CycleNumber != want {
			t.Fatalf("day %d: cycle %d, want %d", i, pos.CycleNumber, want)
		}
	}
}

func TestLocateCycleAndDay_NoData(t *testing.T) {
	noSchedule := fullProfile(models.Imperial)
	noSchedule.Schedule = nil
	noStart := fullProfile(models.Imperial)
	noStart.StartDate = "not a date"

	tests := []struct {
		name    string
		profile *models.UserProfile
		asOf    string
		want    error
	}{
		{"nil profile", nil, "2024-01-01", wendler.ErrNoProfile},
		{"before start", fullProfile(models.Imperial), "2023-12-31", wendler.ErrNotStartedYet},
		{"empty schedule", noSchedule, "2024-01-01", wendler.ErrNoSchedule},
		{"bad start date", noStart, "2024-01-01", wendler.ErrNoStartDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := wendler.LocateCycleAndDay(tt.profile, date(tt.asOf))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if pos.CycleNumber != 0 || pos.Day != nil {
				t.Errorf("want empty position, got %+v", pos)
			}
		})
	}
}

func TestWorkoutsInWeek(t *testing.T) {
	days, err := wendler.WorkoutsInWeek(fullProfile(models.Imperial), 2, 3)
	if err != nil {
		t.Fatalf("WorkoutsInWeek: %v", err)
	}
	if len(days) != 4 || days[0].Date != "2024-02-12" || days[3].Date != "2024-02-17" {
		t.Errorf("unexpected days: %+v", days)
	}

	if _, err := wendler.WorkoutsInWeek(fullProfile(models.Imperial), 1, 5); !errors.Is(err, wendler.ErrInvalidWeek) {
		t.Errorf("week 5: err = %v, want ErrInvalidWeek", err)
	}
}

func TestCycleNumberFor(t *testing.T) {
	profile := fullProfile(models.Imperial)
	for asOf, want := range map[string]int{
		"2023-06-01": 1,
		"2024-01-01": 1,
		"2024-01-28": 1,
		"2024-01-29": 2,
		"2024-12-31": 14,
	} {
		if got := wendler.CycleNumberFor(profile, date(asOf)); got != want {
			t.Errorf("CycleNumberFor(%s) = %d, want %d", asOf, got, want)
		}
	}
}

func TestLocateCycleAndDay_DayIsDetached(t *testing.T) {
	pos, err := wendler.LocateCycleAndDay(fullProfile(models.Imperial), date("2024-01-01"))
	if err != nil {
		t.Fatalf("LocateCycleAndDay: %v", err)
	}
	if pos.Day == nil {
		t.Fatal("want the squat day")
	}
	want := pos.Cycle.Weeks[0].Days[0].Sets[0].TargetWeight

	reps := 5
	pos.Day.Sets[0].TargetWeight = 999
	pos.Day.Sets[0].CompletedReps = &reps

	got := pos.Cycle.Weeks[0].Days[0].Sets[0]
	if got.TargetWeight != want || got.CompletedReps != nil {
		t.Errorf("writing to the located day changed the cycle: %+v", got)
	}
}
