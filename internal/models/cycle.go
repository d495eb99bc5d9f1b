package models

// WorkoutCycle is one generated four week block.
type WorkoutCycle struct {
	CycleNumber int             `json:"cycleNumber" toml:"cycle_number" yaml:"cycleNumber"`
	StartDate   string          `json:"startDate" toml:"start_date" yaml:"startDate"`
	EndDate     string          `json:"endDate" toml:"end_date" yaml:"endDate"`
	Weeks       []WeeklyWorkout `json:"weeks" toml:"week" yaml:"weeks"`
}

type WeeklyWorkout struct {
	WeekNumber int            `json:"weekNumber" toml:"week_number" yaml:"weekNumber"`
	WeekName   string         `json:"weekName" toml:"week_name" yaml:"weekName"`
	Days       []DailyWorkout `json:"days" toml:"day" yaml:"days"`
}

type DailyWorkout struct {
	Date        string       `json:"date" toml:"date" yaml:"date"`
	DayOfWeek   Weekday      `json:"dayOfWeek" toml:"day_of_week" yaml:"dayOfWeek"`
	MainLift    Lift         `json:"mainLift" toml:"main_lift" yaml:"mainLift"`
	Sets        []WorkoutSet `json:"sets" toml:"set" yaml:"sets"`
	IsCompleted bool         `json:"isCompleted" toml:"is_completed" yaml:"isCompleted"`
}

type WorkoutSet struct {
	Percentage    float64 `json:"percentage" toml:"percentage" yaml:"percentage"`
	TargetReps    string  `json:"targetReps" toml:"target_reps" yaml:"targetReps"` // "5", or "5+" for AMRAP.
	TargetWeight  float64 `json:"targetWeight" toml:"target_weight" yaml:"targetWeight"`
	IsAmrap       bool    `json:"isAmrap" toml:"is_amrap" yaml:"isAmrap"`
	CompletedReps *int    `json:"completedReps,omitempty" toml:"completed_reps,omitempty" yaml:"completedReps,omitempty"`
}

// Clone returns a deep copy so that updates never leak into a cycle other
// readers still hold.
func (c *WorkoutCycle) Clone() *WorkoutCycle {
	if c == nil {
		return nil
	}
	out := *c
	out.Weeks = make([]WeeklyWorkout, len(c.Weeks))
	for i, w := range c.Weeks {
		out.Weeks[i] = w
		out.Weeks[i].Days = make([]DailyWorkout, len(w.Days))
		for j, d := range w.Days {
			out.Weeks[i].Days[j] = d.Clone()
		}
	}
	return &out
}

func (d DailyWorkout) Clone() DailyWorkout {
	sets := make([]WorkoutSet, len(d.Sets))
	for i, s := range d.Sets {
		sets[i] = s
		if s.CompletedReps != nil {
			reps := *s.CompletedReps
			sets[i].CompletedReps = &reps
		}
	}
	d.Sets = sets
	return d
}

// Days returns every scheduled day of the cycle in week order.
func (c *WorkoutCycle) Days() []DailyWorkout {
	if c == nil {
		return nil
	}
	var days []DailyWorkout
	for _, w := range c.Weeks {
		days = append(days, w.Days...)
	}
	return days
}
