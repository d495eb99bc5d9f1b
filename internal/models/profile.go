package models

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used at every boundary.
const DateLayout = "2006-01-02"

type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// Suffix returns the weight unit label.
func (u UnitSystem) Suffix() string {
	if u == Metric {
		return "kg"
	}
	return "lb"
}

type WeightDisplay string

const (
	DisplayTotal         WeightDisplay = "total"
	DisplayPlatesPerSide WeightDisplay = "platesPerSide"
)

// UserProfile drives every computation of the planner.
// TrainingMaxes is a snapshot taken when the profile is saved and is never
// derived from OneRepMaxes on the fly. TOML goes through ProfileRecord.
type UserProfile struct {
	ID            string           `json:"id" yaml:"id"`
	Name          string           `json:"name,omitempty" yaml:"name,omitempty"`
	StartDate     string           `json:"startDate" yaml:"startDate"`
	UnitSystem    UnitSystem       `json:"unitSystem" yaml:"unitSystem"`
	WeightDisplay WeightDisplay    `json:"weightDisplayPreference" yaml:"weightDisplayPreference"`
	Schedule      []ScheduleEntry  `json:"workoutSchedule" yaml:"workoutSchedule"`
	OneRepMaxes   map[Lift]float64 `json:"oneRepMaxes" yaml:"oneRepMaxes"`
	TrainingMaxes map[Lift]float64 `json:"trainingMaxes" yaml:"trainingMaxes"`
}

var (
	ErrInvalidStartDate = errors.New("invalid start date")
	ErrDuplicateDay     = errors.New("more than one lift scheduled on the same day")
	ErrUnknownLift      = errors.New("unknown lift")
	ErrNegativeMax      = errors.New("maxes must not be negative")
)

// Start parses StartDate. The zero time and false are returned when it is
// missing or malformed.
func (p *UserProfile) Start() (time.Time, bool) {
	if p == nil || p.StartDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, p.StartDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Validate checks the structural invariants of the profile. An empty
// schedule is valid; it simply means nothing is planned.
func (p *UserProfile) Validate() error {
	var errs []error

	if _, ok := p.Start(); !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidStartDate, p.StartDate))
	}
	if p.UnitSystem != Metric && p.UnitSystem != Imperial {
		errs = append(errs, fmt.Errorf("unknown unit system %q", p.UnitSystem))
	}
	if p.WeightDisplay != DisplayTotal && p.WeightDisplay != DisplayPlatesPerSide {
		errs = append(errs, fmt.Errorf("unknown weight display preference %q", p.WeightDisplay))
	}

	seen := make(map[Weekday]bool)
	for _, entry := range p.Schedule {
		if seen[entry.Day] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateDay, entry.Day))
		}
		seen[entry.Day] = true
		if !entry.Lift.Valid() {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownLift, entry.Lift))
		}
	}

	for _, maxes := range []map[Lift]float64{p.OneRepMaxes, p.TrainingMaxes} {
		for lift, v := range maxes {
			if !lift.Valid() {
				errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownLift, lift))
			}
			if v < 0 {
				errs = append(errs, fmt.Errorf("%w: %s = %v", ErrNegativeMax, lift, v))
			}
		}
	}

	return errors.Join(errs...)
}

// Reset zeroes every max, clears the schedule and re-anchors the program on
// today. Identity and presentation preferences survive.
func (p UserProfile) Reset(today time.Time) UserProfile {
	p.OneRepMaxes = make(map[Lift]float64, len(MainLifts))
	p.TrainingMaxes = make(map[Lift]float64, len(MainLifts))
	for _, l := range MainLifts {
		p.OneRepMaxes[l] = 0
		p.TrainingMaxes[l] = 0
	}
	p.Schedule = nil
	p.StartDate = today.Format(DateLayout)
	return p
}

// Clone returns a deep copy of the profile.
func (p UserProfile) Clone() UserProfile {
	p.Schedule = append([]ScheduleEntry(nil), p.Schedule...)
	p.OneRepMaxes = cloneMaxes(p.OneRepMaxes)
	p.TrainingMaxes = cloneMaxes(p.TrainingMaxes)
	return p
}

func cloneMaxes(m map[Lift]float64) map[Lift]float64 {
	if m == nil {
		return nil
	}
	out := make(map[Lift]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
