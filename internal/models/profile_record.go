package models

// ProfileRecord is the TOML form of a UserProfile. The TOML encoder only
// walks maps keyed by plain strings, so the maxes are keyed by lift id here.
type ProfileRecord struct {
	ID            string             `toml:"id"`
	Name          string             `toml:"name,omitempty"`
	StartDate     string             `toml:"start_date"`
	UnitSystem    UnitSystem         `toml:"unit_system"`
	WeightDisplay WeightDisplay      `toml:"weight_display"`
	Schedule      []ScheduleEntry    `toml:"schedule"`
	OneRepMaxes   map[string]float64 `toml:"one_rep_maxes"`
	TrainingMaxes map[string]float64 `toml:"training_maxes"`
}

// Record converts the profile for TOML encoding.
func (p UserProfile) Record() ProfileRecord {
	return ProfileRecord{
		ID:            p.ID,
		Name:          p.Name,
		StartDate:     p.StartDate,
		UnitSystem:    p.UnitSystem,
		WeightDisplay: p.WeightDisplay,
		Schedule:      append([]ScheduleEntry(nil), p.Schedule...),
		OneRepMaxes:   byLiftID(p.OneRepMaxes),
		TrainingMaxes: byLiftID(p.TrainingMaxes),
	}
}

// Profile converts a decoded record back. Unknown lift ids are kept so
// Validate can report them.
func (r ProfileRecord) Profile() UserProfile {
	return UserProfile{
		ID:            r.ID,
		Name:          r.Name,
		StartDate:     r.StartDate,
		UnitSystem:    r.UnitSystem,
		WeightDisplay: r.WeightDisplay,
		Schedule:      append([]ScheduleEntry(nil), r.Schedule...),
		OneRepMaxes:   byLift(r.OneRepMaxes),
		TrainingMaxes: byLift(r.TrainingMaxes),
	}
}

func byLiftID(m map[Lift]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

func byLift(m map[string]float64) map[Lift]float64 {
	if m == nil {
		return nil
	}
	out := make(map[Lift]float64, len(m))
	for k, v := range m {
		out[Lift(k)] = v
	}
	return out
}
