package models

import (
	"fmt"
	"strings"
	"time"
)

// Lift identifies one of the four main lifts.
type Lift string

const (
	Squat         Lift = "squat"
	BenchPress    Lift = "benchPress"
	Deadlift      Lift = "deadlift"
	OverheadPress Lift = "overheadPress"
)

// MainLifts is the closed set of lifts in default day order.
var MainLifts = []Lift{Squat, BenchPress, Deadlift, OverheadPress}

var liftNames = map[Lift]string{
	Squat:         "Squat",
	BenchPress:    "Bench Press",
	Deadlift:      "Deadlift",
	OverheadPress: "Overhead Press",
}

// Name returns the display name of the lift.
func (l Lift) Name() string {
	if name, ok := liftNames[l]; ok {
		return name
	}
	return string(l)
}

func (l Lift) Valid() bool {
	_, ok := liftNames[l]
	return ok
}

// ParseLift accepts either the identifier or the display name, case insensitive.
// Short forms like "bench" and "ohp" are accepted too.
func ParseLift(s string) (Lift, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, l := range MainLifts {
		if needle == strings.ToLower(string(l)) || needle == strings.ToLower(l.Name()) {
			return l, nil
		}
	}
	switch needle {
	case "bench":
		return BenchPress, nil
	case "ohp", "press":
		return OverheadPress, nil
	case "dl":
		return Deadlift, nil
	}
	return "", fmt.Errorf("unknown lift %q", s)
}

// Weekday is a time.Weekday that serializes as its English name ("Monday").
type Weekday time.Weekday

func (d Weekday) String() string {
	return time.Weekday(d).String()
}

func (d Weekday) MarshalText() ([]byte, error) {
	if d < 0 || d > 6 {
		return nil, fmt.Errorf("invalid weekday %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseWeekday parses full ("Monday") or three letter ("mon") weekday names.
func ParseWeekday(s string) (Weekday, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if needle == name || needle == name[:3] {
			return Weekday(wd), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// ScheduleEntry assigns a main lift to a day of the week.
type ScheduleEntry struct {
	Day  Weekday `json:"day" toml:"day" yaml:"day"`
	Lift Lift    `json:"lift" toml:"lift" yaml:"lift"`
}
