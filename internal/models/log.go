package models

import "time"

// CompletedSet is what the lifter reports for one prescribed set.
type CompletedSet struct {
	PrescribedWeight float64 `json:"prescribedWeight" toml:"prescribed_weight" yaml:"prescribedWeight"`
	PrescribedReps   string  `json:"prescribedReps" toml:"prescribed_reps" yaml:"prescribedReps"`
	ActualReps       int     `json:"actualReps" toml:"actual_reps" yaml:"actualReps"`
	IsAmrap          bool    `json:"isAmrap" toml:"is_amrap" yaml:"isAmrap"`
}

// WorkoutLogEntry is an immutable historical record. Entries are only ever
// appended, or wiped wholesale by a profile reset.
type WorkoutLogEntry struct {
	LogID           string         `json:"logId" toml:"log_id" yaml:"logId"`
	Date            string         `json:"date" toml:"date" yaml:"date"`
	Exercise        Lift           `json:"exercise" toml:"exercise" yaml:"exercise"`
	CompletedSets   []CompletedSet `json:"completedSets" toml:"completed_sets" yaml:"completedSets"`
	TrainingMaxUsed float64        `json:"trainingMaxUsed" toml:"training_max_used" yaml:"trainingMaxUsed"`
	LoggedAt        time.Time      `json:"loggedAt" toml:"logged_at" yaml:"loggedAt"`
}
