package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/storage"
	"github.com/misterclayt0n/wendler/internal/utils"
	"github.com/misterclayt0n/wendler/internal/wendler"
	"github.com/spf13/cobra"
)

var (
	setupFile     string
	setupName     string
	setupStart    string
	setupUnit     string
	setupDisplay  string
	setupSchedule string
	setupMaxes    = map[models.Lift]*float64{
		models.Squat:         new(float64),
		models.BenchPress:    new(float64),
		models.Deadlift:      new(float64),
		models.OverheadPress: new(float64),
	}
)

var maxFlags = map[models.Lift]string{
	models.Squat:         "squat",
	models.BenchPress:    "bench",
	models.Deadlift:      "deadlift",
	models.OverheadPress: "ohp",
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create or update the training profile",
	Long: `Create or update the training profile.

Flags that are not given keep their stored value. Changing any 1RM
recomputes every training max as round(1RM x 0.9). A profile file is saved
the same way: its training_maxes table is ignored.

  wendler setup --start 2024-01-01 --unit imperial --display platesPerSide \
    --schedule mon:squat,wed:bench,fri:deadlift,sat:ohp \
    --squat 315 --bench 225 --deadlift 405 --ohp 135

  wendler setup --file profile.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		var profile *models.UserProfile
		if setupFile != "" {
			profile, err = profileFromFile(setupFile)
		} else {
			profile, err = profileFromFlags(cmd, st)
		}
		if err != nil {
			return err
		}

		if err := st.SaveProfile(ctx, profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		fmt.Println("✅ Profile saved")
		printProfile(profile)
		return nil
	},
}

func profileFromFile(path string) (*models.UserProfile, error) {
	loaded, err := utils.LoadProfileFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	start, ok := loaded.Start()
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStartDate, loaded.StartDate)
	}
	if loaded.UnitSystem == "" {
		loaded.UnitSystem = models.Imperial
	}
	if loaded.WeightDisplay == "" {
		loaded.WeightDisplay = models.DisplayTotal
	}

	profile := wendler.NewProfile(loaded.Name, start, loaded.UnitSystem, loaded.WeightDisplay, loaded.Schedule, loaded.OneRepMaxes)
	if loaded.ID != "" {
		profile.ID = loaded.ID
	}
	return &profile, nil
}

func profileFromFlags(cmd *cobra.Command, st *storage.Storage) (*models.UserProfile, error) {
	flags := cmd.Flags()

	current, err := st.GetProfile(cmd.Context())
	switch {
	case errors.Is(err, storage.ErrNoProfile):
		fresh := wendler.NewProfile("", utils.Today(time.Local), models.Imperial, models.DisplayTotal, nil, nil)
		current = &fresh
	case err != nil:
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	profile := current.Clone()

	if flags.Changed("name") {
		profile.Name = setupName
	}
	if flags.Changed("start") {
		start, err := utils.ParseDate(setupStart)
		if err != nil {
			return nil, err
		}
		profile.StartDate = utils.FormatDate(start)
	}
	if flags.Changed("unit") {
		unit, err := parseUnit(setupUnit)
		if err != nil {
			return nil, err
		}
		profile.UnitSystem = unit
	}
	if flags.Changed("display") {
		display, err := parseDisplay(setupDisplay)
		if err != nil {
			return nil, err
		}
		profile.WeightDisplay = display
	}
	if flags.Changed("schedule") {
		schedule, err := parseSchedule(setupSchedule)
		if err != nil {
			return nil, err
		}
		profile.Schedule = schedule
	}

	maxesChanged := false
	maxes := make(map[models.Lift]float64, len(models.MainLifts))
	for _, lift := range models.MainLifts {
		maxes[lift] = profile.OneRepMaxes[lift]
		if flags.Changed(maxFlags[lift]) {
			maxes[lift] = *setupMaxes[lift]
			maxesChanged = true
		}
	}
	if maxesChanged {
		wendler.ApplyOneRepMaxes(&profile, maxes)
	}

	return &profile, nil
}

func parseUnit(s string) (models.UnitSystem, error) {
	switch strings.ToLower(s) {
	case "imperial", "lb", "lbs":
		return models.Imperial, nil
	case "metric", "kg":
		return models.Metric, nil
	}
	return "", fmt.Errorf("unknown unit system %q (imperial or metric)", s)
}

func parseDisplay(s string) (models.WeightDisplay, error) {
	switch strings.ToLower(s) {
	case "total":
		return models.DisplayTotal, nil
	case "platesperside", "plates", "per-side":
		return models.DisplayPlatesPerSide, nil
	}
	return "", fmt.Errorf("unknown weight display %q (total or platesPerSide)", s)
}

// parseSchedule reads "mon:squat,wed:bench". An empty string clears the schedule.
func parseSchedule(s string) ([]models.ScheduleEntry, error) {
	var schedule []models.ScheduleEntry
	seen := make(map[models.Weekday]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dayStr, liftStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("invalid schedule entry %q, expected day:lift", part)
		}
		day, err := models.ParseWeekday(dayStr)
		if err != nil {
			return nil, err
		}
		if seen[day] {
			return nil, fmt.Errorf("%w: %s", models.ErrDuplicateDay, day)
		}
		seen[day] = true
		lift, err := models.ParseLift(liftStr)
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, models.ScheduleEntry{Day: day, Lift: lift})
	}
	return schedule, nil
}

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.Flags().StringVarP(&setupFile, "file", "f", "", "Read the whole profile from a TOML file")
	setupCmd.Flags().StringVar(&setupName, "name", "", "Lifter name")
	setupCmd.Flags().StringVar(&setupStart, "start", "", "Program start date (YYYY-MM-DD)")
	setupCmd.Flags().StringVar(&setupUnit, "unit", "imperial", "Unit system: imperial or metric")
	setupCmd.Flags().StringVar(&setupDisplay, "display", "total", "Weight display: total or platesPerSide")
	setupCmd.Flags().StringVar(&setupSchedule, "schedule", "", "Training days, e.g. mon:squat,wed:bench,fri:deadlift,sat:ohp")
	for _, lift := range models.MainLifts {
		setupCmd.Flags().Float64Var(setupMaxes[lift], maxFlags[lift], 0, fmt.Sprintf("%s 1RM", lift.Name()))
	}
	setupCmd.MarkFlagsMutuallyExclusive("file", "schedule")
	setupCmd.MarkFlagsMutuallyExclusive("file", "start")
}
