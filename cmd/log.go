package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/utils"
	"github.com/misterclayt0n/wendler/internal/wendler"
	"github.com/spf13/cobra"
)

var (
	logDate   string
	logLift   string
	logReps   string
	logWeight float64
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a completed workout",
	Long: `Record a completed workout.

Reps default to the prescription for fixed sets; AMRAP sets need an explicit
count. Workouts off the plan can be logged with --weight.

  wendler log --reps 5,5,9
  wendler log --date 2024-01-08 --lift squat --reps 5,5,7
  wendler log --date 2024-01-09 --lift deadlift --weight 315 --reps 5,5,5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		date := utils.Today(time.Local)
		if logDate != "" {
			d, err := utils.ParseDate(logDate)
			if err != nil {
				return err
			}
			date = d
		}

		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		profile, err := st.GetProfile(ctx)
		if err != nil {
			return fmt.Errorf("cannot log without a profile, run setup first: %w", err)
		}

		var cycle *models.WorkoutCycle
		pos, err := wendler.LocateCycleAndDay(profile, date)
		switch {
		case err == nil:
			cycle = pos.Cycle
		case errors.Is(err, wendler.ErrNotStartedYet), errors.Is(err, wendler.ErrNoSchedule):
		default:
			return fmt.Errorf("failed to locate %s: %w", utils.FormatDate(date), err)
		}

		var lift models.Lift
		switch {
		case logLift != "":
			if lift, err = models.ParseLift(logLift); err != nil {
				return err
			}
		case pos.Day != nil:
			lift = pos.Day.MainLift
		default:
			return fmt.Errorf("nothing scheduled on %s, pass --lift", utils.FormatDate(date))
		}

		reps, err := parseReps(logReps)
		if err != nil {
			return err
		}

		var day *models.DailyWorkout
		if pos.Day != nil && pos.Day.MainLift == lift {
			day = pos.Day
		}

		var completed []models.CompletedSet
		if cmd.Flags().Changed("weight") || day == nil {
			completed, err = offPlanSets(logWeight, reps)
		} else {
			completed, err = plannedSets(*day, reps)
		}
		if err != nil {
			return err
		}

		result, err := wendler.RecordCompletion(profile, cycle, utils.FormatDate(date), lift, completed)
		if err != nil {
			return fmt.Errorf("failed to record workout: %w", err)
		}
		if err := st.AppendLog(ctx, result.Log); err != nil {
			return fmt.Errorf("failed to save workout: %w", err)
		}

		if !result.Matched {
			log.Warn("logged workout does not match the plan", "date", result.Log.Date, "lift", lift)
			fmt.Println(yellow(fmt.Sprintf("No %s scheduled on %s; logged off-plan.", lift.Name(), result.Log.Date)))
		}
		fmt.Printf("✅ Logged %s on %s (%s)\n", lift.Name(), result.Log.Date, faint(result.Log.LogID))

		if top, ok := wendler.TopSet(result.Log); ok && top.ActualReps > 0 {
			e1rm := utils.EstimatedOneRepMax(top.PrescribedWeight, top.ActualReps)
			printMetric("Top set", fmt.Sprintf("%s x %d", wendler.FormatWeight(top.PrescribedWeight, profile), top.ActualReps))
			printMetric("Estimated 1RM", wendler.FormatNumber(e1rm)+" "+profile.UnitSystem.Suffix())
		}
		return nil
	},
}

// parseReps reads "5,5,8". An empty string means "use the prescription".
func parseReps(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var reps []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid reps %q", part)
		}
		reps = append(reps, n)
	}
	return reps, nil
}

// plannedSets fills the prescription of day with the reported reps.
func plannedSets(day models.DailyWorkout, reps []int) ([]models.CompletedSet, error) {
	completed := wendler.DefaultCompletedSets(day)
	if len(reps) > len(completed) {
		return nil, fmt.Errorf("%d reps given for %d sets", len(reps), len(completed))
	}
	for i, n := range reps {
		completed[i].ActualReps = n
	}
	for i := len(reps); i < len(completed); i++ {
		if completed[i].IsAmrap {
			return nil, fmt.Errorf("set %d is AMRAP (%s), give its reps with --reps", i+1, completed[i].PrescribedReps)
		}
	}
	return completed, nil
}

func offPlanSets(weight float64, reps []int) ([]models.CompletedSet, error) {
	if weight <= 0 || len(reps) == 0 {
		return nil, fmt.Errorf("off-plan workouts need --weight and --reps")
	}
	completed := make([]models.CompletedSet, len(reps))
	for i, n := range reps {
		completed[i] = models.CompletedSet{
			PrescribedWeight: weight,
			PrescribedReps:   strconv.Itoa(n),
			ActualReps:       n,
		}
	}
	return completed, nil
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "Workout date (YYYY-MM-DD), defaults to today")
	logCmd.Flags().StringVarP(&logLift, "lift", "l", "", "Main lift, defaults to the one scheduled")
	logCmd.Flags().StringVarP(&logReps, "reps", "r", "", "Reps per set, e.g. 5,5,8")
	logCmd.Flags().Float64VarP(&logWeight, "weight", "w", 0, "Weight for off-plan sets")
}
