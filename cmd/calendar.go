package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/utils"
	"github.com/misterclayt0n/wendler/internal/wendler"
	"github.com/spf13/cobra"
)

// details is a flag to list the workouts below the grid.
var details bool

var liftColors = map[models.Lift]*color.Color{
	models.Squat:         color.New(color.FgRed),
	models.BenchPress:    color.New(color.FgBlue),
	models.Deadlift:      color.New(color.FgGreen),
	models.OverheadPress: color.New(color.FgYellow),
}

// calendarCmd prints the calendar grid.
// Training days are colored by their main lift and logged days carry a star.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a month of training days, colored by lift",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		profile, err := loadProfile(ctx, st)
		if err != nil || profile == nil {
			return err
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		logs, err := st.LogsBetween(ctx, utils.FormatDate(firstOfMonth), utils.FormatDate(lastOfMonth))
		if err != nil {
			return fmt.Errorf("failed to load workout logs: %w", err)
		}
		logged := make(map[string]bool)
		for _, l := range logs {
			logged[l.Date] = true
		}

		// Generate the cycles that overlap the month.
		workouts := make(map[int]models.DailyWorkout)
		for n := wendler.CycleNumberFor(profile, firstOfMonth); n <= wendler.CycleNumberFor(profile, lastOfMonth); n++ {
			cycle, err := wendler.GenerateCycle(profile, n)
			if err != nil {
				return fmt.Errorf("failed to generate cycle %d: %w", n, err)
			}
			for _, w := range cycle.Days() {
				d, err := time.Parse(models.DateLayout, w.Date)
				if err != nil || d.Year() != year || d.Month() != month {
					continue
				}
				workouts[d.Day()] = w
			}
		}

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if w, ok := workouts[day]; ok {
				mark := " "
				if logged[w.Date] {
					mark = "*"
				}
				dayStr = liftColors[w.MainLift].Sprint(dayStr) + mark
			} else {
				dayStr += " "
			}
			fmt.Print(dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Println("Legend:")
		for _, lift := range models.MainLifts {
			fmt.Printf("  %s: %s\n", liftColors[lift].Sprint("██"), lift.Name())
		}
		fmt.Println("  *: logged")

		if details {
			fmt.Println("\nWorkouts:")
			for day := 1; day <= lastOfMonth.Day(); day++ {
				w, ok := workouts[day]
				if !ok {
					continue
				}
				var sets []string
				for _, s := range w.Sets {
					sets = append(sets, fmt.Sprintf("%sx%s", wendler.FormatWeight(s.TargetWeight, profile), s.TargetReps))
				}
				fmt.Printf("  %s %s: %s\n", w.Date, w.MainLift.Name(), strings.Join(sets, ", "))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "List the workouts of the month")
}
