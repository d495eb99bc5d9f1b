package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/misterclayt0n/wendler/internal/utils"
	"github.com/misterclayt0n/wendler/internal/wendler"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the workout scheduled for today (or --date)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		asOf := utils.Today(time.Local)
		if todayDate != "" {
			d, err := utils.ParseDate(todayDate)
			if err != nil {
				return err
			}
			asOf = d
		}

		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		profile, err := loadProfile(ctx, st)
		if err != nil || profile == nil {
			return err
		}

		pos, err := wendler.LocateCycleAndDay(profile, asOf)
		switch {
		case errors.Is(err, wendler.ErrNotStartedYet):
			fmt.Printf("The program has not started yet: it starts on %s.\n", profile.StartDate)
			return nil
		case errors.Is(err, wendler.ErrNoSchedule):
			fmt.Println(yellow("No training days scheduled. Add some with: wendler setup --schedule mon:squat,..."))
			return nil
		case errors.Is(err, wendler.ErrNoStartDate):
			printSetupHint()
			return nil
		case err != nil:
			return fmt.Errorf("failed to locate %s: %w", utils.FormatDate(asOf), err)
		}

		week := pos.Cycle.Weeks[pos.WeekNumber-1]
		fmt.Printf("%s  %s, cycle %d\n\n", cyan(utils.FormatDate(asOf)), week.WeekName, pos.CycleNumber)

		if pos.Day == nil {
			fmt.Println(green("Rest day."))
			date := utils.FormatDate(asOf)
			for _, day := range week.Days {
				if day.Date > date {
					fmt.Printf("Next up: %s on %s %s\n", day.MainLift.Name(), day.DayOfWeek.String(), day.Date)
					break
				}
			}
			return nil
		}

		logs, err := st.LogsBetween(ctx, pos.Day.Date, pos.Day.Date)
		if err != nil {
			return fmt.Errorf("failed to load workout logs: %w", err)
		}
		cycle := wendler.ApplyLogs(pos.Cycle, logs)
		for _, day := range cycle.Weeks[pos.WeekNumber-1].Days {
			if day.Date == pos.Day.Date && day.MainLift == pos.Day.MainLift {
				printDay(day, profile)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVarP(&todayDate, "date", "d", "", "Date to look up (YYYY-MM-DD)")
}
