package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/misterclayt0n/wendler/internal/utils"
	"github.com/misterclayt0n/wendler/internal/wendler"
	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week [cycle] [week]",
	Short: "Display one week of a cycle (defaults to the current week)",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		cycleNumber := wendler.CycleNumberFor(profile, utils.Today(time.Local))
		weekNumber := 1
		if pos, err := wendler.LocateCycleAndDay(profile, utils.Today(time.Local)); err == nil {
			weekNumber = pos.WeekNumber
		}
		if len(args) >= 1 {
			if cycleNumber, err = strconv.Atoi(args[0]); err != nil || cycleNumber < 1 {
				return fmt.Errorf("invalid cycle: %s", args[0])
			}
		}
		if len(args) == 2 {
			if weekNumber, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid week: %s", args[1])
			}
		}
		if weekNumber < 1 || weekNumber > wendler.CycleWeeks {
			return fmt.Errorf("%w: got %d", wendler.ErrInvalidWeek, weekNumber)
		}

		cc := openCycleCache(ctx)
		defer cc.Close()

		cycle, err := cycleWithLogs(ctx, st, cc, profile, cycleNumber)
		if err != nil {
			return err
		}

		fmt.Printf("%s, cycle %d\n", cyan("Week "+strconv.Itoa(weekNumber)), cycleNumber)
		printWeek(cycle.Weeks[weekNumber-1], profile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
