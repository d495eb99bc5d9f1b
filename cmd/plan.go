package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/misterclayt0n/wendler/internal/cache"
	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/storage"
	"github.com/misterclayt0n/wendler/internal/utils"
	"github.com/misterclayt0n/wendler/internal/wendler"
	"github.com/spf13/cobra"
)

var planCycle int

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Display a whole 4 week cycle (defaults to the current one)",
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

		n := planCycle
		if n == 0 {
			n = wendler.CycleNumberFor(profile, utils.Today(time.Local))
		}

		cc := openCycleCache(ctx)
		defer cc.Close()

		cycle, err := cycleWithLogs(ctx, st, cc, profile, n)
		if err != nil {
			return err
		}

		printBoxedHeader(fmt.Sprintf("CYCLE %d", cycle.CycleNumber))
		fmt.Printf("%s → %s\n", cycle.StartDate, cycle.EndDate)
		for _, week := range cycle.Weeks {
			printWeek(week, profile)
		}
		if len(profile.Schedule) == 0 {
			fmt.Println(yellow("\nNo training days scheduled. Add some with: wendler setup --schedule mon:squat,..."))
		}
		return nil
	},
}

// cycleWithLogs generates cycle n (through the cache) and marks the days
// already logged.
func cycleWithLogs(ctx context.Context, st *storage.Storage, cc *cache.CycleCache,
	profile *models.UserProfile, n int) (*models.WorkoutCycle, error) {
	cycle, err := cc.Cycle(ctx, profile, n)
	if err != nil {
		return nil, fmt.Errorf("failed to generate cycle %d: %w", n, err)
	}
	logs, err := st.LogsBetween(ctx, cycle.StartDate, cycle.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load workout logs: %w", err)
	}
	return wendler.ApplyLogs(cycle, logs), nil
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().IntVarP(&planCycle, "cycle", "c", 0, "Cycle number (1 is the first)")
}
