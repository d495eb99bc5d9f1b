package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/utils"
	"github.com/misterclayt0n/wendler/internal/wendler"
	"github.com/spf13/cobra"
)

var (
	filterLift   string
	historyLimit int
)

// historyCmd lists logged workouts grouped by date, most recent first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display logged workouts, optionally filtered by lift",
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

		var logs []models.WorkoutLogEntry
		if filterLift != "" {
			lift, err := models.ParseLift(filterLift)
			if err != nil {
				return err
			}
			logs, err = st.RecentLogs(ctx, lift, historyLimit)
			if err != nil {
				return fmt.Errorf("failed to retrieve workouts: %w", err)
			}
		} else {
			all, err := st.ListLogs(ctx)
			if err != nil {
				return fmt.Errorf("failed to retrieve workouts: %w", err)
			}
			sort.SliceStable(all, func(i, j int) bool { return all[i].Date > all[j].Date })
			if historyLimit > 0 && len(all) > historyLimit {
				all = all[:historyLimit]
			}
			logs = all
		}

		if len(logs) == 0 {
			fmt.Println("No workouts logged yet.")
			return nil
		}

		lastDate := ""
		for _, entry := range logs {
			if entry.Date != lastDate {
				fmt.Printf("\n%s\n", cyan(entry.Date))
				lastDate = entry.Date
			}

			var sets []string
			for _, s := range entry.CompletedSets {
				set := fmt.Sprintf("%s x %d", wendler.FormatNumber(s.PrescribedWeight), s.ActualReps)
				if s.IsAmrap {
					set = yellow(set)
				}
				sets = append(sets, set)
			}
			fmt.Printf("  %s %s\n", magentaB(entry.Exercise.Name()), faint("TM "+wendler.FormatNumber(entry.TrainingMaxUsed)))
			fmt.Printf("    %s %s\n", strings.Join(sets, ", "), profile.UnitSystem.Suffix())

			if top, ok := wendler.TopSet(entry); ok && top.ActualReps > 0 {
				e1rm := utils.EstimatedOneRepMax(top.PrescribedWeight, top.ActualReps)
				fmt.Printf("    %s %s\n", faint("e1RM"), wendler.FormatNumber(e1rm))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&filterLift, "lift", "l", "", "Only show this lift")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Show at most this many workouts")
}
