package cmd

import (
	"fmt"
	"os"

	"github.com/misterclayt0n/wendler/internal/chart"
	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/wendler"
	"github.com/spf13/cobra"
)

var (
	progressLift  string
	progressChart string
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the estimated 1RM trend per lift, optionally as a PNG chart",
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

		lifts := models.MainLifts
		if progressLift != "" {
			lift, err := models.ParseLift(progressLift)
			if err != nil {
				return err
			}
			lifts = []models.Lift{lift}
		}
		if progressChart != "" && len(lifts) != 1 {
			return fmt.Errorf("--chart needs a single --lift")
		}

		logs, err := st.ListLogs(ctx)
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}

		printBoxedHeader("PROGRESS")
		suffix := profile.UnitSystem.Suffix()
		for _, lift := range lifts {
			points := wendler.E1RMTrend(logs, lift)
			fmt.Printf("\n%s\n", magentaB(lift.Name()))
			if len(points) == 0 {
				fmt.Println(faint("  no usable sets logged"))
				continue
			}

			for i, pt := range points {
				delta := ""
				if i > 0 {
					d := pt.E1RM - points[i-1].E1RM
					switch {
					case d > 0:
						delta = green(fmt.Sprintf("+%s", wendler.FormatNumber(d)))
					case d < 0:
						delta = red(wendler.FormatNumber(d))
					}
				}
				fmt.Printf("  %s  %s %s x %d  → %s %s %s\n", pt.Date,
					wendler.FormatNumber(pt.Weight), suffix, pt.Reps,
					wendler.FormatNumber(pt.E1RM), suffix, delta)
			}

			best := points[0]
			for _, pt := range points {
				if pt.E1RM > best.E1RM {
					best = pt
				}
			}
			printMetric("Best e1RM", fmt.Sprintf("%s %s on %s", wendler.FormatNumber(best.E1RM), suffix, best.Date))
			printMetric("Current 1RM", fmt.Sprintf("%s %s", wendler.FormatNumber(profile.OneRepMaxes[lift]), suffix))

			if progressChart != "" {
				png, err := chart.RenderTrend(points, lift, profile.UnitSystem)
				if err != nil {
					return fmt.Errorf("failed to render chart: %w", err)
				}
				if err := os.WriteFile(progressChart, png, 0644); err != nil {
					return fmt.Errorf("failed to write chart: %w", err)
				}
				fmt.Printf("\n✅ Chart written to %s\n", progressChart)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.Flags().StringVarP(&progressLift, "lift", "l", "", "Only show this lift")
	progressCmd.Flags().StringVar(&progressChart, "chart", "", "Write a PNG chart of the trend to this file")
}
