package cmd

import (
	"fmt"
	"strings"

	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/utils"
	"github.com/misterclayt0n/wendler/internal/wendler"
	"github.com/spf13/cobra"
)

var profileOut string

var showProfileCmd = &cobra.Command{
	Use:   "show-profile",
	Short: "Display the training profile, maxes and logged sessions per lift",
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

		if profileOut != "" {
			if err := utils.SaveProfileFile(profileOut, profile); err != nil {
				return fmt.Errorf("failed to write profile file: %w", err)
			}
			fmt.Printf("✅ Profile written to %s\n", profileOut)
			return nil
		}

		printProfile(profile)

		stats, err := st.LiftStats(ctx)
		if err != nil {
			return fmt.Errorf("failed to load lift stats: %w", err)
		}
		fmt.Println()
		for _, lift := range models.MainLifts {
			s, ok := stats[lift]
			if !ok {
				printMetric(lift.Name(), faint("never logged"))
				continue
			}
			printMetric(lift.Name(), fmt.Sprintf("%d sessions, last %s", s.Sessions, s.LastLogged))
		}
		return nil
	},
}

func printProfile(profile *models.UserProfile) {
	title := "PROFILE"
	if profile.Name != "" {
		title = strings.ToUpper(profile.Name)
	}
	printBoxedHeader(title)

	printMetric("Start date", profile.StartDate)
	printMetric("Units", profile.UnitSystem)
	printMetric("Weight display", profile.WeightDisplay)

	var days []string
	for _, entry := range profile.Schedule {
		days = append(days, fmt.Sprintf("%s %s", entry.Day.String()[:3], entry.Lift.Name()))
	}
	if len(days) == 0 {
		days = []string{faint("none")}
	}
	printMetric("Schedule", strings.Join(days, ", "))

	fmt.Println()
	suffix := profile.UnitSystem.Suffix()
	fmt.Printf("  %-16s %10s %10s\n", "", "1RM", "TM")
	for _, lift := range models.MainLifts {
		fmt.Printf("  %-16s %10s %10s\n", lift.Name(),
			wendler.FormatNumber(profile.OneRepMaxes[lift])+" "+suffix,
			wendler.FormatNumber(profile.TrainingMaxes[lift])+" "+suffix)
	}

	if stale := wendler.StaleTrainingMaxes(profile); len(stale) > 0 {
		var names []string
		for _, l := range stale {
			names = append(names, l.Name())
		}
		fmt.Println(yellow(fmt.Sprintf("\n  Training max differs from 90%% of 1RM for: %s", strings.Join(names, ", "))))
	}
}

func init() {
	rootCmd.AddCommand(showProfileCmd)
	showProfileCmd.Flags().StringVarP(&profileOut, "out", "o", "", "Write the profile to a TOML file instead")
}
