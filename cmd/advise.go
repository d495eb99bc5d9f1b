package cmd

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/wendler/internal/advice"
	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/wendler"
	"github.com/spf13/cobra"
)

var adviseLift string

// newAdvisor builds the advice collaborator from config.
var newAdvisor = func(apiKey, model string) (advice.Advisor, error) {
	return advice.New(apiKey, model, log)
}

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Ask for a training max adjustment based on recent sessions of a lift",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		lift, err := models.ParseLift(adviseLift)
		if err != nil {
			return err
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

		logs, err := st.RecentLogs(ctx, lift, wendler.AdviceHistoryLimit)
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}

		req, err := wendler.NewAdviceRequest(profile, logs, lift)
		if errors.Is(err, wendler.ErrNoHistory) {
			fmt.Printf("No %s sessions logged yet; keep the current training max.\n", lift.Name())
			return nil
		}
		if err != nil {
			return err
		}

		advisor, err := newAdvisor(cfg.Advice.APIKey, cfg.Advice.Model)
		if err != nil {
			return fmt.Errorf("advice unavailable: %w", err)
		}

		fmt.Printf("Asking for %s advice based on %d sessions...\n\n", lift.Name(), len(logs))
		recommendation, err := advisor.Recommend(ctx, req)
		if err != nil {
			// Stored data is untouched; only the advice failed.
			return fmt.Errorf("advice request failed: %w", err)
		}

		printBoxedHeader(fmt.Sprintf("%s ADVICE", lift.Name()))
		fmt.Println(recommendation)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adviseCmd)
	adviseCmd.Flags().StringVarP(&adviseLift, "lift", "l", "", "Lift to get advice for")
	adviseCmd.MarkFlagRequired("lift")
}
