package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/misterclayt0n/wendler/internal/storage"
	"github.com/misterclayt0n/wendler/internal/utils"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Zero all maxes, clear the schedule, restart today and delete the workout log",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Print(red("This deletes every logged workout. Continue? [y/N] "))
			answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		profile, err := st.ResetProgress(ctx, utils.Today(time.Local))
		if errors.Is(err, storage.ErrNoProfile) {
			printSetupHint()
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to reset progress: %w", err)
		}

		fmt.Printf("✅ Progress reset; the program now starts on %s\n", profile.StartDate)
		fmt.Println("Set new maxes and a schedule with: wendler setup")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Do not ask for confirmation")
}
