package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterclayt0n/wendler/internal/cache"
	"github.com/misterclayt0n/wendler/internal/config"
	"github.com/misterclayt0n/wendler/internal/logger"
	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/storage"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	cfg *config.Config
	log *logger.Logger

	cancelCommand context.CancelFunc = func() {}
)

var rootCmd = &cobra.Command{
	Use:           "wendler",
	Short:         "5/3/1 training planner: cycles, daily workouts and progress",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		mode := cfg.Log.Mode
		if verbose {
			mode = "development"
		}
		log, err = logger.New(mode)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		if cfg.Timeout.Duration > 0 {
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout.Duration)
			cancelCommand = cancel
			cmd.SetContext(ctx)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		cancelCommand()
		if log != nil {
			log.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
}

func openStorage(ctx context.Context) (*storage.Storage, error) {
	st, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return st, nil
}

// openCycleCache never fails: without Redis the cycles are generated.
func openCycleCache(ctx context.Context) *cache.CycleCache {
	c, err := cache.New(ctx, cfg.Cache, log)
	if err != nil {
		log.Warn("cycle cache disabled", "error", err)
		return nil
	}
	return c
}

// loadProfile returns the stored profile. When there is none it tells the
// user to run setup and returns nil without error.
func loadProfile(ctx context.Context, st *storage.Storage) (*models.UserProfile, error) {
	profile, err := st.GetProfile(ctx)
	if errors.Is(err, storage.ErrNoProfile) {
		printSetupHint()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile, nil
}
