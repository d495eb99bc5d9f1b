package cmd

import (
	"fmt"
	"os"

	"github.com/misterclayt0n/wendler/internal/config"
	"github.com/spf13/cobra"
)

var writeConfig bool

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database (and optionally a default config file)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()
		fmt.Println("✅ Database initialized successfully")

		hasProfile, err := st.HasProfile(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to check profile: %w", err)
		}
		if !hasProfile {
			printSetupHint()
		}

		if !writeConfig {
			return nil
		}
		path, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to locate config: %w", err)
		}
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Config already exists at %s\n", path)
			return nil
		}
		if err := config.Save(path, config.Default()); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("✅ Wrote default config to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
	initSetupCmd.Flags().BoolVar(&writeConfig, "config", false, "Also write a default config file")
}
