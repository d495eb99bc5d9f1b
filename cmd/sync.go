package cmd

import (
	"fmt"
	"os"

	"github.com/misterclayt0n/wendler/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	importMerge  bool
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export the profile and workout log to a TOML or YAML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := storage.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		var outputFile string
		if len(args) == 1 {
			outputFile = args[0]
			if !cmd.Flags().Changed("format") {
				if inferred, err := storage.ParseFormat(outputFile); err == nil {
					format = inferred
				}
			}
		} else if outputFile, err = storage.GetDBExportPath(format); err != nil {
			return err
		}

		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("error creating export file: %w", err)
		}
		defer f.Close()

		if err := st.Export(ctx, f, format); err != nil {
			return fmt.Errorf("error exporting database: %w", err)
		}

		fmt.Printf("✅ Database exported successfully to %s\n", outputFile)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [dump-file]",
	Short: "Rebuild the database from an exported TOML or YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dumpFile := args[0]
		format, err := storage.ParseFormat(dumpFile)
		if err != nil {
			return err
		}

		f, err := os.Open(dumpFile)
		if err != nil {
			return fmt.Errorf("reading file %s: %w", dumpFile, err)
		}
		defer f.Close()

		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.Import(ctx, f, format, importMerge)
		if err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		fmt.Printf("✅ Imported %d workouts", stats.Logs)
		if stats.Skipped > 0 {
			fmt.Printf(" (%d already present)", stats.Skipped)
		}
		if stats.Profile {
			fmt.Print(" and the profile")
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "toml", "Dump format: toml or yaml")
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "Keep stored data and add missing workouts")
}
