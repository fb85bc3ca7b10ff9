package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timecard/internal/config"
	"timecard/internal/importer"
	"timecard/internal/store"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import punch and rule spreadsheets",
	}

	importCmd.AddCommand(newImportPunchesCommand(ctx))
	importCmd.AddCommand(newImportRulesCommand(ctx))

	return importCmd
}

func newImportPunchesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "punches <file>",
		Short: "Import a punch sheet (.xlsx or .csv)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				logger, err := ctx.ensureLogger()
				if err != nil {
					return err
				}
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open sheet: %w", err)
				}
				defer file.Close()

				summary, err := importer.New(cfg, st, logger).ImportPunches(cmd.Context(), file, args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Rows accepted:    %d\n", summary.Accepted)
				fmt.Fprintf(out, "Batch duplicates: %d\n", summary.Deduplicated)
				fmt.Fprintf(out, "Already stored:   %d\n", summary.Duplicates)
				fmt.Fprintf(out, "Inserted:         %d\n", summary.Inserted)
				if summary.BatchID != "" {
					fmt.Fprintf(out, "Batch id:         %s\n", summary.BatchID)
				}
				return nil
			})
		},
	}
}

func newImportRulesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rules <file>",
		Short: "Import a partner rule sheet, replacing the stored rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				logger, err := ctx.ensureLogger()
				if err != nil {
					return err
				}
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open sheet: %w", err)
				}
				defer file.Close()

				count, err := importer.New(cfg, st, logger).ImportRules(cmd.Context(), file, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d partner rules\n", count)
				return nil
			})
		},
	}
}
