package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"timecard/internal/config"
	"timecard/internal/store"
)

func newDBCommand(ctx *commandContext) *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Punch database maintenance",
	}

	dbCmd.AddCommand(newDBHealthCommand(ctx))
	dbCmd.AddCommand(newDBClearCommand(ctx))

	return dbCmd
}

func newDBHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check database integrity and report row counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				health, err := st.CheckHealth(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Database:  %s\n", health.DBPath)
				fmt.Fprintf(out, "Exists:    %s\n", yesNo(health.DatabaseExists))
				fmt.Fprintf(out, "Integrity: %s\n", yesNo(health.IntegrityOK))
				fmt.Fprintf(out, "Punches:   %d\n", health.PunchCount)
				fmt.Fprintf(out, "Rules:     %d\n", health.RuleCount)
				if health.FirstPunch != "" {
					fmt.Fprintf(out, "Range:     %s .. %s\n", health.FirstPunch, health.LastPunch)
				}
				if !health.IntegrityOK && health.DatabaseExists {
					return fmt.Errorf("database failed the integrity check")
				}
				return nil
			})
		},
	}
}

func newDBClearCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored punch (rules are kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to delete punches without --force")
			}
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				removed, err := st.ClearPunches(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d punches\n", removed)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deletion of all punches")
	return cmd
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
