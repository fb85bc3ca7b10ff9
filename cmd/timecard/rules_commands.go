package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"timecard/internal/config"
	"timecard/internal/store"
)

func newRulesCommand(ctx *commandContext) *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage employee-to-partner rules",
	}

	rulesCmd.AddCommand(newRulesListCommand(ctx))
	rulesCmd.AddCommand(newRulesSetCommand(ctx))
	rulesCmd.AddCommand(newRulesRemoveCommand(ctx))

	return rulesCmd
}

func newRulesListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored partner rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				rules, err := st.Rules(cmd.Context())
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(rules))
				for _, rule := range rules {
					rows = append(rows, []string{
						rule.Employee,
						rule.Partner,
						fmt.Sprintf("%d", rule.WeeklyGoal),
						rule.UpdatedAt.Format("2006-01-02 15:04"),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Colaborador", "Sócio", "Meta semanal", "Atualizado"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}

func newRulesSetCommand(ctx *commandContext) *cobra.Command {
	var partner string
	var goal int

	cmd := &cobra.Command{
		Use:   "set <employee>",
		Short: "Create or update the rule for one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				weeklyGoal := goal
				if weeklyGoal == 0 {
					weeklyGoal = cfg.Rules.DefaultWeeklyGoal
				}
				if weeklyGoal < 1 || weeklyGoal > 7 {
					return fmt.Errorf("weekly goal must be between 1 and 7, got %d", weeklyGoal)
				}
				if err := st.SetRule(cmd.Context(), args[0], partner, weeklyGoal); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Rule saved for %s (goal %d/week)\n", args[0], weeklyGoal)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&partner, "partner", "", "Partner responsible for the employee")
	cmd.Flags().IntVar(&goal, "goal", 0, "Weekly presence goal in days (defaults from config)")
	return cmd
}

func newRulesRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <employee>",
		Short: "Delete the rule for one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				removed, err := st.RemoveRule(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("no rule found for %q", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Rule removed for %s\n", args[0])
				return nil
			})
		},
	}
}
