package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timecard/internal/config"
	"timecard/internal/report"
	"timecard/internal/store"
	"timecard/internal/timecard"
)

type reportFlags struct {
	from     string
	to       string
	month    string
	employee string
	partner  string
	search   string
	jsonOut  bool
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "Range start (yyyy-mm-dd)")
	cmd.Flags().StringVar(&f.to, "to", "", "Range end (yyyy-mm-dd, inclusive)")
	cmd.Flags().StringVar(&f.month, "month", "", "Limit to one month (yyyy-mm)")
	cmd.Flags().StringVar(&f.employee, "employee", "", "Limit to one employee")
	cmd.Flags().StringVar(&f.partner, "partner", "", "Limit to one partner's employees")
	cmd.Flags().StringVar(&f.search, "search", "", "Match employee or partner names")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "Emit JSON instead of a table")
}

func (f *reportFlags) filter() report.Filter {
	return report.Filter{
		Employee: f.employee,
		Partner:  f.partner,
		Month:    f.month,
		Search:   f.search,
	}
}

func newReportCommand(ctx *commandContext) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Attendance reports over stored punches",
	}

	reportCmd.AddCommand(newReportHoursCommand(ctx))
	reportCmd.AddCommand(newReportPresenceCommand(ctx))
	reportCmd.AddCommand(newReportDescriptiveCommand(ctx))

	return reportCmd
}

// resolveRange turns the range flags into an inclusive timestamp span. With no
// flags the range defaults to the calendar month of the most recent punch, so
// a fresh report lands on the data that was just imported.
func resolveRange(ctx context.Context, st *store.Store, flags *reportFlags) (time.Time, time.Time, error) {
	if flags.from != "" || flags.to != "" {
		if flags.from == "" || flags.to == "" {
			return time.Time{}, time.Time{}, fmt.Errorf("--from and --to must be given together")
		}
		from, err := time.ParseInLocation("2006-01-02", flags.from, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse --from: %w", err)
		}
		to, err := time.ParseInLocation("2006-01-02", flags.to, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse --to: %w", err)
		}
		return from, endOfDay(to), nil
	}

	if flags.month != "" {
		start, err := time.ParseInLocation("2006-01", flags.month, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse --month: %w", err)
		}
		return start, start.AddDate(0, 1, 0).Add(-time.Second), nil
	}

	latest, ok, err := st.LatestPunch(ctx)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !ok {
		latest = time.Now()
	}
	start := time.Date(latest.Year(), latest.Month(), 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0).Add(-time.Second), nil
}

func endOfDay(day time.Time) time.Time {
	return day.Add(24*time.Hour - time.Second)
}

// loadRecords reconstructs the daily attendance records for the span.
func loadRecords(ctx context.Context, st *store.Store, from, to time.Time) ([]timecard.Record, error) {
	events, err := st.PunchesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return timecard.BuildRecords(timecard.GroupByDay(events)), nil
}

func loadReportRules(ctx context.Context, st *store.Store) ([]report.Rule, error) {
	rules, err := st.Rules(ctx)
	if err != nil {
		return nil, err
	}
	return store.ReportRules(rules), nil
}

func slotClock(slot *time.Time) string {
	if slot == nil {
		return "-"
	}
	return slot.Format("15:04")
}

func writeJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func newReportHoursCommand(ctx *commandContext) *cobra.Command {
	flags := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Worked time per employee per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				from, to, err := resolveRange(cmd.Context(), st, flags)
				if err != nil {
					return err
				}
				records, err := loadRecords(cmd.Context(), st, from, to)
				if err != nil {
					return err
				}
				rules, err := loadReportRules(cmd.Context(), st)
				if err != nil {
					return err
				}
				filtered := report.Filtered(records, rules, flags.filter())

				if flags.jsonOut {
					return writeJSON(cmd, hoursJSON(filtered))
				}

				rows := make([][]string, 0, len(filtered))
				for _, record := range filtered {
					rows = append(rows, []string{
						record.Employee,
						record.Date,
						slotClock(record.Slots.Entry),
						slotClock(record.Slots.Exit),
						record.Worked(),
						record.NoteText(),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Colaborador", "Data", "Entrada", "Saída", "Horas", "Observações"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newReportDescriptiveCommand(ctx *commandContext) *cobra.Command {
	flags := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "descriptive",
		Short: "Every classified punch slot per employee per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				from, to, err := resolveRange(cmd.Context(), st, flags)
				if err != nil {
					return err
				}
				records, err := loadRecords(cmd.Context(), st, from, to)
				if err != nil {
					return err
				}
				rules, err := loadReportRules(cmd.Context(), st)
				if err != nil {
					return err
				}
				filtered := report.Filtered(records, rules, flags.filter())

				if flags.jsonOut {
					return writeJSON(cmd, hoursJSON(filtered))
				}

				rows := make([][]string, 0, len(filtered))
				for _, record := range filtered {
					extras := "-"
					if len(record.Slots.ExtraExits) > 0 {
						clocks := make([]string, 0, len(record.Slots.ExtraExits))
						for _, extra := range record.Slots.ExtraExits {
							clocks = append(clocks, extra.Format("15:04"))
						}
						extras = strings.Join(clocks, " ")
					}
					rows = append(rows, []string{
						record.Employee,
						record.Date,
						slotClock(record.Slots.Entry),
						slotClock(record.Slots.LunchOut),
						slotClock(record.Slots.LunchIn),
						slotClock(record.Slots.Break1),
						slotClock(record.Slots.Break2),
						slotClock(record.Slots.Exit),
						extras,
						record.Worked(),
						record.NoteText(),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Colaborador", "Data", "Entrada", "Saída almoço", "Volta almoço", "Intervalo 1", "Intervalo 2", "Saída", "Extras", "Horas", "Observações"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newReportPresenceCommand(ctx *commandContext) *cobra.Command {
	flags := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "presence",
		Short: "Days present per employee against partner rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				from, to, err := resolveRange(cmd.Context(), st, flags)
				if err != nil {
					return err
				}
				records, err := loadRecords(cmd.Context(), st, from, to)
				if err != nil {
					return err
				}
				rules, err := loadReportRules(cmd.Context(), st)
				if err != nil {
					return err
				}
				items := report.Presence(records, rules, flags.filter())

				if flags.jsonOut {
					return writeJSON(cmd, presenceJSON(items))
				}

				headers := []string{"Colaborador", "Sócio", "Meta", "Dias"}
				headers = append(headers, report.WeekdayLabels...)
				headers = append(headers, "Dias do mês")

				rows := make([][]string, 0, len(items))
				for _, item := range items {
					goal := "-"
					if item.WeeklyGoal > 0 {
						goal = fmt.Sprintf("%d", item.WeeklyGoal)
					}
					row := []string{
						item.Employee,
						item.Partner,
						goal,
						fmt.Sprintf("%d", item.DaysPresent),
					}
					for _, label := range report.WeekdayLabels {
						row = append(row, fmt.Sprintf("%d", item.WeekdayCounts[label]))
					}
					row = append(row, strings.Join(item.Days, ", "))
					rows = append(rows, row)
				}

				aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight}
				for range report.WeekdayLabels {
					aligns = append(aligns, alignRight)
				}
				aligns = append(aligns, alignLeft)

				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}
