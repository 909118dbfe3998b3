package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

var (
	logsDate     string
	logsFrom     string
	logsTo       string
	summaryDate  string
	summaryCatID uint64
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Manage stored productivity logs",
}

var logsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Compute a day's productivity summary and store it",
	Long: `Compute the productivity summary for --date (default today, UTC) and
upsert one log per category bucket. Running it twice for the same day
overwrites the earlier snapshot.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseFlagTime("date", logsDate, Clock.Now())
		if err != nil {
			return err
		}
		return withProductivity(cmd, func(svc ports.ProductivityService) error {
			summary, err := svc.UpdateLogs(cmd.Context(), date)
			if err != nil {
				return fmt.Errorf("updating productivity logs: %w", err)
			}
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		})
	},
}

var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored productivity logs between two days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := Clock.Now()
		from, err := parseFlagTime("from", logsFrom, now)
		if err != nil {
			return err
		}
		to, err := parseFlagTime("to", logsTo, now)
		if err != nil {
			return err
		}
		if to.Before(from) {
			return fmt.Errorf("--to %s is before --from %s", to.Format("2006-01-02"), from.Format("2006-01-02"))
		}
		return withProductivity(cmd, func(svc ports.ProductivityService) error {
			logs, err := svc.ListLogs(cmd.Context(), from, to)
			if err != nil {
				return fmt.Errorf("listing productivity logs: %w", err)
			}
			printLogs(cmd.OutOrStdout(), logs)
			return nil
		})
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a day's productivity summary without storing it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseFlagTime("date", summaryDate, Clock.Now())
		if err != nil {
			return err
		}
		return withProductivity(cmd, func(svc ports.ProductivityService) error {
			if cmd.Flags().Changed("category") {
				entry, err := svc.GetCategorySummary(cmd.Context(), summaryCatID, date)
				if err != nil {
					return fmt.Errorf("category summary: %w", err)
				}
				printCategoryHeader(cmd.OutOrStdout())
				printCategory(cmd.OutOrStdout(), entry)
				return nil
			}

			summary, err := svc.GetSummary(cmd.Context(), date)
			if err != nil {
				return fmt.Errorf("productivity summary: %w", err)
			}
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		})
	},
}

func init() {
	logsUpdateCmd.Flags().StringVar(&logsDate, "date", "", "day to snapshot (YYYY-MM-DD, default today)")
	logsListCmd.Flags().StringVar(&logsFrom, "from", "", "first day (default today)")
	logsListCmd.Flags().StringVar(&logsTo, "to", "", "last day (default today)")
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "day to summarize (YYYY-MM-DD, default today)")
	summaryCmd.Flags().Uint64Var(&summaryCatID, "category", 0, "only show this category")

	logsCmd.AddCommand(logsUpdateCmd, logsListCmd)
	rootCmd.AddCommand(logsCmd, summaryCmd)
}

func printSummary(w io.Writer, summary domain.ProductivitySummary) {
	fmt.Fprintf(w, "date:            %s\n", summary.Date.Format("2006-01-02"))
	fmt.Fprintf(w, "daily score:     %.2f\n", summary.DailyScore)
	fmt.Fprintf(w, "tasks completed: %d\n", summary.TotalTasksCompleted)
	fmt.Fprintf(w, "time spent:      %d min\n", summary.TotalTimeSpent)
	if len(summary.Categories) == 0 {
		return
	}
	fmt.Fprintln(w)
	printCategoryHeader(w)
	for _, entry := range summary.Categories {
		printCategory(w, entry)
	}
}

func printCategoryHeader(w io.Writer) {
	fmt.Fprintf(w, "%-6s %-24s %5s %8s %7s\n", "ID", "CATEGORY", "TASKS", "MINUTES", "SCORE")
}

func printCategory(w io.Writer, entry domain.CategoryProductivity) {
	fmt.Fprintf(w, "%-6s %-24s %5d %8d %7.2f\n",
		formatID(entry.CategoryID), entry.CategoryName, entry.TasksCompleted, entry.TimeSpent, entry.Score)
}

func printLogs(w io.Writer, logs []domain.ProductivityLog) {
	if len(logs) == 0 {
		fmt.Fprintln(w, "No productivity logs found.")
		return
	}
	fmt.Fprintf(w, "%-10s %-6s %5s %8s %7s\n", "DATE", "CAT", "TASKS", "MINUTES", "SCORE")
	for _, log := range logs {
		fmt.Fprintf(w, "%-10s %-6s %5d %8d %7.2f\n",
			log.Date.Format("2006-01-02"), formatID(log.CategoryID), log.TasksCompleted, log.TimeSpent, log.Score)
	}
}

func formatID(id *uint64) string {
	if id == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *id)
}
