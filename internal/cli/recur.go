package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"taskplanner/internal/core/recurrence"
)

var (
	recurFrom  string
	recurTo    string
	recurLimit int
	recurAfter string
	recurBase  string
)

var recurCmd = &cobra.Command{
	Use:   "recur",
	Short: "Preview recurrence rule expansion",
}

var recurExpandCmd = &cobra.Command{
	Use:   "expand RULE",
	Short: "List the occurrences of an RFC 5545 rule",
	Long: `List the occurrences of RULE from --from (default now) up to --to,
at most --limit of them. A rule that does not parse prints nothing.`,
	Example: `  plannerctl recur expand "FREQ=WEEKLY;BYDAY=MO,WE" --from 2024-01-01 --limit 5`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseFlagTime("from", recurFrom, Clock.Now())
		if err != nil {
			return err
		}
		var to *time.Time
		if recurTo != "" {
			t, err := parseFlagTime("to", recurTo, time.Time{})
			if err != nil {
				return err
			}
			to = &t
		}
		if recurLimit <= 0 {
			return fmt.Errorf("--limit must be positive, got %d", recurLimit)
		}

		printOccurrences(cmd.OutOrStdout(), recurrence.Expand(args[0], from, to, recurLimit))
		return nil
	},
}

var recurNextCmd = &cobra.Command{
	Use:   "next RULE",
	Short: "Print the first occurrence of a rule after an instant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		after, err := parseFlagTime("after", recurAfter, Clock.Now())
		if err != nil {
			return err
		}
		next, ok := recurrence.NextOccurrence(args[0], after)
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "none")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), next.UTC().Format(time.RFC3339))
		return nil
	},
}

var recurSimpleCmd = &cobra.Command{
	Use:       "simple daily|weekly|monthly",
	Short:     "Expand a simple recurrence keyword from a base instant",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"daily", "weekly", "monthly"},
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := parseFlagTime("base", recurBase, Clock.Now())
		if err != nil {
			return err
		}
		occurrences := recurrence.ExpandSimple(args[0], base)
		if len(occurrences) == 0 {
			return fmt.Errorf("unknown keyword %q, expected daily, weekly or monthly", args[0])
		}
		printOccurrences(cmd.OutOrStdout(), occurrences)
		return nil
	},
}

func init() {
	recurExpandCmd.Flags().StringVar(&recurFrom, "from", "", "first instant considered (default now)")
	recurExpandCmd.Flags().StringVar(&recurTo, "to", "", "last instant considered")
	recurExpandCmd.Flags().IntVar(&recurLimit, "limit", 10, "maximum number of occurrences")
	recurNextCmd.Flags().StringVar(&recurAfter, "after", "", "instant to search after (default now)")
	recurSimpleCmd.Flags().StringVar(&recurBase, "base", "", "first occurrence (default now)")

	recurCmd.AddCommand(recurExpandCmd, recurNextCmd, recurSimpleCmd)
	rootCmd.AddCommand(recurCmd)
}

func printOccurrences(w io.Writer, occurrences []time.Time) {
	for _, occurrence := range occurrences {
		fmt.Fprintln(w, occurrence.UTC().Format(time.RFC3339))
	}
}
