// Package cli implements plannerctl, the maintenance command line for the
// task planner database.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskplanner/internal/adapter/http/validation"
	"taskplanner/internal/core/ports"
)

var (
	appVersion = "dev"

	// OpenProductivity opens the productivity service for commands that need
	// the database. The returned func releases it.
	OpenProductivity func(ctx context.Context) (ports.ProductivityService, func(), error)

	// Clock supplies "today" and "now" defaults.
	Clock ports.Clock = ports.SystemClock{}
)

var errNotInitialized = errors.New("productivity service not initialized")

// SetVersion sets the version reported by `plannerctl version`.
func SetVersion(version string) {
	if version != "" {
		appVersion = version
	}
}

var rootCmd = &cobra.Command{
	Use:   "plannerctl",
	Short: "Task planner maintenance tool",
	Long: `plannerctl works directly on the task planner database.

It snapshots and inspects productivity logs and previews how recurrence
rules expand, without going through the HTTP API.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "plannerctl %s\n", appVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func withProductivity(cmd *cobra.Command, run func(ports.ProductivityService) error) error {
	if OpenProductivity == nil {
		return errNotInitialized
	}
	svc, release, err := OpenProductivity(cmd.Context())
	if err != nil {
		return err
	}
	defer release()
	return run(svc)
}

// parseFlagTime reads a timestamp flag, returning fallback when it is empty.
func parseFlagTime(name, value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	t, err := validation.ParseTimestamp(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD or RFC 3339", name, value)
	}
	return t, nil
}
