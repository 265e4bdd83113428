// Package cli implements the pacer command-line interface using Cobra.
// The serve command runs the ticking daemon; every other command is a thin
// HTTP client of it.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pacer",
	Short: "pacer — a personal task timer",
	Long: `pacer tracks named tasks that either run open-ended or count down
from a target duration. Tasks can be paused, resumed, and stopped, and
every task is kept forever in a day-grouped history.

Run 'pacer serve' to start the daemon, then add tasks from any shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
