package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	addCmd.Flags().DurationVarP(&addFor, "for", "f", 0, "Target duration (e.g. 25m); omit for an open-ended task")
	rootCmd.AddCommand(addCmd)
}

var addFor time.Duration

var addCmd = &cobra.Command{
	Use:   "add NAME...",
	Short: "Start a new task",
	Long: `Start a new task immediately. With --for it counts toward the target
duration and completes on its own; without it, the task runs until stopped.

Examples:
  pacer add Write report
  pacer add --for 25m Pomodoro`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addFor < 0 {
		return fmt.Errorf("duration must be non-negative")
	}

	c, err := newClient()
	if err != nil {
		return err
	}

	task, err := c.addTask(strings.Join(args, " "), int64(addFor/time.Second))
	if err != nil {
		return err
	}

	if task.Timed {
		fmt.Printf("Started %q for %s  (id %s)\n", task.Name, formatSeconds(task.DurationSeconds), shortID(task.ID))
	} else {
		fmt.Printf("Started %q  (id %s)\n", task.Name, shortID(task.ID))
	}
	return nil
}
