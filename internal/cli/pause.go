package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pacerlabs/pacer/internal/domain"
)

func init() {
	rootCmd.AddCommand(pauseCmd)
}

var pauseCmd = &cobra.Command{
	Use:   "pause ID",
	Short: "Pause or resume a task",
	Long:  `Pause a running task, or resume a paused one. Completed tasks are unaffected.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPause,
}

func runPause(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	id, err := c.resolveID(args[0])
	if err != nil {
		return err
	}
	task, err := c.togglePause(id)
	if err != nil {
		return err
	}

	switch task.Status {
	case domain.StatusPaused:
		fmt.Printf("Paused %q at %s\n", task.Name, formatSeconds(task.ElapsedSeconds))
	case domain.StatusRunning:
		fmt.Printf("Resumed %q at %s\n", task.Name, formatSeconds(task.ElapsedSeconds))
	default:
		fmt.Printf("%q is already completed\n", task.Name)
	}
	return nil
}
