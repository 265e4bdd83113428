package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(stopCmd)
}

var stopCmd = &cobra.Command{
	Use:   "stop ID",
	Short: "Stop a task",
	Long:  `Stop a task, marking it completed. Elapsed time is kept as-is.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	id, err := c.resolveID(args[0])
	if err != nil {
		return err
	}
	task, err := c.stopTask(id)
	if err != nil {
		return err
	}

	fmt.Printf("Stopped %q after %s\n", task.Name, formatSeconds(task.ElapsedSeconds))
	return nil
}
