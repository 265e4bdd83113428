package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List all tasks grouped by day",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	groups, err := c.history()
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		fmt.Println("No tasks yet. Run 'pacer add <name>' to start one.")
		return nil
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(g.Label)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, t := range g.Tasks {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
				shortID(t.ID),
				t.Name,
				formatSeconds(t.ElapsedSeconds),
				t.Status,
			)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}
