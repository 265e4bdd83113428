package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(todayCmd)
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "List today's tasks",
	RunE:  runToday,
}

func runToday(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	today, err := c.today()
	if err != nil {
		return err
	}

	if len(today.Tasks) == 0 {
		fmt.Println("No tasks today. Run 'pacer add <name>' to start one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tELAPSED\tTARGET\tSTATUS")
	for _, t := range today.Tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID),
			t.Name,
			formatSeconds(t.ElapsedSeconds),
			formatTarget(t),
			t.Status,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d running, %d completed\n", today.Running, today.Completed)
	return nil
}
