package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"teamboard/internal/app"
)

// newSelectCommand creates the select command and its subcommands.
func newSelectCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [id]",
		Short: "Select a task for follow-up commands",
		Long: `Select a task so that show, edit, rm, and comments can be used
without repeating the ID. The selection is a plain reference: it is not
checked against the board and deleting another task does not touch it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				id, ok := c.Selection.Current()
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No task selected")
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Selected task: #%d\n", id)
				return nil
			}

			id, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}
			c.Selection.Select(id)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Selected task #%d\n", id)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear the current selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.Selection.Clear()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Selection cleared")
			return nil
		},
	})

	return cmd
}
