package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"teamboard/internal/app"
)

// newUsersCommand creates the users command for listing the user directory.
func newUsersCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List known users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(c.Config.Users) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No users configured")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tNAME\tROLE")
			for _, user := range c.Config.Users {
				name := user.Name
				if user.ID == c.Config.DefaultUser {
					name += " (default)"
				}
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", user.ID, name, user.Role.Display())
			}
			return tw.Flush()
		},
	}
}
