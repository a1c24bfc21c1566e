// Package cli provides the command-line interface for teamboard.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"teamboard/internal/app"
	"teamboard/internal/domain"
)

// Command group IDs.
const (
	groupTask = "task"
	groupData = "data"
)

// NewRootCommand creates the root command for teamboard.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var asUser int

	root := &cobra.Command{
		Use:   "teamboard",
		Short: "Team task board CLI",
		Long: `teamboard is a CLI for managing a team task board.

Tasks carry a status, priority, assignee, and a comment thread. Who may
change what is decided by role: admins and managers can edit or delete
any task, employees only the tasks they created or are assigned to, and
comments belong to their author (admins may moderate).

The acting user is picked with --as <user-id>, falling back to the
default_user from the config file.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.PersistentFlags().IntVar(&asUser, "as", 0, "Acting user ID (default: default_user from config)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupData, Title: "Data Exchange:"},
	)

	// Task management commands
	newCmd := newNewCommand(c, &asUser)
	newCmd.GroupID = groupTask

	listCmd := newListCommand(c, &asUser)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c, &asUser)
	showCmd.GroupID = groupTask

	editCmd := newEditCommand(c, &asUser)
	editCmd.GroupID = groupTask

	rmCmd := newRmCommand(c, &asUser)
	rmCmd.GroupID = groupTask

	commentCmd := newCommentCommand(c, &asUser)
	commentCmd.GroupID = groupTask

	commentsCmd := newCommentsCommand(c, &asUser)
	commentsCmd.GroupID = groupTask

	statsCmd := newStatsCommand(c, &asUser)
	statsCmd.GroupID = groupTask

	selectCmd := newSelectCommand(c)
	selectCmd.GroupID = groupTask

	usersCmd := newUsersCommand(c)
	usersCmd.GroupID = groupTask

	// Data exchange commands
	snapshotCmd := newSnapshotCommand(c)
	snapshotCmd.GroupID = groupData

	root.AddCommand(
		newCmd,
		listCmd,
		showCmd,
		editCmd,
		rmCmd,
		commentCmd,
		commentsCmd,
		statsCmd,
		selectCmd,
		usersCmd,
		snapshotCmd,
	)

	return root
}

// resolveActor resolves the acting user from the --as flag or config default.
func resolveActor(c *app.Container, asUser int) (domain.User, error) {
	id := asUser
	if id == 0 {
		id = c.Config.DefaultUser
	}
	if id == 0 {
		return domain.User{}, fmt.Errorf("no acting user (use --as or set default_user): %w", domain.ErrUserNotFound)
	}
	user, ok := c.Config.User(id)
	if !ok {
		return domain.User{}, fmt.Errorf("user %d: %w", id, domain.ErrUserNotFound)
	}
	return *user, nil
}
