package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"teamboard/internal/app"
	"teamboard/internal/domain"
	"teamboard/internal/selection"
	"teamboard/internal/usecase"
)

// dueDateLayout is the CLI format for due dates.
const dueDateLayout = "2006-01-02"

// newNewCommand creates the new command for creating tasks.
func newNewCommand(c *app.Container, asUser *int) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Due         string
		Tags        []string
		AssigneeID  int
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new task",
		Long: `Create a new task.

The task starts in status 'todo'. Without --assignee the task is
assigned to the acting user.

Examples:
  # Create a task for yourself
  teamboard new --title "Fix login bug"

  # Assign to another user with priority and due date
  teamboard new --title "Quarterly report" --assignee 3 --priority high --due 2026-03-31

  # Tag a task
  teamboard new --title "Refactor auth" --tag backend --tag tech-debt`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			actor, err := resolveActor(c, *asUser)
			if err != nil {
				return err
			}

			input := usecase.CreateTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				Priority:    domain.Priority(opts.Priority),
				Tags:        opts.Tags,
				Actor:       actor,
			}

			if opts.AssigneeID != 0 {
				assignee, ok := c.Config.User(opts.AssigneeID)
				if !ok {
					return fmt.Errorf("assignee %d: %w", opts.AssigneeID, domain.ErrUserNotFound)
				}
				input.Assignee = *assignee
			}

			if opts.Due != "" {
				due, err := time.Parse(dueDateLayout, opts.Due)
				if err != nil {
					return fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", opts.Due)
				}
				input.DueDate = due
			}

			uc := c.CreateTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: low, medium, high (default: medium)")
	cmd.Flags().IntVar(&opts.AssigneeID, "assignee", 0, "Assignee user ID (default: acting user)")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "Tags (can specify multiple)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container, asUser *int) *cobra.Command {
	var opts struct {
		Status string
		Query  string
		Due    string
		JSON   bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display the tasks visible to the acting user.

Managers and admins see the whole board; employees see only the tasks
assigned to them.

Examples:
  # List visible tasks
  teamboard list

  # Filter by status
  teamboard list --status in-progress

  # Free-text search on title, description, or assignee name
  teamboard list -q signup

  # Tasks due on a given day
  teamboard list --due 2026-03-15`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			actor, err := resolveActor(c, *asUser)
			if err != nil {
				return err
			}

			input := usecase.ListTasksInput{
				Query: opts.Query,
				Actor: actor,
			}
			if opts.Status != "" {
				status := domain.Status(opts.Status)
				input.Status = &status
			}
			if opts.Due != "" {
				due, err := time.Parse(dueDateLayout, opts.Due)
				if err != nil {
					return fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", opts.Due)
				}
				input.DueOn = &due
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if opts.JSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Tasks)
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by status (todo, in-progress, review, done)")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "Free-text search")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Only tasks due on this day (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// newShowCommand creates the show command for displaying a single task.
func newShowCommand(c *app.Container, asUser *int) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long: `Show a task with its full comment thread.

Without an ID the currently selected task is shown (see 'teamboard select').`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := resolveActor(c, *asUser)
			if err != nil {
				return err
			}
			taskID, err := resolveTaskID(args, c.Selection)
			if err != nil {
				return err
			}

			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: taskID, Actor: actor})
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Task)
			}

			printTaskDetails(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")

	return cmd
}

// newEditCommand creates the edit command for editing task information.
func newEditCommand(c *app.Container, asUser *int) *cobra.Command {
	var opts struct {
		Title            string
		Description      string
		Status           string
		Priority         string
		Attachments      []string
		ClearAttachments bool
	}

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit task information",
		Long: `Edit an existing task. Only the provided flags are applied.

Attachments are replaced as a whole: --attach gives the complete new
list, --clear-attachments removes them all.

Examples:
  # Change the status
  teamboard edit 1 --status in-progress

  # Retitle and bump priority
  teamboard edit 1 --title "New title" --priority high

  # Replace the attachment list
  teamboard edit 1 --attach design-v2.png --attach notes.md

  # Remove all attachments
  teamboard edit 1 --clear-attachments`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := resolveActor(c, *asUser)
			if err != nil {
				return err
			}
			taskID, err := resolveTaskID(args, c.Selection)
			if err != nil {
				return err
			}

			input := usecase.UpdateTaskInput{
				TaskID: taskID,
				Actor:  actor,
			}
			if cmd.Flags().Changed("title") {
				input.Title = &opts.Title
			}
			if cmd.Flags().Changed("body") {
				input.Description = &opts.Description
			}
			if cmd.Flags().Changed("status") {
				status := domain.Status(opts.Status)
				input.Status = &status
			}
			if cmd.Flags().Changed("priority") {
				priority := domain.Priority(opts.Priority)
				input.Priority = &priority
			}
			if opts.ClearAttachments {
				empty := []string{}
				input.Attachments = &empty
			} else if cmd.Flags().Changed("attach") {
				input.Attachments = &opts.Attachments
			}

			uc := c.UpdateTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New description")
	cmd.Flags().StringVar(&opts.Status, "status", "", "New status (todo, in-progress, review, done)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "New priority (low, medium, high)")
	cmd.Flags().StringArrayVar(&opts.Attachments, "attach", nil, "Replacement attachment list (can specify multiple)")
	cmd.Flags().BoolVar(&opts.ClearAttachments, "clear-attachments", false, "Remove all attachments")

	return cmd
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container, asUser *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a task",
		Long: `Delete a task and its entire comment thread.

Only the creator, a manager, or an admin may delete a task. Being the
assignee is not enough.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := resolveActor(c, *asUser)
			if err != nil {
				return err
			}
			taskID, err := resolveTaskID(args, c.Selection)
			if err != nil {
				return err
			}

			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: taskID, Actor: actor})
			if err != nil {
				return err
			}

			// Drop a selection pointing at the deleted task
			if id, ok := c.Selection.Current(); ok && id == taskID {
				c.Selection.Clear()
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	return cmd
}

// newStatsCommand creates the stats command for per-status task counts.
func newStatsCommand(c *app.Container, asUser *int) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task counts by status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			actor, err := resolveActor(c, *asUser)
			if err != nil {
				return err
			}

			uc := c.TaskStatsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.TaskStatsInput{Query: query, Actor: actor})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Total:       %d\n", out.Total)
			_, _ = fmt.Fprintf(w, "To Do:       %d\n", out.Todo)
			_, _ = fmt.Fprintf(w, "In Progress: %d\n", out.InProgress)
			_, _ = fmt.Fprintf(w, "Review:      %d\n", out.Review)
			_, _ = fmt.Fprintf(w, "Done:        %d\n", out.Done)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Count only tasks matching this search")

	return cmd
}

// resolveTaskID resolves the task ID from arguments or the current selection.
func resolveTaskID(args []string, sel *selection.Selector) (int, error) {
	if len(args) > 0 {
		id, err := parseTaskID(args[0])
		if err != nil {
			return 0, fmt.Errorf("invalid task ID: %w", err)
		}
		return id, nil
	}

	if id, ok := sel.Current(); ok {
		return id, nil
	}
	return 0, fmt.Errorf("task ID is required (no task selected)")
}

// parseTaskID parses a task ID string to int.
func parseTaskID(s string) (int, error) {
	// Remove leading # if present
	s = strings.TrimPrefix(s, "#")
	var id int
	_, err := fmt.Sscanf(s, "%d", &id)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("task ID must be positive")
	}
	return id, nil
}

// printTaskList prints tasks in a tab-separated table.
func printTaskList(w io.Writer, tasks []*domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tASSIGNEE\tDUE\tTITLE")
	for _, task := range tasks {
		due := "-"
		if !task.DueDate.IsZero() {
			due = task.DueDate.Format(dueDateLayout)
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			task.Status.Display(),
			task.Priority.Display(),
			task.Assignee.Name,
			due,
			task.Title,
		)
	}
	_ = tw.Flush()
}

// printTaskDetails prints a task with its comment thread.
func printTaskDetails(w io.Writer, out *usecase.ShowTaskOutput) {
	task := out.Task
	_, _ = fmt.Fprintf(w, "Task #%d: %s\n", task.ID, task.Title)
	_, _ = fmt.Fprintf(w, "Status:   %s\n", task.Status.Display())
	_, _ = fmt.Fprintf(w, "Priority: %s\n", task.Priority.Display())
	_, _ = fmt.Fprintf(w, "Assignee: %s\n", task.Assignee.Name)
	_, _ = fmt.Fprintf(w, "Creator:  %s\n", task.CreatedBy.Name)
	_, _ = fmt.Fprintf(w, "Created:  %s\n", task.Created.Format(time.RFC3339))
	if !task.DueDate.IsZero() {
		_, _ = fmt.Fprintf(w, "Due:      %s\n", task.DueDate.Format(dueDateLayout))
	}
	if len(task.Tags) > 0 {
		_, _ = fmt.Fprintf(w, "Tags:     %s\n", strings.Join(task.Tags, ", "))
	}
	if len(task.Attachments) > 0 {
		_, _ = fmt.Fprintf(w, "Attached: %s\n", strings.Join(task.Attachments, ", "))
	}
	if task.Description != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", task.Description)
	}

	perms := []string{}
	if out.CanEdit {
		perms = append(perms, "edit")
	}
	if out.CanDelete {
		perms = append(perms, "delete")
	}
	if len(perms) > 0 {
		_, _ = fmt.Fprintf(w, "\nYou may: %s\n", strings.Join(perms, ", "))
	}

	if len(task.Comments) > 0 {
		_, _ = fmt.Fprintf(w, "\nComments (%d):\n", len(task.Comments))
		for _, comment := range task.Comments {
			printComment(w, comment)
		}
	}
}

func printComment(w io.Writer, comment domain.Comment) {
	stamp := comment.Created.Format(time.RFC3339)
	if comment.IsEdited() {
		stamp += " (edited " + comment.Edited.Format(time.RFC3339) + ")"
	}
	_, _ = fmt.Fprintf(w, "  [%d] %s at %s\n      %s\n", comment.ID, comment.User.Name, stamp, comment.Content)
}
