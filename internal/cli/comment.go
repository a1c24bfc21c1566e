package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"teamboard/internal/app"
	"teamboard/internal/usecase"
)

// newCommentCommand creates the comment command and its subcommands.
func newCommentCommand(c *app.Container, asUser *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Manage task comments",
		Long: `Add, edit, or remove comments on a task.

Anyone may comment on any task. Editing or removing a comment is
reserved for its author and admins.`,
	}

	cmd.AddCommand(
		newCommentAddCommand(c, asUser),
		newCommentEditCommand(c, asUser),
		newCommentRmCommand(c, asUser),
	)

	return cmd
}

// newCommentAddCommand creates the comment add subcommand.
func newCommentAddCommand(c *app.Container, asUser *int) *cobra.Command {
	return &cobra.Command{
		Use:   "add <task-id> <text>",
		Short: "Add a comment to a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := resolveActor(c, *asUser)
			if err != nil {
				return err
			}
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.AddCommentUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddCommentInput{
				TaskID:  taskID,
				Content: strings.Join(args[1:], " "),
				Actor:   actor,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added comment %d to task #%d\n", out.Comment.ID, taskID)
			return nil
		},
	}
}

// newCommentEditCommand creates the comment edit subcommand.
func newCommentEditCommand(c *app.Container, asUser *int) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <task-id> <comment-id> <text>",
		Short: "Edit a comment",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := resolveActor(c, *asUser)
			if err != nil {
				return err
			}
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}
			commentID, err := parseTaskID(args[1])
			if err != nil {
				return fmt.Errorf("invalid comment ID: %w", err)
			}

			uc := c.EditCommentUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.EditCommentInput{
				TaskID:    taskID,
				CommentID: commentID,
				Content:   strings.Join(args[2:], " "),
				Actor:     actor,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Edited comment %d on task #%d\n", out.Comment.ID, taskID)
			return nil
		},
	}
}

// newCommentRmCommand creates the comment rm subcommand.
func newCommentRmCommand(c *app.Container, asUser *int) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task-id> <comment-id>",
		Short: "Remove a comment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := resolveActor(c, *asUser)
			if err != nil {
				return err
			}
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}
			commentID, err := parseTaskID(args[1])
			if err != nil {
				return fmt.Errorf("invalid comment ID: %w", err)
			}

			uc := c.DeleteCommentUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.DeleteCommentInput{
				TaskID:    taskID,
				CommentID: commentID,
				Actor:     actor,
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed comment %d from task #%d\n", commentID, taskID)
			return nil
		},
	}
}

// newCommentsCommand creates the comments command for listing a task's thread.
func newCommentsCommand(c *app.Container, asUser *int) *cobra.Command {
	return &cobra.Command{
		Use:   "comments [task-id]",
		Short: "List the comments of a task",
		Args:  cobra.MaximumNArgs(1),
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

			w := cmd.OutOrStdout()
			if len(out.Task.Comments) == 0 {
				_, _ = fmt.Fprintf(w, "No comments on task #%d\n", taskID)
				return nil
			}
			for _, comment := range out.Task.Comments {
				printComment(w, comment)
			}
			return nil
		},
	}
}
