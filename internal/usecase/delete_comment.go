package usecase

import (
	"context"
	"fmt"

	"teamboard/internal/authz"
	"teamboard/internal/domain"
	"teamboard/internal/usecase/shared"
)

// DeleteCommentInput contains the parameters for deleting a comment.
type DeleteCommentInput struct {
	Actor     domain.User // Acting user
	TaskID    int         // Parent task ID
	CommentID int         // Comment ID within the task
}

// DeleteCommentOutput contains the result of deleting a comment.
type DeleteCommentOutput struct{}

// DeleteComment is the use case for removing a comment from a task.
// The rule is the same as for editing: author or admin.
type DeleteComment struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteComment creates a new DeleteComment use case.
func NewDeleteComment(tasks domain.TaskRepository, logger domain.Logger) *DeleteComment {
	return &DeleteComment{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes a comment, preserving the order of the remaining ones.
func (uc *DeleteComment) Execute(_ context.Context, in DeleteCommentInput) (*DeleteCommentOutput, error) {
	// Load existing comments to locate the target
	comments, err := uc.tasks.GetComments(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}
	comment, err := shared.FindComment(comments, in.CommentID)
	if err != nil {
		return nil, err
	}

	// Check authority against the pre-mutation state
	if !authz.CanDeleteComment(in.Actor, &comment) {
		return nil, domain.ErrPermissionDenied
	}

	if err := uc.tasks.DeleteComment(in.TaskID, in.CommentID); err != nil {
		return nil, fmt.Errorf("delete comment: %w", err)
	}

	// Log comment deletion
	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "comment", fmt.Sprintf("comment %d deleted by %s", in.CommentID, in.Actor.Name))
	}

	return &DeleteCommentOutput{}, nil
}
