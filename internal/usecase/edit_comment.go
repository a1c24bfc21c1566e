package usecase

import (
	"context"
	"fmt"

	"teamboard/internal/authz"
	"teamboard/internal/domain"
	"teamboard/internal/usecase/shared"
)

// EditCommentInput contains the parameters for editing a comment.
type EditCommentInput struct {
	Content   string      // Replacement text (required)
	Actor     domain.User // Acting user
	TaskID    int         // Parent task ID
	CommentID int         // Comment ID within the task
}

// EditCommentOutput contains the result of editing a comment.
type EditCommentOutput struct {
	Comment domain.Comment // The updated comment
}

// EditComment is the use case for updating an existing comment.
// Only the author or an admin may edit; every edit stamps the edit time
// and leaves author and creation time untouched.
type EditComment struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewEditComment creates a new EditComment use case.
func NewEditComment(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *EditComment {
	return &EditComment{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute updates an existing comment of a task.
func (uc *EditComment) Execute(_ context.Context, in EditCommentInput) (*EditCommentOutput, error) {
	// Validate content
	content, err := shared.ValidateContent(in.Content)
	if err != nil {
		return nil, err
	}

	// Load existing comments to locate the target
	comments, err := uc.tasks.GetComments(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}
	original, err := shared.FindComment(comments, in.CommentID)
	if err != nil {
		return nil, err
	}

	// Check authority against the pre-mutation state
	if !authz.CanEditComment(in.Actor, &original) {
		return nil, domain.ErrPermissionDenied
	}

	// Apply the edit, preserving author and creation time
	edited := uc.clock.Now()
	updated := original
	updated.Content = content
	updated.Edited = &edited

	if err := uc.tasks.UpdateComment(in.TaskID, in.CommentID, updated); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	// Log comment edit
	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "comment", fmt.Sprintf("comment %d edited by %s", in.CommentID, in.Actor.Name))
	}

	return &EditCommentOutput{Comment: updated}, nil
}
