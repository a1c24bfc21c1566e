package usecase

import (
	"context"
	"fmt"

	"teamboard/internal/domain"
	"teamboard/internal/usecase/shared"
)

// AddCommentInput contains the parameters for adding a comment.
// Fields are ordered to minimize memory padding.
type AddCommentInput struct {
	Content string      // Comment text (required)
	Actor   domain.User // Authoring user
	TaskID  int         // Task ID (required)
}

// AddCommentOutput contains the result of adding a comment.
type AddCommentOutput struct {
	Comment domain.Comment // The created comment
}

// AddComment is the use case for posting a comment on a task.
// Any known user may comment; there is no ownership rule on posting.
type AddComment struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewAddComment creates a new AddComment use case.
func NewAddComment(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *AddComment {
	return &AddComment{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute adds a comment to a task.
func (uc *AddComment) Execute(_ context.Context, in AddCommentInput) (*AddCommentOutput, error) {
	// Validate content
	content, err := shared.ValidateContent(in.Content)
	if err != nil {
		return nil, err
	}

	// Validate actor identity
	if in.Actor.ID == 0 {
		return nil, domain.ErrUserNotFound
	}

	// Verify task exists
	if _, err := shared.GetTask(uc.tasks, in.TaskID); err != nil {
		return nil, err
	}

	// Create comment
	comment := domain.Comment{
		Content: content,
		User:    in.Actor,
		Created: uc.clock.Now(),
	}

	// Save comment
	saved, err := uc.tasks.AddComment(in.TaskID, comment)
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	// Log comment creation
	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "comment", fmt.Sprintf("comment %d added by %s", saved.ID, in.Actor.Name))
	}

	return &AddCommentOutput{Comment: saved}, nil
}
