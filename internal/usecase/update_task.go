package usecase

import (
	"context"
	"fmt"

	"teamboard/internal/authz"
	"teamboard/internal/domain"
	"teamboard/internal/usecase/shared"
)

// UpdateTaskInput contains the parameters for editing a task.
// All fields except TaskID and Actor are optional; only non-nil fields are
// applied. ID, creation time, creator, and comments are never touched.
type UpdateTaskInput struct {
	Title       *string          // New title (nil = no change)
	Description *string          // New description (nil = no change)
	Status      *domain.Status   // New status (nil = no change)
	Priority    *domain.Priority // New priority (nil = no change)
	Attachments *[]string        // Replacement attachment list (nil = no change)
	Actor       domain.User      // Acting user
	TaskID      int              // Task ID to edit (required)
}

// UpdateTaskOutput contains the result of editing a task.
type UpdateTaskOutput struct {
	Task *domain.Task // The updated task
}

// UpdateTask is the use case for editing an existing task.
type UpdateTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(tasks domain.TaskRepository, logger domain.Logger) *UpdateTask {
	return &UpdateTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute edits a task with the given input. Authorization is evaluated
// against the task state as it exists before the mutation; on deny nothing
// changes.
func (uc *UpdateTask) Execute(_ context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	// Validate that at least one field is being updated
	if in.Title == nil && in.Description == nil && in.Status == nil &&
		in.Priority == nil && in.Attachments == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}

	// Validate field values before loading anything
	if in.Title != nil && *in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if in.Status != nil && !in.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if in.Priority != nil && !in.Priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	// Get existing task
	task, err := shared.GetTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	// Check authority against the pre-mutation state
	if !authz.CanEditTask(in.Actor, task) {
		return nil, domain.ErrPermissionDenied
	}

	// Update fields
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.Attachments != nil {
		task.Attachments = append([]string(nil), (*in.Attachments)...)
	}

	// Save updated task
	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	// Log task update
	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("updated by %s", in.Actor.Name))
	}

	return &UpdateTaskOutput{Task: task}, nil
}
