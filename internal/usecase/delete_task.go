package usecase

import (
	"context"
	"fmt"

	"teamboard/internal/authz"
	"teamboard/internal/domain"
	"teamboard/internal/usecase/shared"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	Actor  domain.User // Acting user
	TaskID int         // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task *domain.Task // The deleted task, for display purposes
}

// DeleteTask is the use case for deleting a task and all its comments.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute deletes a task with the given ID. A repeated delete of the same
// ID fails with ErrTaskNotFound rather than succeeding silently.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	// Verify task exists
	task, err := shared.GetTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	// Deletion is strictly narrower than editing
	if !authz.CanDeleteTask(in.Actor, task) {
		return nil, domain.ErrPermissionDenied
	}

	// Delete task and cascade its comments
	if err := uc.tasks.Delete(in.TaskID); err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}

	// Log task deletion
	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", fmt.Sprintf("deleted by %s: %q", in.Actor.Name, task.Title))
	}

	return &DeleteTaskOutput{Task: task}, nil
}
