package usecase

import (
	"context"

	"teamboard/internal/authz"
	"teamboard/internal/domain"
	"teamboard/internal/usecase/shared"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	Actor  domain.User // Acting user
	TaskID int         // Task ID to show
}

// ShowTaskOutput contains the task snapshot plus advisory permission
// results so callers can hide affordances up front. The advice is for UX
// only; every mutation re-checks authority independently.
type ShowTaskOutput struct {
	Task      *domain.Task // The task with its comments
	CanEdit   bool         // Whether the actor may edit the task
	CanDelete bool         // Whether the actor may delete the task
}

// ShowTask is the use case for reading a single task with its comments.
type ShowTask struct {
	tasks domain.TaskRepository
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.TaskRepository) *ShowTask {
	return &ShowTask{
		tasks: tasks,
	}
}

// Execute retrieves the task and evaluates the actor's authority over it.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, err := shared.GetTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	return &ShowTaskOutput{
		Task:      task,
		CanEdit:   authz.CanEditTask(in.Actor, task),
		CanDelete: authz.CanDeleteTask(in.Actor, task),
	}, nil
}
