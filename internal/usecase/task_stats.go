package usecase

import (
	"context"
	"fmt"

	"teamboard/internal/authz"
	"teamboard/internal/domain"
)

// TaskStatsInput contains the parameters for computing task statistics.
type TaskStatsInput struct {
	Query string      // Free-text search applied before counting (optional)
	Actor domain.User // Acting user; employees are scoped to their own tasks
}

// TaskStatsOutput contains per-status task counts for the actor's view.
type TaskStatsOutput struct {
	Total      int
	Todo       int
	InProgress int
	Review     int
	Done       int
}

// TaskStats is the use case behind the dashboard counters.
type TaskStats struct {
	tasks domain.TaskRepository
}

// NewTaskStats creates a new TaskStats use case.
func NewTaskStats(tasks domain.TaskRepository) *TaskStats {
	return &TaskStats{
		tasks: tasks,
	}
}

// Execute counts the actor's visible tasks by status.
func (uc *TaskStats) Execute(_ context.Context, in TaskStatsInput) (*TaskStatsOutput, error) {
	filter := domain.TaskFilter{Query: in.Query}
	if !authz.IsElevated(in.Actor.Role) {
		id := in.Actor.ID
		filter.AssigneeID = &id
	}

	tasks, err := uc.tasks.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	out := &TaskStatsOutput{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case domain.StatusTodo:
			out.Todo++
		case domain.StatusInProgress:
			out.InProgress++
		case domain.StatusReview:
			out.Review++
		case domain.StatusDone:
			out.Done++
		}
	}
	return out, nil
}
