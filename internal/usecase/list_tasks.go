package usecase

import (
	"context"
	"fmt"
	"time"

	"teamboard/internal/authz"
	"teamboard/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
// Fields are ordered to minimize memory padding.
type ListTasksInput struct {
	DueOn  *time.Time     // Only tasks due on this calendar day (optional)
	Status *domain.Status // Only tasks in this status (optional)
	Query  string         // Free-text search on title/description/assignee (optional)
	Actor  domain.User    // Acting user; employees see only their own tasks
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []*domain.Task // Matching tasks ordered by ID
}

// ListTasks is the use case for reading the task collection.
// Employees (and unknown roles) are scoped to tasks assigned to them;
// managers and admins see everything.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{
		tasks: tasks,
	}
}

// Execute lists tasks visible to the actor.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	if in.Status != nil && !in.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	filter := domain.TaskFilter{
		Status: in.Status,
		DueOn:  in.DueOn,
		Query:  in.Query,
	}
	if !authz.IsElevated(in.Actor.Role) {
		id := in.Actor.ID
		filter.AssigneeID = &id
	}

	tasks, err := uc.tasks.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return &ListTasksOutput{Tasks: tasks}, nil
}
