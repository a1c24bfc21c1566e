// Package usecase contains application use cases. Each mutating use case is
// the only sanctioned path to its store operation and re-checks authorization
// on every call.
package usecase

import (
	"context"
	"fmt"
	"time"

	"teamboard/internal/domain"
)

// CreateTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type CreateTaskInput struct {
	DueDate     time.Time       // Due date (optional, zero = none)
	Title       string          // Task title (required)
	Description string          // Task description (optional)
	Priority    domain.Priority // Priority (optional, empty = medium)
	Tags        []string        // Free-form tags (optional)
	Actor       domain.User     // Acting user, recorded as creator
	Assignee    domain.User     // Assigned user (optional, zero = self-assigned)
}

// CreateTaskOutput contains the result of creating a task.
type CreateTaskOutput struct {
	Task *domain.Task // The created task
}

// CreateTask is the use case for creating a new task.
// Creation carries no ownership check: who may create tasks at all is
// policy owned by the caller, not this core.
type CreateTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *CreateTask {
	return &CreateTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates a new task with the given input.
func (uc *CreateTask) Execute(_ context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	// Validate title
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	// Validate actor identity
	if in.Actor.ID == 0 {
		return nil, domain.ErrUserNotFound
	}

	// Resolve priority
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	// Resolve assignee
	assignee := in.Assignee
	if assignee.ID == 0 {
		assignee = in.Actor
	}

	// Get next task ID
	id, err := uc.tasks.NextID()
	if err != nil {
		return nil, fmt.Errorf("generate task ID: %w", err)
	}

	// Create task
	task := &domain.Task{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Status:      domain.StatusTodo,
		Priority:    priority,
		Tags:        in.Tags,
		DueDate:     in.DueDate,
		Assignee:    assignee,
		CreatedBy:   in.Actor,
		Created:     uc.clock.Now(),
	}

	// Save task
	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	// Log task creation
	if uc.logger != nil {
		uc.logger.Info(id, "task", fmt.Sprintf("created by %s: %q", in.Actor.Name, in.Title))
	}

	return &CreateTaskOutput{Task: task}, nil
}
