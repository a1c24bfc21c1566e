package shared

import (
	"fmt"

	"teamboard/internal/domain"
)

// GetTask retrieves a task by ID and returns domain.ErrTaskNotFound if absent.
// This centralizes the common pattern of:
//
//	task, err := repo.Get(taskID)
//	if err != nil { return nil, fmt.Errorf("get task: %w", err) }
//	if task == nil { return nil, domain.ErrTaskNotFound }
func GetTask(repo domain.TaskRepository, taskID int) (*domain.Task, error) {
	task, err := repo.Get(taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

// FindComment locates a comment by ID within a task's sequence.
// Returns domain.ErrCommentNotFound if absent.
func FindComment(comments []domain.Comment, commentID int) (domain.Comment, error) {
	for _, c := range comments {
		if c.ID == commentID {
			return c, nil
		}
	}
	return domain.Comment{}, domain.ErrCommentNotFound
}
