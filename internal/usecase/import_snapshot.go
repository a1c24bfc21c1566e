package usecase

import (
	"context"
	"fmt"
	"strings"

	"teamboard/internal/domain"
)

// ImportSnapshotInput contains the parameters for importing a snapshot.
type ImportSnapshotInput struct {
	Content []byte // Encoded snapshot content
}

// ImportSnapshotOutput contains the result of importing a snapshot.
type ImportSnapshotOutput struct {
	Count int // Number of imported tasks
}

// ImportSnapshot loads tasks handed over by the external store into the
// in-memory collection. Task and comment IDs from the snapshot are kept so
// references held by the caller stay valid across a handoff.
type ImportSnapshot struct {
	tasks  domain.TaskRepository
	codec  domain.SnapshotCodec
	clock  domain.Clock
	logger domain.Logger
}

// NewImportSnapshot creates a new ImportSnapshot use case.
func NewImportSnapshot(tasks domain.TaskRepository, codec domain.SnapshotCodec, clock domain.Clock, logger domain.Logger) *ImportSnapshot {
	return &ImportSnapshot{
		tasks:  tasks,
		codec:  codec,
		clock:  clock,
		logger: logger,
	}
}

// Execute decodes the snapshot and loads its tasks and comments.
func (uc *ImportSnapshot) Execute(_ context.Context, in ImportSnapshotInput) (*ImportSnapshotOutput, error) {
	snapshot, err := uc.codec.Decode(in.Content)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	// Validate before touching the store so a bad snapshot imports nothing.
	seen := make(map[int]bool, len(snapshot.Tasks))
	for i, task := range snapshot.Tasks {
		if task.Title == "" {
			return nil, fmt.Errorf("task %d: %w", i+1, domain.ErrEmptyTitle)
		}
		if !task.Status.IsValid() {
			return nil, fmt.Errorf("task %d: %w", i+1, domain.ErrInvalidStatus)
		}
		if !task.Priority.IsValid() {
			return nil, fmt.Errorf("task %d: %w", i+1, domain.ErrInvalidPriority)
		}
		if task.ID != 0 {
			if seen[task.ID] {
				return nil, fmt.Errorf("task %d: duplicate task ID %d", i+1, task.ID)
			}
			seen[task.ID] = true
		}
		for j, comment := range task.Comments {
			if strings.TrimSpace(comment.Content) == "" {
				return nil, fmt.Errorf("task %d: comment %d: %w", i+1, j+1, domain.ErrEmptyContent)
			}
		}
	}

	now := uc.clock.Now()
	for i, task := range snapshot.Tasks {
		stored := task.Clone()
		comments := stored.Comments
		stored.Comments = nil

		if stored.ID == 0 {
			id, err := uc.tasks.NextID()
			if err != nil {
				return nil, fmt.Errorf("task %d: generate task ID: %w", i+1, err)
			}
			stored.ID = id
		}
		if stored.Created.IsZero() {
			stored.Created = now
		}

		if err := uc.tasks.Save(stored); err != nil {
			return nil, fmt.Errorf("task %d: save task: %w", i+1, err)
		}

		for _, comment := range comments {
			if _, err := uc.tasks.AddComment(stored.ID, comment); err != nil {
				return nil, fmt.Errorf("task %d: add comment: %w", i+1, err)
			}
		}

		if uc.logger != nil {
			uc.logger.Info(stored.ID, "snapshot", fmt.Sprintf("imported: %q", stored.Title))
		}
	}

	return &ImportSnapshotOutput{Count: len(snapshot.Tasks)}, nil
}
