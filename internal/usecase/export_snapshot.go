package usecase

import (
	"context"
	"fmt"

	"teamboard/internal/domain"
)

// ExportSnapshotInput contains the parameters for exporting a snapshot.
type ExportSnapshotInput struct{}

// ExportSnapshotOutput contains the encoded snapshot.
type ExportSnapshotOutput struct {
	Content []byte // Encoded snapshot content
	Count   int    // Number of exported tasks
}

// ExportSnapshot dumps the full task collection, with comments embedded,
// for handoff to the external store.
type ExportSnapshot struct {
	tasks domain.TaskRepository
	codec domain.SnapshotCodec
}

// NewExportSnapshot creates a new ExportSnapshot use case.
func NewExportSnapshot(tasks domain.TaskRepository, codec domain.SnapshotCodec) *ExportSnapshot {
	return &ExportSnapshot{
		tasks: tasks,
		codec: codec,
	}
}

// Execute encodes the current task collection as a snapshot.
func (uc *ExportSnapshot) Execute(_ context.Context, _ ExportSnapshotInput) (*ExportSnapshotOutput, error) {
	tasks, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	content, err := uc.codec.Encode(&domain.Snapshot{Tasks: tasks})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	return &ExportSnapshotOutput{Content: content, Count: len(tasks)}, nil
}
