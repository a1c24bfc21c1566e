package seed

import (
	"strings"
	"testing"
	"time"

	"teamboard/internal/domain"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec()
	edited := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	author := domain.User{ID: 2, Name: "Emma", Role: domain.RoleEmployee, Avatar: "E"}
	snapshot := &domain.Snapshot{
		Tasks: []*domain.Task{
			{
				ID:          4,
				Title:       "Restore backups",
				Description: "From the March export",
				Status:      domain.StatusInProgress,
				Priority:    domain.PriorityHigh,
				Tags:        []string{"ops", "urgent"},
				Attachments: []string{"runbook.md"},
				DueDate:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
				Created:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
				Assignee:    author,
				CreatedBy:   domain.User{ID: 1, Name: "Ada", Role: domain.RoleAdmin},
				Comments: []domain.Comment{
					{ID: 1, Content: "started", User: author, Created: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
					{ID: 2, Content: "revised", User: author, Created: time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC), Edited: &edited},
				},
			},
		},
	}

	data, err := codec.Encode(snapshot)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(decoded.Tasks) != 1 {
		t.Fatalf("len(Tasks) = %d, want 1", len(decoded.Tasks))
	}

	task := decoded.Tasks[0]
	if task.ID != 4 || task.Title != "Restore backups" {
		t.Errorf("task = %+v", task)
	}
	if task.Status != domain.StatusInProgress || task.Priority != domain.PriorityHigh {
		t.Errorf("status/priority = %q/%q", task.Status, task.Priority)
	}
	if !task.DueDate.Equal(snapshot.Tasks[0].DueDate) {
		t.Errorf("DueDate = %v", task.DueDate)
	}
	if task.Assignee != author {
		t.Errorf("Assignee = %+v", task.Assignee)
	}
	if len(task.Comments) != 2 {
		t.Fatalf("len(Comments) = %d, want 2", len(task.Comments))
	}
	if task.Comments[0].Edited != nil {
		t.Error("Comments[0].Edited should be nil")
	}
	if task.Comments[1].Edited == nil || !task.Comments[1].Edited.Equal(edited) {
		t.Errorf("Comments[1].Edited = %v", task.Comments[1].Edited)
	}
}

func TestCodec_Encode_OmitsZeroDueDate(t *testing.T) {
	codec := NewCodec()
	snapshot := &domain.Snapshot{
		Tasks: []*domain.Task{
			{ID: 1, Title: "No deadline", Status: domain.StatusTodo, Priority: domain.PriorityLow},
		},
	}

	data, err := codec.Encode(snapshot)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if strings.Contains(string(data), "due_date") {
		t.Errorf("encoded snapshot should omit due_date:\n%s", data)
	}
}

func TestCodec_Decode_Invalid(t *testing.T) {
	codec := NewCodec()
	if _, err := codec.Decode([]byte("{not yaml")); err == nil {
		t.Error("Decode() should fail on invalid YAML")
	}
}

func TestCodec_Decode_Empty(t *testing.T) {
	codec := NewCodec()
	snapshot, err := codec.Decode([]byte("tasks: []\n"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(snapshot.Tasks) != 0 {
		t.Errorf("len(Tasks) = %d, want 0", len(snapshot.Tasks))
	}
}
