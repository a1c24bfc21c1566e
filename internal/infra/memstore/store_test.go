package memstore

import (
	"errors"
	"testing"
	"time"

	"teamboard/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New()
}

func saveTask(t *testing.T, store *Store, task *domain.Task) {
	t.Helper()
	if task.ID == 0 {
		id, err := store.NextID()
		if err != nil {
			t.Fatalf("NextID() error = %v", err)
		}
		task.ID = id
	}
	if err := store.Save(task); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
}

func TestStore_NextID(t *testing.T) {
	store := newTestStore(t)

	id1, err := store.NextID()
	if err != nil {
		t.Fatalf("NextID() error = %v", err)
	}
	if id1 != 1 {
		t.Errorf("NextID() = %d, want 1", id1)
	}

	id2, err := store.NextID()
	if err != nil {
		t.Fatalf("NextID() error = %v", err)
	}
	if id2 != 2 {
		t.Errorf("NextID() = %d, want 2", id2)
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)

	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	task := &domain.Task{
		ID:          1,
		Title:       "Prepare onboarding docs",
		Description: "Cover the first week",
		Status:      domain.StatusTodo,
		Priority:    domain.PriorityMedium,
		Created:     now,
		Assignee:    domain.User{ID: 1, Name: "Sarah Chen", Role: domain.RoleEmployee},
		CreatedBy:   domain.User{ID: 2, Name: "Mike Johnson", Role: domain.RoleManager},
		Tags:        []string{"onboarding"},
		Attachments: []string{"checklist.pdf"},
	}
	if err := store.Save(task); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Get(1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil for saved task")
	}
	if got.Title != task.Title || got.Status != task.Status || !got.Created.Equal(now) {
		t.Errorf("Get() = %+v, want fields of %+v", got, task)
	}
}

func TestStore_Get_NotFound(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Get(99)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %+v, want nil", got)
	}
}

func TestStore_Get_ReturnsCopy(t *testing.T) {
	store := newTestStore(t)
	saveTask(t, store, &domain.Task{Title: "Original", Attachments: []string{"a.txt"}})

	got, _ := store.Get(1)
	got.Title = "Mutated"
	got.Attachments[0] = "mutated.txt"

	again, _ := store.Get(1)
	if again.Title != "Original" || again.Attachments[0] != "a.txt" {
		t.Error("mutating a returned task leaked into the store")
	}
}

func TestStore_Save_DoesNotTouchComments(t *testing.T) {
	store := newTestStore(t)
	saveTask(t, store, &domain.Task{Title: "With comments"})

	if _, err := store.AddComment(1, domain.Comment{Content: "first"}); err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}

	// Saving a task whose Comments field is stale must not clobber the
	// stored sequence.
	task, _ := store.Get(1)
	task.Comments = nil
	task.Title = "Renamed"
	if err := store.Save(task); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, _ := store.Get(1)
	if got.Title != "Renamed" {
		t.Errorf("Title = %q, want Renamed", got.Title)
	}
	if len(got.Comments) != 1 {
		t.Errorf("comments length = %d, want 1", len(got.Comments))
	}
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	saveTask(t, store, &domain.Task{Title: "Short-lived"})

	if err := store.Delete(1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	got, _ := store.Get(1)
	if got != nil {
		t.Error("task still present after Delete")
	}

	// Second delete is not a silent no-op.
	if err := store.Delete(1); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("second Delete() error = %v, want ErrTaskNotFound", err)
	}
}

func TestStore_Delete_CascadesComments(t *testing.T) {
	store := newTestStore(t)
	saveTask(t, store, &domain.Task{Title: "Cascade"})
	if _, err := store.AddComment(1, domain.Comment{Content: "note"}); err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}

	if err := store.Delete(1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Re-creating a task with the same ID must start with a fresh
	// comment sequence.
	saveTask(t, store, &domain.Task{ID: 1, Title: "Reborn"})
	comments, err := store.GetComments(1)
	if err != nil {
		t.Fatalf("GetComments() error = %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("comments length = %d, want 0 after cascade delete", len(comments))
	}
}

func TestStore_List_OrderedByID(t *testing.T) {
	store := newTestStore(t)
	saveTask(t, store, &domain.Task{ID: 3, Title: "third"})
	saveTask(t, store, &domain.Task{ID: 1, Title: "first"})
	saveTask(t, store, &domain.Task{ID: 2, Title: "second"})

	tasks, err := store.List(domain.TaskFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("List() length = %d, want 3", len(tasks))
	}
	for i, want := range []int{1, 2, 3} {
		if tasks[i].ID != want {
			t.Errorf("tasks[%d].ID = %d, want %d", i, tasks[i].ID, want)
		}
	}
}

func TestStore_List_Filters(t *testing.T) {
	store := newTestStore(t)
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	sarah := domain.User{ID: 1, Name: "Sarah Chen", Role: domain.RoleEmployee}
	mike := domain.User{ID: 2, Name: "Mike Johnson", Role: domain.RoleManager}

	saveTask(t, store, &domain.Task{Title: "Fix login flow", Status: domain.StatusInProgress, Assignee: sarah, DueDate: due})
	saveTask(t, store, &domain.Task{Title: "Ship reports", Status: domain.StatusDone, Assignee: mike})
	saveTask(t, store, &domain.Task{Title: "Update docs", Description: "login guide", Status: domain.StatusTodo, Assignee: mike})

	byAssignee, _ := store.List(domain.TaskFilter{AssigneeID: &sarah.ID})
	if len(byAssignee) != 1 || byAssignee[0].Title != "Fix login flow" {
		t.Errorf("assignee filter returned %d tasks", len(byAssignee))
	}

	inProgress := domain.StatusInProgress
	byStatus, _ := store.List(domain.TaskFilter{Status: &inProgress})
	if len(byStatus) != 1 {
		t.Errorf("status filter returned %d tasks, want 1", len(byStatus))
	}

	byQuery, _ := store.List(domain.TaskFilter{Query: "LOGIN"})
	if len(byQuery) != 2 {
		t.Errorf("query filter returned %d tasks, want 2", len(byQuery))
	}

	byName, _ := store.List(domain.TaskFilter{Query: "mike"})
	if len(byName) != 2 {
		t.Errorf("assignee-name query returned %d tasks, want 2", len(byName))
	}

	byDue, _ := store.List(domain.TaskFilter{DueOn: &due})
	if len(byDue) != 1 || byDue[0].Title != "Fix login flow" {
		t.Errorf("due-date filter returned %d tasks", len(byDue))
	}
}

func TestStore_AddComment_OrderAndIDs(t *testing.T) {
	store := newTestStore(t)
	saveTask(t, store, &domain.Task{Title: "Discussion"})

	a, _ := store.AddComment(1, domain.Comment{Content: "A"})
	b, _ := store.AddComment(1, domain.Comment{Content: "B"})
	c, _ := store.AddComment(1, domain.Comment{Content: "C"})

	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("comment IDs not unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}

	comments, _ := store.GetComments(1)
	if len(comments) != 3 {
		t.Fatalf("comments length = %d, want 3", len(comments))
	}
	for i, want := range []string{"A", "B", "C"} {
		if comments[i].Content != want {
			t.Errorf("comments[%d].Content = %q, want %q", i, comments[i].Content, want)
		}
	}
}

func TestStore_AddComment_RejectsBlankContent(t *testing.T) {
	store := newTestStore(t)
	saveTask(t, store, &domain.Task{Title: "Discussion"})

	for _, content := range []string{"", "   ", " \t\n "} {
		if _, err := store.AddComment(1, domain.Comment{Content: content}); !errors.Is(err, domain.ErrEmptyContent) {
			t.Errorf("AddComment(%q) error = %v, want ErrEmptyContent", content, err)
		}
	}

	comments, _ := store.GetComments(1)
	if len(comments) != 0 {
		t.Errorf("len(comments) = %d, want 0", len(comments))
	}
}

func TestStore_AddComment_TaskNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddComment(42, domain.Comment{Content: "orphan"})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("AddComment() error = %v, want ErrTaskNotFound", err)
	}
}

func TestStore_DeleteComment_PreservesOrder(t *testing.T) {
	store := newTestStore(t)
	saveTask(t, store, &domain.Task{Title: "Discussion"})
	a, _ := store.AddComment(1, domain.Comment{Content: "A"})
	b, _ := store.AddComment(1, domain.Comment{Content: "B"})
	c, _ := store.AddComment(1, domain.Comment{Content: "C"})
	_ = a

	if err := store.DeleteComment(1, b.ID); err != nil {
		t.Fatalf("DeleteComment() error = %v", err)
	}

	comments, _ := store.GetComments(1)
	if len(comments) != 2 {
		t.Fatalf("comments length = %d, want 2", len(comments))
	}
	if comments[0].Content != "A" || comments[1].Content != "C" {
		t.Errorf("comments = [%q, %q], want [A, C]", comments[0].Content, comments[1].Content)
	}

	// IDs of remaining comments are untouched.
	if comments[1].ID != c.ID {
		t.Errorf("comments[1].ID = %d, want %d", comments[1].ID, c.ID)
	}

	if err := store.DeleteComment(1, b.ID); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Errorf("second DeleteComment() error = %v, want ErrCommentNotFound", err)
	}
}

func TestStore_UpdateComment(t *testing.T) {
	store := newTestStore(t)
	saveTask(t, store, &domain.Task{Title: "Discussion"})
	created, _ := store.AddComment(1, domain.Comment{Content: "draft"})

	updated := created
	updated.Content = "final"
	if err := store.UpdateComment(1, created.ID, updated); err != nil {
		t.Fatalf("UpdateComment() error = %v", err)
	}

	comments, _ := store.GetComments(1)
	if comments[0].Content != "final" || comments[0].ID != created.ID {
		t.Errorf("comment after update = %+v", comments[0])
	}

	if err := store.UpdateComment(1, 99, updated); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Errorf("UpdateComment(missing) error = %v, want ErrCommentNotFound", err)
	}
	if err := store.UpdateComment(42, created.ID, updated); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("UpdateComment(missing task) error = %v, want ErrTaskNotFound", err)
	}
}

func TestStore_CommentIDs_NotReusedAfterDelete(t *testing.T) {
	store := newTestStore(t)
	saveTask(t, store, &domain.Task{Title: "Discussion"})
	a, _ := store.AddComment(1, domain.Comment{Content: "A"})
	if err := store.DeleteComment(1, a.ID); err != nil {
		t.Fatalf("DeleteComment() error = %v", err)
	}

	b, _ := store.AddComment(1, domain.Comment{Content: "B"})
	if b.ID == a.ID {
		t.Errorf("comment ID %d reused after delete", a.ID)
	}
}
