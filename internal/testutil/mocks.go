// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"slices"
	"strings"
	"time"

	"teamboard/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// LogEntry records one call to the mock logger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	TaskID   int
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
}

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID int, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "debug", TaskID: taskID, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(taskID int, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "info", TaskID: taskID, Category: category, Msg: msg})
}

// Warn records a warn entry.
func (m *MockLogger) Warn(taskID int, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "warn", TaskID: taskID, Category: category, Msg: msg})
}

// Error records an error entry.
func (m *MockLogger) Error(taskID int, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "error", TaskID: taskID, Category: category, Msg: msg})
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks    map[int]*domain.Task
	Comments map[int][]domain.Comment
	GetErr   error
	SaveErr  error
	ListErr  error
	NextIDN  int
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks:    make(map[int]*domain.Task),
		Comments: make(map[int][]domain.Comment),
		NextIDN:  1,
	}
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(id int) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, nil
	}
	out := task.Clone()
	out.Comments = append([]domain.Comment(nil), m.Comments[id]...)
	return out, nil
}

// List returns tasks matching the filter, ordered by ID.
func (m *MockTaskRepository) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	ids := make([]int, 0, len(m.Tasks))
	for id := range m.Tasks {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var tasks []*domain.Task
	for _, id := range ids {
		t := m.Tasks[id]
		if filter.AssigneeID != nil && t.Assignee.ID != *filter.AssigneeID {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.DueOn != nil && !t.DueOn(*filter.DueOn) {
			continue
		}
		if filter.Query != "" && !matchesQuery(t, filter.Query) {
			continue
		}
		out := t.Clone()
		out.Comments = append([]domain.Comment(nil), m.Comments[id]...)
		tasks = append(tasks, out)
	}
	return tasks, nil
}

// matchesQuery mirrors the store's free-text matching.
func matchesQuery(t *domain.Task, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) ||
		strings.Contains(strings.ToLower(t.Assignee.Name), q)
}

// NextID returns the next available task ID.
func (m *MockTaskRepository) NextID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// Save saves a task.
func (m *MockTaskRepository) Save(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	stored := task.Clone()
	stored.Comments = nil
	m.Tasks[task.ID] = stored
	if task.ID >= m.NextIDN {
		m.NextIDN = task.ID + 1
	}
	return nil
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(id int) error {
	if _, ok := m.Tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	delete(m.Comments, id)
	return nil
}

// GetComments returns comments for a task.
func (m *MockTaskRepository) GetComments(taskID int) ([]domain.Comment, error) {
	if _, ok := m.Tasks[taskID]; !ok {
		return nil, domain.ErrTaskNotFound
	}
	return m.Comments[taskID], nil
}

// AddComment adds a comment to a task, assigning the next per-task ID.
// Mirrors the store's rejection of blank content.
func (m *MockTaskRepository) AddComment(taskID int, comment domain.Comment) (domain.Comment, error) {
	if _, ok := m.Tasks[taskID]; !ok {
		return domain.Comment{}, domain.ErrTaskNotFound
	}
	if strings.TrimSpace(comment.Content) == "" {
		return domain.Comment{}, domain.ErrEmptyContent
	}
	if comment.ID == 0 {
		max := 0
		for _, c := range m.Comments[taskID] {
			if c.ID > max {
				max = c.ID
			}
		}
		comment.ID = max + 1
	}
	m.Comments[taskID] = append(m.Comments[taskID], comment)
	return comment, nil
}

// UpdateComment updates an existing comment of a task.
func (m *MockTaskRepository) UpdateComment(taskID, commentID int, comment domain.Comment) error {
	if _, ok := m.Tasks[taskID]; !ok {
		return domain.ErrTaskNotFound
	}
	comments := m.Comments[taskID]
	for i := range comments {
		if comments[i].ID == commentID {
			comment.ID = commentID
			comments[i] = comment
			return nil
		}
	}
	return domain.ErrCommentNotFound
}

// DeleteComment removes a comment from a task.
func (m *MockTaskRepository) DeleteComment(taskID, commentID int) error {
	if _, ok := m.Tasks[taskID]; !ok {
		return domain.ErrTaskNotFound
	}
	comments := m.Comments[taskID]
	for i := range comments {
		if comments[i].ID == commentID {
			m.Comments[taskID] = append(comments[:i:i], comments[i+1:]...)
			return nil
		}
	}
	return domain.ErrCommentNotFound
}

// MockTaskRepositoryWithNextIDError extends MockTaskRepository to return an
// error on NextID.
type MockTaskRepositoryWithNextIDError struct {
	*MockTaskRepository
	NextIDErr error
}

// NextID returns an error if configured.
func (m *MockTaskRepositoryWithNextIDError) NextID() (int, error) {
	if m.NextIDErr != nil {
		return 0, m.NextIDErr
	}
	return m.MockTaskRepository.NextID()
}

// MockTaskRepositoryWithAddCommentError extends MockTaskRepository to return
// an error on AddComment.
type MockTaskRepositoryWithAddCommentError struct {
	*MockTaskRepository
	AddCommentErr error
}

// AddComment returns an error if configured.
func (m *MockTaskRepositoryWithAddCommentError) AddComment(taskID int, comment domain.Comment) (domain.Comment, error) {
	if m.AddCommentErr != nil {
		return domain.Comment{}, m.AddCommentErr
	}
	return m.MockTaskRepository.AddComment(taskID, comment)
}

// MockCodec is a test double for domain.SnapshotCodec.
type MockCodec struct {
	EncodeData []byte
	EncodeErr  error
	DecodeSnap *domain.Snapshot
	DecodeErr  error
}

// Encode returns the configured data or error.
func (m *MockCodec) Encode(_ *domain.Snapshot) ([]byte, error) {
	if m.EncodeErr != nil {
		return nil, m.EncodeErr
	}
	return m.EncodeData, nil
}

// Decode returns the configured snapshot or error.
func (m *MockCodec) Decode(_ []byte) (*domain.Snapshot, error) {
	if m.DecodeErr != nil {
		return nil, m.DecodeErr
	}
	return m.DecodeSnap, nil
}
