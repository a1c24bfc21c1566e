// Package memstore provides the in-memory implementation of TaskRepository.
// It is the authoritative owner of the task collection for a single process;
// durability is delegated to an external store via snapshots.
package memstore

import (
	"slices"
	"strings"
	"sync"

	"teamboard/internal/domain"
)

// Store implements domain.TaskRepository with in-memory maps.
// Comments are keyed by task ID rather than embedded in the stored task,
// so cascade deletion is a lookup by key.
type Store struct {
	tasks         map[int]*domain.Task
	comments      map[int][]domain.Comment
	nextCommentID map[int]int
	mu            sync.RWMutex
	nextTaskID    int
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		tasks:         make(map[int]*domain.Task),
		comments:      make(map[int][]domain.Comment),
		nextCommentID: make(map[int]int),
		nextTaskID:    1,
	}
}

// Get retrieves a task by ID with its comments. Returns nil if not found.
func (s *Store) Get(id int) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}
	out := task.Clone()
	out.Comments = append([]domain.Comment(nil), s.comments[id]...)
	return out, nil
}

// List retrieves tasks matching the filter, ordered by ID.
func (s *Store) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var tasks []*domain.Task
	for _, id := range ids {
		task := s.tasks[id]
		if !matches(task, filter) {
			continue
		}
		out := task.Clone()
		out.Comments = append([]domain.Comment(nil), s.comments[id]...)
		tasks = append(tasks, out)
	}
	return tasks, nil
}

// NextID returns the next available task ID.
func (s *Store) NextID() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextTaskID
	s.nextTaskID++
	return id, nil
}

// Save creates or updates a task. The stored comment sequence is managed
// through the comment operations and is not affected by Save.
func (s *Store) Save(task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := task.Clone()
	stored.Comments = nil
	s.tasks[task.ID] = stored
	if task.ID >= s.nextTaskID {
		s.nextTaskID = task.ID + 1
	}
	return nil
}

// Delete removes a task and cascades to its comments.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(s.tasks, id)
	delete(s.comments, id)
	delete(s.nextCommentID, id)
	return nil
}

// GetComments retrieves comments for a task in insertion order.
func (s *Store) GetComments(taskID int) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.tasks[taskID]; !ok {
		return nil, domain.ErrTaskNotFound
	}
	return append([]domain.Comment{}, s.comments[taskID]...), nil
}

// AddComment appends a comment to a task's sequence, assigning an ID
// unique within the task. Content that is empty after trimming is
// rejected; the store never holds a blank comment.
func (s *Store) AddComment(taskID int, comment domain.Comment) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[taskID]; !ok {
		return domain.Comment{}, domain.ErrTaskNotFound
	}
	if strings.TrimSpace(comment.Content) == "" {
		return domain.Comment{}, domain.ErrEmptyContent
	}

	next := s.nextCommentID[taskID]
	if next == 0 {
		next = 1
	}
	if comment.ID == 0 {
		comment.ID = next
	}
	if comment.ID >= next {
		next = comment.ID + 1
	}
	s.nextCommentID[taskID] = next

	s.comments[taskID] = append(s.comments[taskID], comment)
	return comment, nil
}

// UpdateComment replaces an existing comment of a task.
func (s *Store) UpdateComment(taskID, commentID int, comment domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[taskID]; !ok {
		return domain.ErrTaskNotFound
	}
	comments := s.comments[taskID]
	for i := range comments {
		if comments[i].ID == commentID {
			comment.ID = commentID
			comments[i] = comment
			return nil
		}
	}
	return domain.ErrCommentNotFound
}

// DeleteComment removes a comment, preserving the order of the rest.
func (s *Store) DeleteComment(taskID, commentID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[taskID]; !ok {
		return domain.ErrTaskNotFound
	}
	comments := s.comments[taskID]
	for i := range comments {
		if comments[i].ID == commentID {
			s.comments[taskID] = append(comments[:i:i], comments[i+1:]...)
			return nil
		}
	}
	return domain.ErrCommentNotFound
}

// matches reports whether the task satisfies the filter.
func matches(task *domain.Task, filter domain.TaskFilter) bool {
	if filter.AssigneeID != nil && task.Assignee.ID != *filter.AssigneeID {
		return false
	}
	if filter.Status != nil && task.Status != *filter.Status {
		return false
	}
	if filter.DueOn != nil && !task.DueOn(*filter.DueOn) {
		return false
	}
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(task.Title), q) &&
			!strings.Contains(strings.ToLower(task.Description), q) &&
			!strings.Contains(strings.ToLower(task.Assignee.Name), q) {
			return false
		}
	}
	return true
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
