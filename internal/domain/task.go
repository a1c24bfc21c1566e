// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a unit of work tracked by teamboard.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created     time.Time `json:"created"`               // Creation time (immutable)
	DueDate     time.Time `json:"dueDate,omitempty"`     // Due date (zero = none)
	Title       string    `json:"title"`                 // Title (required)
	Description string    `json:"description,omitempty"` // Description (optional)
	Status      Status    `json:"status"`                // Current status
	Priority    Priority  `json:"priority"`              // Priority level
	Tags        []string  `json:"tags,omitempty"`        // Free-form tags
	Attachments []string  `json:"attachments,omitempty"` // Attached filenames, positional identity
	Comments    []Comment `json:"comments,omitempty"`    // Comments in insertion order
	Assignee    User      `json:"assignee"`              // User the task is assigned to
	CreatedBy   User      `json:"createdBy"`             // User who created the task
	ID          int       `json:"id"`                    // Task ID (store-assigned)
}

// IsOverdue returns true if the task has a due date in the past and is not done.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate.IsZero() || t.Status == StatusDone {
		return false
	}
	return t.DueDate.Before(now)
}

// DueOn returns true if the task is due on the same calendar day as the given time.
func (t *Task) DueOn(day time.Time) bool {
	if t.DueDate.IsZero() {
		return false
	}
	y1, m1, d1 := t.DueDate.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Clone returns a deep copy of the task.
// Repositories hand out clones so callers cannot splice internal state.
func (t *Task) Clone() *Task {
	c := *t
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	if t.Attachments != nil {
		c.Attachments = append([]string(nil), t.Attachments...)
	}
	if t.Comments != nil {
		c.Comments = append([]Comment(nil), t.Comments...)
	}
	return &c
}

// Comment represents a remark attached to exactly one task.
// Fields are ordered to minimize memory padding.
type Comment struct {
	Created time.Time  `json:"created"`          // Creation time (immutable)
	Edited  *time.Time `json:"edited,omitempty"` // Last edit time (nil = never edited)
	Content string     `json:"content"`          // Comment text (non-empty after trim)
	User    User       `json:"user"`             // Authoring user (immutable)
	ID      int        `json:"id"`               // Comment ID, unique within its task
}

// IsEdited returns true if the comment has been edited at least once.
func (c *Comment) IsEdited() bool {
	return c.Edited != nil
}
