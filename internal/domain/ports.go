package domain

import "time"

// TaskRepository manages the authoritative task collection and each task's
// comment sequence. It performs structural mutations only; authorization is
// the caller's concern.
type TaskRepository interface {
	// Get retrieves a task by ID with its comments. Returns nil if not found.
	Get(id int) (*Task, error)

	// List retrieves tasks matching the filter, ordered by ID.
	List(filter TaskFilter) ([]*Task, error)

	// NextID returns the next available task ID.
	NextID() (int, error)

	// Save creates or updates a task. The stored comment sequence is
	// managed through the comment operations and is not affected.
	Save(task *Task) error

	// Delete removes a task and all its comments.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(id int) error

	// GetComments retrieves comments for a task in insertion order.
	GetComments(taskID int) ([]Comment, error)

	// AddComment appends a comment to a task's sequence, assigning a
	// comment ID unique within the task. Returns the stored comment.
	AddComment(taskID int, comment Comment) (Comment, error)

	// UpdateComment replaces an existing comment of a task.
	// Returns ErrCommentNotFound if the comment does not exist.
	UpdateComment(taskID, commentID int, comment Comment) error

	// DeleteComment removes a comment, preserving the order of the rest.
	DeleteComment(taskID, commentID int) error
}

// TaskFilter specifies criteria for listing tasks.
// Fields are ordered to minimize memory padding.
type TaskFilter struct {
	DueOn      *time.Time // Only tasks due on this calendar day
	AssigneeID *int       // Only tasks assigned to this user
	Status     *Status    // Only tasks in this status
	Query      string     // Case-insensitive match on title, description, or assignee name
}

// SnapshotCodec encodes and decodes store snapshots for exchange with an
// external store. The core itself never persists anything.
type SnapshotCodec interface {
	// Encode serializes a snapshot.
	Encode(snapshot *Snapshot) ([]byte, error)

	// Decode parses a snapshot.
	Decode(data []byte) (*Snapshot, error)
}

// Snapshot is a plain-data dump of the task collection, with comments
// embedded in their owning tasks.
type Snapshot struct {
	Tasks []*Task
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration, falling back to defaults when no
	// config file exists.
	Load() (*Config, error)
}

// Config represents the application configuration.
type Config struct {
	Users       []User    // Known team members (the user directory)
	Log         LogConfig // [log] settings
	DefaultUser int       // Acting user when none is specified
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
	Dir   string // Log directory (empty = logging disabled)
}

// NewDefaultConfig returns the default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// User looks up a user in the directory by ID.
func (c *Config) User(id int) (*User, bool) {
	for i := range c.Users {
		if c.Users[i].ID == id {
			return &c.Users[i], true
		}
	}
	return nil, false
}

// Logger records operational events. Entries carry the related task ID
// (0 = not task-specific) and a short category.
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
