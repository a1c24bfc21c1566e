// Package seed implements the YAML snapshot format used to hand the task
// collection to and from an external store.
package seed

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"teamboard/internal/domain"
)

// Ensure Codec implements domain.SnapshotCodec.
var _ domain.SnapshotCodec = (*Codec)(nil)

// Codec encodes snapshots as YAML.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// yamlSnapshot is the serialized form of a snapshot.
type yamlSnapshot struct {
	Tasks []yamlTask `yaml:"tasks"`
}

type yamlTask struct {
	ID          int           `yaml:"id"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description,omitempty"`
	Status      string        `yaml:"status"`
	Priority    string        `yaml:"priority"`
	Tags        []string      `yaml:"tags,omitempty"`
	Attachments []string      `yaml:"attachments,omitempty"`
	DueDate     *time.Time    `yaml:"due_date,omitempty"`
	Created     time.Time     `yaml:"created"`
	Assignee    yamlUser      `yaml:"assignee"`
	CreatedBy   yamlUser      `yaml:"created_by"`
	Comments    []yamlComment `yaml:"comments,omitempty"`
}

type yamlUser struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Avatar string `yaml:"avatar,omitempty"`
}

type yamlComment struct {
	ID      int        `yaml:"id"`
	Content string     `yaml:"content"`
	User    yamlUser   `yaml:"user"`
	Created time.Time  `yaml:"created"`
	Edited  *time.Time `yaml:"edited,omitempty"`
}

// Encode serializes a snapshot as YAML.
func (c *Codec) Encode(snapshot *domain.Snapshot) ([]byte, error) {
	out := yamlSnapshot{Tasks: make([]yamlTask, 0, len(snapshot.Tasks))}
	for _, task := range snapshot.Tasks {
		out.Tasks = append(out.Tasks, taskToYAML(task))
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a YAML snapshot.
func (c *Codec) Decode(data []byte) (*domain.Snapshot, error) {
	var in yamlSnapshot
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	snapshot := &domain.Snapshot{Tasks: make([]*domain.Task, 0, len(in.Tasks))}
	for _, task := range in.Tasks {
		snapshot.Tasks = append(snapshot.Tasks, taskFromYAML(task))
	}
	return snapshot, nil
}

func taskToYAML(task *domain.Task) yamlTask {
	out := yamlTask{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		Tags:        task.Tags,
		Attachments: task.Attachments,
		Created:     task.Created,
		Assignee:    userToYAML(task.Assignee),
		CreatedBy:   userToYAML(task.CreatedBy),
	}
	if !task.DueDate.IsZero() {
		due := task.DueDate
		out.DueDate = &due
	}
	for _, comment := range task.Comments {
		out.Comments = append(out.Comments, yamlComment{
			ID:      comment.ID,
			Content: comment.Content,
			User:    userToYAML(comment.User),
			Created: comment.Created,
			Edited:  comment.Edited,
		})
	}
	return out
}

func taskFromYAML(in yamlTask) *domain.Task {
	task := &domain.Task{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Status:      domain.Status(in.Status),
		Priority:    domain.Priority(in.Priority),
		Tags:        in.Tags,
		Attachments: in.Attachments,
		Created:     in.Created,
		Assignee:    userFromYAML(in.Assignee),
		CreatedBy:   userFromYAML(in.CreatedBy),
	}
	if in.DueDate != nil {
		task.DueDate = *in.DueDate
	}
	for _, comment := range in.Comments {
		task.Comments = append(task.Comments, domain.Comment{
			ID:      comment.ID,
			Content: comment.Content,
			User:    userFromYAML(comment.User),
			Created: comment.Created,
			Edited:  comment.Edited,
		})
	}
	return task
}

func userToYAML(user domain.User) yamlUser {
	return yamlUser{
		ID:     user.ID,
		Name:   user.Name,
		Role:   string(user.Role),
		Avatar: user.Avatar,
	}
}

func userFromYAML(in yamlUser) domain.User {
	return domain.User{
		ID:     in.ID,
		Name:   in.Name,
		Role:   domain.Role(in.Role),
		Avatar: in.Avatar,
	}
}
