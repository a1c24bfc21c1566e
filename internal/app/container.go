// Package app provides the dependency injection container for the application.
package app

import (
	"teamboard/internal/domain"
	"teamboard/internal/infra/config"
	"teamboard/internal/infra/logging"
	"teamboard/internal/infra/memstore"
	"teamboard/internal/infra/seed"
	"teamboard/internal/selection"
	"teamboard/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks        domain.TaskRepository
	Codec        domain.SnapshotCodec
	Clock        domain.Clock
	Logger       domain.Logger
	ConfigLoader domain.ConfigLoader

	// Pointer fields
	Selection *selection.Selector
	Config    *domain.Config
}

// New creates a new Container reading configuration from the given directory.
func New(dir string) (*Container, error) {
	configLoader := config.NewLoader(dir)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Log.Dir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Tasks:        memstore.New(),
		Codec:        seed.NewCodec(),
		Clock:        domain.RealClock{},
		Logger:       logger,
		ConfigLoader: configLoader,
		Selection:    selection.New(),
		Config:       cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, tasks domain.TaskRepository, codec domain.SnapshotCodec, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:     tasks,
		Codec:     codec,
		Clock:     clock,
		Logger:    logger,
		Selection: selection.New(),
		Config:    cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.Logger.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// UseCase factory methods

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Tasks, c.Clock, c.Logger)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Tasks, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks)
}

// TaskStatsUseCase returns a new TaskStats use case.
func (c *Container) TaskStatsUseCase() *usecase.TaskStats {
	return usecase.NewTaskStats(c.Tasks)
}

// AddCommentUseCase returns a new AddComment use case.
func (c *Container) AddCommentUseCase() *usecase.AddComment {
	return usecase.NewAddComment(c.Tasks, c.Clock, c.Logger)
}

// EditCommentUseCase returns a new EditComment use case.
func (c *Container) EditCommentUseCase() *usecase.EditComment {
	return usecase.NewEditComment(c.Tasks, c.Clock, c.Logger)
}

// DeleteCommentUseCase returns a new DeleteComment use case.
func (c *Container) DeleteCommentUseCase() *usecase.DeleteComment {
	return usecase.NewDeleteComment(c.Tasks, c.Logger)
}

// ImportSnapshotUseCase returns a new ImportSnapshot use case.
func (c *Container) ImportSnapshotUseCase() *usecase.ImportSnapshot {
	return usecase.NewImportSnapshot(c.Tasks, c.Codec, c.Clock, c.Logger)
}

// ExportSnapshotUseCase returns a new ExportSnapshot use case.
func (c *Container) ExportSnapshotUseCase() *usecase.ExportSnapshot {
	return usecase.NewExportSnapshot(c.Tasks, c.Codec)
}
