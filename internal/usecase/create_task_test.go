package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamboard/internal/domain"
	"teamboard/internal/testutil"
)

func TestCreateTask_Execute_Success(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	logger := &testutil.MockLogger{}
	actor := domain.User{ID: 2, Name: "Emma", Role: domain.RoleEmployee}
	uc := NewCreateTask(repo, clock, logger)

	// Execute
	out, err := uc.Execute(context.Background(), CreateTaskInput{
		Title:       "Write release notes",
		Description: "Cover the March release",
		Priority:    domain.PriorityHigh,
		Actor:       actor,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, out.Task.ID)
	assert.Equal(t, "Write release notes", out.Task.Title)
	assert.Equal(t, domain.StatusTodo, out.Task.Status)
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
	assert.Equal(t, clock.NowTime, out.Task.Created)
	assert.Equal(t, actor, out.Task.CreatedBy)

	// Verify task saved
	saved, err := repo.Get(1)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Write release notes", saved.Title)

	// Verify creation logged
	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "task", logger.Entries[0].Category)
	assert.Equal(t, 1, logger.Entries[0].TaskID)
}

func TestCreateTask_Execute_DefaultsToSelfAssignedMedium(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Now()}
	actor := domain.User{ID: 3, Name: "Marta", Role: domain.RoleManager}
	uc := NewCreateTask(repo, clock, nil)

	// Execute without priority or assignee
	out, err := uc.Execute(context.Background(), CreateTaskInput{
		Title: "Plan sprint",
		Actor: actor,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, out.Task.Priority)
	assert.Equal(t, actor, out.Task.Assignee)
}

func TestCreateTask_Execute_ExplicitAssignee(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Now()}
	manager := domain.User{ID: 3, Name: "Marta", Role: domain.RoleManager}
	employee := domain.User{ID: 2, Name: "Emma", Role: domain.RoleEmployee}
	uc := NewCreateTask(repo, clock, nil)

	// Execute
	out, err := uc.Execute(context.Background(), CreateTaskInput{
		Title:    "Fix login flow",
		Actor:    manager,
		Assignee: employee,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, employee, out.Task.Assignee)
	assert.Equal(t, manager, out.Task.CreatedBy)
}

func TestCreateTask_Execute_EmptyTitle(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Now()}
	uc := NewCreateTask(repo, clock, nil)

	// Execute with empty title
	_, err := uc.Execute(context.Background(), CreateTaskInput{
		Title: "",
		Actor: domain.User{ID: 2, Role: domain.RoleEmployee},
	})

	// Assert
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Empty(t, repo.Tasks)
}

func TestCreateTask_Execute_UnknownActor(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Now()}
	uc := NewCreateTask(repo, clock, nil)

	// Execute with zero actor
	_, err := uc.Execute(context.Background(), CreateTaskInput{
		Title: "Orphan task",
	})

	// Assert
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCreateTask_Execute_InvalidPriority(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Now()}
	uc := NewCreateTask(repo, clock, nil)

	// Execute with bogus priority
	_, err := uc.Execute(context.Background(), CreateTaskInput{
		Title:    "Task",
		Priority: domain.Priority("urgent"),
		Actor:    domain.User{ID: 2, Role: domain.RoleEmployee},
	})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestCreateTask_Execute_NextIDError(t *testing.T) {
	// Setup
	idErr := errors.New("id generation failed")
	repo := &testutil.MockTaskRepositoryWithNextIDError{
		MockTaskRepository: testutil.NewMockTaskRepository(),
		NextIDErr:          idErr,
	}
	clock := &testutil.MockClock{NowTime: time.Now()}
	uc := NewCreateTask(repo, clock, nil)

	// Execute
	_, err := uc.Execute(context.Background(), CreateTaskInput{
		Title: "Task",
		Actor: domain.User{ID: 2, Role: domain.RoleEmployee},
	})

	// Assert
	assert.ErrorIs(t, err, idErr)
}
