package port

import (
	"context"

	"github.com/averlon/taskboard/internal/core/model"
)

type CreateTaskFields struct {
	Title       string
	Description string
	Completed   bool
	Priority    model.Priority
}

// UpdateTaskFields carries a partial update: nil fields are left untouched
// on the stored record.
type UpdateTaskFields struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *model.Priority
}

type TaskStore interface {
	// CreateTask assigns an identifier and timestamps, appends the record
	// and returns the stored copy
	CreateTask(ctx context.Context, fields CreateTaskFields) (*model.Task, error)

	// GetTaskByID finds a task by its ID, or returns ErrNotFound
	GetTaskByID(ctx context.Context, id model.TaskID) (*model.Task, error)

	// ListTasks returns a snapshot of all tasks in insertion order
	ListTasks(ctx context.Context) ([]*model.Task, error)

	// UpdateTask merges the given fields over the stored record, refreshes
	// UpdatedAt and returns the merged record, or returns ErrNotFound
	UpdateTask(ctx context.Context, id model.TaskID, fields UpdateTaskFields) (*model.Task, error)

	// DeleteTask removes a task, or returns ErrNotFound
	DeleteTask(ctx context.Context, id model.TaskID) error

	// DeleteAllTasks clears the collection
	DeleteAllTasks(ctx context.Context) error
}
