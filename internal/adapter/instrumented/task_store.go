package instrumented

import (
	"context"

	"github.com/averlon/taskboard/internal/core/model"
	"github.com/averlon/taskboard/internal/core/port"
	"github.com/averlon/taskboard/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var tasksLabels = prometheus.Labels{
	metrics.LabelCollection: metrics.CollectionTasks,
}

// TaskStore decorates another TaskStore with record counters.
type TaskStore struct {
	store port.TaskStore
}

// CreateTask implements port.TaskStore.
func (s *TaskStore) CreateTask(ctx context.Context, fields port.CreateTaskFields) (*model.Task, error) {
	task, err := s.store.CreateTask(ctx, fields)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.RecordsCreated.With(tasksLabels).Inc()

	return task, nil
}

// GetTaskByID implements port.TaskStore.
func (s *TaskStore) GetTaskByID(ctx context.Context, id model.TaskID) (*model.Task, error) {
	return s.store.GetTaskByID(ctx, id)
}

// ListTasks implements port.TaskStore.
func (s *TaskStore) ListTasks(ctx context.Context) ([]*model.Task, error) {
	return s.store.ListTasks(ctx)
}

// UpdateTask implements port.TaskStore.
func (s *TaskStore) UpdateTask(ctx context.Context, id model.TaskID, fields port.UpdateTaskFields) (*model.Task, error) {
	task, err := s.store.UpdateTask(ctx, id, fields)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.RecordsUpdated.With(tasksLabels).Inc()

	return task, nil
}

// DeleteTask implements port.TaskStore.
func (s *TaskStore) DeleteTask(ctx context.Context, id model.TaskID) error {
	if err := s.store.DeleteTask(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	metrics.RecordsDeleted.With(tasksLabels).Inc()

	return nil
}

// DeleteAllTasks implements port.TaskStore.
func (s *TaskStore) DeleteAllTasks(ctx context.Context) error {
	if err := s.store.DeleteAllTasks(ctx); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func NewTaskStore(store port.TaskStore) *TaskStore {
	return &TaskStore{store: store}
}

var _ port.TaskStore = &TaskStore{}
