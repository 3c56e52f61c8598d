package memory

import (
	"context"
	"sync"
	"time"

	"github.com/averlon/taskboard/internal/core/model"
	"github.com/averlon/taskboard/internal/core/port"
	"github.com/pkg/errors"
)

// TaskStore keeps the authoritative task collection in process memory.
// Mutations are serialized by a single lock; readers get copies so callers
// can never mutate the stored records. Identifiers are xid-generated and
// never reused within the process lifetime.
type TaskStore struct {
	mutex sync.RWMutex
	tasks []*model.Task
	index map[model.TaskID]int
}

// CreateTask implements port.TaskStore.
func (s *TaskStore) CreateTask(ctx context.Context, fields port.CreateTaskFields) (*model.Task, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now()

	task := &model.Task{
		ID:          model.NewTaskID(),
		Title:       fields.Title,
		Description: fields.Description,
		Completed:   fields.Completed,
		Priority:    fields.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.index[task.ID] = len(s.tasks)
	s.tasks = append(s.tasks, task)

	copied := *task

	return &copied, nil
}

// GetTaskByID implements port.TaskStore.
func (s *TaskStore) GetTaskByID(ctx context.Context, id model.TaskID) (*model.Task, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	position, exists := s.index[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	copied := *s.tasks[position]

	return &copied, nil
}

// ListTasks implements port.TaskStore.
func (s *TaskStore) ListTasks(ctx context.Context) ([]*model.Task, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	tasks := make([]*model.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		copied := *task
		tasks = append(tasks, &copied)
	}

	return tasks, nil
}

// UpdateTask implements port.TaskStore.
func (s *TaskStore) UpdateTask(ctx context.Context, id model.TaskID, fields port.UpdateTaskFields) (*model.Task, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	position, exists := s.index[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	task := s.tasks[position]

	if fields.Title != nil {
		task.Title = *fields.Title
	}
	if fields.Description != nil {
		task.Description = *fields.Description
	}
	if fields.Completed != nil {
		task.Completed = *fields.Completed
	}
	if fields.Priority != nil {
		task.Priority = *fields.Priority
	}

	task.UpdatedAt = time.Now()

	copied := *task

	return &copied, nil
}

// DeleteTask implements port.TaskStore.
func (s *TaskStore) DeleteTask(ctx context.Context, id model.TaskID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	position, exists := s.index[id]
	if !exists {
		return errors.WithStack(port.ErrNotFound)
	}

	s.tasks = append(s.tasks[:position], s.tasks[position+1:]...)
	delete(s.index, id)

	for i := position; i < len(s.tasks); i++ {
		s.index[s.tasks[i].ID] = i
	}

	return nil
}

// DeleteAllTasks implements port.TaskStore.
func (s *TaskStore) DeleteAllTasks(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.tasks = s.tasks[:0]
	clear(s.index)

	return nil
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make([]*model.Task, 0),
		index: make(map[model.TaskID]int),
	}
}

var _ port.TaskStore = &TaskStore{}
