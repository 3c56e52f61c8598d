package instrumented

import (
	"context"

	"github.com/averlon/taskboard/internal/core/model"
	"github.com/averlon/taskboard/internal/core/port"
	"github.com/averlon/taskboard/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var usersLabels = prometheus.Labels{
	metrics.LabelCollection: metrics.CollectionUsers,
}

// UserStore decorates another UserStore with record counters, including the
// uniqueness conflicts rejected at the store boundary.
type UserStore struct {
	store port.UserStore
}

// CreateUser implements port.UserStore.
func (s *UserStore) CreateUser(ctx context.Context, fields port.UserFields) (*model.User, error) {
	user, err := s.store.CreateUser(ctx, fields)
	if err != nil {
		if errors.Is(err, port.ErrEmailConflict) {
			metrics.RecordConflicts.With(usersLabels).Inc()
		}
		return nil, errors.WithStack(err)
	}

	metrics.RecordsCreated.With(usersLabels).Inc()

	return user, nil
}

// GetUserByID implements port.UserStore.
func (s *UserStore) GetUserByID(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.store.GetUserByID(ctx, id)
}

// ListUsers implements port.UserStore.
func (s *UserStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.store.ListUsers(ctx)
}

// UpdateUser implements port.UserStore.
func (s *UserStore) UpdateUser(ctx context.Context, id model.UserID, fields port.UserFields) (*model.User, error) {
	user, err := s.store.UpdateUser(ctx, id, fields)
	if err != nil {
		if errors.Is(err, port.ErrEmailConflict) {
			metrics.RecordConflicts.With(usersLabels).Inc()
		}
		return nil, errors.WithStack(err)
	}

	metrics.RecordsUpdated.With(usersLabels).Inc()

	return user, nil
}

// DeleteUser implements port.UserStore.
func (s *UserStore) DeleteUser(ctx context.Context, id model.UserID) error {
	if err := s.store.DeleteUser(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	metrics.RecordsDeleted.With(usersLabels).Inc()

	return nil
}

func NewUserStore(store port.UserStore) *UserStore {
	return &UserStore{store: store}
}

var _ port.UserStore = &UserStore{}
