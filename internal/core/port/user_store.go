package port

import (
	"context"

	"github.com/averlon/taskboard/internal/core/model"
)

type UserFields struct {
	Name  string
	Email string
	Age   int
}

type UserStore interface {
	// CreateUser assigns the next identifier and creation timestamp and
	// returns the stored record, or returns ErrEmailConflict if the email
	// is already taken
	CreateUser(ctx context.Context, fields UserFields) (*model.User, error)

	// GetUserByID finds a user by its ID, or returns ErrNotFound
	GetUserByID(ctx context.Context, id model.UserID) (*model.User, error)

	// ListUsers returns all users ordered by creation time descending
	ListUsers(ctx context.Context) ([]*model.User, error)

	// UpdateUser replaces name, email and age on the stored record and
	// returns it, or returns ErrNotFound / ErrEmailConflict
	UpdateUser(ctx context.Context, id model.UserID, fields UserFields) (*model.User, error)

	// DeleteUser removes a user, or returns ErrNotFound
	DeleteUser(ctx context.Context, id model.UserID) error
}
