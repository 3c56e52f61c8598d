package gorm

import (
	"context"
	"strings"

	"github.com/averlon/taskboard/internal/core/model"
	"github.com/averlon/taskboard/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateUser implements port.UserStore.
func (s *Store) CreateUser(ctx context.Context, fields port.UserFields) (*model.User, error) {
	var user *model.User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		row := &User{
			Name:  fields.Name,
			Email: fields.Email,
			Age:   fields.Age,
		}

		if err := db.Create(row).Error; err != nil {
			if isUniqueConstraintError(err) {
				return errors.WithStack(port.ErrEmailConflict)
			}
			return errors.WithStack(err)
		}

		user = row.toModel()
		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// GetUserByID implements port.UserStore.
func (s *Store) GetUserByID(ctx context.Context, userID model.UserID) (*model.User, error) {
	var row User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&row, "id = ?", int64(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return row.toModel(), nil
}

// ListUsers implements port.UserStore.
func (s *Store) ListUsers(ctx context.Context) ([]*model.User, error) {
	var rows []*User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Order("created_at DESC").Find(&rows).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	users := make([]*model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toModel())
	}

	return users, nil
}

// UpdateUser implements port.UserStore. Name, email and age are replaced as
// a whole; the creation timestamp is left untouched.
func (s *Store) UpdateUser(ctx context.Context, userID model.UserID, fields port.UserFields) (*model.User, error) {
	var user *model.User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			var row User

			if err := tx.First(&row, "id = ?", int64(userID)).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.WithStack(port.ErrNotFound)
				}
				return errors.WithStack(err)
			}

			row.Name = fields.Name
			row.Email = fields.Email
			row.Age = fields.Age

			if err := tx.Save(&row).Error; err != nil {
				if isUniqueConstraintError(err) {
					return errors.WithStack(port.ErrEmailConflict)
				}
				return errors.WithStack(err)
			}

			user = row.toModel()
			return nil
		})
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// DeleteUser implements port.UserStore.
func (s *Store) DeleteUser(ctx context.Context, userID model.UserID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		result := db.Delete(&User{}, "id = ?", int64(userID))
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func isUniqueConstraintError(err error) bool {
	var sqliteErr *sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode() == sqlite3.CONSTRAINT_UNIQUE {
		return true
	}

	// gorm may rewrap driver errors, keep the textual check as fallback
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

var _ port.UserStore = &Store{}
