package gorm

import (
	"time"

	"github.com/averlon/taskboard/internal/core/model"
)

type User struct {
	ID int64 `gorm:"primaryKey"`

	CreatedAt time.Time

	Name  string
	Email string `gorm:"unique"`
	Age   int
}

func (u *User) toModel() *model.User {
	return &model.User{
		ID:        model.UserID(u.ID),
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
	}
}
