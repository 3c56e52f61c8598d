package port

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrEmailConflict = errors.New("email already exists")
)
