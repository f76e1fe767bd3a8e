package user

import (
	"context"
	"errors"

	domain "boxoffice/internal/domain/user"
)

// Store persists User state.
type Store interface {
	Create(ctx context.Context, value domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	Count(ctx context.Context) (int, error)
}

// Store errors
var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username is already taken")
)
