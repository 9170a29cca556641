package repository

import (
	"context"
	"errors"

	"careerpath/internal/domain"
)

var (
	// ErrNotFound indicates a lookup matched no rows.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateIdentity indicates a username or email collision on insert.
	ErrDuplicateIdentity = errors.New("username or email already exists")
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
