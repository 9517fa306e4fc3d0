package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/skatetube/internal/domain/entity"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// UserRepository defines the persistence capability the auth flow relies on.
// Insert fails with ErrDuplicate when the email or username is taken.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Insert(ctx context.Context, u *entity.User) error
	NextID(ctx context.Context) (string, error)
}
