package users

import (
	"context"
	"time"

	"github.com/khushal/hello-grpc/internal/server/models"
)

// Repository is the persistence abstraction over the users table.
//
// Create enforces the username and email uniqueness constraints atomically
// with the insert: two concurrent creations racing on the same value resolve
// to exactly one success and one common.ErrUsernameTaken/ErrEmailTaken.
// Lookup methods return common.ErrorNotFound for absent rows.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id string, loginTime time.Time) error
}
