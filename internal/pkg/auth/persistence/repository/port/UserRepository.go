package repository

import (
	"context"
	"errors"

	auth "github.com/carolinadevia11/Bridge/internal/pkg/auth/application/domain"
)

// ErrNotFound signals that no user row matched the lookup. Adapters must map
// their driver's no-rows error to this sentinel.
var ErrNotFound = errors.New("user repository: not found")

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, u auth.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*auth.User, error)
	ListAll(ctx context.Context) ([]auth.User, error)
	CountAll(ctx context.Context) (int64, error)
	UpsertAdmin(ctx context.Context, u auth.User) (string, error)
}
