package user

import (
	"context"

	"github.com/payflow/backend/internal/domain/user/valueobject"
)

// Repository is the persistence abstraction for user accounts.
type Repository interface {
	Save(ctx context.Context, u *User) (*User, error)
	FindByUsername(ctx context.Context, username valueobject.Username) (*User, error)
	ExistsByUsername(ctx context.Context, username valueobject.Username) (bool, error)
}
