package contract

import (
	"context"

	"github.com/firaol-d/clubhub/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser inserts a user; a duplicate email or username surfaces as
	// entity.ErrConflict.
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// UpdateUser applies the given field updates to a user by ID.
	UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error
	// ListByMembershipStatus pages through users in a given membership state.
	ListByMembershipStatus(ctx context.Context, status entity.MembershipStatus, page, limit int) ([]*entity.User, int64, error)
}
