package contract

import (
	"context"

	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// IUserUseCase defines account-related business logic.
type IUserUseCase interface {
	// Register creates an account with role user and a pending membership.
	Register(ctx context.Context, username, email, password, firstName, lastName string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	// Authenticate resolves an access token to a fresh user record.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error)
}
