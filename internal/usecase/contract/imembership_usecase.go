package contract

import (
	"context"

	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// IMembershipUseCase drives the admin-approval workflow. Only pending
// memberships accept a decision; deciding anything else is a conflict.
type IMembershipUseCase interface {
	// Approve moves pending to approved and promotes the user to member.
	Approve(ctx context.Context, userID string) (*entity.User, error)
	// Reject moves pending to rejected; the role is unchanged.
	Reject(ctx context.Context, userID string) (*entity.User, error)
	ListByStatus(ctx context.Context, status entity.MembershipStatus, page, limit int) ([]*entity.User, int64, error)
}
