package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/firaol-d/clubhub/internal/domain/contract"
	"github.com/firaol-d/clubhub/internal/domain/entity"
	"github.com/firaol-d/clubhub/internal/infrastructure/metrics"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

type membershipUseCase struct {
	userRepo    contract.IUserRepository
	mailService contract.IEmailService
	logger      usecasecontract.IAppLogger
}

// NewMembershipUseCase creates the admin-approval workflow usecase.
func NewMembershipUseCase(userRepo contract.IUserRepository, mailService contract.IEmailService, logger usecasecontract.IAppLogger) usecasecontract.IMembershipUseCase {
	return &membershipUseCase{
		userRepo:    userRepo,
		mailService: mailService,
		logger:      logger,
	}
}

var _ usecasecontract.IMembershipUseCase = (*membershipUseCase)(nil)

// Approve moves a pending membership to approved and promotes the user to
// member. The notification email is fire-and-forget: a send failure is
// logged and never fails the transition.
func (uc *membershipUseCase) Approve(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.decide(ctx, userID, entity.MembershipApproved, map[string]interface{}{
		"membership_status": entity.MembershipApproved,
		"role":              entity.UserRoleMember,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.mailService.SendApprovalEmail(ctx, user.Username, user.Email); err != nil {
		uc.logger.Warningf("failed to send approval email to %s: %v", user.Email, err)
	}
	metrics.IncMembershipDecision("approved")
	return user, nil
}

// Reject moves a pending membership to rejected. The role is unchanged.
func (uc *membershipUseCase) Reject(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.decide(ctx, userID, entity.MembershipRejected, map[string]interface{}{
		"membership_status": entity.MembershipRejected,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.mailService.SendRejectionEmail(ctx, user.Username, user.Email); err != nil {
		uc.logger.Warningf("failed to send rejection email to %s: %v", user.Email, err)
	}
	metrics.IncMembershipDecision("rejected")
	return user, nil
}

// decide applies a membership decision to a user that must still be pending.
func (uc *membershipUseCase) decide(ctx context.Context, userID string, status entity.MembershipStatus, updates map[string]interface{}) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.MembershipStatus != entity.MembershipPending {
		return nil, fmt.Errorf("%w: membership is already %s", entity.ErrConflict, user.MembershipStatus)
	}

	updates["updated_at"] = time.Now()
	if err := uc.userRepo.UpdateUser(ctx, userID, updates); err != nil {
		uc.logger.Errorf("failed to update membership for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}

	user.MembershipStatus = status
	if role, ok := updates["role"].(entity.UserRole); ok {
		user.Role = role
	}
	return user, nil
}

// ListByStatus pages through users in a given membership state.
func (uc *membershipUseCase) ListByStatus(ctx context.Context, status entity.MembershipStatus, page, limit int) ([]*entity.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	users, total, err := uc.userRepo.ListByMembershipStatus(ctx, status, page, limit)
	if err != nil {
		uc.logger.Errorf("failed to list %s memberships: %v", status, err)
		return nil, 0, fmt.Errorf("failed to list memberships: %w", err)
	}
	return users, total, nil
}
