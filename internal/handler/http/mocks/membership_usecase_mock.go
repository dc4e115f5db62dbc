package mocks

import (
	"context"
	"errors"

	"github.com/firaol-d/clubhub/internal/domain/entity"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

// MockMembershipUseCase is a mock implementation of the membership usecase
type MockMembershipUseCase struct {
	// Control mock behavior
	ShouldFailApprove bool
	ShouldFailReject  bool
	ShouldFailList    bool

	// FailWith overrides the generic failure error when set.
	FailWith error

	// Return values
	MockUser entity.User

	// Captured arguments
	LastUserID string
	LastStatus entity.MembershipStatus
	LastPage   int
	LastLimit  int
}

var _ usecasecontract.IMembershipUseCase = (*MockMembershipUseCase)(nil)

func NewMockMembershipUseCase() *MockMembershipUseCase {
	return &MockMembershipUseCase{
		MockUser: entity.User{
			ID:               "mock-user-id",
			Username:         "testuser",
			Email:            "test@example.com",
			Role:             entity.UserRoleUser,
			MembershipStatus: entity.MembershipPending,
		},
	}
}

func (m *MockMembershipUseCase) fail(flag bool) error {
	if !flag {
		return nil
	}
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New("membership operation failed")
}

func (m *MockMembershipUseCase) Approve(ctx context.Context, userID string) (*entity.User, error) {
	m.LastUserID = userID
	if err := m.fail(m.ShouldFailApprove); err != nil {
		return nil, err
	}
	user := m.MockUser
	user.MembershipStatus = entity.MembershipApproved
	user.Role = entity.UserRoleMember
	return &user, nil
}

func (m *MockMembershipUseCase) Reject(ctx context.Context, userID string) (*entity.User, error) {
	m.LastUserID = userID
	if err := m.fail(m.ShouldFailReject); err != nil {
		return nil, err
	}
	user := m.MockUser
	user.MembershipStatus = entity.MembershipRejected
	return &user, nil
}

func (m *MockMembershipUseCase) ListByStatus(ctx context.Context, status entity.MembershipStatus, page, limit int) ([]*entity.User, int64, error) {
	m.LastStatus = status
	m.LastPage = page
	m.LastLimit = limit
	if err := m.fail(m.ShouldFailList); err != nil {
		return nil, 0, err
	}
	user := m.MockUser
	return []*entity.User{&user}, 1, nil
}
