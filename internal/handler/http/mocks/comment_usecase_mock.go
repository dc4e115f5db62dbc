package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/firaol-d/clubhub/internal/domain/entity"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

// MockCommentUseCase is a mock implementation of the comment usecase
type MockCommentUseCase struct {
	// Control mock behavior
	ShouldFailCreate bool
	ShouldFailList   bool
	ShouldFailUpdate bool
	ShouldFailDelete bool

	// FailWith overrides the generic failure error when set.
	FailWith error

	// Return values
	MockComment entity.Comment

	// Captured arguments
	LastParentToken string
	LastParentID    string
	LastRequester   entity.Identity
	LastContent     string
	LastPage        int
	LastLimit       int
}

var _ usecasecontract.ICommentUseCase = (*MockCommentUseCase)(nil)

func NewMockCommentUseCase() *MockCommentUseCase {
	now := time.Now()
	return &MockCommentUseCase{
		MockComment: entity.Comment{
			ID:        "mock-comment-id",
			Parent:    entity.ParentRef{Kind: entity.ContentKindPost, ID: "mock-content-id"},
			AuthorID:  "mock-author-id",
			Content:   "nice build",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func (m *MockCommentUseCase) fail(flag bool) error {
	if !flag {
		return nil
	}
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New("comment operation failed")
}

func (m *MockCommentUseCase) CreateComment(ctx context.Context, parentToken, parentID string, requester entity.Identity, content string) (*entity.Comment, error) {
	m.LastParentToken = parentToken
	m.LastParentID = parentID
	m.LastRequester = requester
	m.LastContent = content
	if err := m.fail(m.ShouldFailCreate); err != nil {
		return nil, err
	}
	return &m.MockComment, nil
}

func (m *MockCommentUseCase) ListComments(ctx context.Context, parentToken, parentID string, page, limit int) ([]*entity.Comment, int64, error) {
	m.LastParentToken = parentToken
	m.LastParentID = parentID
	m.LastPage = page
	m.LastLimit = limit
	if err := m.fail(m.ShouldFailList); err != nil {
		return nil, 0, err
	}
	return []*entity.Comment{&m.MockComment}, 1, nil
}

func (m *MockCommentUseCase) UpdateComment(ctx context.Context, parentToken, parentID, commentID string, requester entity.Identity, content string) (*entity.Comment, error) {
	m.LastParentToken = parentToken
	m.LastParentID = parentID
	m.LastRequester = requester
	m.LastContent = content
	if err := m.fail(m.ShouldFailUpdate); err != nil {
		return nil, err
	}
	return &m.MockComment, nil
}

func (m *MockCommentUseCase) DeleteComment(ctx context.Context, parentToken, parentID, commentID string, requester entity.Identity) error {
	m.LastParentToken = parentToken
	m.LastParentID = parentID
	m.LastRequester = requester
	return m.fail(m.ShouldFailDelete)
}
