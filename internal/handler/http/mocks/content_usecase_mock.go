package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/firaol-d/clubhub/internal/domain/entity"
	"github.com/firaol-d/clubhub/internal/usecase"
)

// MockContentUseCase is a mock implementation of the content usecase
type MockContentUseCase struct {
	// Control mock behavior
	ShouldFailCreate bool
	ShouldFailGet    bool
	ShouldFailList   bool
	ShouldFailUpdate bool
	ShouldFailDelete bool

	// FailWith overrides the generic failure error when set.
	FailWith error

	// Return values
	MockContent entity.Content
	MockTags    []*entity.Tag

	// Captured arguments
	LastKind      entity.ContentKind
	LastRequester entity.Identity
	LastCreate    usecase.CreateContentInput
	LastUpdate    usecase.UpdateContentInput
}

// Ensure MockContentUseCase implements the interface expected by the handler
var _ usecase.IContentUseCase = (*MockContentUseCase)(nil)

func NewMockContentUseCase() *MockContentUseCase {
	now := time.Now()
	url := "https://assets.example.com/board.png"
	return &MockContentUseCase{
		MockContent: entity.Content{
			ID:        "mock-content-id",
			Kind:      entity.ContentKindPost,
			Title:     "Line follower build log",
			Body:      "Start with two IR sensors.",
			AuthorID:  "mock-author-id",
			Tags:      []string{"tag-robotics"},
			MainTagID: "tag-robotics",
			ImageURL:  &url,
			CreatedAt: now,
			UpdatedAt: now,
		},
		MockTags: []*entity.Tag{
			{ID: "tag-robotics", Name: "robotics", Kind: entity.TagKindSystem, CreatedAt: now},
		},
	}
}

func (m *MockContentUseCase) fail(flag bool) error {
	if !flag {
		return nil
	}
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New("content operation failed")
}

func (m *MockContentUseCase) Create(ctx context.Context, kind entity.ContentKind, requester entity.Identity, in usecase.CreateContentInput) (*entity.Content, error) {
	m.LastKind = kind
	m.LastRequester = requester
	m.LastCreate = in
	if err := m.fail(m.ShouldFailCreate); err != nil {
		return nil, err
	}
	content := m.MockContent
	content.Kind = kind
	return &content, nil
}

func (m *MockContentUseCase) Get(ctx context.Context, kind entity.ContentKind, id string) (*entity.Content, []*entity.Tag, error) {
	m.LastKind = kind
	if err := m.fail(m.ShouldFailGet); err != nil {
		return nil, nil, err
	}
	content := m.MockContent
	content.Kind = kind
	return &content, m.MockTags, nil
}

func (m *MockContentUseCase) List(ctx context.Context, kind entity.ContentKind, page, limit int, tagName, query string) ([]*entity.Content, int64, int, int, error) {
	m.LastKind = kind
	if err := m.fail(m.ShouldFailList); err != nil {
		return nil, 0, 0, 0, err
	}
	content := m.MockContent
	content.Kind = kind
	return []*entity.Content{&content}, 1, 1, 1, nil
}

func (m *MockContentUseCase) Update(ctx context.Context, kind entity.ContentKind, id string, requester entity.Identity, in usecase.UpdateContentInput) (*entity.Content, error) {
	m.LastKind = kind
	m.LastRequester = requester
	m.LastUpdate = in
	if err := m.fail(m.ShouldFailUpdate); err != nil {
		return nil, err
	}
	content := m.MockContent
	content.Kind = kind
	return &content, nil
}

func (m *MockContentUseCase) Delete(ctx context.Context, kind entity.ContentKind, id string, requester entity.Identity) error {
	m.LastKind = kind
	m.LastRequester = requester
	return m.fail(m.ShouldFailDelete)
}
