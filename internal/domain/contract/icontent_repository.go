package contract

import (
	"context"

	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// ContentFilterOptions narrows and pages a content listing.
type ContentFilterOptions struct {
	Page   int
	Limit  int
	TagIDs []string // match entities carrying any of these tag ids
	Query  string   // case-insensitive substring against title/body
}

// IContentRepository persists the two content kinds in per-kind collections
// selected by entity.ContentKind.
type IContentRepository interface {
	Create(ctx context.Context, content *entity.Content) error
	GetByID(ctx context.Context, kind entity.ContentKind, id string) (*entity.Content, error)
	List(ctx context.Context, kind entity.ContentKind, opts ContentFilterOptions) ([]*entity.Content, int64, error)
	// Update applies the given field updates; missing or deleted entities
	// surface as entity.ErrNotFound.
	Update(ctx context.Context, kind entity.ContentKind, id string, updates map[string]interface{}) error
	// Delete soft-deletes the entity.
	Delete(ctx context.Context, kind entity.ContentKind, id string) error
}
