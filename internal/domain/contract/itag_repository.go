package contract

import (
	"context"

	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// ITagRepository defines the interface for tag data persistence. Names are
// stored normalized; (name, kind) is unique.
type ITagRepository interface {
	// CreateTag inserts a tag; a (name, kind) duplicate surfaces as
	// entity.ErrConflict.
	CreateTag(ctx context.Context, tag *entity.Tag) error
	GetTagByID(ctx context.Context, tagID string) (*entity.Tag, error)
	// GetTagByName returns the first tag with the given name regardless of
	// kind, preferring the system one when both exist.
	GetTagByName(ctx context.Context, name string) (*entity.Tag, error)
	// GetTagByNameAndKind looks a name up within one namespace.
	GetTagByNameAndKind(ctx context.Context, name string, kind entity.TagKind) (*entity.Tag, error)
	// GetTagsByName returns every tag with the given name, at most one per kind.
	GetTagsByName(ctx context.Context, name string) ([]*entity.Tag, error)
	GetTagsByIDs(ctx context.Context, tagIDs []string) ([]*entity.Tag, error)
	// ListTags returns all tags, optionally restricted to one kind.
	ListTags(ctx context.Context, kind *entity.TagKind) ([]*entity.Tag, error)
}
