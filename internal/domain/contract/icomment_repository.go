package contract

import (
	"context"

	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// Pagination holds page/size for listing operations.
type Pagination struct {
	Page     int
	PageSize int
}

type ICommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, commentID string) (*entity.Comment, error)
	// ListByParent returns comments attached to one content entity, newest first.
	ListByParent(ctx context.Context, parent entity.ParentRef, p Pagination) ([]*entity.Comment, int64, error)
	UpdateContent(ctx context.Context, commentID, content string) error
	Delete(ctx context.Context, commentID string) error
}
