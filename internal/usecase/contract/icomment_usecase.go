package contract

import (
	"context"

	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// ICommentUseCase covers the polymorphic comment subsystem. Every operation
// takes the route's parent-type token so the stored parent reference can be
// cross-checked against the path the caller used.
type ICommentUseCase interface {
	CreateComment(ctx context.Context, parentToken, parentID string, requester entity.Identity, content string) (*entity.Comment, error)
	ListComments(ctx context.Context, parentToken, parentID string, page, limit int) ([]*entity.Comment, int64, error)
	UpdateComment(ctx context.Context, parentToken, parentID, commentID string, requester entity.Identity, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, parentToken, parentID, commentID string, requester entity.Identity) error
}
