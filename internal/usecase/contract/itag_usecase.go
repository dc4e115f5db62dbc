package contract

import (
	"context"

	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// ITagUseCase exposes tag administration and listing. System tags are only
// ever created here, by admins; user tags come into existence through the
// content flows' resolver.
type ITagUseCase interface {
	CreateSystemTag(ctx context.Context, requester entity.Identity, name string) (*entity.Tag, error)
	ListTags(ctx context.Context, kind *entity.TagKind) ([]*entity.Tag, error)
}
