package usecase

import (
	"fmt"

	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// Route tokens for the two comment parent collections. Anything else is
// rejected before storage is touched.
const (
	ParentTokenPosts    = "posts"
	ParentTokenProjects = "projects"
)

// ResolveParentRef is the single construction site for comment parent
// references. It maps a route token plus id to a typed ParentRef so the
// discriminator stored on a comment and the one implied by the route can be
// compared directly.
func ResolveParentRef(parentToken, parentID string) (entity.ParentRef, error) {
	var kind entity.ContentKind
	switch parentToken {
	case ParentTokenPosts:
		kind = entity.ContentKindPost
	case ParentTokenProjects:
		kind = entity.ContentKindProject
	default:
		return entity.ParentRef{}, fmt.Errorf("%w: %q", entity.ErrInvalidParentType, parentToken)
	}
	if parentID == "" {
		return entity.ParentRef{}, fmt.Errorf("%w: parent id is required", entity.ErrValidation)
	}
	return entity.ParentRef{Kind: kind, ID: parentID}, nil
}
