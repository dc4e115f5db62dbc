package usecase

import (
	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// ContentPolicy is the per-kind authorization policy for taggable content.
// Posts and projects share one usecase; only the policy differs.
type ContentPolicy struct {
	CreateRoles    []entity.UserRole
	OwnerMayMutate bool
}

var contentPolicies = map[entity.ContentKind]ContentPolicy{
	entity.ContentKindPost: {
		CreateRoles:    []entity.UserRole{entity.UserRoleAdmin},
		OwnerMayMutate: false,
	},
	entity.ContentKindProject: {
		CreateRoles:    []entity.UserRole{entity.UserRoleMember, entity.UserRoleAdmin},
		OwnerMayMutate: true,
	},
}

// PolicyFor returns the authorization policy for a content kind.
func PolicyFor(kind entity.ContentKind) ContentPolicy {
	return contentPolicies[kind]
}

// CanCreate reports whether a role may create content under this policy.
func (p ContentPolicy) CanCreate(role entity.UserRole) bool {
	for _, r := range p.CreateRoles {
		if r == role {
			return true
		}
	}
	return false
}

// AuthorizeMutation decides whether the requester may update or delete a
// resource owned by authorID. Admins always may; owners may when the policy
// allows ownership-based mutation. Callers check resource existence first,
// so a missing resource never surfaces as forbidden.
func (p ContentPolicy) AuthorizeMutation(requester entity.Identity, authorID string) error {
	if requester.Role == entity.UserRoleAdmin {
		return nil
	}
	if p.OwnerMayMutate && requester.ID == authorID {
		return nil
	}
	return entity.ErrForbidden
}

// authorizeOwnerOrAdmin is the generic ownership predicate used by resources
// whose mutation policy is always owner-or-admin, such as comments.
func authorizeOwnerOrAdmin(requester entity.Identity, authorID string) error {
	if requester.Role == entity.UserRoleAdmin || requester.ID == authorID {
		return nil
	}
	return entity.ErrForbidden
}
