package entity

import (
	"strings"
	"time"
)

// TagKind separates the two tag namespaces. The same name may exist once per
// kind, enforced by a unique (name, kind) index.
type TagKind string

const (
	TagKindSystem TagKind = "system"
	TagKindUser   TagKind = "user"
)

// Tag is a content classification label. System tags are curated by admins
// and are the only valid main-tag targets; user tags are created lazily the
// first time an author references an unknown name.
type Tag struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Kind      TagKind   `bson:"kind" json:"kind"`
	CreatedBy *string   `bson:"created_by,omitempty" json:"created_by,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// NormalizeTagName trims and lowercases a tag name. Every lookup and every
// stored tag name goes through this, so "Robotics " and "robotics" are the
// same tag.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
