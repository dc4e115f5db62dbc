package entity

import (
	"time"
)

// ContentKind discriminates the two taggable content types. They share one
// entity shape and differ only in authorization policy.
type ContentKind string

const (
	ContentKindPost    ContentKind = "post"
	ContentKindProject ContentKind = "project"
)

// Collection returns the storage collection backing a content kind.
func (k ContentKind) Collection() string {
	switch k {
	case ContentKindPost:
		return "posts"
	case ContentKindProject:
		return "projects"
	}
	return ""
}

// Content is a taggable content entity (a post or a project).
// Invariants: Tags is non-empty, MainTagID is an element of Tags, and
// MainTagID references a system tag.
type Content struct {
	ID        string      `bson:"_id,omitempty" json:"id"`
	Kind      ContentKind `bson:"kind" json:"kind"`
	Title     string      `bson:"title" json:"title"`
	Body      string      `bson:"body" json:"body"`
	AuthorID  string      `bson:"author_id" json:"author_id"`
	Tags      []string    `bson:"tags" json:"tags"`
	MainTagID string      `bson:"main_tag" json:"main_tag"`
	ImageURL  *string     `bson:"image_url,omitempty" json:"image_url,omitempty"`
	ImageRef  *string     `bson:"image_ref,omitempty" json:"-"`
	CreatedAt time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time   `bson:"updated_at" json:"updated_at"`
	IsDeleted bool        `bson:"is_deleted" json:"-"`
}
