package entity

import (
	"time"
)

// ParentRef identifies the content entity a comment is attached to. The kind
// discriminator and the id always travel together; the only construction site
// is the parent-ref resolver, so a stored ref can be compared wholesale
// against the ref implied by a request path.
type ParentRef struct {
	Kind ContentKind `bson:"kind" json:"kind"`
	ID   string      `bson:"id" json:"id"`
}

// Comment is attached to either a post or a project via Parent.
type Comment struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Parent    ParentRef `bson:"parent" json:"parent"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// MaxCommentLength is the cap on comment content after trimming.
const MaxCommentLength = 500
