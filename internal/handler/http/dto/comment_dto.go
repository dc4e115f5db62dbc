package dto

import (
	"time"

	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// CommentRequest is the payload for creating or updating a comment.
type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse is the DTO for a comment.
type CommentResponse struct {
	ID         string `json:"id"`
	ParentType string `json:"parent_type"`
	ParentID   string `json:"parent_id"`
	AuthorID   string `json:"author_id"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// ToCommentResponse converts an entity.Comment to a CommentResponse DTO.
func ToCommentResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:         comment.ID,
		ParentType: comment.Parent.Kind.Collection(),
		ParentID:   comment.Parent.ID,
		AuthorID:   comment.AuthorID,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  comment.UpdatedAt.Format(time.RFC3339),
	}
}

// ToCommentResponses converts a slice of comment entities.
func ToCommentResponses(comments []*entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, ToCommentResponse(c))
	}
	return out
}
