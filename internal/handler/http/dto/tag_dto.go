package dto

import (
	"time"

	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// CreateTagRequest is the payload for creating a system tag.
type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

// TagResponse is the DTO for a tag.
type TagResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	CreatedAt string `json:"created_at"`
}

// ToTagResponse converts an entity.Tag to a TagResponse DTO.
func ToTagResponse(tag *entity.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID,
		Name:      tag.Name,
		Kind:      string(tag.Kind),
		CreatedAt: tag.CreatedAt.Format(time.RFC3339),
	}
}

// ToTagResponses converts a slice of tag entities.
func ToTagResponses(tags []*entity.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, ToTagResponse(t))
	}
	return out
}
