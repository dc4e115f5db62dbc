package dto

import (
	"time"

	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// CreateContentRequest is the JSON payload for creating a post or project.
type CreateContentRequest struct {
	Title   string   `json:"title" binding:"required"`
	Body    string   `json:"body" binding:"required"`
	Tags    []string `json:"tags" binding:"required,min=1"`
	MainTag string   `json:"main_tag" binding:"required"`
}

// UpdateContentRequest is the JSON payload for a partial content update.
// Tags and MainTag must be supplied together when the tag set changes.
type UpdateContentRequest struct {
	Title   *string  `json:"title"`
	Body    *string  `json:"body"`
	Tags    []string `json:"tags"`
	MainTag *string  `json:"main_tag"`
}

// ContentResponse is the DTO for a post or project.
type ContentResponse struct {
	ID        string   `json:"id"`
	Kind      string   `json:"kind"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	AuthorID  string   `json:"author_id"`
	Tags      []string `json:"tags"`
	MainTag   string   `json:"main_tag"`
	ImageURL  *string  `json:"image_url,omitempty"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// ToContentResponse converts an entity.Content to a ContentResponse DTO.
func ToContentResponse(content *entity.Content) ContentResponse {
	return ContentResponse{
		ID:        content.ID,
		Kind:      string(content.Kind),
		Title:     content.Title,
		Body:      content.Body,
		AuthorID:  content.AuthorID,
		Tags:      content.Tags,
		MainTag:   content.MainTagID,
		ImageURL:  content.ImageURL,
		CreatedAt: content.CreatedAt.Format(time.RFC3339),
		UpdatedAt: content.UpdatedAt.Format(time.RFC3339),
	}
}

// ContentDetailResponse is a ContentResponse with the tag refs expanded into
// full tags; the outer Tags field replaces the embedded id list.
type ContentDetailResponse struct {
	ContentResponse
	Tags []TagResponse `json:"tags"`
}

// ToContentDetailResponse converts a content entity plus its resolved tags.
func ToContentDetailResponse(content *entity.Content, tags []*entity.Tag) ContentDetailResponse {
	return ContentDetailResponse{
		ContentResponse: ToContentResponse(content),
		Tags:            ToTagResponses(tags),
	}
}

// ToContentResponses converts a slice of content entities.
func ToContentResponses(contents []*entity.Content) []ContentResponse {
	out := make([]ContentResponse, 0, len(contents))
	for _, c := range contents {
		out = append(out, ToContentResponse(c))
	}
	return out
}
