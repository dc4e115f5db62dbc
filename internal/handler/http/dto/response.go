package dto

import (
	"time"

	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID               string  `json:"id"`
	Username         string  `json:"username"`
	Email            string  `json:"email"`
	Role             string  `json:"role"`
	MembershipStatus string  `json:"membership_status"`
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	CreatedAt        string  `json:"created_at"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// TokenPairResponse is the DTO for a token refresh.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		Role:             string(user.Role),
		MembershipStatus: string(user.MembershipStatus),
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		CreatedAt:        user.CreatedAt.Format(time.RFC3339),
	}
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PaginatedResponse wraps a page of results with pagination info.
type PaginatedResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
}
