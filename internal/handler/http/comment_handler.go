package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firaol-d/clubhub/internal/handler/http/dto"
	"github.com/firaol-d/clubhub/internal/handler/http/middleware"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

// CommentHandler serves comments for one parent content kind. Each content
// route group mounts its own instance so the parent type is fixed by the
// path, never guessed from the payload.
type CommentHandler struct {
	commentUseCase usecasecontract.ICommentUseCase
	logger         usecasecontract.IAppLogger
	parentToken    string
	parentParam    string
}

// NewCommentHandler creates a handler bound to one parent route group.
func NewCommentHandler(commentUseCase usecasecontract.ICommentUseCase, logger usecasecontract.IAppLogger, parentToken, parentParam string) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
		parentToken:    parentToken,
		parentParam:    parentParam,
	}
}

// Create handles POST /{posts,projects}/:id/comments.
func (h *CommentHandler) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.CommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, err := h.commentUseCase.CreateComment(c.Request.Context(), h.parentToken, c.Param(h.parentParam), identity, req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToCommentResponse(comment))
}

// List handles GET /{posts,projects}/:id/comments.
func (h *CommentHandler) List(c *gin.Context) {
	page, limit := paginationParams(c)

	comments, total, err := h.commentUseCase.ListComments(c.Request.Context(), h.parentToken, c.Param(h.parentParam), page, limit)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PaginatedResponse{
		Items:      dto.ToCommentResponses(comments),
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	})
}

// Update handles PATCH /{posts,projects}/:id/comments/:commentID.
func (h *CommentHandler) Update(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.CommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, err := h.commentUseCase.UpdateComment(c.Request.Context(), h.parentToken, c.Param(h.parentParam), c.Param("commentID"), identity, req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCommentResponse(comment))
}

// Delete handles DELETE /{posts,projects}/:id/comments/:commentID.
func (h *CommentHandler) Delete(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.commentUseCase.DeleteComment(c.Request.Context(), h.parentToken, c.Param(h.parentParam), c.Param("commentID"), identity); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "comment deleted")
}
