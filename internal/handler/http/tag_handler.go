package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firaol-d/clubhub/internal/domain/entity"
	"github.com/firaol-d/clubhub/internal/handler/http/dto"
	"github.com/firaol-d/clubhub/internal/handler/http/middleware"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

// TagHandler serves tag listing and system-tag administration.
type TagHandler struct {
	tagUseCase usecasecontract.ITagUseCase
	logger     usecasecontract.IAppLogger
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tagUseCase usecasecontract.ITagUseCase, logger usecasecontract.IAppLogger) *TagHandler {
	return &TagHandler{tagUseCase: tagUseCase, logger: logger}
}

// List handles GET /tags?kind=system.
func (h *TagHandler) List(c *gin.Context) {
	var kind *entity.TagKind
	if k := c.Query("kind"); k != "" {
		tk := entity.TagKind(k)
		if tk != entity.TagKindSystem && tk != entity.TagKindUser {
			ErrorHandler(c, http.StatusBadRequest, "invalid tag kind")
			return
		}
		kind = &tk
	}

	tags, err := h.tagUseCase.ListTags(c.Request.Context(), kind)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToTagResponses(tags))
}

// CreateSystemTag handles POST /admin/tags.
func (h *TagHandler) CreateSystemTag(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.CreateTagRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	tag, err := h.tagUseCase.CreateSystemTag(c.Request.Context(), identity, req.Name)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToTagResponse(tag))
}
