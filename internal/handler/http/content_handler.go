package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/firaol-d/clubhub/internal/domain/entity"
	"github.com/firaol-d/clubhub/internal/handler/http/dto"
	"github.com/firaol-d/clubhub/internal/handler/http/middleware"
	"github.com/firaol-d/clubhub/internal/usecase"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

// maxImageSize caps accepted image uploads at 8 MiB.
const maxImageSize = 8 << 20

// ContentHandler serves one content kind. Posts and projects get separate
// instances of the same handler, differing only in kind and route param name.
type ContentHandler struct {
	contentUseCase usecase.IContentUseCase
	logger         usecasecontract.IAppLogger
	kind           entity.ContentKind
	idParam        string
}

// NewContentHandler creates a handler bound to one content kind.
func NewContentHandler(contentUseCase usecase.IContentUseCase, logger usecasecontract.IAppLogger, kind entity.ContentKind, idParam string) *ContentHandler {
	return &ContentHandler{
		contentUseCase: contentUseCase,
		logger:         logger,
		kind:           kind,
		idParam:        idParam,
	}
}

// Create handles POST /{posts,projects}. Accepts JSON, or multipart when an
// image is attached.
func (h *ContentHandler) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var in usecase.CreateContentInput
	if isMultipart(c) {
		req, image, err := bindMultipartCreate(c)
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, err.Error())
			return
		}
		in = usecase.CreateContentInput{
			Title:    req.Title,
			Body:     req.Body,
			TagNames: req.Tags,
			MainTag:  req.MainTag,
			Image:    image,
		}
	} else {
		var req dto.CreateContentRequest
		if err := BindAndValidate(c, &req); err != nil {
			return
		}
		in = usecase.CreateContentInput{
			Title:    req.Title,
			Body:     req.Body,
			TagNames: req.Tags,
			MainTag:  req.MainTag,
		}
	}

	content, err := h.contentUseCase.Create(c.Request.Context(), h.kind, identity, in)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToContentResponse(content))
}

// Get handles GET /{posts,projects}/:id.
func (h *ContentHandler) Get(c *gin.Context) {
	content, tags, err := h.contentUseCase.Get(c.Request.Context(), h.kind, c.Param(h.idParam))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToContentDetailResponse(content, tags))
}

// List handles GET /{posts,projects}?page=&limit=&tag=&q=.
func (h *ContentHandler) List(c *gin.Context) {
	page, limit := paginationParams(c)

	items, total, page, totalPages, err := h.contentUseCase.List(
		c.Request.Context(), h.kind, page, limit, c.Query("tag"), c.Query("q"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PaginatedResponse{
		Items:      dto.ToContentResponses(items),
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	})
}

// Update handles PATCH /{posts,projects}/:id.
func (h *ContentHandler) Update(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var in usecase.UpdateContentInput
	if isMultipart(c) {
		req, image, err := bindMultipartUpdate(c)
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, err.Error())
			return
		}
		in = usecase.UpdateContentInput{
			Title:    req.Title,
			Body:     req.Body,
			TagNames: req.Tags,
			MainTag:  req.MainTag,
			Image:    image,
		}
	} else {
		var req dto.UpdateContentRequest
		if err := BindAndValidate(c, &req); err != nil {
			return
		}
		in = usecase.UpdateContentInput{
			Title:    req.Title,
			Body:     req.Body,
			TagNames: req.Tags,
			MainTag:  req.MainTag,
		}
	}

	content, err := h.contentUseCase.Update(c.Request.Context(), h.kind, c.Param(h.idParam), identity, in)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToContentResponse(content))
}

// Delete handles DELETE /{posts,projects}/:id.
func (h *ContentHandler) Delete(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.contentUseCase.Delete(c.Request.Context(), h.kind, c.Param(h.idParam), identity); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, fmt.Sprintf("%s deleted", h.kind))
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data")
}

// splitTagField turns a comma separated form value into a tag name list.
func splitTagField(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func readImageFile(header *multipart.FileHeader) (*usecase.ImageUpload, error) {
	if header.Size > maxImageSize {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageSize)
	}
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageSize)
	}
	return &usecase.ImageUpload{Data: data, Filename: header.Filename}, nil
}

func bindMultipartCreate(c *gin.Context) (dto.CreateContentRequest, *usecase.ImageUpload, error) {
	req := dto.CreateContentRequest{
		Title:   c.PostForm("title"),
		Body:    c.PostForm("body"),
		Tags:    splitTagField(c.PostForm("tags")),
		MainTag: c.PostForm("main_tag"),
	}

	var image *usecase.ImageUpload
	if header, err := c.FormFile("image"); err == nil {
		image, err = readImageFile(header)
		if err != nil {
			return req, nil, err
		}
	}
	return req, image, nil
}

func bindMultipartUpdate(c *gin.Context) (dto.UpdateContentRequest, *usecase.ImageUpload, error) {
	var req dto.UpdateContentRequest
	if v, ok := c.GetPostForm("title"); ok {
		req.Title = &v
	}
	if v, ok := c.GetPostForm("body"); ok {
		req.Body = &v
	}
	if v, ok := c.GetPostForm("tags"); ok {
		req.Tags = splitTagField(v)
	}
	if v, ok := c.GetPostForm("main_tag"); ok {
		req.MainTag = &v
	}

	var image *usecase.ImageUpload
	if header, err := c.FormFile("image"); err == nil {
		image, err = readImageFile(header)
		if err != nil {
			return req, nil, err
		}
	}
	return req, image, nil
}
