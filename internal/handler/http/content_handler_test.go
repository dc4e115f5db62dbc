package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/firaol-d/clubhub/internal/domain/entity"
	handler "github.com/firaol-d/clubhub/internal/handler/http"
	"github.com/firaol-d/clubhub/internal/handler/http/dto"
	"github.com/firaol-d/clubhub/internal/handler/http/middleware"
	"github.com/firaol-d/clubhub/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// identityStub injects a fixed identity the way the auth middleware would.
func identityStub(identity entity.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, identity)
		c.Next()
	}
}

func setupContentRouter(h *handler.ContentHandler, identity entity.Identity) *gin.Engine {
	r := gin.New()
	r.Use(identityStub(identity))
	r.POST("/posts", h.Create)
	r.GET("/posts", h.List)
	r.GET("/posts/:postID", h.Get)
	r.PATCH("/posts/:postID", h.Update)
	r.DELETE("/posts/:postID", h.Delete)
	return r
}

func newPostHandler(mock *mocks.MockContentUseCase) *handler.ContentHandler {
	return handler.NewContentHandler(mock, nopLogger{}, entity.ContentKindPost, "postID")
}

var adminIdentity = entity.Identity{ID: "admin-1", Role: entity.UserRoleAdmin, MembershipStatus: entity.MembershipApproved}

func TestCreatePost(t *testing.T) {
	mock := mocks.NewMockContentUseCase()
	r := setupContentRouter(newPostHandler(mock), adminIdentity)

	payload := dto.CreateContentRequest{
		Title:   "Line follower build log",
		Body:    "Start with two IR sensors.",
		Tags:    []string{"robotics"},
		MainTag: "robotics",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "mock-content-id")
	assert.Equal(t, entity.ContentKindPost, mock.LastKind)
	assert.Equal(t, "admin-1", mock.LastRequester.ID)
	assert.Equal(t, []string{"robotics"}, mock.LastCreate.TagNames)
}

func TestCreatePost_MissingFields(t *testing.T) {
	mock := mocks.NewMockContentUseCase()
	r := setupContentRouter(newPostHandler(mock), adminIdentity)

	body, _ := json.Marshal(map[string]string{"title": "only a title"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePost_Forbidden(t *testing.T) {
	mock := mocks.NewMockContentUseCase()
	mock.ShouldFailCreate = true
	mock.FailWith = entity.ErrForbidden
	member := entity.Identity{ID: "member-1", Role: entity.UserRoleMember}
	r := setupContentRouter(newPostHandler(mock), member)

	payload := dto.CreateContentRequest{
		Title:   "t",
		Body:    "b",
		Tags:    []string{"robotics"},
		MainTag: "robotics",
	}
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreatePost_InvalidMainTag(t *testing.T) {
	mock := mocks.NewMockContentUseCase()
	mock.ShouldFailCreate = true
	mock.FailWith = entity.ErrInvalidMainTag
	r := setupContentRouter(newPostHandler(mock), adminIdentity)

	payload := dto.CreateContentRequest{
		Title:   "t",
		Body:    "b",
		Tags:    []string{"arduino"},
		MainTag: "arduino",
	}
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPost(t *testing.T) {
	mock := mocks.NewMockContentUseCase()
	r := setupContentRouter(newPostHandler(mock), adminIdentity)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/mock-content-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Line follower build log")

	var resp dto.ContentDetailResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mock-content-id", resp.ID)
	if assert.Len(t, resp.Tags, 1) {
		assert.Equal(t, "robotics", resp.Tags[0].Name)
		assert.Equal(t, "system", resp.Tags[0].Kind)
	}
}

func TestGetPost_NotFound(t *testing.T) {
	mock := mocks.NewMockContentUseCase()
	mock.ShouldFailGet = true
	mock.FailWith = entity.ErrNotFound
	r := setupContentRouter(newPostHandler(mock), adminIdentity)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPosts(t *testing.T) {
	mock := mocks.NewMockContentUseCase()
	r := setupContentRouter(newPostHandler(mock), adminIdentity)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts?page=1&limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Items      []dto.ContentResponse `json:"items"`
		Total      int64                 `json:"total"`
		TotalPages int                   `json:"total_pages"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 1)
	assert.EqualValues(t, 1, resp.Total)
}

func TestUpdatePost(t *testing.T) {
	mock := mocks.NewMockContentUseCase()
	r := setupContentRouter(newPostHandler(mock), adminIdentity)

	title := "revised"
	payload := dto.UpdateContentRequest{Title: &title}
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/posts/mock-content-id", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, mock.LastUpdate.Title)
	assert.Nil(t, mock.LastUpdate.MainTag)
}

func TestDeletePost(t *testing.T) {
	mock := mocks.NewMockContentUseCase()
	r := setupContentRouter(newPostHandler(mock), adminIdentity)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/mock-content-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "post deleted")
}

func TestDeletePost_Conflict(t *testing.T) {
	mock := mocks.NewMockContentUseCase()
	mock.ShouldFailDelete = true
	mock.FailWith = entity.ErrConflict
	r := setupContentRouter(newPostHandler(mock), adminIdentity)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/mock-content-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
