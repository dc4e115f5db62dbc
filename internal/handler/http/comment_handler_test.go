package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/firaol-d/clubhub/internal/domain/entity"
	handler "github.com/firaol-d/clubhub/internal/handler/http"
	"github.com/firaol-d/clubhub/internal/handler/http/dto"
	"github.com/firaol-d/clubhub/internal/handler/http/mocks"
	"github.com/firaol-d/clubhub/internal/usecase"
)

var memberIdentity = entity.Identity{ID: "member-1", Role: entity.UserRoleMember, MembershipStatus: entity.MembershipApproved}

// setupCommentRouter mounts comment routes under both parent groups the way
// the real router does.
func setupCommentRouter(mock *mocks.MockCommentUseCase, identity entity.Identity) *gin.Engine {
	postComments := handler.NewCommentHandler(mock, nopLogger{}, usecase.ParentTokenPosts, "postID")
	projComments := handler.NewCommentHandler(mock, nopLogger{}, usecase.ParentTokenProjects, "projectID")

	r := gin.New()
	r.Use(identityStub(identity))
	r.POST("/posts/:postID/comments", postComments.Create)
	r.GET("/posts/:postID/comments", postComments.List)
	r.PATCH("/posts/:postID/comments/:commentID", postComments.Update)
	r.DELETE("/posts/:postID/comments/:commentID", postComments.Delete)
	r.POST("/projects/:projectID/comments", projComments.Create)
	return r
}

func TestCreateComment_ParentTokenFromRoute(t *testing.T) {
	mock := mocks.NewMockCommentUseCase()
	r := setupCommentRouter(mock, memberIdentity)

	body, _ := json.Marshal(dto.CommentRequest{Content: "nice build"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, usecase.ParentTokenPosts, mock.LastParentToken)
	assert.Equal(t, "post-1", mock.LastParentID)
	assert.Equal(t, "member-1", mock.LastRequester.ID)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/projects/proj-1/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, usecase.ParentTokenProjects, mock.LastParentToken)
	assert.Equal(t, "proj-1", mock.LastParentID)
}

func TestCreateComment_Forbidden(t *testing.T) {
	mock := mocks.NewMockCommentUseCase()
	mock.ShouldFailCreate = true
	mock.FailWith = entity.ErrForbidden
	plain := entity.Identity{ID: "user-1", Role: entity.UserRoleUser}
	r := setupCommentRouter(mock, plain)

	body, _ := json.Marshal(dto.CommentRequest{Content: "hello"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListComments(t *testing.T) {
	mock := mocks.NewMockCommentUseCase()
	r := setupCommentRouter(mock, memberIdentity)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-1/comments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-comment-id")

	var resp struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		TotalPages int   `json:"total_pages"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestListComments_DefaultPagination(t *testing.T) {
	mock := mocks.NewMockCommentUseCase()
	r := setupCommentRouter(mock, memberIdentity)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-1/comments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mock.LastPage)
	assert.Equal(t, 10, mock.LastLimit)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/posts/post-1/comments?page=3&limit=500", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 3, mock.LastPage)
	assert.Equal(t, 100, mock.LastLimit)
}

func TestUpdateComment_NotFound(t *testing.T) {
	mock := mocks.NewMockCommentUseCase()
	mock.ShouldFailUpdate = true
	mock.FailWith = entity.ErrNotFound
	r := setupCommentRouter(mock, memberIdentity)

	body, _ := json.Marshal(dto.CommentRequest{Content: "edited"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/posts/post-1/comments/missing", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteComment(t *testing.T) {
	mock := mocks.NewMockCommentUseCase()
	r := setupCommentRouter(mock, memberIdentity)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-1/comments/mock-comment-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "comment deleted")
}
