package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/firaol-d/clubhub/internal/domain/contract"
	"github.com/firaol-d/clubhub/internal/domain/entity"
	"github.com/firaol-d/clubhub/internal/infrastructure/metrics"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

type commentUseCase struct {
	commentRepo contract.ICommentRepository
	contentRepo contract.IContentRepository
	uuidgen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
}

// NewCommentUseCase creates the comment usecase shared by both parent kinds.
func NewCommentUseCase(
	commentRepo contract.ICommentRepository,
	contentRepo contract.IContentRepository,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) usecasecontract.ICommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		contentRepo: contentRepo,
		uuidgen:     uuidgen,
		logger:      logger,
	}
}

var _ usecasecontract.ICommentUseCase = (*commentUseCase)(nil)

// CreateComment attaches a comment to the parent named by the route. Members
// and admins may comment; the parent must exist, checked before the role gate
// so a missing parent reports not-found, never forbidden.
func (uc *commentUseCase) CreateComment(ctx context.Context, parentToken, parentID string, requester entity.Identity, content string) (*entity.Comment, error) {
	parent, err := ResolveParentRef(parentToken, parentID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.contentRepo.GetByID(ctx, parent.Kind, parent.ID); err != nil {
		return nil, err
	}
	if requester.Role != entity.UserRoleMember && requester.Role != entity.UserRoleAdmin {
		return nil, entity.ErrForbidden
	}

	body, err := validateCommentContent(content)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ID:        uc.uuidgen.NewUUID(),
		Parent:    parent,
		AuthorID:  requester.ID,
		Content:   body,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorf("failed to create comment on %s %s: %v", parent.Kind, parent.ID, err)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	metrics.IncCommentWrite()
	return comment, nil
}

// ListComments pages through a parent's comments after verifying the parent
// exists.
func (uc *commentUseCase) ListComments(ctx context.Context, parentToken, parentID string, page, limit int) ([]*entity.Comment, int64, error) {
	parent, err := ResolveParentRef(parentToken, parentID)
	if err != nil {
		return nil, 0, err
	}
	if _, err := uc.contentRepo.GetByID(ctx, parent.Kind, parent.ID); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	comments, total, err := uc.commentRepo.ListByParent(ctx, parent, contract.Pagination{Page: page, PageSize: limit})
	if err != nil {
		uc.logger.Errorf("failed to list comments on %s %s: %v", parent.Kind, parent.ID, err)
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, total, nil
}

// UpdateComment edits a comment's content. The comment's stored parent must
// match the route's parent: a comment created under one collection cannot be
// reached through the other even when ids coincide.
func (uc *commentUseCase) UpdateComment(ctx context.Context, parentToken, parentID, commentID string, requester entity.Identity, content string) (*entity.Comment, error) {
	comment, err := uc.loadAuthorized(ctx, parentToken, parentID, commentID, requester)
	if err != nil {
		return nil, err
	}

	body, err := validateCommentContent(content)
	if err != nil {
		return nil, err
	}

	if err := uc.commentRepo.UpdateContent(ctx, comment.ID, body); err != nil {
		uc.logger.Errorf("failed to update comment %s: %v", comment.ID, err)
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	comment.Content = body
	comment.UpdatedAt = time.Now()
	return comment, nil
}

// DeleteComment removes a comment under the same parent and ownership rules
// as UpdateComment.
func (uc *commentUseCase) DeleteComment(ctx context.Context, parentToken, parentID, commentID string, requester entity.Identity) error {
	comment, err := uc.loadAuthorized(ctx, parentToken, parentID, commentID, requester)
	if err != nil {
		return err
	}
	if err := uc.commentRepo.Delete(ctx, comment.ID); err != nil {
		uc.logger.Errorf("failed to delete comment %s: %v", comment.ID, err)
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// loadAuthorized fetches a comment and runs the mutation gates in order:
// existence, parent cross-check, then ownership.
func (uc *commentUseCase) loadAuthorized(ctx context.Context, parentToken, parentID, commentID string, requester entity.Identity) (*entity.Comment, error) {
	parent, err := ResolveParentRef(parentToken, parentID)
	if err != nil {
		return nil, err
	}
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.Parent != parent {
		return nil, fmt.Errorf("%w: comment does not belong to %s %s", entity.ErrForbidden, parent.Kind, parent.ID)
	}
	if err := authorizeOwnerOrAdmin(requester, comment.AuthorID); err != nil {
		return nil, err
	}
	return comment, nil
}

func validateCommentContent(content string) (string, error) {
	body := strings.TrimSpace(content)
	if body == "" {
		return "", fmt.Errorf("%w: comment content cannot be empty", entity.ErrValidation)
	}
	if len(body) > entity.MaxCommentLength {
		return "", fmt.Errorf("%w: comment content too long (max %d characters)", entity.ErrValidation, entity.MaxCommentLength)
	}
	return body, nil
}
