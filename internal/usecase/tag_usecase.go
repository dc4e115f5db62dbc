package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/firaol-d/clubhub/internal/domain/contract"
	"github.com/firaol-d/clubhub/internal/domain/entity"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

type tagUseCase struct {
	tagRepo contract.ITagRepository
	uuidgen contract.IUUIDGenerator
	logger  usecasecontract.IAppLogger
}

// NewTagUseCase creates the tag administration usecase.
func NewTagUseCase(tagRepo contract.ITagRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) usecasecontract.ITagUseCase {
	return &tagUseCase{
		tagRepo: tagRepo,
		uuidgen: uuidgen,
		logger:  logger,
	}
}

var _ usecasecontract.ITagUseCase = (*tagUseCase)(nil)

// CreateSystemTag registers a curated tag. This is the only path that creates
// system tags; the content flows never do.
func (uc *tagUseCase) CreateSystemTag(ctx context.Context, requester entity.Identity, name string) (*entity.Tag, error) {
	if requester.Role != entity.UserRoleAdmin {
		return nil, entity.ErrForbidden
	}
	normalized := entity.NormalizeTagName(name)
	if normalized == "" {
		return nil, fmt.Errorf("%w: tag name is required", entity.ErrValidation)
	}

	tag := &entity.Tag{
		ID:        uc.uuidgen.NewUUID(),
		Name:      normalized,
		Kind:      entity.TagKindSystem,
		CreatedAt: time.Now(),
	}
	if err := uc.tagRepo.CreateTag(ctx, tag); err != nil {
		uc.logger.Errorf("failed to create system tag %q: %v", normalized, err)
		return nil, err
	}
	return tag, nil
}

// ListTags returns all tags, optionally restricted to one namespace.
func (uc *tagUseCase) ListTags(ctx context.Context, kind *entity.TagKind) ([]*entity.Tag, error) {
	tags, err := uc.tagRepo.ListTags(ctx, kind)
	if err != nil {
		uc.logger.Errorf("failed to list tags: %v", err)
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}
