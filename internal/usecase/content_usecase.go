package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/firaol-d/clubhub/internal/domain/contract"
	"github.com/firaol-d/clubhub/internal/domain/entity"
	"github.com/firaol-d/clubhub/internal/infrastructure/metrics"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

// ImageUpload is an image payload accepted alongside a content write.
type ImageUpload struct {
	Data     []byte
	Filename string
}

// CreateContentInput carries the caller-supplied fields for a create.
type CreateContentInput struct {
	Title    string
	Body     string
	TagNames []string
	MainTag  string
	Image    *ImageUpload
}

// UpdateContentInput carries the caller-supplied fields for an update. Nil
// means "leave unchanged". TagNames and MainTag replace the tag set as a
// pair: supplying one without the other is rejected.
type UpdateContentInput struct {
	Title    *string
	Body     *string
	TagNames []string
	MainTag  *string
	Image    *ImageUpload
}

// IContentUseCase defines the business logic shared by posts and projects.
type IContentUseCase interface {
	Create(ctx context.Context, kind entity.ContentKind, requester entity.Identity, in CreateContentInput) (*entity.Content, error)
	Get(ctx context.Context, kind entity.ContentKind, id string) (*entity.Content, []*entity.Tag, error)
	List(ctx context.Context, kind entity.ContentKind, page, limit int, tagName, query string) ([]*entity.Content, int64, int, int, error)
	Update(ctx context.Context, kind entity.ContentKind, id string, requester entity.Identity, in UpdateContentInput) (*entity.Content, error)
	Delete(ctx context.Context, kind entity.ContentKind, id string, requester entity.Identity) error
}

// ContentUseCase implements IContentUseCase for both content kinds; the
// per-kind difference is confined to the authorization policy table.
type ContentUseCase struct {
	contentRepo  contract.IContentRepository
	tagRepo      contract.ITagRepository
	tagResolver  *TagResolver
	imageService contract.IImageService
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
	config       usecasecontract.IConfigProvider
}

// NewContentUseCase creates a new ContentUseCase instance.
func NewContentUseCase(
	contentRepo contract.IContentRepository,
	tagRepo contract.ITagRepository,
	tagResolver *TagResolver,
	imageService contract.IImageService,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	config usecasecontract.IConfigProvider,
) *ContentUseCase {
	return &ContentUseCase{
		contentRepo:  contentRepo,
		tagRepo:      tagRepo,
		tagResolver:  tagResolver,
		imageService: imageService,
		uuidgen:      uuidgen,
		logger:       logger,
		config:       config,
	}
}

// check if ContentUseCase implements the IContentUseCase
var _ IContentUseCase = (*ContentUseCase)(nil)

// Create validates, resolves tags, and persists a new content entity.
func (uc *ContentUseCase) Create(ctx context.Context, kind entity.ContentKind, requester entity.Identity, in CreateContentInput) (*entity.Content, error) {
	policy := PolicyFor(kind)
	if !policy.CanCreate(requester.Role) {
		return nil, entity.ErrForbidden
	}

	title := strings.TrimSpace(in.Title)
	body := strings.TrimSpace(in.Body)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entity.ErrValidation)
	}
	if body == "" {
		return nil, fmt.Errorf("%w: body is required", entity.ErrValidation)
	}

	resolved, err := uc.tagResolver.ResolveTagSet(ctx, in.TagNames, in.MainTag, requester.ID)
	if err != nil {
		return nil, err
	}

	content := &entity.Content{
		ID:        uc.uuidgen.NewUUID(),
		Kind:      kind,
		Title:     title,
		Body:      body,
		AuthorID:  requester.ID,
		Tags:      resolved.TagIDs,
		MainTagID: resolved.MainTagID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if in.Image != nil {
		uploaded, err := uc.imageService.Upload(ctx, in.Image.Data, in.Image.Filename, string(kind))
		if err != nil {
			uc.logger.Errorf("image upload failed for new %s: %v", kind, err)
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		content.ImageURL = &uploaded.URL
		content.ImageRef = &uploaded.Ref
	} else {
		placeholder := uc.placeholderImageURL(in.MainTag)
		content.ImageURL = &placeholder
	}

	// Invariants are re-checked in full right before the write; a violation
	// always fails the create.
	if err := uc.validateTagInvariants(ctx, content.Tags, content.MainTagID); err != nil {
		return nil, err
	}

	if err := uc.contentRepo.Create(ctx, content); err != nil {
		uc.logger.Errorf("failed to create %s: %v", kind, err)
		return nil, fmt.Errorf("failed to create %s: %w", kind, err)
	}
	metrics.IncContentWrite(string(kind))
	return content, nil
}

// Get retrieves a single content entity by id, with its tag refs expanded so
// the detail view can show tag names.
func (uc *ContentUseCase) Get(ctx context.Context, kind entity.ContentKind, id string) (*entity.Content, []*entity.Tag, error) {
	content, err := uc.contentRepo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, nil, err
	}
	tags, err := uc.tagRepo.GetTagsByIDs(ctx, content.Tags)
	if err != nil {
		uc.logger.Errorf("failed to load tags for %s %s: %v", kind, id, err)
		return nil, nil, fmt.Errorf("failed to load tags: %w", err)
	}
	return content, tags, nil
}

// List returns a filtered, paginated page of content plus pagination info.
// tagName filters by exact case-insensitive tag name across both namespaces;
// query matches a case-insensitive substring of title or body.
func (uc *ContentUseCase) List(ctx context.Context, kind entity.ContentKind, page, limit int, tagName, query string) ([]*entity.Content, int64, int, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	opts := contract.ContentFilterOptions{
		Page:  page,
		Limit: limit,
		Query: strings.TrimSpace(query),
	}

	if name := entity.NormalizeTagName(tagName); name != "" {
		tags, err := uc.tagRepo.GetTagsByName(ctx, name)
		if err != nil {
			uc.logger.Errorf("failed to resolve tag filter %q: %v", name, err)
			return nil, 0, 0, 0, fmt.Errorf("failed to resolve tag filter: %w", err)
		}
		if len(tags) == 0 {
			// Unknown tag name matches nothing.
			return []*entity.Content{}, 0, page, 0, nil
		}
		for _, t := range tags {
			opts.TagIDs = append(opts.TagIDs, t.ID)
		}
	}

	items, total, err := uc.contentRepo.List(ctx, kind, opts)
	if err != nil {
		uc.logger.Errorf("failed to list %ss: %v", kind, err)
		return nil, 0, 0, 0, fmt.Errorf("failed to list %ss: %w", kind, err)
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return items, total, page, totalPages, nil
}

// Update applies a partial update. The tag set is only replaced when both the
// tag list and the main tag are supplied together; existence is checked
// before authorization so a missing entity reports not-found, never forbidden.
func (uc *ContentUseCase) Update(ctx context.Context, kind entity.ContentKind, id string, requester entity.Identity, in UpdateContentInput) (*entity.Content, error) {
	content, err := uc.contentRepo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	policy := PolicyFor(kind)
	if err := policy.AuthorizeMutation(requester, content.AuthorID); err != nil {
		return nil, err
	}

	if (in.TagNames == nil) != (in.MainTag == nil) {
		return nil, fmt.Errorf("%w: tags and main_tag must be supplied together", entity.ErrValidation)
	}

	updates := make(map[string]interface{})

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", entity.ErrValidation)
		}
		updates["title"] = title
	}
	if in.Body != nil {
		body := strings.TrimSpace(*in.Body)
		if body == "" {
			return nil, fmt.Errorf("%w: body cannot be empty", entity.ErrValidation)
		}
		updates["body"] = body
	}

	if in.TagNames != nil {
		resolved, err := uc.tagResolver.ResolveTagSet(ctx, in.TagNames, *in.MainTag, requester.ID)
		if err != nil {
			return nil, err
		}
		if err := uc.validateTagInvariants(ctx, resolved.TagIDs, resolved.MainTagID); err != nil {
			return nil, err
		}
		updates["tags"] = resolved.TagIDs
		updates["main_tag"] = resolved.MainTagID
	}

	if in.Image != nil {
		uploaded, err := uc.imageService.Upload(ctx, in.Image.Data, in.Image.Filename, string(kind))
		if err != nil {
			uc.logger.Errorf("image upload failed for %s %s: %v", kind, id, err)
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		updates["image_url"] = uploaded.URL
		updates["image_ref"] = uploaded.Ref
		if content.ImageRef != nil {
			if err := uc.imageService.Delete(ctx, *content.ImageRef); err != nil {
				uc.logger.Warningf("failed to delete replaced image %s: %v", *content.ImageRef, err)
			}
		}
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := uc.contentRepo.Update(ctx, kind, id, updates); err != nil {
			uc.logger.Errorf("failed to update %s %s: %v", kind, id, err)
			return nil, fmt.Errorf("failed to update %s: %w", kind, err)
		}
		metrics.IncContentWrite(string(kind))
	}

	return uc.contentRepo.GetByID(ctx, kind, id)
}

// Delete soft-deletes a content entity after the ownership check.
func (uc *ContentUseCase) Delete(ctx context.Context, kind entity.ContentKind, id string, requester entity.Identity) error {
	content, err := uc.contentRepo.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}
	policy := PolicyFor(kind)
	if err := policy.AuthorizeMutation(requester, content.AuthorID); err != nil {
		return err
	}

	if err := uc.contentRepo.Delete(ctx, kind, id); err != nil {
		uc.logger.Errorf("failed to delete %s %s: %v", kind, id, err)
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	if content.ImageRef != nil {
		if err := uc.imageService.Delete(ctx, *content.ImageRef); err != nil {
			uc.logger.Warningf("failed to delete image %s for removed %s: %v", *content.ImageRef, kind, err)
		}
	}
	metrics.IncContentWrite(string(kind))
	return nil
}

// validateTagInvariants enforces the structural tag invariants in order:
// tags non-empty, main tag contained in tags, main tag exists, main tag is a
// system tag. Violations fail the enclosing write unconditionally.
func (uc *ContentUseCase) validateTagInvariants(ctx context.Context, tagIDs []string, mainTagID string) error {
	if len(tagIDs) == 0 {
		return entity.ErrEmptyTagSet
	}
	found := false
	for _, id := range tagIDs {
		if id == mainTagID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: main tag is not part of the tag set", entity.ErrInvalidMainTag)
	}
	mainTag, err := uc.tagRepo.GetTagByID(ctx, mainTagID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ErrInvalidMainTag
		}
		return fmt.Errorf("failed to load main tag: %w", err)
	}
	if mainTag.Kind != entity.TagKindSystem {
		return entity.ErrInvalidMainTag
	}
	return nil
}

// placeholderImageURL derives the deterministic fallback image for content
// created without an upload, seeded by the trimmed main tag name.
func (uc *ContentUseCase) placeholderImageURL(mainTagName string) string {
	seed := url.QueryEscape(strings.TrimSpace(mainTagName))
	return fmt.Sprintf("%s/seed/%s/960/540", uc.config.GetPlaceholderImageBaseURL(), seed)
}
