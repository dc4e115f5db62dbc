package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/firaol-d/clubhub/internal/domain/contract"
	"github.com/firaol-d/clubhub/internal/domain/entity"
	"github.com/firaol-d/clubhub/internal/infrastructure/metrics"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

// TagResolver turns caller-supplied tag names plus one main-tag name into a
// validated, deduplicated set of tag ids ready to attach to a content entity.
type TagResolver struct {
	tagRepo contract.ITagRepository
	uuidgen contract.IUUIDGenerator
	logger  usecasecontract.IAppLogger
}

// NewTagResolver creates a new TagResolver instance.
func NewTagResolver(tagRepo contract.ITagRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *TagResolver {
	return &TagResolver{
		tagRepo: tagRepo,
		uuidgen: uuidgen,
		logger:  logger,
	}
}

// ResolvedTagSet is the outcome of a successful resolution. TagIDs always
// contains MainTagID.
type ResolvedTagSet struct {
	TagIDs    []string
	MainTagID string
}

// ResolveTagSet normalizes and deduplicates the requested names, resolves
// each against the tag store (creating missing ones as user tags owned by the
// requester), and resolves the main tag name against the system namespace
// only.
//
// User tags created before a later failure are not rolled back: no
// transaction spans the loop, and an orphan user tag is reused by the next
// retry rather than being an inconsistency.
func (r *TagResolver) ResolveTagSet(ctx context.Context, requestedNames []string, mainTagName, requesterID string) (*ResolvedTagSet, error) {
	names := normalizeTagNames(requestedNames)
	if len(names) == 0 {
		return nil, entity.ErrEmptyTagSet
	}

	mainName := entity.NormalizeTagName(mainTagName)
	if mainName == "" {
		return nil, entity.ErrInvalidMainTag
	}

	// The main tag is resolved first so an invalid main tag fails the request
	// before any user tags are created as a side effect.
	mainTag, err := r.tagRepo.GetTagByNameAndKind(ctx, mainName, entity.TagKindSystem)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", entity.ErrInvalidMainTag, mainName)
		}
		r.logger.Errorf("failed to resolve main tag %q: %v", mainName, err)
		return nil, fmt.Errorf("failed to resolve main tag: %w", err)
	}

	tagIDs := make([]string, 0, len(names)+1)
	seen := make(map[string]struct{}, len(names)+1)
	for _, name := range names {
		tag, err := r.resolveOrCreate(ctx, name, requesterID)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[tag.ID]; ok {
			continue
		}
		seen[tag.ID] = struct{}{}
		tagIDs = append(tagIDs, tag.ID)
	}

	// The main tag is always part of the final set, whether or not the caller
	// listed it.
	if _, ok := seen[mainTag.ID]; !ok {
		tagIDs = append(tagIDs, mainTag.ID)
	}

	return &ResolvedTagSet{TagIDs: tagIDs, MainTagID: mainTag.ID}, nil
}

// resolveOrCreate looks a normalized name up across both namespaces and
// lazily creates a user tag when nothing exists. A uniqueness race on create
// is retried once as a lookup; if that still misses, the conflict surfaces to
// the caller.
func (r *TagResolver) resolveOrCreate(ctx context.Context, name, requesterID string) (*entity.Tag, error) {
	tag, err := r.tagRepo.GetTagByName(ctx, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, entity.ErrNotFound) {
		r.logger.Errorf("failed to look up tag %q: %v", name, err)
		return nil, fmt.Errorf("failed to look up tag: %w", err)
	}

	newTag := &entity.Tag{
		ID:        r.uuidgen.NewUUID(),
		Name:      name,
		Kind:      entity.TagKindUser,
		CreatedBy: &requesterID,
		CreatedAt: time.Now(),
	}
	err = r.tagRepo.CreateTag(ctx, newTag)
	if err == nil {
		metrics.IncUserTagCreated()
		return newTag, nil
	}
	if !errors.Is(err, entity.ErrConflict) {
		r.logger.Errorf("failed to create user tag %q: %v", name, err)
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	// Lost a creation race: the winner's tag satisfies the reference.
	tag, lookupErr := r.tagRepo.GetTagByName(ctx, name)
	if lookupErr == nil {
		return tag, nil
	}
	r.logger.Warningf("tag %q conflicted on create but lookup still missed: %v", name, lookupErr)
	return nil, fmt.Errorf("tag %q: %w", name, entity.ErrConflict)
}

// normalizeTagNames trims, lowercases, drops empties, and deduplicates while
// keeping first-seen order so resolution is deterministic.
func normalizeTagNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		name := entity.NormalizeTagName(raw)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
