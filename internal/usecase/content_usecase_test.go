package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firaol-d/clubhub/internal/domain/contract"
	"github.com/firaol-d/clubhub/internal/domain/entity"
	"github.com/firaol-d/clubhub/internal/usecase"
)

type contentFixture struct {
	uc           *usecase.ContentUseCase
	tagRepo      *fakeTagRepo
	contentRepo  *fakeContentRepo
	imageService *fakeImageService
}

func newContentFixture() *contentFixture {
	tagRepo := newFakeTagRepo()
	tagRepo.addSystemTag("sys-1", "robotics")
	contentRepo := newFakeContentRepo()
	imageService := &fakeImageService{}
	resolver := usecase.NewTagResolver(tagRepo, &seqUUIDGen{}, nopLogger{})
	uc := usecase.NewContentUseCase(contentRepo, tagRepo, resolver, imageService, &seqUUIDGen{}, nopLogger{}, fakeConfig{})
	return &contentFixture{uc: uc, tagRepo: tagRepo, contentRepo: contentRepo, imageService: imageService}
}

var (
	adminIdentity  = entity.Identity{ID: "admin-1", Role: entity.UserRoleAdmin, MembershipStatus: entity.MembershipApproved}
	memberIdentity = entity.Identity{ID: "member-1", Role: entity.UserRoleMember, MembershipStatus: entity.MembershipApproved}
	userIdentity   = entity.Identity{ID: "user-1", Role: entity.UserRoleUser, MembershipStatus: entity.MembershipPending}
)

func validCreateInput() usecase.CreateContentInput {
	return usecase.CreateContentInput{
		Title:    "Building a line follower",
		Body:     "Start with two IR sensors.",
		TagNames: []string{"robotics", "arduino"},
		MainTag:  "robotics",
	}
}

func TestCreatePost_AdminOnly(t *testing.T) {
	f := newContentFixture()

	_, err := f.uc.Create(context.Background(), entity.ContentKindPost, memberIdentity, validCreateInput())
	assert.ErrorIs(t, err, entity.ErrForbidden)

	_, err = f.uc.Create(context.Background(), entity.ContentKindPost, userIdentity, validCreateInput())
	assert.ErrorIs(t, err, entity.ErrForbidden)

	post, err := f.uc.Create(context.Background(), entity.ContentKindPost, adminIdentity, validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, entity.ContentKindPost, post.Kind)
	assert.Equal(t, "admin-1", post.AuthorID)
}

func TestCreateProject_MemberAllowed(t *testing.T) {
	f := newContentFixture()

	project, err := f.uc.Create(context.Background(), entity.ContentKindProject, memberIdentity, validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, entity.ContentKindProject, project.Kind)

	_, err = f.uc.Create(context.Background(), entity.ContentKindProject, userIdentity, validCreateInput())
	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestCreateContent_TagInvariants(t *testing.T) {
	f := newContentFixture()

	in := validCreateInput()
	in.MainTag = "arduino" // not a system tag
	_, err := f.uc.Create(context.Background(), entity.ContentKindPost, adminIdentity, in)
	assert.ErrorIs(t, err, entity.ErrInvalidMainTag)

	in = validCreateInput()
	in.TagNames = nil
	_, err = f.uc.Create(context.Background(), entity.ContentKindPost, adminIdentity, in)
	assert.ErrorIs(t, err, entity.ErrEmptyTagSet)
}

func TestCreateContent_PlaceholderImage(t *testing.T) {
	f := newContentFixture()

	post, err := f.uc.Create(context.Background(), entity.ContentKindPost, adminIdentity, validCreateInput())
	require.NoError(t, err)
	require.NotNil(t, post.ImageURL)
	assert.Equal(t, "https://picsum.photos/seed/robotics/960/540", *post.ImageURL)
}

func TestCreateContent_UploadFailureAborts(t *testing.T) {
	f := newContentFixture()
	f.imageService.FailUpload = true

	in := validCreateInput()
	in.Image = &usecase.ImageUpload{Data: []byte("png"), Filename: "board.png"}
	_, err := f.uc.Create(context.Background(), entity.ContentKindPost, adminIdentity, in)
	require.Error(t, err)

	items, _, err := f.contentRepo.List(context.Background(), entity.ContentKindPost, listAll())
	require.NoError(t, err)
	assert.Empty(t, items, "nothing may be persisted when the upload fails")
}

func TestUpdateContent_NotFoundBeforeForbidden(t *testing.T) {
	f := newContentFixture()

	title := "new title"
	_, err := f.uc.Update(context.Background(), entity.ContentKindPost, "missing", userIdentity, usecase.UpdateContentInput{Title: &title})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateProject_OwnerOrAdmin(t *testing.T) {
	f := newContentFixture()
	project, err := f.uc.Create(context.Background(), entity.ContentKindProject, memberIdentity, validCreateInput())
	require.NoError(t, err)

	title := "revised"
	other := entity.Identity{ID: "member-2", Role: entity.UserRoleMember}
	_, err = f.uc.Update(context.Background(), entity.ContentKindProject, project.ID, other, usecase.UpdateContentInput{Title: &title})
	assert.ErrorIs(t, err, entity.ErrForbidden)

	updated, err := f.uc.Update(context.Background(), entity.ContentKindProject, project.ID, memberIdentity, usecase.UpdateContentInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "revised", updated.Title)

	body := "admin edit"
	updated, err = f.uc.Update(context.Background(), entity.ContentKindProject, project.ID, adminIdentity, usecase.UpdateContentInput{Body: &body})
	require.NoError(t, err)
	assert.Equal(t, "admin edit", updated.Body)
}

func TestUpdatePost_OwnershipDoesNotHelp(t *testing.T) {
	f := newContentFixture()
	post, err := f.uc.Create(context.Background(), entity.ContentKindPost, adminIdentity, validCreateInput())
	require.NoError(t, err)

	// Simulate the author having been demoted since creation.
	demoted := entity.Identity{ID: "admin-1", Role: entity.UserRoleMember}
	title := "x"
	_, err = f.uc.Update(context.Background(), entity.ContentKindPost, post.ID, demoted, usecase.UpdateContentInput{Title: &title})
	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestUpdateContent_TagsAndMainTagTravelTogether(t *testing.T) {
	f := newContentFixture()
	project, err := f.uc.Create(context.Background(), entity.ContentKindProject, memberIdentity, validCreateInput())
	require.NoError(t, err)

	_, err = f.uc.Update(context.Background(), entity.ContentKindProject, project.ID, memberIdentity, usecase.UpdateContentInput{
		TagNames: []string{"robotics"},
	})
	assert.ErrorIs(t, err, entity.ErrValidation)

	main := "robotics"
	_, err = f.uc.Update(context.Background(), entity.ContentKindProject, project.ID, memberIdentity, usecase.UpdateContentInput{
		MainTag: &main,
	})
	assert.ErrorIs(t, err, entity.ErrValidation)

	updated, err := f.uc.Update(context.Background(), entity.ContentKindProject, project.ID, memberIdentity, usecase.UpdateContentInput{
		TagNames: []string{"robotics", "soldering"},
		MainTag:  &main,
	})
	require.NoError(t, err)
	assert.Contains(t, updated.Tags, "sys-1")
	assert.Equal(t, "sys-1", updated.MainTagID)
}

func TestGetContent_ExpandsTags(t *testing.T) {
	f := newContentFixture()
	post, err := f.uc.Create(context.Background(), entity.ContentKindPost, adminIdentity, validCreateInput())
	require.NoError(t, err)

	got, tags, err := f.uc.Get(context.Background(), entity.ContentKindPost, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
	require.Len(t, tags, len(post.Tags))

	names := make(map[string]entity.TagKind, len(tags))
	for _, tag := range tags {
		names[tag.Name] = tag.Kind
	}
	assert.Equal(t, entity.TagKindSystem, names["robotics"])
	assert.Equal(t, entity.TagKindUser, names["arduino"])
}

func TestDeleteContent_SoftDeleteHidesEntity(t *testing.T) {
	f := newContentFixture()
	project, err := f.uc.Create(context.Background(), entity.ContentKindProject, memberIdentity, validCreateInput())
	require.NoError(t, err)

	other := entity.Identity{ID: "member-2", Role: entity.UserRoleMember}
	err = f.uc.Delete(context.Background(), entity.ContentKindProject, project.ID, other)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	err = f.uc.Delete(context.Background(), entity.ContentKindProject, project.ID, memberIdentity)
	require.NoError(t, err)

	_, _, err = f.uc.Get(context.Background(), entity.ContentKindProject, project.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	err = f.uc.Delete(context.Background(), entity.ContentKindProject, project.ID, memberIdentity)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListContent_UnknownTagMatchesNothing(t *testing.T) {
	f := newContentFixture()
	_, err := f.uc.Create(context.Background(), entity.ContentKindPost, adminIdentity, validCreateInput())
	require.NoError(t, err)

	items, total, _, _, err := f.uc.List(context.Background(), entity.ContentKindPost, 1, 10, "nonexistent", "")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)

	items, total, _, _, err = f.uc.List(context.Background(), entity.ContentKindPost, 1, 10, "robotics", "")
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.EqualValues(t, 1, total)
}

func listAll() contract.ContentFilterOptions {
	return contract.ContentFilterOptions{Page: 1, Limit: 100}
}
