package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/firaol-d/clubhub/internal/domain/contract"
	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// nopLogger satisfies the logger contract without output noise in tests.
type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{})   {}
func (nopLogger) Infof(format string, args ...interface{})    {}
func (nopLogger) Warnf(format string, args ...interface{})    {}
func (nopLogger) Warningf(format string, args ...interface{}) {}
func (nopLogger) Errorf(format string, args ...interface{})   {}
func (nopLogger) Fatalf(format string, args ...interface{})   {}

// seqUUIDGen hands out deterministic ids.
type seqUUIDGen struct {
	n int
}

func (g *seqUUIDGen) NewUUID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// fakeTagRepo is an in-memory tag store keyed by (name, kind).
type fakeTagRepo struct {
	tags map[string]*entity.Tag // key: name + "/" + kind

	// ConflictOnCreate simulates losing a uniqueness race: the first create of
	// the named tag fails with conflict but inserts the winner's row.
	ConflictOnCreate map[string]bool
	CreatedNames     []string
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{
		tags:             make(map[string]*entity.Tag),
		ConflictOnCreate: make(map[string]bool),
	}
}

func tagKey(name string, kind entity.TagKind) string {
	return name + "/" + string(kind)
}

func (r *fakeTagRepo) put(tag *entity.Tag) {
	r.tags[tagKey(tag.Name, tag.Kind)] = tag
}

func (r *fakeTagRepo) addSystemTag(id, name string) *entity.Tag {
	tag := &entity.Tag{ID: id, Name: name, Kind: entity.TagKindSystem, CreatedAt: time.Now()}
	r.put(tag)
	return tag
}

func (r *fakeTagRepo) CreateTag(ctx context.Context, tag *entity.Tag) error {
	key := tagKey(tag.Name, tag.Kind)
	if r.ConflictOnCreate[tag.Name] {
		delete(r.ConflictOnCreate, tag.Name)
		winner := &entity.Tag{ID: "winner-" + tag.Name, Name: tag.Name, Kind: tag.Kind, CreatedAt: time.Now()}
		r.tags[key] = winner
		return fmt.Errorf("tag %q already exists: %w", tag.Name, entity.ErrConflict)
	}
	if _, ok := r.tags[key]; ok {
		return fmt.Errorf("tag %q already exists: %w", tag.Name, entity.ErrConflict)
	}
	r.tags[key] = tag
	r.CreatedNames = append(r.CreatedNames, tag.Name)
	return nil
}

func (r *fakeTagRepo) GetTagByID(ctx context.Context, tagID string) (*entity.Tag, error) {
	for _, tag := range r.tags {
		if tag.ID == tagID {
			return tag, nil
		}
	}
	return nil, fmt.Errorf("tag not found: %w", entity.ErrNotFound)
}

func (r *fakeTagRepo) GetTagByName(ctx context.Context, name string) (*entity.Tag, error) {
	if tag, ok := r.tags[tagKey(name, entity.TagKindSystem)]; ok {
		return tag, nil
	}
	if tag, ok := r.tags[tagKey(name, entity.TagKindUser)]; ok {
		return tag, nil
	}
	return nil, fmt.Errorf("tag not found: %w", entity.ErrNotFound)
}

func (r *fakeTagRepo) GetTagByNameAndKind(ctx context.Context, name string, kind entity.TagKind) (*entity.Tag, error) {
	if tag, ok := r.tags[tagKey(name, kind)]; ok {
		return tag, nil
	}
	return nil, fmt.Errorf("tag not found: %w", entity.ErrNotFound)
}

func (r *fakeTagRepo) GetTagsByName(ctx context.Context, name string) ([]*entity.Tag, error) {
	var out []*entity.Tag
	for _, kind := range []entity.TagKind{entity.TagKindSystem, entity.TagKindUser} {
		if tag, ok := r.tags[tagKey(name, kind)]; ok {
			out = append(out, tag)
		}
	}
	return out, nil
}

func (r *fakeTagRepo) GetTagsByIDs(ctx context.Context, tagIDs []string) ([]*entity.Tag, error) {
	var out []*entity.Tag
	for _, id := range tagIDs {
		if tag, err := r.GetTagByID(ctx, id); err == nil {
			out = append(out, tag)
		}
	}
	return out, nil
}

func (r *fakeTagRepo) ListTags(ctx context.Context, kind *entity.TagKind) ([]*entity.Tag, error) {
	var out []*entity.Tag
	for _, tag := range r.tags {
		if kind == nil || tag.Kind == *kind {
			out = append(out, tag)
		}
	}
	return out, nil
}

var _ contract.ITagRepository = (*fakeTagRepo)(nil)

// fakeContentRepo is an in-memory content store keyed by kind and id.
type fakeContentRepo struct {
	items map[string]*entity.Content // key: kind + "/" + id
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{items: make(map[string]*entity.Content)}
}

func contentKey(kind entity.ContentKind, id string) string {
	return string(kind) + "/" + id
}

func (r *fakeContentRepo) Create(ctx context.Context, content *entity.Content) error {
	r.items[contentKey(content.Kind, content.ID)] = content
	return nil
}

func (r *fakeContentRepo) GetByID(ctx context.Context, kind entity.ContentKind, id string) (*entity.Content, error) {
	content, ok := r.items[contentKey(kind, id)]
	if !ok || content.IsDeleted {
		return nil, fmt.Errorf("%s not found: %w", kind, entity.ErrNotFound)
	}
	cp := *content
	return &cp, nil
}

func (r *fakeContentRepo) List(ctx context.Context, kind entity.ContentKind, opts contract.ContentFilterOptions) ([]*entity.Content, int64, error) {
	var out []*entity.Content
	for _, content := range r.items {
		if content.Kind != kind || content.IsDeleted {
			continue
		}
		if len(opts.TagIDs) > 0 && !hasAnyTag(content.Tags, opts.TagIDs) {
			continue
		}
		out = append(out, content)
	}
	return out, int64(len(out)), nil
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (r *fakeContentRepo) Update(ctx context.Context, kind entity.ContentKind, id string, updates map[string]interface{}) error {
	content, ok := r.items[contentKey(kind, id)]
	if !ok || content.IsDeleted {
		return fmt.Errorf("%s not found: %w", kind, entity.ErrNotFound)
	}
	for field, value := range updates {
		switch field {
		case "title":
			content.Title = value.(string)
		case "body":
			content.Body = value.(string)
		case "tags":
			content.Tags = value.([]string)
		case "main_tag":
			content.MainTagID = value.(string)
		case "image_url":
			v := value.(string)
			content.ImageURL = &v
		case "image_ref":
			v := value.(string)
			content.ImageRef = &v
		case "updated_at":
			content.UpdatedAt = value.(time.Time)
		}
	}
	return nil
}

func (r *fakeContentRepo) Delete(ctx context.Context, kind entity.ContentKind, id string) error {
	content, ok := r.items[contentKey(kind, id)]
	if !ok || content.IsDeleted {
		return fmt.Errorf("%s not found: %w", kind, entity.ErrNotFound)
	}
	content.IsDeleted = true
	return nil
}

var _ contract.IContentRepository = (*fakeContentRepo)(nil)

// fakeCommentRepo is an in-memory comment store.
type fakeCommentRepo struct {
	comments map[string]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]*entity.Comment)}
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) GetByID(ctx context.Context, commentID string) (*entity.Comment, error) {
	comment, ok := r.comments[commentID]
	if !ok {
		return nil, fmt.Errorf("comment not found: %w", entity.ErrNotFound)
	}
	cp := *comment
	return &cp, nil
}

func (r *fakeCommentRepo) ListByParent(ctx context.Context, parent entity.ParentRef, p contract.Pagination) ([]*entity.Comment, int64, error) {
	var out []*entity.Comment
	for _, comment := range r.comments {
		if comment.Parent == parent {
			out = append(out, comment)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeCommentRepo) UpdateContent(ctx context.Context, commentID, content string) error {
	comment, ok := r.comments[commentID]
	if !ok {
		return fmt.Errorf("comment not found: %w", entity.ErrNotFound)
	}
	comment.Content = content
	comment.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCommentRepo) Delete(ctx context.Context, commentID string) error {
	if _, ok := r.comments[commentID]; !ok {
		return fmt.Errorf("comment not found: %w", entity.ErrNotFound)
	}
	delete(r.comments, commentID)
	return nil
}

var _ contract.ICommentRepository = (*fakeCommentRepo)(nil)

// fakeUserRepo is an in-memory user store.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return fmt.Errorf("user already exists: %w", entity.ErrConflict)
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user not found: %w", entity.ErrNotFound)
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user not found: %w", entity.ErrNotFound)
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			cp := *user
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user not found: %w", entity.ErrNotFound)
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error {
	user, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user not found: %w", entity.ErrNotFound)
	}
	for field, value := range updates {
		switch field {
		case "membership_status":
			user.MembershipStatus = value.(entity.MembershipStatus)
		case "role":
			user.Role = value.(entity.UserRole)
		case "firstname":
			v := value.(string)
			user.FirstName = &v
		case "lastname":
			v := value.(string)
			user.LastName = &v
		case "updated_at":
			user.UpdatedAt = value.(time.Time)
		}
	}
	return nil
}

func (r *fakeUserRepo) ListByMembershipStatus(ctx context.Context, status entity.MembershipStatus, page, limit int) ([]*entity.User, int64, error) {
	var out []*entity.User
	for _, user := range r.users {
		if user.MembershipStatus == status {
			out = append(out, user)
		}
	}
	return out, int64(len(out)), nil
}

var _ contract.IUserRepository = (*fakeUserRepo)(nil)

// fakeImageService records uploads and deletions.
type fakeImageService struct {
	FailUpload bool
	Uploads    int
	Deleted    []string
}

func (s *fakeImageService) Upload(ctx context.Context, data []byte, filename, hint string) (*contract.UploadedImage, error) {
	if s.FailUpload {
		return nil, errors.New("asset host unavailable")
	}
	s.Uploads++
	return &contract.UploadedImage{
		URL: fmt.Sprintf("https://assets.example.com/%s", filename),
		Ref: fmt.Sprintf("ref-%d", s.Uploads),
	}, nil
}

func (s *fakeImageService) Delete(ctx context.Context, ref string) error {
	s.Deleted = append(s.Deleted, ref)
	return nil
}

var _ contract.IImageService = (*fakeImageService)(nil)

// fakeMailService records sends and can simulate failures.
type fakeMailService struct {
	FailSend   bool
	Approvals  []string
	Rejections []string
}

func (s *fakeMailService) SendApprovalEmail(ctx context.Context, name, to string) error {
	if s.FailSend {
		return errors.New("smtp unavailable")
	}
	s.Approvals = append(s.Approvals, to)
	return nil
}

func (s *fakeMailService) SendRejectionEmail(ctx context.Context, name, to string) error {
	if s.FailSend {
		return errors.New("smtp unavailable")
	}
	s.Rejections = append(s.Rejections, to)
	return nil
}

var _ contract.IEmailService = (*fakeMailService)(nil)

// fakeConfig supplies fixed configuration values.
type fakeConfig struct{}

func (fakeConfig) GetAppBaseURL() string                { return "http://localhost:8080" }
func (fakeConfig) GetAccessTokenExpiry() time.Duration  { return 15 * time.Minute }
func (fakeConfig) GetRefreshTokenExpiry() time.Duration { return 168 * time.Hour }
func (fakeConfig) GetPlaceholderImageBaseURL() string   { return "https://picsum.photos" }
