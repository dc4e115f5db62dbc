package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/firaol-d/clubhub/internal/domain/contract"
	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// TagRepository implements contract.ITagRepository backed by MongoDB. The
// unique (name, kind) index is what makes concurrent duplicate creation
// surface as entity.ErrConflict.
type TagRepository struct {
	collection *mongo.Collection
}

var _ contract.ITagRepository = (*TagRepository)(nil)

func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{collection: db.Collection("tags")}
}

func (r *TagRepository) CreateTag(ctx context.Context, tag *entity.Tag) error {
	tag.Name = entity.NormalizeTagName(tag.Name)
	_, err := r.collection.InsertOne(ctx, tag)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("tag %q already exists: %w", tag.Name, entity.ErrConflict)
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

func (r *TagRepository) GetTagByID(ctx context.Context, tagID string) (*entity.Tag, error) {
	var tag entity.Tag
	err := r.collection.FindOne(ctx, bson.M{"_id": tagID}).Decode(&tag)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("tag not found: %w", entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return &tag, nil
}

// GetTagByName returns the tag with the given name, preferring the system one
// when the name exists in both namespaces. Sorting on kind works because
// "system" orders before "user".
func (r *TagRepository) GetTagByName(ctx context.Context, name string) (*entity.Tag, error) {
	var tag entity.Tag
	opts := options.FindOne().SetSort(bson.D{{Key: "kind", Value: 1}})
	err := r.collection.FindOne(ctx, bson.M{"name": entity.NormalizeTagName(name)}, opts).Decode(&tag)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("tag not found: %w", entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return &tag, nil
}

func (r *TagRepository) GetTagByNameAndKind(ctx context.Context, name string, kind entity.TagKind) (*entity.Tag, error) {
	var tag entity.Tag
	filter := bson.M{"name": entity.NormalizeTagName(name), "kind": kind}
	err := r.collection.FindOne(ctx, filter).Decode(&tag)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("tag not found: %w", entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return &tag, nil
}

func (r *TagRepository) GetTagsByName(ctx context.Context, name string) ([]*entity.Tag, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"name": entity.NormalizeTagName(name)})
	if err != nil {
		return nil, fmt.Errorf("failed to find tags: %w", err)
	}
	defer cursor.Close(ctx)

	var tags []*entity.Tag
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	return tags, nil
}

func (r *TagRepository) GetTagsByIDs(ctx context.Context, tagIDs []string) ([]*entity.Tag, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": tagIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to find tags: %w", err)
	}
	defer cursor.Close(ctx)

	var tags []*entity.Tag
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	return tags, nil
}

func (r *TagRepository) ListTags(ctx context.Context, kind *entity.TagKind) ([]*entity.Tag, error) {
	filter := bson.M{}
	if kind != nil {
		filter["kind"] = *kind
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer cursor.Close(ctx)

	var tags []*entity.Tag
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	return tags, nil
}
