package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/firaol-d/clubhub/internal/domain/contract"
	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// ContentRepository implements contract.IContentRepository. Posts and
// projects live in separate collections selected by the kind discriminator;
// the document shape is identical.
type ContentRepository struct {
	db *mongo.Database
}

var _ contract.IContentRepository = (*ContentRepository)(nil)

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) collection(kind entity.ContentKind) *mongo.Collection {
	return r.db.Collection(kind.Collection())
}

func (r *ContentRepository) Create(ctx context.Context, content *entity.Content) error {
	_, err := r.collection(content.Kind).InsertOne(ctx, content)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", content.Kind, err)
	}
	return nil
}

func (r *ContentRepository) GetByID(ctx context.Context, kind entity.ContentKind, id string) (*entity.Content, error) {
	var content entity.Content
	filter := bson.M{"_id": id, "is_deleted": false}
	err := r.collection(kind).FindOne(ctx, filter).Decode(&content)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s not found: %w", kind, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	return &content, nil
}

func buildContentFilter(opts contract.ContentFilterOptions) bson.M {
	filter := bson.M{"is_deleted": false}
	if len(opts.TagIDs) > 0 {
		filter["tags"] = bson.M{"$in": opts.TagIDs}
	}
	if opts.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(opts.Query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"body": pattern},
		}
	}
	return filter
}

func (r *ContentRepository) List(ctx context.Context, kind entity.ContentKind, opts contract.ContentFilterOptions) ([]*entity.Content, int64, error) {
	coll := r.collection(kind)
	filter := buildContentFilter(opts)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", kind.Collection(), err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((opts.Page - 1) * opts.Limit)).
		SetLimit(int64(opts.Limit))

	cursor, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", kind.Collection(), err)
	}
	defer cursor.Close(ctx)

	var items []*entity.Content
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s: %w", kind.Collection(), err)
	}
	return items, total, nil
}

func (r *ContentRepository) Update(ctx context.Context, kind entity.ContentKind, id string, updates map[string]interface{}) error {
	filter := bson.M{"_id": id, "is_deleted": false}
	result, err := r.collection(kind).UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", kind, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s not found: %w", kind, entity.ErrNotFound)
	}
	return nil
}

func (r *ContentRepository) Delete(ctx context.Context, kind entity.ContentKind, id string) error {
	filter := bson.M{"_id": id, "is_deleted": false}
	result, err := r.collection(kind).UpdateOne(ctx, filter, bson.M{"$set": bson.M{"is_deleted": true}})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s not found: %w", kind, entity.ErrNotFound)
	}
	return nil
}
