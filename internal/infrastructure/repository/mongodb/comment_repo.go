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

// CommentRepository implements contract.ICommentRepository backed by MongoDB.
type CommentRepository struct {
	collection *mongo.Collection
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{collection: db.Collection("comments")}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	_, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID string) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": commentID}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("comment not found: %w", entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

func (r *CommentRepository) ListByParent(ctx context.Context, parent entity.ParentRef, p contract.Pagination) ([]*entity.Comment, int64, error) {
	filter := bson.M{"parent.kind": parent.Kind, "parent.id": parent.ID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((p.Page - 1) * p.PageSize)).
		SetLimit(int64(p.PageSize))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []*entity.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, 0, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, total, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, commentID, content string) error {
	update := bson.M{"$set": bson.M{"content": content, "updated_at": nowUTC()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": commentID}, update)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("comment not found: %w", entity.ErrNotFound)
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": commentID})
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("comment not found: %w", entity.ErrNotFound)
	}
	return nil
}
