package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoply/server/internal/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoCommentRepository struct {
	collection *mongo.Collection
}

func NewMongoCommentRepository(db *mongo.Database) CommentRepository {
	return &mongoCommentRepository{collection: db.Collection("comments")}
}

func (r *mongoCommentRepository) Create(ctx context.Context, comment *models.Comment) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// Delete removes a comment by id. Deleting a comment that does not exist is
// not an error.
func (r *mongoCommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
