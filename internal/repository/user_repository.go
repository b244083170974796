package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shoply/server/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	AddToCart(ctx context.Context, userID, productID primitive.ObjectID) (*models.User, error)
	AddToLikes(ctx context.Context, userID, productID primitive.ObjectID) (*models.User, error)
	PullFromCart(ctx context.Context, userID, productID primitive.ObjectID) (*models.User, error)
	SetAvatar(ctx context.Context, userID primitive.ObjectID, filename string) error
}

type mongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{collection: db.Collection("users")}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// updateSet runs a set-mutating update and returns the user as it looks after
// the update. The set operators keep concurrent mutations lost-update free.
func (r *mongoUserRepository) updateSet(ctx context.Context, userID primitive.ObjectID, update bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": userID}, update, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) AddToCart(ctx context.Context, userID, productID primitive.ObjectID) (*models.User, error) {
	return r.updateSet(ctx, userID, bson.M{
		"$addToSet": bson.M{"cart": productID},
		"$set":      bson.M{"updated_at": time.Now()},
	})
}

func (r *mongoUserRepository) AddToLikes(ctx context.Context, userID, productID primitive.ObjectID) (*models.User, error) {
	return r.updateSet(ctx, userID, bson.M{
		"$addToSet": bson.M{"likes": productID},
		"$set":      bson.M{"updated_at": time.Now()},
	})
}

func (r *mongoUserRepository) PullFromCart(ctx context.Context, userID, productID primitive.ObjectID) (*models.User, error) {
	return r.updateSet(ctx, userID, bson.M{
		"$pull": bson.M{"cart": productID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

func (r *mongoUserRepository) SetAvatar(ctx context.Context, userID primitive.ObjectID, filename string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{"avatar": filename, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
