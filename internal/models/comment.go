package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	ProductID primitive.ObjectID `bson:"product" json:"product"`
	Comment   string             `bson:"comment" json:"comment"`
}
