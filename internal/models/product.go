package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID     primitive.ObjectID `bson:"user" json:"user"`
	Title      string             `bson:"title" json:"title"`
	Body       string             `bson:"body" json:"body"`
	Category   string             `bson:"category" json:"category"`
	Price      float64            `bson:"price" json:"price"`
	Rate       float64            `bson:"rate" json:"rate"`
	Stock      int                `bson:"stock" json:"stock"`
	Size       string             `bson:"size,omitempty" json:"size,omitempty"`
	Dimensions string             `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	Warranty   string             `bson:"warranty,omitempty" json:"warranty,omitempty"`
	Materials  string             `bson:"materials,omitempty" json:"materials,omitempty"`
	Images     []string           `bson:"images" json:"images"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`

	// Owner is resolved at read time for single-product fetches. Not stored.
	Owner *OwnerSummary `bson:"-" json:"owner,omitempty"`
}

type OwnerSummary struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ProductUpdate carries the mutable product fields; nil pointers are left
// untouched by the update.
type ProductUpdate struct {
	Title      *string  `json:"title"`
	Body       *string  `json:"body"`
	Category   *string  `json:"category"`
	Price      *float64 `json:"price"`
	Rate       *float64 `json:"rate"`
	Stock      *int     `json:"stock"`
	Size       *string  `json:"size"`
	Dimensions *string  `json:"dimensions"`
	Warranty   *string  `json:"warranty"`
	Materials  *string  `json:"materials"`
}
