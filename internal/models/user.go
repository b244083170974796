package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Username  string               `bson:"username" json:"username"`
	Email     string               `bson:"email" json:"email"`
	Password  string               `bson:"password" json:"-"`
	Role      string               `bson:"role" json:"role"`
	Avatar    string               `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Cart      []primitive.ObjectID `bson:"cart,omitempty" json:"cart"`
	Likes     []primitive.ObjectID `bson:"likes,omitempty" json:"likes"`
	CreatedAt time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updatedAt"`
}

// PublicUser is the projection embedded in session tokens and returned to
// clients. It must never carry the password hash.
type PublicUser struct {
	ID       string `bson:"id" json:"id"`
	Username string `bson:"username" json:"username"`
	Email    string `bson:"email" json:"email"`
	Role     string `bson:"role" json:"role"`
	Avatar   string `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Avatar:   u.Avatar,
	}
}
