package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shoply/server/internal/models"
	"github.com/shoply/server/internal/repository"
)

type CartService struct {
	users    repository.UserRepository
	products repository.ProductRepository
}

func NewCartService(users repository.UserRepository, products repository.ProductRepository) *CartService {
	return &CartService{users: users, products: products}
}

// AddToCart adds the product id to the user's cart set and returns the
// updated set. Adding an id twice leaves the set unchanged.
func (s *CartService) AddToCart(ctx context.Context, userID, productID string) ([]primitive.ObjectID, error) {
	uID, pID, err := s.resolve(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.AddToCart(ctx, uID, pID)
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}

// AddToLikes mirrors AddToCart for the likes set.
func (s *CartService) AddToLikes(ctx context.Context, userID, productID string) ([]primitive.ObjectID, error) {
	uID, pID, err := s.resolve(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.AddToLikes(ctx, uID, pID)
	if err != nil {
		return nil, err
	}
	return user.Likes, nil
}

// GetCart resolves every reference in the user's cart. A reference to a
// product that has since been deleted yields a nil entry, not an error.
func (s *CartService) GetCart(ctx context.Context, userID string) ([]*models.Product, error) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}

	user, err := s.users.FindByID(ctx, uID)
	if err != nil {
		return nil, err
	}

	products := make([]*models.Product, 0, len(user.Cart))
	for _, id := range user.Cart {
		product, err := s.products.FindByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			products = append(products, nil)
			continue
		} else if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

// RemoveFromCart pulls the product id out of the calling user's cart set.
// Removing an id that is not in the cart succeeds and leaves it unchanged.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID string) ([]primitive.ObjectID, error) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}
	pID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ErrInvalidID
	}

	user, err := s.users.PullFromCart(ctx, uID, pID)
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}

// resolve parses both ids and checks the product exists.
func (s *CartService) resolve(ctx context.Context, userID, productID string) (primitive.ObjectID, primitive.ObjectID, error) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrInvalidID
	}
	pID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrInvalidID
	}

	if _, err := s.products.FindByID(ctx, pID); err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	return uID, pID, nil
}
