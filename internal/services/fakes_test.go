package services_test

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shoply/server/internal/models"
	"github.com/shoply/server/internal/repository"
)

// In-memory repositories standing in for Mongo. Set semantics mirror
// $addToSet / $pull.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *user
	stored.ID = id
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	result := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, *user)
	}
	return result, nil
}

func (r *fakeUserRepo) AddToCart(_ context.Context, userID, productID primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user.Cart = addToSet(user.Cart, productID)
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) AddToLikes(_ context.Context, userID, productID primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user.Likes = addToSet(user.Likes, productID)
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) PullFromCart(_ context.Context, userID, productID primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	filtered := user.Cart[:0]
	for _, id := range user.Cart {
		if id != productID {
			filtered = append(filtered, id)
		}
	}
	user.Cart = filtered
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) SetAvatar(_ context.Context, userID primitive.ObjectID, filename string) error {
	user, ok := r.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	user.Avatar = filename
	return nil
}

func addToSet(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

type fakeProductRepo struct {
	products map[primitive.ObjectID]*models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[primitive.ObjectID]*models.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *models.Product) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *product
	stored.ID = id
	r.products[id] = &stored
	return id, nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) Update(_ context.Context, id primitive.ObjectID, update *models.ProductUpdate) (*models.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Title != nil {
		product.Title = *update.Title
	}
	if update.Body != nil {
		product.Body = *update.Body
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Rate != nil {
		product.Rate = *update.Rate
	}
	if update.Stock != nil {
		product.Stock = *update.Stock
	}
	product.UpdatedAt = time.Now()
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.products, id)
	return product, nil
}

func (r *fakeProductRepo) FindByCategory(_ context.Context, category string) ([]models.Product, error) {
	var result []models.Product
	for _, product := range r.products {
		if product.Category == category {
			result = append(result, *product)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) Search(_ context.Context, query string) ([]models.Product, error) {
	q := strings.ToLower(query)
	var result []models.Product
	for _, product := range r.products {
		if strings.Contains(strings.ToLower(product.Title), q) || strings.Contains(strings.ToLower(product.Body), q) {
			result = append(result, *product)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	result := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		result = append(result, *product)
	}
	return result, nil
}
