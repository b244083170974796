package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shoply/server/internal/models"
	"github.com/shoply/server/internal/repository"
)

type ProductService struct {
	products repository.ProductRepository
	users    repository.UserRepository
}

func NewProductService(products repository.ProductRepository, users repository.UserRepository) *ProductService {
	return &ProductService{products: products, users: users}
}

type CreateProductInput struct {
	Title      string
	Body       string
	Category   string
	Price      float64
	Rate       float64
	Stock      int
	Size       string
	Dimensions string
	Warranty   string
	Materials  string
	Images     []string
}

// Create persists a product owned by ownerID. The owner must still exist at
// creation time; a token whose user has vanished is rejected.
func (s *ProductService) Create(ctx context.Context, ownerID string, input *CreateProductInput) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrNotAuthorized
	}

	owner, err := s.users.FindByID(ctx, objID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotAuthorized
	} else if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &models.Product{
		UserID:     owner.ID,
		Title:      input.Title,
		Body:       input.Body,
		Category:   input.Category,
		Price:      input.Price,
		Rate:       input.Rate,
		Stock:      input.Stock,
		Size:       input.Size,
		Dimensions: input.Dimensions,
		Warranty:   input.Warranty,
		Materials:  input.Materials,
		Images:     input.Images,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	id, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return product, nil
}

// Get fetches a product and resolves its owner to a small summary. A product
// whose owner was deleted is still returned, without the summary.
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	product, err := s.products.FindByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	owner, err := s.users.FindByID(ctx, product.UserID)
	if err == nil {
		product.Owner = &models.OwnerSummary{Username: owner.Username, Email: owner.Email}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, update *models.ProductUpdate) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.products.Update(ctx, objID, update)
}

func (s *ProductService) Delete(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.products.Delete(ctx, objID)
}

// ByCategory returns the products in a category. An empty result is reported
// as not found.
func (s *ProductService) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.products.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}
	return products, nil
}

// Search matches query case-insensitively against title and body. An empty
// result is reported as not found.
func (s *ProductService) Search(ctx context.Context, query string) ([]models.Product, error) {
	products, err := s.products.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}
	return products, nil
}

// All returns every product; an empty list is not an error.
func (s *ProductService) All(ctx context.Context) ([]models.Product, error) {
	return s.products.FindAll(ctx)
}
