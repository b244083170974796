package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shoply/server/internal/models"
	"github.com/shoply/server/internal/repository"
)

type CommentService struct {
	comments repository.CommentRepository
}

func NewCommentService(comments repository.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

// Create stores a comment referencing user and product. The product id is
// not checked for existence; a comment may point at a product that is gone
// by the time it is read.
func (s *CommentService) Create(ctx context.Context, userID, productID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrMissingFields
	}

	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}
	pID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ErrInvalidID
	}

	comment := &models.Comment{
		UserID:    uID,
		ProductID: pID,
		Comment:   text,
	}

	id, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = id
	return comment, nil
}

// Delete removes a comment by id. A well-formed id that matches nothing is a
// successful no-op.
func (s *CommentService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	return s.comments.Delete(ctx, objID)
}
