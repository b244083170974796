package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoply/server/internal/auth"
	"github.com/shoply/server/internal/models"
	"github.com/shoply/server/internal/repository"
)

const defaultRole = "User"

type AuthService struct {
	users     repository.UserRepository
	mailer    EmailService
	jwtSecret []byte
}

// NewAuthService wires the user store and token secret. mailer may be nil,
// in which case no welcome email is sent.
func NewAuthService(users repository.UserRepository, mailer EmailService, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		mailer:    mailer,
		jwtSecret: []byte(jwtSecret),
	}
}

// Register creates a user and issues a session token. Passwords are stored
// as bcrypt hashes, never as given.
func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (*models.PublicUser, string, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	// Check if the email is already registered
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	if role == "" {
		role = defaultRole
	}

	now := time.Now()
	user := &models.User{
		Username:  username,
		Email:     email,
		Password:  string(hashedPassword),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		// The unique index on email backstops the lookup above.
		if mongo.IsDuplicateKeyError(err) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}
	user.ID = id

	public := user.Public()
	token, err := auth.GenerateToken(s.jwtSecret, public)
	if err != nil {
		return nil, "", err
	}

	if s.mailer != nil {
		if err := s.mailer.SendWelcomeEmail(user.Email, user.Username); err != nil {
			// Log the error but don't fail the registration
			log.Printf("Failed to send welcome email: %v", err)
		}
	}

	return public, token, nil
}

// Login verifies credentials and issues a fresh session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.PublicUser, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	public := user.Public()
	token, err := auth.GenerateToken(s.jwtSecret, public)
	if err != nil {
		return nil, "", err
	}

	return public, token, nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*models.PublicUser, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	user, err := s.users.FindByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*models.PublicUser, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*models.PublicUser, len(users))
	for i := range users {
		result[i] = users[i].Public()
	}
	return result, nil
}

// UpdateAvatar stores the generated avatar filename on the user record.
func (s *AuthService) UpdateAvatar(ctx context.Context, userID, filename string) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrInvalidID
	}
	return s.users.SetAvatar(ctx, objID, filename)
}
