package services

import (
	"errors"

	"github.com/shoply/server/internal/repository"
)

var (
	// ErrNotFound mirrors the repository sentinel so handlers only need to
	// know this package.
	ErrNotFound = repository.ErrNotFound

	ErrMissingFields      = errors.New("all fields are required")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrInvalidID          = errors.New("invalid id")
	ErrNotAuthorized      = errors.New("not authorized")
)
