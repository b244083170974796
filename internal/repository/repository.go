package repository

import "errors"

// ErrNotFound is returned when a lookup or targeted update matches no
// document. mongo.ErrNoDocuments never leaks past this package.
var ErrNotFound = errors.New("not found")
