package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"
)

// ErrTagNotFound is returned when a tag lookup by name misses.
var ErrTagNotFound = errors.New("tag not found")

// ErrTagExists is returned by Create when the unique constraint on the tag
// name fires; the caller re-reads the winning row.
var ErrTagExists = errors.New("tag already exists")

// TagRepository persists the shared tag rows. Uniqueness of the name is
// enforced by the storage layer, not by check-then-act in application code.
type TagRepository interface {
	// FindByName looks a tag up by its exact, case-sensitive name.
	FindByName(ctx context.Context, name string) (*entity.Tag, error)

	// Create persists a new tag and backfills the generated ID.
	Create(ctx context.Context, tag *entity.Tag) error
}
