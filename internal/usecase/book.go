package usecase

import (
	"context"
	"errors"
	"fmt"

	"bookshelf/internal/entity"
)

// ErrNotFound is returned when a book does not exist in the store.
var ErrNotFound = errors.New("book not found")

// NotFoundByID wraps ErrNotFound with the missing id so handlers can
// surface it in a response body.
func NotFoundByID(id int64) error {
	return fmt.Errorf("book with id %d: %w", id, ErrNotFound)
}

//go:generate mockgen -destination=mocks/book_repository.go -package=mocks bookshelf/internal/usecase BookRepository

// BookRepository defines the contract for book data storage.
type BookRepository interface {
	// List returns every book in id (insertion) order.
	List(ctx context.Context) ([]entity.Book, error)
	// GetByID returns the book with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	// ListByAuthor returns books whose author matches exactly.
	ListByAuthor(ctx context.Context, author string) ([]entity.Book, error)
	// SearchTitle returns books whose title contains the keyword
	// (case-sensitive).
	SearchTitle(ctx context.Context, keyword string) ([]entity.Book, error)
	// ExistsByID reports whether a book with the given id exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// Save inserts the book and assigns its id when b.ID is nil,
	// otherwise overwrites the row with the matching id.
	Save(ctx context.Context, b *entity.Book) error
	// DeleteByID removes the row if present. Deleting a missing id is
	// not an error at this layer.
	DeleteByID(ctx context.Context, id int64) error
}
