package usecase

import (
	"context"

	"bookshelf/internal/entity"
)

// BookService provides book-related business logic on top of a
// repository.
type BookService struct {
	repo BookRepository
}

// NewBookService creates a new book service.
func NewBookService(repo BookRepository) *BookService {
	return &BookService{repo: repo}
}

// GetAllBooks returns every book in storage order.
func (s *BookService) GetAllBooks(ctx context.Context) ([]entity.Book, error) {
	return s.repo.List(ctx)
}

// GetBookByID returns the book with the given id, or ErrNotFound.
// An absent book is an expected state for callers, not a failure.
func (s *BookService) GetBookByID(ctx context.Context, id int64) (entity.Book, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAllBooksByAuthor returns books whose author matches exactly.
func (s *BookService) GetAllBooksByAuthor(ctx context.Context, author string) ([]entity.Book, error) {
	return s.repo.ListByAuthor(ctx, author)
}

// GetAllBooksByKeywordInTitle returns books whose title contains keyword.
func (s *BookService) GetAllBooksByKeywordInTitle(ctx context.Context, keyword string) ([]entity.Book, error) {
	return s.repo.SearchTitle(ctx, keyword)
}

// CreateBook persists the book and returns it with its assigned id.
func (s *BookService) CreateBook(ctx context.Context, b entity.Book) (entity.Book, error) {
	b.ID = nil
	if err := s.repo.Save(ctx, &b); err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

// DeleteBook removes the book with the given id. Unlike the repository,
// it checks existence first so a missing id yields a NotFound error
// carrying the id instead of a silent no-op.
func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return NotFoundByID(id)
	}
	return s.repo.DeleteByID(ctx, id)
}
