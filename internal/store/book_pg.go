package store

// Repository implementation (Postgres)

import (
	"context"
	"errors"
	"strings"

	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) List(ctx context.Context) ([]entity.Book, error) {
	query := `
	SELECT id, title, author
	FROM books
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *BookPG) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	query := `
	SELECT id, title, author
	FROM books
	WHERE id = $1
	`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, usecase.NotFoundByID(id)
	}
	if err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) ListByAuthor(ctx context.Context, author string) ([]entity.Book, error) {
	query := `
	SELECT id, title, author
	FROM books
	WHERE author = $1
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, author)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

// SearchTitle matches the keyword as a case-sensitive substring. LIKE
// metacharacters in the keyword are escaped so they match literally.
func (r *BookPG) SearchTitle(ctx context.Context, keyword string) ([]entity.Book, error) {
	query := `
	SELECT id, title, author
	FROM books
	WHERE title LIKE '%' || $1 || '%' ESCAPE '\'
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, escapeLike(keyword))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *BookPG) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *BookPG) Save(ctx context.Context, b *entity.Book) error {
	if b.ID == nil {
		query := `
		INSERT INTO books (title, author)
		VALUES ($1, $2)
		RETURNING id
		`
		var id int64
		if err := r.db.QueryRow(ctx, query, b.Title, b.Author).Scan(&id); err != nil {
			return err
		}
		b.ID = &id
		return nil
	}
	query := `
	INSERT INTO books (id, title, author)
	VALUES ($1, $2, $3)
	ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, author = EXCLUDED.author
	`
	_, err := r.db.Exec(ctx, query, *b.ID, b.Title, b.Author)
	return err
}

func (r *BookPG) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	return err
}

func scanBooks(rows pgx.Rows) ([]entity.Book, error) {
	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
