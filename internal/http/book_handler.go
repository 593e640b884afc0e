package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"
)

type BookHandler struct {
	svc *usecase.BookService
}

func NewBookHandler(svc *usecase.BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

// @Summary List books
// @Description Get all books in storage order
// @Tags books
// @Produce json
// @Success 200 {array} entity.Book
// @Router /api/books [get]
//
// List handles GET /api/books. An empty store yields 200 with an empty
// array, never an error.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.GetAllBooks(r.Context())
	if err != nil {
		writeServerError(w)
		return
	}
	writeBookList(w, books)
}

// @Summary Get book by id
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} entity.Book
// @Failure 404
// @Router /api/books/{id} [get]
//
// GetByID handles GET /api/books/{id}. A missing book is 404 with an
// empty body.
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	book, err := h.svc.GetBookByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

type byAuthorQuery struct {
	Author string `validate:"required"`
}

// ListByAuthor handles GET /api/books/by-author?author=. The author
// parameter is required and non-blank.
func (h *BookHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	q := byAuthorQuery{Author: strings.TrimSpace(r.URL.Query().Get("author"))}
	if validationErrors := ValidateStruct(q); len(validationErrors) > 0 {
		writeValidationErrors(w, validationErrors)
		return
	}

	books, err := h.svc.GetAllBooksByAuthor(r.Context(), q.Author)
	if err != nil {
		writeServerError(w)
		return
	}
	writeBookList(w, books)
}

// SearchTitle handles GET /api/books/search-title?keyword=. An empty
// keyword matches every book.
func (h *BookHandler) SearchTitle(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")

	books, err := h.svc.GetAllBooksByKeywordInTitle(r.Context(), keyword)
	if err != nil {
		writeServerError(w)
		return
	}
	writeBookList(w, books)
}

type createBookReq struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
}

// Create handles POST /api/books: 201 with a Location header pointing
// at the new resource and the stored book as the body.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		writeValidationErrors(w, validationErrors)
		return
	}

	created, err := h.svc.CreateBook(r.Context(), entity.Book{
		Title:  req.Title,
		Author: req.Author,
	})
	if err != nil {
		writeServerError(w)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("%s/%d", strings.TrimSuffix(r.URL.Path, "/"), *created.ID))
	writeJSON(w, http.StatusCreated, created)
}

// Delete handles DELETE /api/books/{id}: 204 on success, 404 with the
// error message as plain text when no such book exists.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := h.svc.DeleteBook(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeServerError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeBookList(w http.ResponseWriter, books []entity.Book) {
	if books == nil {
		books = []entity.Book{}
	}
	writeJSON(w, http.StatusOK, books)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeServerError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, "server error")
}
