package main

import (
	"context"
	"net/http"
	"time"

	apphttp "bookshelf/internal/http"
	"bookshelf/internal/httpx"
)

// publicRules lists the requests admitted without a bearer token: auth
// endpoints, read-only book endpoints and the health probes. Everything
// else needs a token resolving to a known principal.
var publicRules = []httpx.PublicRule{
	{Prefix: "/healthz"},
	{Prefix: "/readyz"},
	{Prefix: "/api/auth/"},
	{Method: http.MethodGet, Prefix: "/api/books"},
}

func newRouter(bookHandler *apphttp.BookHandler, authHandler *apphttp.AuthHandler, ready func(context.Context) error) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /api/books", bookHandler.List)
	router.HandleFunc("GET /api/books/by-author", bookHandler.ListByAuthor)
	router.HandleFunc("GET /api/books/search-title", bookHandler.SearchTitle)
	router.HandleFunc("GET /api/books/{id}", bookHandler.GetByID)
	router.HandleFunc("POST /api/books", bookHandler.Create)
	router.HandleFunc("DELETE /api/books/{id}", bookHandler.Delete)

	router.HandleFunc("POST /api/auth/login", authHandler.Login)

	return router
}
