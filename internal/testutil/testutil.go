package testutil

import (
	"time"

	"bookshelf/internal/auth"
	"bookshelf/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TestSecret is the signing secret used across tests.
const TestSecret = "test-secret"

// TestPassword is the plaintext behind TestUser's hash.
const TestPassword = "testpass"

// TestUser is a credential fixture. Password holds the bcrypt hash of
// TestPassword, computed once at package init.
var TestUser = entity.User{
	Username: "testuser",
	Password: mustHash(TestPassword),
	Role:     "USER",
}

func mustHash(plain string) string {
	h, err := auth.HashPassword(plain)
	if err != nil {
		panic(err)
	}
	return h
}

// BookID returns a pointer to id, for building Book fixtures inline.
func BookID(id int64) *int64 {
	return &id
}

// TestBook is a stored-book fixture.
var TestBook = entity.Book{
	ID:     BookID(1),
	Title:  "Test Book Title",
	Author: "Test Author",
}

// GenerateTestToken issues a valid token for username.
func GenerateTestToken(secret, username string) string {
	token, _ := auth.GenerateToken(secret, username, time.Hour)
	return token
}

// GenerateExpiredToken issues a token whose expiry already passed.
func GenerateExpiredToken(secret, username string) string {
	c := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}
