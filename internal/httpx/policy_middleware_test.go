package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshelf/internal/auth"
	"bookshelf/internal/store"
	"bookshelf/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func policyHandler(t *testing.T) http.Handler {
	t.Helper()

	users := store.NewUserMem(testutil.TestUser)
	verifier := auth.NewService(testutil.TestSecret, users)

	public := []PublicRule{
		{Prefix: "/api/auth/"},
		{Method: http.MethodGet, Prefix: "/api/books"},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(UsernameFrom(r)))
	})
	return AccessPolicy(public, verifier)(next)
}

func TestAccessPolicy(t *testing.T) {
	validToken := testutil.GenerateTestToken(testutil.TestSecret, "testuser")
	expiredToken := testutil.GenerateExpiredToken(testutil.TestSecret, "testuser")
	unknownSubject := testutil.GenerateTestToken(testutil.TestSecret, "ghost")
	forged := testutil.GenerateTestToken("other-secret", "testuser")

	tests := []struct {
		name           string
		method         string
		path           string
		authorization  string
		expectedStatus int
	}{
		{"public auth path without token", http.MethodPost, "/api/auth/login", "", http.StatusOK},
		{"public read path without token", http.MethodGet, "/api/books", "", http.StatusOK},
		{"public read subpath without token", http.MethodGet, "/api/books/5", "", http.StatusOK},
		{"write without token", http.MethodPost, "/api/books", "", http.StatusUnauthorized},
		{"delete without token", http.MethodDelete, "/api/books/5", "", http.StatusUnauthorized},
		{"write with valid token", http.MethodPost, "/api/books", "Bearer " + validToken, http.StatusOK},
		{"write with expired token", http.MethodPost, "/api/books", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"write with forged token", http.MethodPost, "/api/books", "Bearer " + forged, http.StatusUnauthorized},
		{"write with unknown principal", http.MethodPost, "/api/books", "Bearer " + unknownSubject, http.StatusUnauthorized},
		{"write with malformed header", http.MethodPost, "/api/books", "Token " + validToken, http.StatusUnauthorized},
		{"write with garbage token", http.MethodPost, "/api/books", "Bearer garbage", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := policyHandler(t)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authorization != "" {
				r.Header.Set("Authorization", tt.authorization)
			}

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAccessPolicy_SetsPrincipalContext(t *testing.T) {
	handler := policyHandler(t)
	token := testutil.GenerateTestToken(testutil.TestSecret, "testuser")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/books", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "testuser", w.Body.String())
}
