package httpx

import (
	"context"
	"net/http"
	"strings"

	"bookshelf/internal/entity"
)

// TokenVerifier checks a bearer token and resolves it to a principal.
type TokenVerifier interface {
	Authenticate(ctx context.Context, token string) (entity.User, error)
}

// PublicRule admits requests without a token. An empty Method matches
// any method; Prefix matches the start of the URL path.
type PublicRule struct {
	Method string
	Prefix string
}

func (pr PublicRule) matches(r *http.Request) bool {
	if pr.Method != "" && pr.Method != r.Method {
		return false
	}
	return strings.HasPrefix(r.URL.Path, pr.Prefix)
}

// AccessPolicy rejects requests that match no public rule and carry no
// valid bearer token, before any handler runs. Authenticated requests
// proceed with the principal stored in the context.
func AccessPolicy(public []PublicRule, verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, rule := range public {
				if rule.matches(r) {
					next.ServeHTTP(w, r)
					return
				}
			}

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			u, err := verifier.Authenticate(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := ContextWithUser(r.Context(), u.Username, u.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
