package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Service verifies credentials against a store and issues and checks
// bearer tokens. Tokens are stateless; validity depends only on the
// signing secret, the expiry claim and the subject resolving to a known
// principal.
type Service struct {
	secret string
	users  usecase.CredentialStore
}

func NewService(secret string, users usecase.CredentialStore) *Service {
	return &Service{secret: secret, users: users}
}

// NewProcessSecret returns a fresh random signing secret. Using it
// invalidates every token issued before the current process start.
func NewProcessSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Login checks the credentials and returns a newly issued token.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || !VerifyPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	return GenerateToken(s.secret, u.Username, TokenTTL)
}

// Authenticate verifies a bearer token and resolves its subject to a
// known principal. Any parse, signature or expiry failure, and any
// subject without a credential record, yields ErrInvalidToken.
func (s *Service) Authenticate(ctx context.Context, token string) (entity.User, error) {
	username, err := ExtractUsername(s.secret, token)
	if err != nil {
		return entity.User{}, ErrInvalidToken
	}
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return entity.User{}, ErrInvalidToken
	}
	return u, nil
}
