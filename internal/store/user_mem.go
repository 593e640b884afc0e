package store

import (
	"context"

	"bookshelf/internal/auth"
	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"
)

// UserMem is an in-memory credential store seeded at startup. Records
// only live for the process lifetime; the map is never written after
// construction, so concurrent reads need no locking.
type UserMem struct {
	users map[string]entity.User
}

// NewUserMem creates a store containing the given users. Passwords must
// already be bcrypt hashes.
func NewUserMem(users ...entity.User) *UserMem {
	m := make(map[string]entity.User, len(users))
	for _, u := range users {
		m[u.Username] = u
	}
	return &UserMem{users: m}
}

// SeedUserMem hashes the plaintext password and returns a store with a
// single user carrying the given role.
func SeedUserMem(username, password, role string) (*UserMem, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return NewUserMem(entity.User{
		Username: username,
		Password: hash,
		Role:     role,
	}), nil
}

func (s *UserMem) GetByUsername(_ context.Context, username string) (entity.User, error) {
	u, ok := s.users[username]
	if !ok {
		return entity.User{}, usecase.ErrUnknownUser
	}
	return u, nil
}
