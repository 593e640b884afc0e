package usecase

import (
	"context"
	"errors"

	"bookshelf/internal/entity"
)

// ErrUnknownUser is returned when a username has no credential record.
var ErrUnknownUser = errors.New("unknown user")

// CredentialStore defines the contract for looking up login principals.
type CredentialStore interface {
	// GetByUsername returns the credential record for username, or
	// ErrUnknownUser.
	GetByUsername(ctx context.Context, username string) (entity.User, error)
}
