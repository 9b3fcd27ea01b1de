package port

//go:generate mockgen -source=directory_port.go -destination=../mocks/mock_directory_port.go

import (
	"context"

	"club-auth/app/domain"
)

// IdentityDirectory is a fixed, read-only catalog of known identities.
// Lookup matches the email case-insensitively and returns
// domain.ErrIdentityNotFound when no identity carries it. A directory-service
// backed implementation can be substituted without touching callers.
type IdentityDirectory interface {
	Lookup(ctx context.Context, email string) (*domain.Identity, error)
}
