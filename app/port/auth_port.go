package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"

	"club-auth/app/domain"
)

// CredentialValidator checks a login attempt against the identity directory.
// Unknown email and wrong secret both fail with domain.ErrInvalidCredentials;
// a known identity with an incompatible requested role fails with
// *domain.RoleMismatchError. The check is pure: no lockout, no attempt counting.
type CredentialValidator interface {
	Validate(ctx context.Context, email, secret, requestedRole string) (*domain.Identity, error)
}
