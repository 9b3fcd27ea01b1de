package gateway

import (
	"context"
	"errors"
	"log/slog"

	"club-auth/app/domain"
	"club-auth/app/port"
)

// CredentialGateway implements port.CredentialValidator over the identity
// directory. It is the anti-corruption layer between the session lifecycle
// and whatever backs the directory.
type CredentialGateway struct {
	directory port.IdentityDirectory
	logger    *slog.Logger
}

// NewCredentialGateway creates a new CredentialGateway instance
func NewCredentialGateway(directory port.IdentityDirectory, logger *slog.Logger) *CredentialGateway {
	return &CredentialGateway{
		directory: directory,
		logger:    logger.With("component", "credential_gateway"),
	}
}

// Validate checks email, secret and requested role against the directory.
// Unknown email and wrong secret collapse to the same generic error so the
// caller can never tell which part failed.
func (g *CredentialGateway) Validate(ctx context.Context, email, secret, requestedRole string) (*domain.Identity, error) {
	identity, err := g.directory.Lookup(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			g.logger.Info("login rejected", "reason", "unknown_email")
			return nil, domain.ErrInvalidCredentials
		}
		g.logger.Error("directory lookup failed", "error", err)
		return nil, err
	}

	if identity.Secret != secret {
		g.logger.Info("login rejected", "reason", "wrong_secret")
		return nil, domain.ErrInvalidCredentials
	}

	if !domain.RoleCompatible(requestedRole, identity.Role) {
		g.logger.Info("login rejected",
			"reason", "role_mismatch",
			"requested_role", requestedRole,
			"actual_role", string(identity.Role))
		return nil, domain.NewRoleMismatchError(identity.Role)
	}

	return identity.Clone(), nil
}
