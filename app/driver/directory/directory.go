// Package directory provides the static identity directory. Identities are
// seeded once at process start from an embedded YAML catalog and never
// mutated; a real directory service can replace this driver behind
// port.IdentityDirectory without touching callers.
package directory

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"club-auth/app/domain"
	"club-auth/app/port"
)

//go:embed seed.yaml
var seedYAML []byte

// seedIdentity is the YAML shape of one directory entry
type seedIdentity struct {
	ID          string    `yaml:"id"`
	Email       string    `yaml:"email"`
	Secret      string    `yaml:"secret"`
	FirstName   string    `yaml:"first_name"`
	LastName    string    `yaml:"last_name"`
	Role        string    `yaml:"role"`
	Permissions []string  `yaml:"permissions"`
	Department  string    `yaml:"department"`
	Year        string    `yaml:"year"`
	Phone       string    `yaml:"phone"`
	Bio         string    `yaml:"bio"`
	Interests   []string  `yaml:"interests"`
	CreatedAt   time.Time `yaml:"created_at"`
}

// Static implements port.IdentityDirectory over a fixed in-memory catalog
type Static struct {
	byEmail map[string]*domain.Identity
	logger  *slog.Logger
}

// NewStatic builds the directory from the embedded seed catalog
func NewStatic(logger *slog.Logger) (port.IdentityDirectory, error) {
	return FromYAML(seedYAML, logger)
}

// FromYAML builds a directory from a YAML catalog
func FromYAML(data []byte, logger *slog.Logger) (port.IdentityDirectory, error) {
	var seeds []seedIdentity
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse directory seed: %w", err)
	}

	if len(seeds) == 0 {
		return nil, fmt.Errorf("directory seed is empty")
	}

	byEmail := make(map[string]*domain.Identity, len(seeds))
	for _, seed := range seeds {
		identity, err := seed.toDomain()
		if err != nil {
			return nil, fmt.Errorf("invalid directory entry %q: %w", seed.Email, err)
		}

		key := strings.ToLower(identity.Email)
		if _, exists := byEmail[key]; exists {
			return nil, fmt.Errorf("duplicate directory email: %s", identity.Email)
		}
		byEmail[key] = identity
	}

	logger.Info("identity directory seeded", "identities", len(byEmail))

	return &Static{
		byEmail: byEmail,
		logger:  logger.With("component", "identity_directory"),
	}, nil
}

func (s *seedIdentity) toDomain() (*domain.Identity, error) {
	if s.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if s.Secret == "" {
		return nil, fmt.Errorf("secret is required")
	}

	id, err := uuid.Parse(s.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid id: %w", err)
	}

	role := domain.Role(s.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", s.Role)
	}

	permissions := make([]domain.Permission, 0, len(s.Permissions))
	for _, p := range s.Permissions {
		permissions = append(permissions, domain.Permission(p))
	}

	return &domain.Identity{
		ID:          id,
		Email:       s.Email,
		Secret:      s.Secret,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Role:        role,
		Permissions: permissions,
		Department:  s.Department,
		Year:        s.Year,
		Phone:       s.Phone,
		Bio:         s.Bio,
		Interests:   s.Interests,
		CreatedAt:   s.CreatedAt,
	}, nil
}

// Lookup finds an identity by email, case-insensitively. Callers receive a
// copy so the catalog itself stays immutable.
func (s *Static) Lookup(_ context.Context, email string) (*domain.Identity, error) {
	identity, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return identity.Clone(), nil
}
