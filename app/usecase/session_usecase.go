package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"club-auth/app/domain"
	"club-auth/app/port"
)

// Password shape rules checked by ChangePassword
const (
	minCurrentSecretLen = 6
	minNewSecretLen     = 8
)

// SessionUseCase implements the session lifecycle: restore at startup, login,
// logout, profile updates and the read-side snapshot the navigation gate
// consumes. One mutex serializes every operation; the last write to session
// state wins.
type SessionUseCase struct {
	mu        sync.Mutex
	validator port.CredentialValidator
	store     port.RecordStore
	metrics   port.MetricsRecorder
	logger    *slog.Logger

	// loginDelay models the network round trip of a real credential check.
	// Zero in tests.
	loginDelay time.Duration

	restoreOnce sync.Once

	current       *domain.Identity
	token         string
	authenticated bool
	loading       bool
}

// NewSessionUseCase creates a new SessionUseCase instance. The session starts
// in the loading state until Restore has run.
func NewSessionUseCase(
	validator port.CredentialValidator,
	store port.RecordStore,
	metrics port.MetricsRecorder,
	logger *slog.Logger,
	loginDelay time.Duration,
) *SessionUseCase {
	return &SessionUseCase{
		validator:  validator,
		store:      store,
		metrics:    metrics,
		logger:     logger.With("component", "session_usecase"),
		loginDelay: loginDelay,
		loading:    true,
	}
}

// Restore attempts to rebuild the session from the persisted record. It runs
// exactly once per process, before any protected view is evaluated; repeated
// calls are no-ops. A corrupt record is deleted and absorbed, never surfaced:
// the process simply starts unauthenticated.
func (uc *SessionUseCase) Restore(ctx context.Context) {
	uc.restoreOnce.Do(func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		defer func() { uc.loading = false }()

		value, ok, err := uc.store.Get(ctx, domain.SessionRecordKey)
		if err != nil {
			uc.logger.Error("failed to read persisted session", "error", err)
			return
		}
		if !ok {
			uc.logger.Info("no persisted session found")
			return
		}

		record, err := domain.DecodeSessionRecord(value)
		if err != nil {
			uc.logger.Warn("clearing corrupted session record", "error", err)
			if delErr := uc.store.Delete(ctx, domain.SessionRecordKey); delErr != nil {
				uc.logger.Error("failed to clear corrupted session record", "error", delErr)
			}
			return
		}

		uc.current = record.Identity
		uc.token = record.Token
		uc.authenticated = true

		uc.logger.Info("session restored",
			"identity_id", record.Identity.ID.String(),
			"role", string(record.Identity.Role))
	})
}

// Login validates the credentials and requested role, then mints a token,
// persists the session record and publishes the identity. On any failure the
// session state is left exactly as it was.
func (uc *SessionUseCase) Login(ctx context.Context, email, secret, requestedRole string) (*domain.Identity, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.loading = true
	defer func() { uc.loading = false }()

	if err := uc.simulateLatency(ctx); err != nil {
		return nil, err
	}

	identity, err := uc.validator.Validate(ctx, email, secret, requestedRole)
	if err != nil {
		uc.metrics.RecordLoginFailure(loginFailureReason(err))
		return nil, err
	}

	identity.RecordLogin(time.Now())

	token := domain.NewSessionToken()
	record, err := domain.NewSessionRecord(identity, token)
	if err != nil {
		return nil, fmt.Errorf("failed to build session record: %w", err)
	}

	encoded, err := record.Encode()
	if err != nil {
		return nil, err
	}

	if err := uc.store.Set(ctx, domain.SessionRecordKey, encoded); err != nil {
		uc.metrics.RecordLoginFailure("store")
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	uc.current = identity
	uc.token = token
	uc.authenticated = true

	uc.metrics.RecordLogin(string(identity.Role))
	uc.logger.Info("login succeeded",
		"identity_id", identity.ID.String(),
		"role", string(identity.Role))

	return identity.Clone(), nil
}

// Logout clears the persisted record and the in-memory session. It is
// idempotent: an already-empty session still clears any residual record.
// The in-memory state is cleared even when the store delete fails.
func (uc *SessionUseCase) Logout(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.loading = true
	defer func() { uc.loading = false }()

	wasAuthenticated := uc.authenticated

	err := uc.store.Delete(ctx, domain.SessionRecordKey)

	uc.current = nil
	uc.token = ""
	uc.authenticated = false

	if err != nil {
		uc.logger.Error("failed to delete persisted session", "error", err)
		return fmt.Errorf("failed to delete persisted session: %w", err)
	}

	if wasAuthenticated {
		uc.metrics.RecordLogout()
		uc.logger.Info("logout completed")
	}

	return nil
}

// UpdateProfile merges the set fields into the current identity, last write
// per field, and re-persists the record under the same token.
func (uc *SessionUseCase) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.Identity, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.current == nil {
		return nil, domain.ErrProfileUpdateFailed
	}

	merged := uc.current.Clone()
	merged.ApplyProfile(update)

	record, err := domain.NewSessionRecord(merged, uc.token)
	if err != nil {
		return nil, fmt.Errorf("failed to build session record: %w", err)
	}

	encoded, err := record.Encode()
	if err != nil {
		return nil, err
	}

	if err := uc.store.Set(ctx, domain.SessionRecordKey, encoded); err != nil {
		return nil, fmt.Errorf("failed to persist profile update: %w", err)
	}

	uc.current = merged

	uc.logger.Info("profile updated", "identity_id", merged.ID.String())

	return merged.Clone(), nil
}

// ChangePassword checks the shape of both secrets and reports success.
// The directory is read-only: the new secret is validated but never stored,
// so the original secret keeps working on the next login.
func (uc *SessionUseCase) ChangePassword(_ context.Context, currentSecret, newSecret string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if len(currentSecret) < minCurrentSecretLen {
		return domain.ErrCurrentPasswordIncorrect
	}
	if len(newSecret) < minNewSecretLen {
		return domain.ErrPasswordTooShort
	}

	uc.logger.Info("password change accepted")
	return nil
}

// Snapshot returns a copy of the current session state
func (uc *SessionUseCase) Snapshot() domain.Session {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return domain.Session{
		CurrentIdentity: uc.current.Clone(),
		IsAuthenticated: uc.authenticated,
		IsLoading:       uc.loading,
	}
}

// HasPermission reports whether the current identity carries the tag
func (uc *SessionUseCase) HasPermission(permission domain.Permission) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.current != nil && uc.current.HasPermission(permission)
}

// IsAdmin reports whether the current identity has the admin role
func (uc *SessionUseCase) IsAdmin() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.current != nil && uc.current.IsAdmin()
}

// IsClubLeader reports whether the current identity holds a leadership role
func (uc *SessionUseCase) IsClubLeader() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.current != nil && uc.current.IsClubLeader()
}

// IsMember reports whether the current identity has the member role
func (uc *SessionUseCase) IsMember() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.current != nil && uc.current.IsMember()
}

// simulateLatency waits out the configured artificial delay
func (uc *SessionUseCase) simulateLatency(ctx context.Context) error {
	if uc.loginDelay <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(uc.loginDelay):
		return nil
	}
}

func loginFailureReason(err error) string {
	var mismatch *domain.RoleMismatchError
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.As(err, &mismatch):
		return "role_mismatch"
	default:
		return "internal"
	}
}
