package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go

import (
	"context"

	"club-auth/app/domain"
)

// SessionUsecase defines the session lifecycle business logic interface
type SessionUsecase interface {
	// Lifecycle
	Restore(ctx context.Context)
	Login(ctx context.Context, email, secret, requestedRole string) (*domain.Identity, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.Identity, error)
	ChangePassword(ctx context.Context, currentSecret, newSecret string) error

	// Read side
	Snapshot() domain.Session
	HasPermission(permission domain.Permission) bool
	IsAdmin() bool
	IsClubLeader() bool
	IsMember() bool
}

// MetricsRecorder receives auth lifecycle events for observability.
// Implementations must be safe for concurrent use and must never fail.
type MetricsRecorder interface {
	RecordLogin(role string)
	RecordLoginFailure(reason string)
	RecordLogout()
	RecordAccessDenied(path string)
	RecordForcedLogout()
}
