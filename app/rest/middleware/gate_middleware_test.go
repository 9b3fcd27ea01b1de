package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"club-auth/app/domain"
	"club-auth/app/driver/directory"
	"club-auth/app/driver/memstore"
	"club-auth/app/gateway"
	mock_port "club-auth/app/mocks"
	"club-auth/app/port"
	"club-auth/app/usecase"
	"club-auth/app/utils/metrics"
)

// countingRecorder tallies metric events so tests can assert exact counts.
type countingRecorder struct {
	logins        atomic.Int64
	loginFailures atomic.Int64
	logouts       atomic.Int64
	accessDenied  atomic.Int64
	forcedLogouts atomic.Int64
}

func (r *countingRecorder) RecordLogin(string)        { r.logins.Add(1) }
func (r *countingRecorder) RecordLoginFailure(string) { r.loginFailures.Add(1) }
func (r *countingRecorder) RecordLogout()             { r.logouts.Add(1) }
func (r *countingRecorder) RecordAccessDenied(string) { r.accessDenied.Add(1) }
func (r *countingRecorder) RecordForcedLogout()       { r.forcedLogouts.Add(1) }

// newSessionStack assembles the real directory, gateway, and session usecase
// over an in-memory store.
func newSessionStack(t *testing.T, recorder port.MetricsRecorder) *usecase.SessionUseCase {
	t.Helper()

	dir, err := directory.NewStatic(slog.Default())
	require.NoError(t, err)

	validator := gateway.NewCredentialGateway(dir, slog.Default())
	sessions := usecase.NewSessionUseCase(validator, memstore.New(), recorder, slog.Default(), 0)
	sessions.Restore(context.Background())

	return sessions
}

func invokeGate(gate *NavigationGate, path string, roles ...domain.Role) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	handler := gate.RequireRoles(roles...)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	return rec, handler(c)
}

func TestRequireRoles_LoadingRendersPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mock_port.NewMockSessionUsecase(ctrl)
	sessions.EXPECT().Snapshot().Return(domain.Session{IsLoading: true})

	gate := NewNavigationGate(sessions, metrics.Noop{}, slog.Default(), GateConfig{})

	rec, err := invokeGate(gate, "/v1/dashboard")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "loading")
}

func TestRequireRoles_NoSessionRedirectsToLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mock_port.NewMockSessionUsecase(ctrl)
	sessions.EXPECT().Snapshot().Return(domain.Session{IsAuthenticated: false})

	gate := NewNavigationGate(sessions, metrics.Noop{}, slog.Default(), GateConfig{LoginPath: "/login"})

	rec, err := invokeGate(gate, "/v1/dashboard")
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireRoles_AuthenticatedPassesThrough(t *testing.T) {
	recorder := &countingRecorder{}
	sessions := newSessionStack(t, recorder)

	_, err := sessions.Login(context.Background(), "student@university.edu", "student123", "member")
	require.NoError(t, err)

	gate := NewNavigationGate(sessions, recorder, slog.Default(), GateConfig{})

	// Empty role set admits any authenticated identity.
	rec, err := invokeGate(gate, "/v1/dashboard")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	// Matching role set passes too.
	rec, err = invokeGate(gate, "/v1/events", domain.RoleMember, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Zero(t, recorder.accessDenied.Load())
}

func TestRequireRoles_WrongRoleDeniesAndMountsCountdown(t *testing.T) {
	recorder := &countingRecorder{}
	sessions := newSessionStack(t, recorder)

	_, err := sessions.Login(context.Background(), "student@university.edu", "student123", "member")
	require.NoError(t, err)

	gate := NewNavigationGate(sessions, recorder, slog.Default(), GateConfig{
		CountdownInterval: time.Hour,
	})

	rec, err := invokeGate(gate, "/v1/admin", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body AccessDeniedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"admin"}, body.RequiredRoles)
	assert.Equal(t, 5, body.LogoutIn)

	assert.Equal(t, int64(1), recorder.accessDenied.Load())
	assert.True(t, sessions.Snapshot().IsAuthenticated, "denial alone must not log out")

	gate.Dismiss()
}

func TestRequireRoles_ReevaluationDoesNotResetCountdown(t *testing.T) {
	recorder := &countingRecorder{}
	sessions := newSessionStack(t, recorder)

	_, err := sessions.Login(context.Background(), "student@university.edu", "student123", "member")
	require.NoError(t, err)

	gate := NewNavigationGate(sessions, recorder, slog.Default(), GateConfig{
		CountdownSeconds:  3,
		CountdownInterval: time.Hour,
	})

	_, err = invokeGate(gate, "/v1/admin", domain.RoleAdmin)
	require.NoError(t, err)
	first := gate.CountdownRemaining()

	_, err = invokeGate(gate, "/v1/admin", domain.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, first, gate.CountdownRemaining())
	gate.Dismiss()
}

// Full denied-view walk: the requested-role alias resolves at login, a
// protected route denies, and expiry tears the session down exactly once.
func TestRequireRoles_ExpiryForcesLogoutOnce(t *testing.T) {
	recorder := &countingRecorder{}
	sessions := newSessionStack(t, recorder)

	_, err := sessions.Login(context.Background(), "Student@University.EDU", "student123", "student")
	require.NoError(t, err)

	gate := NewNavigationGate(sessions, recorder, slog.Default(), GateConfig{
		CountdownSeconds:  5,
		CountdownInterval: 2 * time.Millisecond,
	})

	rec, err := invokeGate(gate, "/v1/admin", domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, rec.Code)

	require.Eventually(t, func() bool {
		return !sessions.Snapshot().IsAuthenticated
	}, time.Second, time.Millisecond)

	// Give any stray ticks a chance to mis-fire before counting.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(1), recorder.forcedLogouts.Load())
	assert.Equal(t, int64(1), recorder.logouts.Load())

	// The next evaluation finds no session and redirects to login.
	rec, err = invokeGate(gate, "/v1/admin", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestDismiss_StopsTickingWithoutLogout(t *testing.T) {
	recorder := &countingRecorder{}
	sessions := newSessionStack(t, recorder)

	_, err := sessions.Login(context.Background(), "student@university.edu", "student123", "member")
	require.NoError(t, err)

	gate := NewNavigationGate(sessions, recorder, slog.Default(), GateConfig{
		CountdownSeconds:  2,
		CountdownInterval: 5 * time.Millisecond,
	})

	_, err = invokeGate(gate, "/v1/admin", domain.RoleAdmin)
	require.NoError(t, err)

	gate.Dismiss()

	// Well past where expiry would have landed.
	time.Sleep(50 * time.Millisecond)
	assert.True(t, sessions.Snapshot().IsAuthenticated)
	assert.Zero(t, recorder.forcedLogouts.Load())
	assert.Zero(t, gate.CountdownRemaining())
}

func TestLogoutNow_TriggersActiveCountdown(t *testing.T) {
	recorder := &countingRecorder{}
	sessions := newSessionStack(t, recorder)

	_, err := sessions.Login(context.Background(), "student@university.edu", "student123", "member")
	require.NoError(t, err)

	gate := NewNavigationGate(sessions, recorder, slog.Default(), GateConfig{
		CountdownInterval: time.Hour,
	})

	_, err = invokeGate(gate, "/v1/admin", domain.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, gate.LogoutNow(context.Background()))
	assert.False(t, sessions.Snapshot().IsAuthenticated)
	assert.Equal(t, int64(1), recorder.forcedLogouts.Load())
}

func TestLogoutNow_WithoutCountdownLogsOutDirectly(t *testing.T) {
	recorder := &countingRecorder{}
	sessions := newSessionStack(t, recorder)

	_, err := sessions.Login(context.Background(), "student@university.edu", "student123", "member")
	require.NoError(t, err)

	gate := NewNavigationGate(sessions, recorder, slog.Default(), GateConfig{})

	require.NoError(t, gate.LogoutNow(context.Background()))
	assert.False(t, sessions.Snapshot().IsAuthenticated)
	assert.Zero(t, recorder.forcedLogouts.Load())
	assert.Equal(t, int64(1), recorder.logouts.Load())
}
