package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"club-auth/app/domain"
	"club-auth/app/port"
)

// AccessDeniedResponse is rendered on a wrong-role navigation outcome
type AccessDeniedResponse struct {
	Error         string   `json:"error"`
	RequiredRoles []string `json:"required_roles"`
	LogoutIn      int      `json:"logout_in_seconds"`
}

// NavigationGate guards protected routes. Every request re-evaluates the
// session snapshot and the authorization policy; there is no cached verdict.
// A wrong-role outcome mounts the forced de-authentication countdown, whose
// expiry is the only path from here to logout.
type NavigationGate struct {
	sessions port.SessionUsecase
	metrics  port.MetricsRecorder
	logger   *slog.Logger

	loginPath         string
	countdownSeconds  int
	countdownInterval time.Duration

	mu        sync.Mutex
	countdown *domain.Countdown
}

// GateConfig holds navigation gate configuration
type GateConfig struct {
	LoginPath         string
	CountdownSeconds  int
	CountdownInterval time.Duration
}

// NewNavigationGate creates a new navigation gate
func NewNavigationGate(sessions port.SessionUsecase, metrics port.MetricsRecorder, logger *slog.Logger, cfg GateConfig) *NavigationGate {
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}
	if cfg.CountdownSeconds <= 0 {
		cfg.CountdownSeconds = domain.DefaultCountdownSeconds
	}
	if cfg.CountdownInterval <= 0 {
		cfg.CountdownInterval = time.Second
	}

	return &NavigationGate{
		sessions:          sessions,
		metrics:           metrics,
		logger:            logger.With("component", "navigation_gate"),
		loginPath:         cfg.LoginPath,
		countdownSeconds:  cfg.CountdownSeconds,
		countdownInterval: cfg.CountdownInterval,
	}
}

// RequireRoles gates a route on the given role set. An empty set admits any
// authenticated identity.
func (g *NavigationGate) RequireRoles(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snapshot := g.sessions.Snapshot()

			// Until the one-time restore has run, render a neutral
			// placeholder: neither allow nor deny is decided yet.
			if snapshot.IsLoading {
				return c.JSON(http.StatusOK, map[string]string{"status": "loading"})
			}

			switch domain.Authorize(snapshot.CurrentIdentity, roles) {
			case domain.DecisionAllow:
				return next(c)

			case domain.DecisionDenyNoSession:
				// History-replacing redirect to the login
				// entry point, no back-navigation loop.
				return c.Redirect(http.StatusSeeOther, g.loginPath)

			default: // domain.DecisionDenyWrongRole
				g.metrics.RecordAccessDenied(c.Path())
				g.logger.Warn("access denied",
					"path", c.Path(),
					"identity_role", string(snapshot.CurrentIdentity.Role))

				remaining := g.mountCountdown()

				required := make([]string, 0, len(roles))
				for _, role := range roles {
					required = append(required, string(role))
				}

				return c.JSON(http.StatusForbidden, AccessDeniedResponse{
					Error:         "access denied",
					RequiredRoles: required,
					LogoutIn:      remaining,
				})
			}
		}
	}
}

// mountCountdown starts the forced logout countdown if none is already
// running. Re-evaluating the gate while one counts never resets it.
// Returns the seconds remaining.
func (g *NavigationGate) mountCountdown() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.countdown != nil && g.countdown.State() == domain.CountdownCounting {
		return g.countdown.Remaining()
	}

	countdown := domain.NewCountdown(g.countdownSeconds, g.countdownInterval, g.expire)
	g.countdown = countdown
	countdown.Start()

	g.logger.Info("forced logout countdown mounted", "seconds", g.countdownSeconds)
	return countdown.Remaining()
}

// expire is the countdown's single side effect: log out and leave the next
// gate evaluation to redirect to the login entry point.
func (g *NavigationGate) expire() {
	// The request that mounted the countdown is long gone by expiry.
	if err := g.sessions.Logout(context.Background()); err != nil {
		g.logger.Error("forced logout failed", "error", err)
	}

	g.metrics.RecordForcedLogout()
	g.logger.Info("forced logout completed")

	g.mu.Lock()
	g.countdown = nil
	g.mu.Unlock()
}

// LogoutNow is the user-initiated short circuit on the denied view. With a
// countdown mounted it triggers its expiry path; without one it logs out
// directly.
func (g *NavigationGate) LogoutNow(ctx context.Context) error {
	g.mu.Lock()
	countdown := g.countdown
	g.mu.Unlock()

	if countdown != nil && countdown.State() == domain.CountdownCounting {
		countdown.TriggerNow()
		return nil
	}

	return g.sessions.Logout(ctx)
}

// Dismiss stops the countdown's ticking when the denied view is left some
// other way. It never logs out: only expiry or the manual trigger does.
func (g *NavigationGate) Dismiss() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.countdown == nil {
		return
	}

	g.countdown.Stop()
	g.countdown = nil
	g.logger.Info("forced logout countdown dismissed")
}

// CountdownRemaining reports the seconds left on the active countdown, or
// zero when none is mounted.
func (g *NavigationGate) CountdownRemaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.countdown == nil {
		return 0
	}
	return g.countdown.Remaining()
}
