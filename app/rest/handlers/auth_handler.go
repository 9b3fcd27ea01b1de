package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"club-auth/app/domain"
	"club-auth/app/port"
	custommiddleware "club-auth/app/rest/middleware"
	"club-auth/app/utils/validator"
)

// AuthHandler handles session HTTP requests
type AuthHandler struct {
	sessions  port.SessionUsecase
	gate      *custommiddleware.NavigationGate
	validator *validator.Validator
	logger    *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions port.SessionUsecase, gate *custommiddleware.NavigationGate, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions:  sessions,
		gate:      gate,
		validator: validator.New(),
		logger:    logger,
	}
}

// Request/Response types
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

type SessionResponse struct {
	IsAuthenticated bool             `json:"is_authenticated"`
	IsLoading       bool             `json:"is_loading"`
	Identity        *domain.Identity `json:"identity,omitempty"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Login validates credentials and establishes the session
// @Summary Log in
// @Description Validate email, password, and requested role, then establish the session
// @Tags session
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind login request", "error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request format",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation failed",
				Code:    "VALIDATION_ERROR",
				Details: valErr.Errors,
			})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "validation failed",
			Code:  "VALIDATION_ERROR",
		})
	}

	identity, err := h.sessions.Login(ctx, req.Email, req.Password, req.Role)
	if err != nil {
		h.logger.Warn("login failed",
			"email", req.Email,
			"requested_role", req.Role,
			"ip", c.RealIP())
		return h.handleSessionError(c, err)
	}

	h.logger.Info("login completed",
		"identity_id", identity.ID,
		"role", string(identity.Role))

	return c.JSON(http.StatusOK, SessionResponse{
		IsAuthenticated: true,
		Identity:        identity,
	})
}

// Logout tears down the session
// @Summary Log out
// @Description Clear the in-memory session and delete the persisted record
// @Tags session
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.sessions.Logout(ctx); err != nil {
		h.logger.Error("logout failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "logout failed",
			Code:  domain.ErrCodeInternal,
		})
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "logout successful",
	})
}

// GetSession reports the current session snapshot
// @Summary Get session
// @Description Return the current session snapshot with role predicates
// @Tags session
// @Accept json
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /v1/auth/session [get]
func (h *AuthHandler) GetSession(c echo.Context) error {
	snapshot := h.sessions.Snapshot()

	return c.JSON(http.StatusOK, SessionResponse{
		IsAuthenticated: snapshot.IsAuthenticated,
		IsLoading:       snapshot.IsLoading,
		Identity:        snapshot.CurrentIdentity,
	})
}

// UpdateProfile merges profile fields into the active session's identity
// @Summary Update profile
// @Description Merge the provided fields into the current identity and re-persist the session
// @Tags session
// @Accept json
// @Produce json
// @Param body body domain.ProfileUpdate true "Profile fields to update"
// @Success 200 {object} domain.Identity
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var update domain.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		h.logger.Error("failed to bind profile update", "error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request format",
			Code:  "INVALID_REQUEST",
		})
	}

	identity, err := h.sessions.UpdateProfile(ctx, update)
	if err != nil {
		return h.handleSessionError(c, err)
	}

	h.logger.Info("profile updated", "identity_id", identity.ID)
	return c.JSON(http.StatusOK, identity)
}

// ChangePassword validates a password change request
// @Summary Change password
// @Description Validate the current and new password lengths
// @Tags session
// @Accept json
// @Produce json
// @Param body body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	ctx := c.Request().Context()

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind password change request", "error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request format",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := h.sessions.ChangePassword(ctx, req.CurrentPassword, req.NewPassword); err != nil {
		return h.handleSessionError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "password changed",
	})
}

// DeniedLogoutNow short-circuits an active forced-logout countdown
// @Summary Log out from the denied view
// @Description Trigger the forced-logout countdown immediately instead of waiting for expiry
// @Tags session
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/auth/denied/logout [post]
func (h *AuthHandler) DeniedLogoutNow(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.gate.LogoutNow(ctx); err != nil {
		h.logger.Error("denied-view logout failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "logout failed",
			Code:  domain.ErrCodeInternal,
		})
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "logout successful",
	})
}

// DeniedDismiss stops the countdown when the denied view is left
// @Summary Dismiss the denied view
// @Description Stop the forced-logout countdown without logging out
// @Tags session
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /v1/auth/denied [delete]
func (h *AuthHandler) DeniedDismiss(c echo.Context) error {
	h.gate.Dismiss()

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "countdown dismissed",
	})
}

// LoginPage is the unauthenticated entry point that gate redirects land on
// @Summary Login page
// @Tags session
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "please log in",
	})
}

// handleSessionError maps domain errors to HTTP responses
func (h *AuthHandler) handleSessionError(c echo.Context, err error) error {
	code := domain.CodeForError(err)

	var mismatch *domain.RoleMismatchError
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: err.Error(),
			Code:  code,
		})
	case errors.As(err, &mismatch):
		// The message names the account's actual role for display.
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Error: mismatch.Error(),
			Code:  code,
		})
	case errors.Is(err, domain.ErrProfileUpdateFailed):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: err.Error(),
			Code:  code,
		})
	case errors.Is(err, domain.ErrCurrentPasswordIncorrect),
		errors.Is(err, domain.ErrPasswordTooShort):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  code,
		})
	default:
		h.logger.Error("unhandled session error", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "internal error",
			Code:  domain.ErrCodeInternal,
		})
	}
}
