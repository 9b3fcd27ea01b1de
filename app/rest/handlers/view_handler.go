package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"club-auth/app/port"
)

// ViewHandler serves the protected views behind the navigation gate
type ViewHandler struct {
	sessions port.SessionUsecase
	logger   *slog.Logger
}

// NewViewHandler creates a new view handler
func NewViewHandler(sessions port.SessionUsecase, logger *slog.Logger) *ViewHandler {
	return &ViewHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// Dashboard is the landing view for any authenticated identity
// @Summary Dashboard
// @Tags views
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /v1/dashboard [get]
func (h *ViewHandler) Dashboard(c echo.Context) error {
	snapshot := h.sessions.Snapshot()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"view":     "dashboard",
		"identity": snapshot.CurrentIdentity,
		"capabilities": map[string]bool{
			"is_admin":       h.sessions.IsAdmin(),
			"is_club_leader": h.sessions.IsClubLeader(),
			"is_member":      h.sessions.IsMember(),
		},
	})
}

// AdminPanel is the admin-only view
// @Summary Admin panel
// @Tags views
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /v1/admin [get]
func (h *ViewHandler) AdminPanel(c echo.Context) error {
	snapshot := h.sessions.Snapshot()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"view":     "admin_panel",
		"identity": snapshot.CurrentIdentity,
	})
}

// ClubManagement is the view for club leaders and vice leaders
// @Summary Club management
// @Tags views
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /v1/clubs/manage [get]
func (h *ViewHandler) ClubManagement(c echo.Context) error {
	snapshot := h.sessions.Snapshot()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"view":     "club_management",
		"identity": snapshot.CurrentIdentity,
	})
}
