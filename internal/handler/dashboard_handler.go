package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"halladmin/internal/errors"
	"halladmin/internal/service"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

// DashboardHandler serves the dashboard landing page data: headline counts
// and the recent activity feed.
type DashboardHandler struct {
	statsSvc service.StatsService
	audit    service.AuditRecorder
}

// NewDashboardHandler creates a handler layer.
func NewDashboardHandler(statsSvc service.StatsService, audit service.AuditRecorder) *DashboardHandler {
	return &DashboardHandler{statsSvc: statsSvc, audit: audit}
}

// Stats godoc
// @Summary Dashboard headline counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardStats
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.statsSvc.DashboardStats(c.Request().Context())
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}

// Activity godoc
// @Summary Recent audit log entries
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum entries to return" default(50) maximum(500)
// @Success 200 {array} model.ActivityLog
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /activity [get]
func (h *DashboardHandler) Activity(c echo.Context) error {
	limit := defaultActivityLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	entries, err := h.audit.Recent(c.Request().Context(), limit)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, entries)
}
