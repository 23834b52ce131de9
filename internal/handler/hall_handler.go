package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"halladmin/internal/errors"
	"halladmin/internal/model"
	"halladmin/internal/service"
)

// HallHandler bundles hall data HTTP handlers. The actor is re-read from the
// store on every call so revoked accounts lose access as soon as their
// record is deactivated, not when their token expires.
type HallHandler struct {
	hallSvc service.HallService
	userSvc service.UserService
}

// NewHallHandler creates a handler layer.
func NewHallHandler(hallSvc service.HallService, userSvc service.UserService) *HallHandler {
	return &HallHandler{hallSvc: hallSvc, userSvc: userSvc}
}

// CreateHallRecordRequest represents a new hall data record.
type CreateHallRecordRequest struct {
	EntryDate  string          `json:"entry_date" validate:"required,datetime=2006-01-02"`
	Attendance int             `json:"attendance" validate:"min=0"`
	Revenue    decimal.Decimal `json:"revenue"`
	Notes      string          `json:"notes"`
}

func (h *HallHandler) actor(c echo.Context) (*model.User, error) {
	claims, err := claimsFromContext(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	user, err := h.userSvc.GetUser(c.Request().Context(), id)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
	}
	if !user.IsActive {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "account disabled")
	}
	return user, nil
}

func hallParam(c echo.Context) (int, error) {
	hall, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid hall number")
	}
	return hall, nil
}

// ListRecords godoc
// @Summary List data records for a hall
// @Tags halls
// @Produce json
// @Param id path int true "Hall number (1-3)"
// @Success 200 {array} model.HallData
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /halls/{id}/records [get]
func (h *HallHandler) ListRecords(c echo.Context) error {
	hall, err := hallParam(c)
	if err != nil {
		return err
	}
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	records, err := h.hallSvc.ListRecords(c.Request().Context(), actor, hall)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, records)
}

// CreateRecord godoc
// @Summary Create a data record for a hall
// @Tags halls
// @Accept json
// @Produce json
// @Param id path int true "Hall number (1-3)"
// @Param request body CreateHallRecordRequest true "Record payload"
// @Success 201 {object} model.HallData
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /halls/{id}/records [post]
func (h *HallHandler) CreateRecord(c echo.Context) error {
	hall, err := hallParam(c)
	if err != nil {
		return err
	}
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	var req CreateHallRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid entry date")
	}

	record, err := h.hallSvc.CreateRecord(c.Request().Context(), actor, service.CreateHallRecordInput{
		HallNumber: hall,
		EntryDate:  entryDate,
		Attendance: req.Attendance,
		Revenue:    req.Revenue,
		Notes:      req.Notes,
	})
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, record)
}

// Stats godoc
// @Summary Per-hall record counts
// @Tags halls
// @Produce json
// @Param id path int true "Hall number (1-3)"
// @Success 200 {object} service.HallStats
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /halls/{id}/stats [get]
func (h *HallHandler) Stats(c echo.Context) error {
	hall, err := hallParam(c)
	if err != nil {
		return err
	}
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	stats, err := h.hallSvc.Stats(c.Request().Context(), actor, hall)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}
