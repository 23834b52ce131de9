package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"halladmin/internal/errors"
	"halladmin/internal/service"
)

// UserHandler bundles user administration HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents a user creation request. The PIN confirmation
// is checked here so a mismatch never reaches the store.
type CreateUserRequest struct {
	Username   string `json:"username" validate:"required"`
	PIN        string `json:"pin" validate:"required,len=4,numeric"`
	ConfirmPIN string `json:"confirm_pin" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=admin supervisor agent"`
	HallNumber *int   `json:"hall_number" validate:"omitempty,min=1,max=3"`
	IsActive   bool   `json:"is_active"`
}

// SetActiveRequest represents an activation toggle request.
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// CreateUser godoc
// @Summary Create a user account
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User payload"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.PIN != req.ConfirmPIN {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "PINs do not match",
			Code:  "PIN_MISMATCH",
		})
	}

	claims, err := claimsFromContext(c)
	if err != nil {
		return err
	}
	creatorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}

	user, err := h.svc.CreateUser(c.Request().Context(), service.CreateUserInput{
		Username:   req.Username,
		PIN:        req.PIN,
		Role:       req.Role,
		HallNumber: req.HallNumber,
		IsActive:   req.IsActive,
	}, creatorID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, user)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// SetActive godoc
// @Summary Enable or disable a user account
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body SetActiveRequest true "Activation state"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/active [patch]
func (h *UserHandler) SetActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims, err := claimsFromContext(c)
	if err != nil {
		return err
	}
	actorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}

	user, err := h.svc.SetActive(c.Request().Context(), id, *req.Active, actorID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}
