package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carzone/internal/auth"
	"carzone/internal/query"
	"carzone/internal/service"
)

// UserHandler handles user profile and admin user management endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UserUpdateRequest is the partial payload for updating a user profile.
type UserUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Address     *string `json:"address" validate:"omitempty"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty"`
	Avatar      *string `json:"avatar" validate:"omitempty"`
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	user, err := h.svc.Get(c.Request().Context(), claims.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, Response{Message: "User found", Data: user})
}

// List godoc
// @Summary List users (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Creation date lower bound (YYYY-MM-DD)"
// @Param end_date query string false "Creation date upper bound (YYYY-MM-DD)"
// @Param name query string false "Substring name match"
// @Param page query int false "Page number, starting at 1"
// @Param per_page query int false "Page size"
// @Success 200 {object} ListResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	filter, err := query.ParseFilterSpec(c.QueryParams())
	if err != nil {
		return httpError(err)
	}
	page := query.ParsePageSpec(c.QueryParams())

	users, meta, err := h.svc.List(c.Request().Context(), filter, page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ListResponse{Message: "User list", Data: users, Meta: meta})
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, Response{Message: "User found", Data: user})
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Update(c.Request().Context(), id, service.UserInput{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Avatar:      req.Avatar,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, Response{Message: "User updated", Data: user})
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, Response{Message: "User deleted"})
}
