package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carzone/internal/service"
)

// FilterHandler serves the combined filter options endpoint.
type FilterHandler struct {
	svc service.FilterService
}

// NewFilterHandler creates a new filter handler.
func NewFilterHandler(svc service.FilterService) *FilterHandler {
	return &FilterHandler{svc: svc}
}

// Options godoc
// @Summary List every reference entity for filter dropdowns
// @Tags filters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /filters [get]
func (h *FilterHandler) Options(c echo.Context) error {
	options, err := h.svc.Options(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, Response{Message: "Filters found", Data: options})
}
