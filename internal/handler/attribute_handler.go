package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"carzone/internal/query"
	"carzone/internal/service"
)

// AttributeHandler serves CRUD endpoints for one vehicle reference entity.
type AttributeHandler[T any] struct {
	svc    service.AttributeService[T]
	entity string
}

// NewAttributeHandler creates a handler for one reference entity. The entity
// name shows up in response messages ("Fuel created").
func NewAttributeHandler[T any](svc service.AttributeService[T], entity string) *AttributeHandler[T] {
	return &AttributeHandler[T]{svc: svc, entity: entity}
}

// AttributeCreateRequest is the payload for creating a reference entity.
type AttributeCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// AttributeUpdateRequest is the partial payload for updating one.
type AttributeUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
}

func (h *AttributeHandler[T]) Create(c echo.Context) error {
	var req AttributeCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entity, err := h.svc.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, Response{Message: h.entity + " created", Data: entity})
}

// List serves the filtered, paginated listing. Date range and name filters
// are shared by every reference entity.
func (h *AttributeHandler[T]) List(c echo.Context) error {
	filter, err := query.ParseFilterSpec(c.QueryParams())
	if err != nil {
		return httpError(err)
	}
	page := query.ParsePageSpec(c.QueryParams())

	entities, meta, err := h.svc.List(c.Request().Context(), filter, page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ListResponse{Message: h.entity + " list", Data: entities, Meta: meta})
}

func (h *AttributeHandler[T]) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	entity, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, Response{Message: h.entity + " found", Data: entity})
}

func (h *AttributeHandler[T]) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req AttributeUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entity, err := h.svc.Update(c.Request().Context(), id, service.AttributeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, Response{Message: h.entity + " updated", Data: entity})
}

func (h *AttributeHandler[T]) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, Response{Message: h.entity + " deleted"})
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
