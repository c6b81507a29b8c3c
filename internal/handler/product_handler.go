package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"carzone/internal/query"
	"carzone/internal/service"
)

// productSetFilters names the id-set query parameters the product listing
// accepts. They double as the filtered columns.
var productSetFilters = []string{"id_fuel", "id_mark", "id_type", "id_transmission"}

// ProductHandler handles product endpoints.
type ProductHandler struct {
	svc service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// ProductCreateRequest is the payload for creating a product.
type ProductCreateRequest struct {
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description" validate:"required"`
	Price          decimal.Decimal `json:"price" validate:"required"`
	Seat           int             `json:"seat" validate:"required,min=1"`
	Image          string          `json:"image" validate:"omitempty"`
	FuelID         uint            `json:"id_fuel" validate:"required"`
	MarkID         uint            `json:"id_mark" validate:"required"`
	TypeID         uint            `json:"id_type" validate:"required"`
	TransmissionID uint            `json:"id_transmission" validate:"required"`
}

// ProductUpdateRequest is the partial payload for updating a product.
type ProductUpdateRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1"`
	Description    *string          `json:"description" validate:"omitempty,min=1"`
	Price          *decimal.Decimal `json:"price" validate:"omitempty"`
	Seat           *int             `json:"seat" validate:"omitempty,min=1"`
	Image          *string          `json:"image" validate:"omitempty"`
	FuelID         *uint            `json:"id_fuel" validate:"omitempty"`
	MarkID         *uint            `json:"id_mark" validate:"omitempty"`
	TypeID         *uint            `json:"id_type" validate:"omitempty"`
	TransmissionID *uint            `json:"id_transmission" validate:"omitempty"`
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductCreateRequest true "Product payload"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.svc.Create(c.Request().Context(), service.ProductInput{
		Name:           &req.Name,
		Description:    &req.Description,
		Price:          &req.Price,
		Seat:           &req.Seat,
		Image:          &req.Image,
		FuelID:         &req.FuelID,
		MarkID:         &req.MarkID,
		TypeID:         &req.TypeID,
		TransmissionID: &req.TransmissionID,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, Response{Message: "Product created", Data: product})
}

// List godoc
// @Summary List products with filters and pagination
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Creation date lower bound (YYYY-MM-DD)"
// @Param end_date query string false "Creation date upper bound (YYYY-MM-DD)"
// @Param name query string false "Substring name match"
// @Param id_fuel query string false "Fuel id list, e.g. [1,2]"
// @Param id_mark query string false "Mark id list"
// @Param id_type query string false "Type id list"
// @Param id_transmission query string false "Transmission id list"
// @Param page query int false "Page number, starting at 1"
// @Param per_page query int false "Page size"
// @Success 200 {object} ListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter, err := query.ParseFilterSpec(c.QueryParams(), productSetFilters...)
	if err != nil {
		return httpError(err)
	}
	page := query.ParsePageSpec(c.QueryParams())

	products, meta, err := h.svc.List(c.Request().Context(), filter, page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ListResponse{Message: "Product list", Data: products, Meta: meta})
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	product, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, Response{Message: "Product found", Data: product})
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.svc.Update(c.Request().Context(), id, service.ProductInput{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Seat:           req.Seat,
		Image:          req.Image,
		FuelID:         req.FuelID,
		MarkID:         req.MarkID,
		TypeID:         req.TypeID,
		TransmissionID: req.TransmissionID,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, Response{Message: "Product updated", Data: product})
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, Response{Message: "Product deleted"})
}
