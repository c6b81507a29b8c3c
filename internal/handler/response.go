package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "carzone/internal/errors"
	"carzone/internal/query"
)

// Response is the envelope for single-object endpoints.
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse is the envelope for list endpoints, carrying page metadata.
type ListResponse struct {
	Message string         `json:"message"`
	Data    interface{}    `json:"data"`
	Meta    query.PageMeta `json:"meta"`
}

// httpError translates a service error into an echo HTTP error with the
// standard body shape.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
