package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"carzone/internal/auth"
	"carzone/internal/config"
	"carzone/internal/handler"
	"carzone/internal/model"
)

// Handlers bundles every handler the router wires.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Product      *handler.ProductHandler
	Filter       *handler.FilterHandler
	Fuel         *handler.AttributeHandler[model.Fuel]
	Mark         *handler.AttributeHandler[model.Mark]
	Type         *handler.AttributeHandler[model.VehicleType]
	Transmission *handler.AttributeHandler[model.Transmission]
}

// route declares one protected operation together with the roles allowed to
// invoke it. An empty role set means any authenticated user.
type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
	roles   []auth.Role
}

// Register wires routes and middleware. Every route under the API prefix
// except registration and login sits behind the identity guard; the role
// guard runs after it, driven by the static table below.
func Register(e *echo.Echo, cfg *config.Config, jwtService *auth.JWTService, h Handlers) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(cfg.APIPrefix)

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	secured := api.Group("", auth.IdentityGuard(jwtService))

	admin := []auth.Role{auth.RoleAdmin}
	routes := []route{
		{http.MethodGet, "/users/me", h.User.Me, nil},
		{http.MethodGet, "/users", h.User.List, admin},
		{http.MethodGet, "/users/:id", h.User.Get, admin},
		{http.MethodPatch, "/users/:id", h.User.Update, admin},
		{http.MethodDelete, "/users/:id", h.User.Delete, admin},

		{http.MethodGet, "/filters", h.Filter.Options, nil},

		{http.MethodPost, "/products", h.Product.Create, nil},
		{http.MethodGet, "/products", h.Product.List, nil},
		{http.MethodGet, "/products/:id", h.Product.Get, nil},
		{http.MethodPatch, "/products/:id", h.Product.Update, nil},
		{http.MethodDelete, "/products/:id", h.Product.Delete, nil},
	}
	routes = append(routes, attributeRoutes(h.Fuel, "/fuels")...)
	routes = append(routes, attributeRoutes(h.Mark, "/marks")...)
	routes = append(routes, attributeRoutes(h.Type, "/types")...)
	routes = append(routes, attributeRoutes(h.Transmission, "/transmissions")...)

	for _, r := range routes {
		secured.Add(r.method, r.path, r.handler, auth.RequireRoles(r.roles...))
	}
}

// attributeRoutes declares the CRUD table for one reference entity. All of
// them are available to any authenticated user.
func attributeRoutes[T any](h *handler.AttributeHandler[T], prefix string) []route {
	return []route{
		{http.MethodPost, prefix, h.Create, nil},
		{http.MethodGet, prefix, h.List, nil},
		{http.MethodGet, prefix + "/:id", h.Get, nil},
		{http.MethodPatch, prefix + "/:id", h.Update, nil},
		{http.MethodDelete, prefix + "/:id", h.Delete, nil},
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
