package auth

import (
	"fmt"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "carzone/internal/errors"
)

// ClaimsContextKey is where the identity guard stores the verified claims.
const ClaimsContextKey = "user"

// IdentityGuard returns middleware that authenticates every request it wraps.
// A missing header, malformed framing, bad signature and expired token all
// produce the same generic 401 so callers learn nothing about why
// verification failed. Verified claims are attached to the request context.
func IdentityGuard(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: ClaimsContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "unauthenticated",
				Code:  "UNAUTHENTICATED",
			})
		},
	})
}

// RequireRoles returns middleware that allows the request only when the
// authenticated role is one of the given roles. With no roles it passes any
// authenticated request through. It must run after IdentityGuard; without
// claims in context it rejects rather than guessing.
func RequireRoles(roles ...Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(roles) == 0 {
				return next(c)
			}
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "unauthenticated",
					Code:  "UNAUTHENTICATED",
				})
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			// The caller is already authenticated here, so the denial can be
			// explicit about which role fell short.
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: fmt.Sprintf("role %q does not have permission for this operation", claims.Role),
				Code:  "FORBIDDEN",
			})
		}
	}
}

// ClaimsFromContext returns the claims attached by IdentityGuard.
func ClaimsFromContext(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ClaimsContextKey).(*Claims)
	return claims, ok
}
