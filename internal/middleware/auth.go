package middleware

import (
	"net/http"
	"strings"

	"artmarket/internal/model"
	"artmarket/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// Identity resolves who is calling: a valid bearer token sets the user id and
// role, anything else is a guest. Never rejects — storefront routes work
// signed out.
func Identity(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextUserID, model.GuestUserID)
			c.Set(ContextRole, "")

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				if claims, err := authService.ParseToken(token); err == nil {
					c.Set(ContextUserID, claims.Sub)
					c.Set(ContextRole, claims.Role)
				}
			}
			return next(c)
		}
	}
}

// RequireAdmin gates back-office routes. Runs after Identity.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if role != model.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

// RequireUser gates routes that need any signed-in account.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(ContextUserID).(string)
			if userID == "" || userID == model.GuestUserID {
				return echo.NewHTTPError(http.StatusUnauthorized, "sign in required")
			}
			return next(c)
		}
	}
}

// Subject is the like/checkout identity: the user id when signed in, else the
// caller-supplied device id header, else "guest".
func Subject(c echo.Context) string {
	userID, _ := c.Get(ContextUserID).(string)
	if userID != "" && userID != model.GuestUserID {
		return userID
	}
	if device := c.Request().Header.Get("X-Device-Id"); device != "" {
		return device
	}
	return model.GuestUserID
}

// UserID returns the signed-in user id or "guest".
func UserID(c echo.Context) string {
	userID, _ := c.Get(ContextUserID).(string)
	if userID == "" {
		return model.GuestUserID
	}
	return userID
}
