package handler

import (
	"errors"
	"net/http"

	"artmarket/internal/dto"
	"artmarket/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AuthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.authService.SignUp(ctx, req.Email, req.Password)

	var validationErr *service.ValidationError
	switch {
	case err == nil:
	case errors.Is(err, service.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, "email already registered")
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
	default:
		return err
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *AuthHandler) SignIn(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AuthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.authService.SignIn(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// SignOut is stateless with bearer tokens; the client drops its token. Kept
// as an endpoint so the storefront has a single auth surface.
func (h *AuthHandler) SignOut(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
