package handler

import (
	"errors"
	"net/http"

	"artmarket/internal/dto"
	"artmarket/internal/middleware"
	"artmarket/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// Submit starts a checkout attempt: validates the address, creates the
// gateway order and returns what the payment modal needs.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.checkoutService.Submit(ctx, middleware.UserID(c), c.Param("id"), req.Address)

	var validationErr *service.ValidationError
	var intentErr *service.PaymentIntentError
	switch {
	case err == nil:
	case errors.Is(err, service.ErrPaintingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "painting not found")
	case errors.Is(err, service.ErrCheckoutInFlight):
		return echo.NewHTTPError(http.StatusConflict, "a checkout is already in progress")
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &intentErr):
		// no charge happened; the shopper may retry
		return echo.NewHTTPError(http.StatusBadGateway, "could not initiate payment, please try again")
	default:
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Confirm is the provider success callback: persists the paid order. A
// persistence failure here is after the charge, so the message tells the
// shopper to contact support instead of inviting a blind retry.
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	order, err := h.checkoutService.Confirm(ctx, req.AttemptID, service.ProviderConfirmation{
		PaymentID: req.RazorpayPaymentID,
		OrderID:   req.RazorpayOrderID,
		Signature: req.RazorpaySignature,
	})

	var persistErr *service.PostPaymentPersistenceError
	switch {
	case err == nil:
	case errors.Is(err, service.ErrAttemptNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "checkout attempt not found")
	case errors.As(err, &persistErr):
		return echo.NewHTTPError(http.StatusInternalServerError,
			"payment succeeded but we could not save your order, please contact support")
	default:
		return err
	}

	return c.JSON(http.StatusCreated, order)
}

// Dismiss is the shopper closing the payment modal; the attempt is dropped
// without error.
func (h *CheckoutHandler) Dismiss(c echo.Context) error {
	var req dto.DismissRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.checkoutService.Dismiss(req.AttemptID); err != nil {
		if errors.Is(err, service.ErrAttemptNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "checkout attempt not found")
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
