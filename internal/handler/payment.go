package handler

import (
	"log/slog"
	"net/http"

	"artmarket/internal/client"
	"artmarket/internal/dto"

	"github.com/labstack/echo/v4"
)

// PaymentHandler exposes the raw payment-intent boundary consumed by the
// storefront: POST /api/create-order.
type PaymentHandler struct {
	paymentClient client.PaymentClient
}

func NewPaymentHandler(paymentClient client.PaymentClient) *PaymentHandler {
	return &PaymentHandler{
		paymentClient: paymentClient,
	}
}

func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Amount is required"})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Amount is required"})
	}

	order, err := h.paymentClient.CreateOrder(ctx, req.Amount)
	if err != nil {
		slog.Error("create gateway order", "error", err)
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create order"})
	}

	return c.JSON(http.StatusOK, order)
}
