package dto

import "artmarket/internal/model"

type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateOrderRequest is the body of POST /api/create-order. Amount is in
// major currency units; the gateway receives minor units.
type CreateOrderRequest struct {
	Amount int64 `json:"amount"`
}

type CheckoutRequest struct {
	Address model.ShippingAddress `json:"address"`
}

// ConfirmRequest carries the gateway confirmation callback payload plus the
// attempt it belongs to. The field names mirror the gateway's own.
type ConfirmRequest struct {
	AttemptID         string `json:"attempt_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

type DismissRequest struct {
	AttemptID string `json:"attempt_id"`
}

type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
