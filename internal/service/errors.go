package service

import (
	"errors"
	"fmt"
)

var (
	// ErrPaintingNotFound ends a checkout before any address or payment work.
	ErrPaintingNotFound = errors.New("painting not found")

	// ErrCheckoutInFlight rejects a second submission while the shopper
	// already has a live attempt. The permit lives in the sequencer, not in
	// whatever UI called it.
	ErrCheckoutInFlight = errors.New("checkout already in flight")

	// ErrAttemptNotFound means the attempt id does not match a live attempt.
	ErrAttemptNotFound = errors.New("checkout attempt not found")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports a missing required field. Recoverable: the shopper
// corrects the form and resubmits.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// PaymentIntentError means the gateway order could not be created. No charge
// happened, the shopper may retry.
type PaymentIntentError struct {
	Err error
}

func (e *PaymentIntentError) Error() string {
	return fmt.Sprintf("create payment intent: %v", e.Err)
}

func (e *PaymentIntentError) Unwrap() error { return e.Err }

// PostPaymentPersistenceError means the order write failed after the charge
// succeeded. This is deliberately a distinct type from PaymentIntentError:
// money has moved and our records may be missing, so callers must surface it
// with support-contact wording, not a generic retry message.
type PostPaymentPersistenceError struct {
	Err error
}

func (e *PostPaymentPersistenceError) Error() string {
	return fmt.Sprintf("order persisted after payment failed: %v", e.Err)
}

func (e *PostPaymentPersistenceError) Unwrap() error { return e.Err }
