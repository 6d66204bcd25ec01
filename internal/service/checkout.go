package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"artmarket/internal/client"
	"artmarket/internal/model"
	"artmarket/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptState tracks where a checkout attempt sits in its lifecycle.
type AttemptState string

const (
	StateIdle                 AttemptState = "idle"
	StateAddressEntry         AttemptState = "address_entry"
	StateValidating           AttemptState = "validating"
	StateCreatingIntent       AttemptState = "creating_payment_intent"
	StateAwaitingConfirmation AttemptState = "awaiting_provider_confirmation"
	StatePersistingOrder      AttemptState = "persisting_order"
	StateDone                 AttemptState = "done"
)

// ProviderConfirmation is the callback payload from the gateway's checkout
// surface. Recorded verbatim on the order; the signature is not verified.
type ProviderConfirmation struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

// CheckoutAttempt is one in-flight purchase: the resolved painting, the
// submitted address and the gateway order awaiting confirmation.
type CheckoutAttempt struct {
	ID            string
	UserID        string
	Painting      model.Painting
	Address       model.ShippingAddress
	ProviderOrder client.ProviderOrder
	State         AttemptState
	StartedAt     time.Time
}

// SubmitResult carries what the checkout surface needs to open the gateway
// modal, including the prefill taken from the shipping form.
type SubmitResult struct {
	AttemptID     string `json:"attemptId"`
	OrderID       string `json:"orderId"`
	Amount        int64  `json:"amount"` // minor units, as returned by the gateway
	Currency      string `json:"currency"`
	PrefillName   string `json:"prefillName"`
	PrefillMobile string `json:"prefillMobile"`
}

// CheckoutService runs the purchase flow: validate address, create the
// gateway order, wait for the provider confirmation callback, persist the
// order record. One live attempt per shopper; the permit is held by the
// sequencer itself from Submit until Confirm, Dismiss or failure.
type CheckoutService interface {
	Submit(ctx context.Context, userID, paintingID string, address model.ShippingAddress) (*SubmitResult, error)
	Confirm(ctx context.Context, attemptID string, conf ProviderConfirmation) (*model.Order, error)
	Dismiss(attemptID string) error
	Attempt(attemptID string) (*CheckoutAttempt, error)
}

type checkoutServiceImpl struct {
	paintingRepo  repository.PaintingRepository
	orderRepo     repository.OrderRepository
	paymentClient client.PaymentClient
	now           func() time.Time

	mu       sync.Mutex
	attempts map[string]*CheckoutAttempt // attempt id -> live attempt
	inFlight map[string]string           // user id -> attempt id
}

func NewCheckoutService(
	paintingRepo repository.PaintingRepository,
	orderRepo repository.OrderRepository,
	paymentClient client.PaymentClient,
) CheckoutService {
	return &checkoutServiceImpl{
		paintingRepo:  paintingRepo,
		orderRepo:     orderRepo,
		paymentClient: paymentClient,
		now:           time.Now,
		attempts:      make(map[string]*CheckoutAttempt),
		inFlight:      make(map[string]string),
	}
}

func validateAddress(address model.ShippingAddress) error {
	// presence only; no phone or postal format checks
	fields := []struct {
		name  string
		value string
	}{
		{"name", address.Name},
		{"line1", address.Line1},
		{"city", address.City},
		{"state", address.State},
		{"zip", address.Zip},
		{"mobile", address.Mobile},
	}
	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

func (s *checkoutServiceImpl) Submit(ctx context.Context, userID, paintingID string, address model.ShippingAddress) (*SubmitResult, error) {
	if userID == "" {
		userID = model.GuestUserID
	}

	// Resolve the painting first: an absent artwork fails the whole flow
	// before the address is even looked at.
	painting, err := s.paintingRepo.FindByID(ctx, paintingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaintingNotFound
	}
	if err != nil {
		return nil, err
	}

	// Validation happens before the permit matters for ordering of errors,
	// but the permit must be taken before any gateway call so two racing
	// submissions cannot both create intents.
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	attempt := &CheckoutAttempt{
		ID:        uuid.NewString(),
		UserID:    userID,
		Painting:  *painting,
		Address:   address,
		State:     StateCreatingIntent,
		StartedAt: s.now(),
	}

	s.mu.Lock()
	if _, busy := s.inFlight[userID]; busy {
		s.mu.Unlock()
		return nil, ErrCheckoutInFlight
	}
	s.inFlight[userID] = attempt.ID
	s.attempts[attempt.ID] = attempt
	s.mu.Unlock()

	providerOrder, err := s.paymentClient.CreateOrder(ctx, painting.Price)
	if err != nil {
		s.release(attempt.ID)
		return nil, &PaymentIntentError{Err: err}
	}

	s.mu.Lock()
	attempt.ProviderOrder = *providerOrder
	attempt.State = StateAwaitingConfirmation
	s.mu.Unlock()

	// No timeout here: an abandoned gateway modal leaves the attempt parked
	// until the shopper dismisses it.
	return &SubmitResult{
		AttemptID:     attempt.ID,
		OrderID:       providerOrder.ID,
		Amount:        providerOrder.Amount,
		Currency:      providerOrder.Currency,
		PrefillName:   address.Name,
		PrefillMobile: address.Mobile,
	}, nil
}

func (s *checkoutServiceImpl) Confirm(ctx context.Context, attemptID string, conf ProviderConfirmation) (*model.Order, error) {
	s.mu.Lock()
	attempt, ok := s.attempts[attemptID]
	if !ok || attempt.State != StateAwaitingConfirmation {
		s.mu.Unlock()
		return nil, ErrAttemptNotFound
	}
	attempt.State = StatePersistingOrder
	s.mu.Unlock()

	order := &model.Order{
		ID:                uuid.NewString(),
		PaintingID:        attempt.Painting.ID,
		PaintingTitle:     attempt.Painting.Title,
		PaintingImageURL:  attempt.Painting.ImageURL,
		Price:             attempt.Painting.Price,
		ShippingAddress:   attempt.Address,
		Status:            model.OrderStatusPaid,
		CreatedAt:         s.now().UnixMilli(),
		UserID:            attempt.UserID,
		PaymentID:         conf.PaymentID,
		ProviderOrderID:   conf.OrderID,
		ProviderSignature: conf.Signature,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Failure exit back to Idle: drop the attempt and free the permit.
		// The charge already went through, so the error type must be
		// unmistakably different from a pre-payment one.
		s.release(attemptID)
		return nil, &PostPaymentPersistenceError{Err: err}
	}

	s.mu.Lock()
	attempt.State = StateDone
	s.mu.Unlock()
	s.release(attemptID)

	return order, nil
}

// Dismiss is the shopper closing the gateway modal without paying. The
// attempt returns to idle with no error.
func (s *checkoutServiceImpl) Dismiss(attemptID string) error {
	s.mu.Lock()
	_, ok := s.attempts[attemptID]
	s.mu.Unlock()
	if !ok {
		return ErrAttemptNotFound
	}
	s.release(attemptID)
	return nil
}

func (s *checkoutServiceImpl) Attempt(attemptID string) (*CheckoutAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[attemptID]
	if !ok {
		return nil, ErrAttemptNotFound
	}

	cp := *attempt
	return &cp, nil
}

func (s *checkoutServiceImpl) release(attemptID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[attemptID]
	if !ok {
		return
	}
	delete(s.attempts, attemptID)
	if s.inFlight[attempt.UserID] == attemptID {
		delete(s.inFlight, attempt.UserID)
	}
}
