package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"artmarket/internal/model"
	"artmarket/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCheckoutService struct {
	submitResult *service.SubmitResult
	submitErr    error

	order      *model.Order
	confirmErr error
	dismissErr error

	confirmedAttemptID string
	confirmedConf      service.ProviderConfirmation
	dismissedAttemptID string
}

func (s *stubCheckoutService) Submit(_ context.Context, _, _ string, _ model.ShippingAddress) (*service.SubmitResult, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return s.submitResult, nil
}

func (s *stubCheckoutService) Confirm(_ context.Context, attemptID string, conf service.ProviderConfirmation) (*model.Order, error) {
	s.confirmedAttemptID = attemptID
	s.confirmedConf = conf
	if s.confirmErr != nil {
		return nil, s.confirmErr
	}
	return s.order, nil
}

func (s *stubCheckoutService) Dismiss(attemptID string) error {
	s.dismissedAttemptID = attemptID
	return s.dismissErr
}

func (s *stubCheckoutService) Attempt(string) (*service.CheckoutAttempt, error) {
	return nil, service.ErrAttemptNotFound
}

// checkoutRequest routes the request through a real echo instance with the
// production route table, so path and body handling are exercised as served.
func checkoutRequest(t *testing.T, svc service.CheckoutService, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewCheckoutHandler(svc)

	e := echo.New()
	checkout := e.Group("/api/checkout")
	checkout.POST("/:id", h.Submit)
	checkout.POST("/confirm", h.Confirm)
	checkout.POST("/dismiss", h.Dismiss)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestConfirmReadsAttemptFromBody(t *testing.T) {
	svc := &stubCheckoutService{order: &model.Order{ID: "ord_1", Status: model.OrderStatusPaid}}

	rec := checkoutRequest(t, svc, http.MethodPost, "/api/checkout/confirm",
		`{"attempt_id":"att_1","razorpay_payment_id":"pay_1","razorpay_order_id":"order_1","razorpay_signature":"sig_1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "att_1", svc.confirmedAttemptID)
	assert.Equal(t, "pay_1", svc.confirmedConf.PaymentID)
	assert.Equal(t, "order_1", svc.confirmedConf.OrderID)
	assert.Equal(t, "sig_1", svc.confirmedConf.Signature)

	var got model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ord_1", got.ID)
}

func TestDismissReadsAttemptFromBody(t *testing.T) {
	svc := &stubCheckoutService{}

	rec := checkoutRequest(t, svc, http.MethodPost, "/api/checkout/dismiss",
		`{"attempt_id":"att_1"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "att_1", svc.dismissedAttemptID)
}

func TestConfirmUnknownAttempt(t *testing.T) {
	svc := &stubCheckoutService{confirmErr: service.ErrAttemptNotFound}

	rec := checkoutRequest(t, svc, http.MethodPost, "/api/checkout/confirm",
		`{"attempt_id":"nope"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConfirmPersistenceFailurePointsToSupport(t *testing.T) {
	svc := &stubCheckoutService{confirmErr: &service.PostPaymentPersistenceError{}}

	rec := checkoutRequest(t, svc, http.MethodPost, "/api/checkout/confirm",
		`{"attempt_id":"att_1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "contact support")
}

func TestSubmitErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing address field", &service.ValidationError{Field: "name"}, http.StatusBadRequest},
		{"unknown painting", service.ErrPaintingNotFound, http.StatusNotFound},
		{"checkout already running", service.ErrCheckoutInFlight, http.StatusConflict},
		{"gateway down", &service.PaymentIntentError{}, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubCheckoutService{submitErr: tc.err}

			rec := checkoutRequest(t, svc, http.MethodPost, "/api/checkout/p1",
				`{"address":{"name":"A","line1":"1 St","city":"C","state":"S","zip":"00000","mobile":"555"}}`)

			assert.Equal(t, tc.code, rec.Code)
		})
	}
}
