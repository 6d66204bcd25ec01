package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"artmarket/internal/config"
)

// PaymentClient creates payment intents ("orders" in gateway terms) against
// the Razorpay orders API. Amounts are taken in major currency units and
// converted to minor units here, the one place the *100 happens.
type PaymentClient interface {
	CreateOrder(ctx context.Context, amount int64) (*ProviderOrder, error)
}

// ProviderOrder is the gateway's order object as returned to the storefront.
type ProviderOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type paymentClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	keyID      string
	keySecret  string
	currency   string
}

func NewPaymentClient(cfg *config.Razorpay) PaymentClient {
	return &paymentClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
		currency:   cfg.Currency,
	}
}

func (c *paymentClientImpl) CreateOrder(ctx context.Context, amount int64) (*ProviderOrder, error) {
	payload := map[string]interface{}{
		// minor currency units (paise for INR); no rounding applies since
		// catalog prices are whole major units
		"amount":   amount * 100,
		"currency": c.currency,
		"receipt":  fmt.Sprintf("receipt_order_%d", time.Now().UnixMilli()),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/v1/orders",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("payment gateway error %d: %s", resp.StatusCode, string(b))
	}

	var result ProviderOrder
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}

	return &result, nil
}
