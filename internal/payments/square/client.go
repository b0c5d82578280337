// Package square is a minimal REST client for the Square Payments API,
// covering only the payment-creation call this service needs.
package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	productionBaseURL = "https://connect.squareup.com"
	sandboxBaseURL    = "https://connect.squareupsandbox.com"

	apiVersion = "2024-06-04"

	// PaymentStatusCompleted is the settled state; anything else is
	// pending, approved-but-uncaptured, or failed.
	PaymentStatusCompleted = "COMPLETED"
)

// Money is an amount in the currency's smallest denomination (cents for USD)
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreatePaymentRequest mirrors the Square CreatePayment body
type CreatePaymentRequest struct {
	SourceID          string `json:"source_id"`
	IdempotencyKey    string `json:"idempotency_key"`
	AmountMoney       Money  `json:"amount_money"`
	LocationID        string `json:"location_id,omitempty"`
	ReferenceID       string `json:"reference_id,omitempty"`
	Note              string `json:"note,omitempty"`
	BuyerEmailAddress string `json:"buyer_email_address,omitempty"`
}

// Payment is the subset of the Square payment object we read back
type Payment struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	ReferenceID string `json:"reference_id"`
	AmountMoney Money  `json:"amount_money"`
}

// ErrorDetail is one entry of Square's errors array
type ErrorDetail struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
	Field    string `json:"field,omitempty"`
}

// APIError is a non-2xx response from Square
type APIError struct {
	StatusCode int
	Errors     []ErrorDetail
}

func (e *APIError) Error() string {
	return fmt.Sprintf("square: status %d: %s", e.StatusCode, strings.Join(e.Details(), ", "))
}

// Details returns the human-readable detail strings of each error entry
func (e *APIError) Details() []string {
	details := make([]string, 0, len(e.Errors))
	for _, detail := range e.Errors {
		if detail.Detail != "" {
			details = append(details, detail.Detail)
		} else {
			details = append(details, detail.Code)
		}
	}
	return details
}

type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// NewClient creates a Square client. environment selects the sandbox
// host unless it is exactly "production".
func NewClient(accessToken, environment string) *Client {
	baseURL := sandboxBaseURL
	if environment == "production" {
		baseURL = productionBaseURL
	}
	return &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     baseURL,
		accessToken: accessToken,
	}
}

type paymentEnvelope struct {
	Payment *Payment      `json:"payment"`
	Errors  []ErrorDetail `json:"errors"`
}

// CreatePayment charges a tokenized source. Replays with the same
// idempotency key return the original payment rather than charging twice.
func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("square: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("square: build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Square-Version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("square: create payment: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("square: read response: %w", err)
	}

	var envelope paymentEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("square: decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Errors: envelope.Errors}
	}
	if envelope.Payment == nil {
		return nil, fmt.Errorf("square: response missing payment (status %d)", resp.StatusCode)
	}

	return envelope.Payment, nil
}
