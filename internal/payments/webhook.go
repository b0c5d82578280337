package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
)

// EventPaymentCompleted is the only event type this service acts on
const EventPaymentCompleted = "payment.completed"

// WebhookEvent is the subset of a Square event envelope we read
type WebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			Payment struct {
				ID          string `json:"id"`
				Status      string `json:"status"`
				ReferenceID string `json:"reference_id"`
			} `json:"payment"`
		} `json:"object"`
	} `json:"data"`
}

// SignatureVerifier checks Square webhook signatures: HMAC-SHA256 over
// the notification URL concatenated with the raw body, base64-encoded.
// The URL must match the one registered with Square byte for byte.
type SignatureVerifier struct {
	key             []byte
	notificationURL string
}

func NewSignatureVerifier(signatureKey, notificationURL string) *SignatureVerifier {
	return &SignatureVerifier{
		key:             []byte(signatureKey),
		notificationURL: notificationURL,
	}
}

// Verify reports whether signature matches the expected HMAC for body.
// Comparison is constant-time.
func (v *SignatureVerifier) Verify(signature string, body []byte) bool {
	mac := hmac.New(sha256.New, v.key)
	mac.Write([]byte(v.notificationURL))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}

func parseEvent(body []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, ErrMalformedEvent
	}
	return &event, nil
}
