package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testSignatureKey    = "test-signature-key"
	testNotificationURL = "https://example.com/api/payments/webhook"
)

func signBody(key, url string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(url))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestSignatureVerifier_Accepts(t *testing.T) {
	verifier := NewSignatureVerifier(testSignatureKey, testNotificationURL)
	body := []byte(`{"type":"payment.completed"}`)

	assert.True(t, verifier.Verify(signBody(testSignatureKey, testNotificationURL, body), body))
}

func TestSignatureVerifier_Rejects(t *testing.T) {
	verifier := NewSignatureVerifier(testSignatureKey, testNotificationURL)
	body := []byte(`{"type":"payment.completed"}`)

	// wrong key
	assert.False(t, verifier.Verify(signBody("other-key", testNotificationURL, body), body))
	// wrong URL baked into the signature
	assert.False(t, verifier.Verify(signBody(testSignatureKey, "https://evil.example/hook", body), body))
	// tampered body
	assert.False(t, verifier.Verify(signBody(testSignatureKey, testNotificationURL, body), []byte(`{"type":"payment.completed" }`)))
	// garbage signature
	assert.False(t, verifier.Verify("not-base64-at-all", body))
	assert.False(t, verifier.Verify("", body))
}
