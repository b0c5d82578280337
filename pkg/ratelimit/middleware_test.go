package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRateLimitType(t *testing.T) {
	cases := []struct {
		path string
		want RateLimitType
	}{
		{"/api/auth/login", RateLimitTypeAuth},
		{"/api/quotes", RateLimitTypeQuote},
		{"/api/bookings", RateLimitTypeBooking},
		{"/api/bookings/:id", RateLimitTypeBooking},
		{"/api/payments/create-deposit-payment", RateLimitTypeBooking},
		{"/api/payments/create-final-payment", RateLimitTypeBooking},
		{"/api/addons", RateLimitTypePublic},
		{"/api/addons/services/all", RateLimitTypePublic},
		{"/health", RateLimitTypeDefault},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, getRateLimitType(tc.path), "path %s", tc.path)
	}
}

func TestIsExemptPath(t *testing.T) {
	// gateway redeliveries must never be throttled
	assert.True(t, isExemptPath("/api/payments/webhook"))

	assert.False(t, isExemptPath("/api/payments/create-deposit-payment"))
	assert.False(t, isExemptPath("/api/bookings"))
	assert.False(t, isExemptPath("/api/quotes"))
}
