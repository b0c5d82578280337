package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference_RoundTrip(t *testing.T) {
	refs := []Reference{
		{BookingID: 1, Type: TypeDeposit},
		{BookingID: 42, Type: TypeFinal},
		{BookingID: 4294967295, Type: TypeDeposit},
	}
	for _, ref := range refs {
		parsed, err := ParseReference(ref.Encode())
		require.NoError(t, err)
		assert.Equal(t, ref, parsed)
	}
}

func TestReference_Encode(t *testing.T) {
	assert.Equal(t, "booking-17-deposit", Reference{BookingID: 17, Type: TypeDeposit}.Encode())
	assert.Equal(t, "booking-17-final", Reference{BookingID: 17, Type: TypeFinal}.Encode())
}

func TestParseReference_RejectsMalformed(t *testing.T) {
	malformed := []string{
		"",
		"booking",
		"booking-12",
		"booking-12-deposit-extra",
		"order-12-deposit",
		"booking-abc-deposit",
		"booking-0-deposit",
		"booking--1-final",
		"booking-012-deposit", // would not round-trip
		"booking-12-refund",
		"booking-12-DEPOSIT",
	}
	for _, s := range malformed {
		_, err := ParseReference(s)
		assert.Error(t, err, "expected %q to be rejected", s)
	}
}
