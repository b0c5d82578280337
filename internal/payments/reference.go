package payments

import (
	"fmt"
	"strconv"
	"strings"
)

// PaymentType distinguishes the two charges in a booking's life
type PaymentType string

const (
	TypeDeposit PaymentType = "deposit"
	TypeFinal   PaymentType = "final"
)

func (t PaymentType) IsValid() bool {
	return t == TypeDeposit || t == TypeFinal
}

// Reference correlates a gateway payment back to a booking. Its encoded
// form travels through Square as the reference_id and comes back on
// webhook events, so Encode and ParseReference must round-trip exactly.
type Reference struct {
	BookingID uint
	Type      PaymentType
}

// Encode renders the reference as "booking-<id>-<type>"
func (r Reference) Encode() string {
	return fmt.Sprintf("booking-%d-%s", r.BookingID, r.Type)
}

// ParseReference parses an encoded reference. Anything that Encode could
// not have produced is rejected, including extra segments, a zero or
// non-numeric id, and unknown payment types.
func ParseReference(s string) (Reference, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] != "booking" {
		return Reference{}, fmt.Errorf("malformed payment reference %q", s)
	}

	id, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil || id == 0 || strconv.FormatUint(id, 10) != parts[1] {
		return Reference{}, fmt.Errorf("malformed payment reference %q: bad booking id", s)
	}

	paymentType := PaymentType(parts[2])
	if !paymentType.IsValid() {
		return Reference{}, fmt.Errorf("malformed payment reference %q: unknown payment type", s)
	}

	return Reference{BookingID: uint(id), Type: paymentType}, nil
}
