package payments

import (
	"errors"
	"strings"
)

var (
	// ErrDepositAlreadyPaid rejects a second deposit charge
	ErrDepositAlreadyPaid = errors.New("deposit already paid")
	// ErrDepositNotPaid rejects a final charge before the deposit settled
	ErrDepositNotPaid = errors.New("deposit must be paid first")
	// ErrInvalidSignature means the webhook HMAC did not verify
	ErrInvalidSignature = errors.New("webhook signature verification failed")
	// ErrMalformedEvent means the webhook body was not a parseable event
	ErrMalformedEvent = errors.New("malformed webhook event")
)

// DeclinedError carries the gateway's reasons for rejecting a charge
type DeclinedError struct {
	Details []string
}

func (e *DeclinedError) Error() string {
	if len(e.Details) == 0 {
		return "payment declined"
	}
	return "payment declined: " + strings.Join(e.Details, ", ")
}
