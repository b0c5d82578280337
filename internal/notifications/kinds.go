package notifications

import "fmt"

// Kind identifies a notification event. The set is closed: every kind has
// exactly one subject builder below, and Dispatcher refuses anything else.
type Kind string

const (
	KindQuoteRequest     Kind = "quote_request"
	KindNewBooking       Kind = "new_booking"
	KindDepositPaid      Kind = "deposit_paid"
	KindPaymentCompleted Kind = "payment_completed"
)

// IsValid checks if the notification kind is one of the enumerated values
func (k Kind) IsValid() bool {
	switch k {
	case KindQuoteRequest, KindNewBooking, KindDepositPaid, KindPaymentCompleted:
		return true
	}
	return false
}

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// Subject builds the subject line for a notification of this kind.
func (k Kind) Subject(payload map[string]interface{}) string {
	switch k {
	case KindQuoteRequest:
		return fmt.Sprintf("New Quote Request from %v", payload["customer_name"])
	case KindNewBooking:
		return fmt.Sprintf("New Booking #%v from %v", payload["booking_id"], payload["customer_name"])
	case KindDepositPaid:
		return fmt.Sprintf("Deposit Paid - Booking #%v", payload["booking_id"])
	case KindPaymentCompleted:
		return fmt.Sprintf("Payment Completed - Booking #%v", payload["booking_id"])
	}
	return ""
}
