package payments

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/JadenRazo/showersautodetailing/internal/bookings"
	"github.com/JadenRazo/showersautodetailing/internal/payments/square"
	"github.com/JadenRazo/showersautodetailing/pkg/logger"
)

// idempotencyNamespace seeds the deterministic v5 idempotency keys sent
// to Square. Changing it would invalidate replay protection for charges
// already in flight.
var idempotencyNamespace = uuid.MustParse("9b2f1c64-5a6e-4d0b-8f3a-2e7c90d41b58")

// Gateway is the payment-creation surface of the Square client
type Gateway interface {
	CreatePayment(ctx context.Context, req square.CreatePaymentRequest) (*square.Payment, error)
}

// PaymentResult is what the API returns after a charge attempt
type PaymentResult struct {
	PaymentID string  `json:"paymentId"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
}

// Service orchestrates charges against the gateway and drives the
// booking lifecycle from their outcomes.
type Service interface {
	CreateDepositPayment(ctx context.Context, bookingID uint, sourceID string) (*PaymentResult, error)
	CreateFinalPayment(ctx context.Context, bookingID uint, sourceID string) (*PaymentResult, error)

	// HandleWebhook verifies and applies one raw webhook delivery.
	// Replays and events for unknown references are absorbed silently.
	HandleWebhook(ctx context.Context, signature string, body []byte) error
}

type Config struct {
	LocationID string
	Currency   string
}

type service struct {
	gateway  Gateway
	bookings bookings.Service
	verifier *SignatureVerifier
	config   Config
	logger   *logger.Logger
}

// NewService creates the payment orchestrator. All collaborators are
// injected; nothing here reaches for process globals.
func NewService(gateway Gateway, bookingService bookings.Service, verifier *SignatureVerifier, config Config, log *logger.Logger) Service {
	if config.Currency == "" {
		config.Currency = "USD"
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		gateway:  gateway,
		bookings: bookingService,
		verifier: verifier,
		config:   config,
		logger:   log,
	}
}

func (s *service) CreateDepositPayment(ctx context.Context, bookingID uint, sourceID string) (*PaymentResult, error) {
	booking, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.DepositPaid {
		return nil, ErrDepositAlreadyPaid
	}

	ref := Reference{BookingID: booking.ID, Type: TypeDeposit}
	payment, err := s.charge(ctx, chargeParams{
		booking:  booking,
		ref:      ref,
		amount:   booking.DepositAmount,
		attempt:  booking.DepositAttempt,
		sourceID: sourceID,
		note:     fmt.Sprintf("Deposit for booking #%d", booking.ID),
	})
	if err != nil {
		return nil, err
	}

	// Record the correlation before acting on the status; if this write
	// fails the charge still happened, so log and carry on.
	if err := s.bookings.SetDepositPayment(ctx, booking.ID, payment.ID); err != nil {
		s.logger.WithError(err).Error("failed to persist deposit payment id",
			"booking_id", booking.ID, "payment_id", payment.ID)
	}

	s.logger.LogPaymentCreated(ctx, booking.ID, string(TypeDeposit), payment.ID, payment.Status)

	if payment.Status == square.PaymentStatusCompleted {
		if _, err := s.bookings.Confirm(ctx, booking.ID); err != nil {
			return nil, err
		}
	}

	return &PaymentResult{
		PaymentID: payment.ID,
		Status:    payment.Status,
		Amount:    booking.DepositAmount,
	}, nil
}

func (s *service) CreateFinalPayment(ctx context.Context, bookingID uint, sourceID string) (*PaymentResult, error) {
	booking, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.DepositPaid {
		return nil, ErrDepositNotPaid
	}

	remaining := booking.RemainingAmount()
	ref := Reference{BookingID: booking.ID, Type: TypeFinal}
	payment, err := s.charge(ctx, chargeParams{
		booking:  booking,
		ref:      ref,
		amount:   remaining,
		attempt:  booking.FinalAttempt,
		sourceID: sourceID,
		note:     fmt.Sprintf("Final payment for booking #%d", booking.ID),
	})
	if err != nil {
		return nil, err
	}

	if err := s.bookings.SetFinalPayment(ctx, booking.ID, payment.ID); err != nil {
		s.logger.WithError(err).Error("failed to persist final payment id",
			"booking_id", booking.ID, "payment_id", payment.ID)
	}

	s.logger.LogPaymentCreated(ctx, booking.ID, string(TypeFinal), payment.ID, payment.Status)

	if payment.Status == square.PaymentStatusCompleted {
		if _, err := s.bookings.Complete(ctx, booking.ID); err != nil {
			return nil, err
		}
	}

	return &PaymentResult{
		PaymentID: payment.ID,
		Status:    payment.Status,
		Amount:    remaining,
	}, nil
}

type chargeParams struct {
	booking  *bookings.Booking
	ref      Reference
	amount   float64
	attempt  int
	sourceID string
	note     string
}

// charge sends one CreatePayment call. The idempotency key derives from
// the reference plus the stored attempt counter, so a client retrying a
// timed-out request replays the same charge instead of double-billing.
// The counter advances only after the gateway rejects the attempt.
func (s *service) charge(ctx context.Context, p chargeParams) (*square.Payment, error) {
	payment, err := s.gateway.CreatePayment(ctx, square.CreatePaymentRequest{
		SourceID:       p.sourceID,
		IdempotencyKey: idempotencyKey(p.ref, p.attempt),
		AmountMoney: square.Money{
			Amount:   toCents(p.amount),
			Currency: s.config.Currency,
		},
		LocationID:        s.config.LocationID,
		ReferenceID:       p.ref.Encode(),
		Note:              p.note,
		BuyerEmailAddress: p.booking.CustomerEmail,
	})
	if err != nil {
		var apiErr *square.APIError
		if errors.As(err, &apiErr) {
			if incErr := s.incrementAttempt(ctx, p.ref); incErr != nil {
				s.logger.WithError(incErr).Error("failed to advance payment attempt",
					"booking_id", p.ref.BookingID, "payment_type", string(p.ref.Type))
			}
			return nil, &DeclinedError{Details: apiErr.Details()}
		}
		return nil, err
	}
	return payment, nil
}

func (s *service) incrementAttempt(ctx context.Context, ref Reference) error {
	if ref.Type == TypeDeposit {
		return s.bookings.IncrementDepositAttempt(ctx, ref.BookingID)
	}
	return s.bookings.IncrementFinalAttempt(ctx, ref.BookingID)
}

func (s *service) HandleWebhook(ctx context.Context, signature string, body []byte) error {
	if !s.verifier.Verify(signature, body) {
		return ErrInvalidSignature
	}

	event, err := parseEvent(body)
	if err != nil {
		return err
	}
	if event.Type != EventPaymentCompleted {
		return nil
	}

	ref, err := ParseReference(event.Data.Object.Payment.ReferenceID)
	if err != nil {
		// Not one of ours; other location activity arrives here too
		s.logger.Warn("ignoring webhook with foreign reference",
			"reference_id", event.Data.Object.Payment.ReferenceID)
		return nil
	}

	var applied bool
	switch ref.Type {
	case TypeDeposit:
		applied, err = s.bookings.Confirm(ctx, ref.BookingID)
	case TypeFinal:
		applied, err = s.bookings.Complete(ctx, ref.BookingID)
	}
	if err != nil {
		if errors.Is(err, bookings.ErrNotFound) {
			s.logger.Warn("webhook references unknown booking", "booking_id", ref.BookingID)
			return nil
		}
		return err
	}

	s.logger.LogWebhookApplied(ctx, ref.BookingID, string(ref.Type), applied)
	return nil
}

// idempotencyKey derives the v5 UUID Square sees for a given attempt
func idempotencyKey(ref Reference, attempt int) string {
	return uuid.NewSHA1(idempotencyNamespace, []byte(fmt.Sprintf("%s-%d", ref.Encode(), attempt))).String()
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
