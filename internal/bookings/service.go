package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/JadenRazo/showersautodetailing/internal/notifications"
	"github.com/JadenRazo/showersautodetailing/internal/pricing"
	"github.com/JadenRazo/showersautodetailing/pkg/logger"
)

// Service interface defines the contract for booking business logic,
// including the lifecycle transitions driven by payment settlement.
type Service interface {
	Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error)
	Get(ctx context.Context, id uint) (*Booking, error)
	List(ctx context.Context) ([]Booking, error)

	// SetStatus is the administrative override: any enumerated status is
	// accepted regardless of current state. It bypasses the payment-driven
	// guards deliberately (manual correction escape hatch).
	SetStatus(ctx context.Context, id uint, status string) (*Booking, error)

	// Confirm and Complete are idempotent: re-invoking on a booking that
	// already passed the target state is a no-op and does not re-notify.
	// The returned bool reports whether the transition applied this call.
	Confirm(ctx context.Context, id uint) (bool, error)
	Complete(ctx context.Context, id uint) (bool, error)

	// Payment correlation, used by the payment orchestrator
	SetDepositPayment(ctx context.Context, id uint, paymentID string) error
	SetFinalPayment(ctx context.Context, id uint, paymentID string) error
	IncrementDepositAttempt(ctx context.Context, id uint) error
	IncrementFinalAttempt(ctx context.Context, id uint) error
}

type service struct {
	repo     Repository
	engine   *pricing.Engine
	notifier notifications.Notifier
	logger   *logger.Logger
}

// NewService creates a new booking service instance
func NewService(repo Repository, engine *pricing.Engine, notifier notifications.Notifier, log *logger.Logger) Service {
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		repo:     repo,
		engine:   engine,
		notifier: notifier,
		logger:   log,
	}
}

// Create prices the request, snapshots the totals and the deposit
// percentage effective right now, and persists the booking with its
// addon rows.
func (s *service) Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	vehicleType, err := pricing.ParseVehicleType(req.VehicleType)
	if err != nil {
		return nil, err
	}

	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, ErrInvalidBookingDate
	}

	quote, err := s.engine.Quote(ctx, vehicleType, pricing.Selection{
		ServiceID: req.ServiceID,
		PackageID: req.PackageID,
	}, req.AddonIDs)
	if err != nil {
		return nil, err
	}

	depositPercentage := s.engine.DepositPercentage(ctx)
	totalAmount := pricing.Round2(quote.Total)
	depositAmount := pricing.Round2(totalAmount * depositPercentage)

	booking := &Booking{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		VehicleType:   string(vehicleType),
		ServiceID:     req.ServiceID,
		PackageID:     req.PackageID,
		BookingDate:   bookingDate,
		BookingTime:   req.BookingTime,
		Address:       req.Address,
		Notes:         req.Notes,
		TotalAmount:   totalAmount,
		DepositAmount: depositAmount,
		Status:        StatusPending,
	}

	for _, charge := range quote.Addons {
		booking.Addons = append(booking.Addons, BookingAddon{
			AddonID:      charge.ID,
			PriceCharged: charge.Price,
		})
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.logger.LogBookingCreated(ctx, booking.ID, booking.VehicleType, totalAmount, depositAmount)

	s.notifier.Notify(ctx, notifications.KindNewBooking, map[string]interface{}{
		"booking_id":     booking.ID,
		"customer_name":  booking.CustomerName,
		"customer_email": booking.CustomerEmail,
		"customer_phone": booking.CustomerPhone,
		"vehicle_type":   booking.VehicleType,
		"service_name":   quote.ServiceName,
		"booking_date":   req.BookingDate,
		"booking_time":   booking.BookingTime,
		"total_amount":   totalAmount,
		"deposit_amount": depositAmount,
		"addons":         quote.Addons,
	})

	return &CreateBookingResponse{
		Success:       true,
		Booking:       booking,
		TotalAmount:   totalAmount,
		DepositAmount: depositAmount,
		Addons:        quote.Addons,
	}, nil
}

// Get retrieves a booking by ID
func (s *service) Get(ctx context.Context, id uint) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all bookings, newest appointments first
func (s *service) List(ctx context.Context) ([]Booking, error) {
	return s.repo.List(ctx)
}

func (s *service) SetStatus(ctx context.Context, id uint, status string) (*Booking, error) {
	target := Status(status)
	if !target.IsValid() {
		return nil, ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// Confirm applies a verified deposit payment. The conditional update in
// the repository decides whether anything changed; only a real transition
// notifies, so duplicate deliveries stay silent.
func (s *service) Confirm(ctx context.Context, id uint) (bool, error) {
	applied, err := s.repo.ConfirmDeposit(ctx, id)
	if err != nil || !applied {
		return false, err
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return true, err
	}

	s.notifier.Notify(ctx, notifications.KindDepositPaid, map[string]interface{}{
		"booking_id":     booking.ID,
		"customer_name":  booking.CustomerName,
		"deposit_amount": booking.DepositAmount,
		"booking_date":   booking.BookingDate.Format("2006-01-02"),
		"booking_time":   booking.BookingTime,
	})
	return true, nil
}

// Complete applies a verified final payment. Same idempotency contract as
// Confirm.
func (s *service) Complete(ctx context.Context, id uint) (bool, error) {
	applied, err := s.repo.Complete(ctx, id)
	if err != nil || !applied {
		return false, err
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return true, err
	}

	s.notifier.Notify(ctx, notifications.KindPaymentCompleted, map[string]interface{}{
		"booking_id":    booking.ID,
		"customer_name": booking.CustomerName,
		"total_amount":  booking.TotalAmount,
		"booking_date":  booking.BookingDate.Format("2006-01-02"),
	})
	return true, nil
}

func (s *service) SetDepositPayment(ctx context.Context, id uint, paymentID string) error {
	return s.repo.SetDepositPaymentID(ctx, id, paymentID)
}

func (s *service) SetFinalPayment(ctx context.Context, id uint, paymentID string) error {
	return s.repo.SetFinalPaymentID(ctx, id, paymentID)
}

func (s *service) IncrementDepositAttempt(ctx context.Context, id uint) error {
	return s.repo.IncrementDepositAttempt(ctx, id)
}

func (s *service) IncrementFinalAttempt(ctx context.Context, id uint) error {
	return s.repo.IncrementFinalAttempt(ctx, id)
}
