package bookings

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	// Core booking operations
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id uint) (*Booking, error)
	List(ctx context.Context) ([]Booking, error)

	// Administrative status override
	UpdateStatus(ctx context.Context, id uint, status Status) error

	// Payment correlation
	SetDepositPaymentID(ctx context.Context, id uint, paymentID string) error
	SetFinalPaymentID(ctx context.Context, id uint, paymentID string) error
	IncrementDepositAttempt(ctx context.Context, id uint) error
	IncrementFinalAttempt(ctx context.Context, id uint) error

	// Conditional lifecycle transitions. The returned bool reports whether
	// the row actually changed; a false result means the booking was
	// already past the source state (or absent) and the call is a no-op.
	ConfirmDeposit(ctx context.Context, id uint) (bool, error)
	Complete(ctx context.Context, id uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts the booking and its addon rows. GORM creates the
// association rows inside the same transaction as the booking, so a
// failed addon insert rolls the whole booking back.
func (r *repository) Create(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Addons").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) List(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Preload("Addons").
		Order("booking_date DESC, booking_time DESC").
		Find(&bookings).Error
	return bookings, err
}

// UpdateStatus sets the status unconditionally (administrative override)
func (r *repository) UpdateStatus(ctx context.Context, id uint, status Status) error {
	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) SetDepositPaymentID(ctx context.Context, id uint, paymentID string) error {
	return r.setColumn(ctx, id, "deposit_payment_id", paymentID)
}

func (r *repository) SetFinalPaymentID(ctx context.Context, id uint, paymentID string) error {
	return r.setColumn(ctx, id, "final_payment_id", paymentID)
}

func (r *repository) setColumn(ctx context.Context, id uint, column string, value interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) IncrementDepositAttempt(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Update("deposit_attempt", gorm.Expr("deposit_attempt + 1")).Error
}

func (r *repository) IncrementFinalAttempt(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Update("final_attempt", gorm.Expr("final_attempt + 1")).Error
}

// ConfirmDeposit marks the deposit paid and the booking confirmed, but
// only when the booking is still pending. The status guard makes the
// transition atomic under concurrent delivery of the synchronous
// completion path and the webhook for the same payment.
func (r *repository) ConfirmDeposit(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]interface{}{
			"deposit_paid": true,
			"status":       StatusConfirmed,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Complete marks the booking completed when the final payment settles.
// Guarded the same way as ConfirmDeposit; replayed webhooks hit zero rows.
func (r *repository) Complete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ? AND status IN ?", id, []Status{StatusConfirmed, StatusInProgress}).
		Updates(map[string]interface{}{
			"status":     StatusCompleted,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
