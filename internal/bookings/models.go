package bookings

import (
	"time"
)

// Booking is the main booking record. Bookings are never deleted; the
// cancelled status is terminal instead of removal.
type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CustomerName  string    `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerEmail string    `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone string    `gorm:"type:varchar(20);not null" json:"customer_phone"`
	VehicleType   string    `gorm:"type:varchar(20);not null" json:"vehicle_type"`
	ServiceID     *uint     `gorm:"index" json:"service_id,omitempty"`
	PackageID     *uint     `gorm:"index" json:"package_id,omitempty"`
	BookingDate   time.Time `gorm:"type:date;not null;index" json:"booking_date"`
	BookingTime   string    `gorm:"type:varchar(10);not null" json:"booking_time"`
	Address       string    `gorm:"type:text;not null" json:"address"`
	Notes         string    `gorm:"type:text" json:"notes"`

	// Amounts are snapshotted at creation and never recomputed
	TotalAmount   float64 `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	DepositAmount float64 `gorm:"type:numeric(10,2);not null" json:"deposit_amount"`

	DepositPaid      bool    `gorm:"default:false" json:"deposit_paid"`
	DepositPaymentID *string `gorm:"type:varchar(100)" json:"deposit_payment_id,omitempty"`
	FinalPaymentID   *string `gorm:"type:varchar(100)" json:"final_payment_id,omitempty"`

	// Logical attempt counters backing deterministic idempotency keys
	DepositAttempt int `gorm:"default:0" json:"-"`
	FinalAttempt   int `gorm:"default:0" json:"-"`

	Status    Status    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Addons []BookingAddon `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;" json:"addons,omitempty"`
}

// BookingAddon joins a booking to a selected addon. PriceCharged is the
// price snapshotted at booking time and stays authoritative even if the
// catalog price changes later.
type BookingAddon struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BookingID    uint      `gorm:"index;not null" json:"booking_id"`
	AddonID      uint      `gorm:"index;not null" json:"addon_id"`
	PriceCharged float64   `gorm:"type:numeric(10,2);not null" json:"price_charged"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// TableName sets the table name for BookingAddon
func (BookingAddon) TableName() string {
	return "booking_addons"
}

// RemainingAmount is the balance due after the deposit
func (b *Booking) RemainingAmount() float64 {
	return b.TotalAmount - b.DepositAmount
}

// IsConfirmed reports whether the booking reached at least confirmed state
func (b *Booking) IsConfirmed() bool {
	switch b.Status {
	case StatusConfirmed, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
