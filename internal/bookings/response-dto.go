package bookings

import "github.com/JadenRazo/showersautodetailing/internal/pricing"

// CreateBookingResponse is the body for a successful POST /bookings
type CreateBookingResponse struct {
	Success       bool                  `json:"success"`
	Booking       *Booking              `json:"booking"`
	TotalAmount   float64               `json:"totalAmount"`
	DepositAmount float64               `json:"depositAmount"`
	Addons        []pricing.AddonCharge `json:"addons"`
}
