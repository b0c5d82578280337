package bookings

// CreateBookingRequest is the body for POST /bookings. Field names follow
// the public API contract (camelCase).
type CreateBookingRequest struct {
	CustomerName  string `json:"customerName" binding:"required,min=2,max=100"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	CustomerPhone string `json:"customerPhone" binding:"required,min=7,max=20"`
	VehicleType   string `json:"vehicleType" binding:"required"`
	ServiceID     *uint  `json:"serviceId"`
	PackageID     *uint  `json:"packageId"`
	AddonIDs      []uint `json:"addonIds"`
	BookingDate   string `json:"bookingDate" binding:"required"`
	BookingTime   string `json:"bookingTime" binding:"required,timeslot"`
	Address       string `json:"address" binding:"required"`
	Notes         string `json:"notes"`
}

// UpdateStatusRequest is the body for PATCH /bookings/:id/status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
