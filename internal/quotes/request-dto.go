package quotes

// SubmitQuoteRequest is the body for POST /quotes
type SubmitQuoteRequest struct {
	CustomerName  string `json:"customerName" binding:"required,min=2,max=100"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	CustomerPhone string `json:"customerPhone" binding:"required,min=7,max=20"`
	VehicleType   string `json:"vehicleType" binding:"required"`
	ServiceLevel  string `json:"serviceLevel"`
	Message       string `json:"message" binding:"max=2000"`
}
