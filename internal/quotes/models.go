package quotes

import "time"

// QuoteRequest is a customer inquiry with a price estimated from the
// published price sheet rather than the live catalog
type QuoteRequest struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CustomerName   string    `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerEmail  string    `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone  string    `gorm:"type:varchar(20);not null" json:"customer_phone"`
	VehicleType    string    `gorm:"type:varchar(20);not null" json:"vehicle_type"`
	ServiceLevel   string    `gorm:"type:varchar(30)" json:"service_level"`
	EstimatedPrice float64   `gorm:"type:decimal(10,2);not null" json:"estimated_price"`
	Message        string    `gorm:"type:text" json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName sets the table name for QuoteRequest
func (QuoteRequest) TableName() string {
	return "quote_requests"
}
