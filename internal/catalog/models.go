package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Service is a detailing service with fixed per-vehicle pricing.
// Catalog rows are owned by the admin tooling; this service reads them only.
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug        string    `gorm:"type:varchar(100);uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	SedanPrice  float64   `gorm:"type:numeric(10,2);not null" json:"sedan_price"`
	SUVPrice    float64   `gorm:"column:suv_price;type:numeric(10,2);not null" json:"suv_price"`
	TruckPrice  float64   `gorm:"type:numeric(10,2);not null" json:"truck_price"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Package is the legacy pricing entity: a base price scaled by a
// per-vehicle multiplier map.
type Package struct {
	ID                 uint          `gorm:"primaryKey" json:"id"`
	Name               string        `gorm:"type:varchar(100);not null" json:"name"`
	Description        string        `gorm:"type:text" json:"description"`
	BasePrice          float64       `gorm:"type:numeric(10,2);not null" json:"base_price"`
	VehicleMultipliers MultiplierMap `gorm:"type:jsonb" json:"vehicle_multipliers"`
	IsActive           bool          `gorm:"default:true" json:"is_active"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// Addon is an optional, separately priced service item, priced per vehicle
// type. Note the commercial price column is named commercial_price here,
// while Service uses truck_price for the same vehicle class.
type Addon struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug            string    `gorm:"type:varchar(100);uniqueIndex" json:"slug"`
	Category        string    `gorm:"type:varchar(50);index" json:"category"`
	Description     string    `gorm:"type:text" json:"description"`
	SedanPrice      float64   `gorm:"type:numeric(10,2);not null" json:"sedan_price"`
	SUVPrice        float64   `gorm:"column:suv_price;type:numeric(10,2);not null" json:"suv_price"`
	CommercialPrice float64   `gorm:"type:numeric(10,2);not null" json:"commercial_price"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	IsStandalone    bool      `gorm:"default:false" json:"is_standalone"`
	SortOrder       int       `gorm:"default:0" json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ServiceIncludedAddon marks an addon as bundled into a service's price
type ServiceIncludedAddon struct {
	ServiceID uint `gorm:"primaryKey" json:"service_id"`
	AddonID   uint `gorm:"primaryKey" json:"addon_id"`
}

// ServiceAvailableAddon marks an addon as recommended alongside a service.
// Services with no rows here offer every active addon not already included.
type ServiceAvailableAddon struct {
	ServiceID uint `gorm:"primaryKey" json:"service_id"`
	AddonID   uint `gorm:"primaryKey" json:"addon_id"`
}

// Setting is a key-value configuration row (e.g. deposit_percentage)
type Setting struct {
	Key       string    `gorm:"primaryKey;type:varchar(100)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingDepositPercentage is the settings key holding the deposit fraction
const SettingDepositPercentage = "deposit_percentage"

// MultiplierMap maps vehicle type names to price multipliers, stored as JSONB
type MultiplierMap map[string]float64

// Value implements driver.Valuer for JSONB storage
func (m MultiplierMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB retrieval
func (m *MultiplierMap) Scan(value interface{}) error {
	if value == nil {
		*m = MultiplierMap{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for MultiplierMap: %T", value)
	}

	return json.Unmarshal(data, m)
}

// TableName sets the table name for Service
func (Service) TableName() string {
	return "services"
}

// TableName sets the table name for Package
func (Package) TableName() string {
	return "packages"
}

// TableName sets the table name for Addon
func (Addon) TableName() string {
	return "addons"
}

// TableName sets the table name for Setting
func (Setting) TableName() string {
	return "settings"
}

// TableName sets the table name for ServiceIncludedAddon
func (ServiceIncludedAddon) TableName() string {
	return "service_included_addons"
}

// TableName sets the table name for ServiceAvailableAddon
func (ServiceAvailableAddon) TableName() string {
	return "service_available_addons"
}
