package pricing

import (
	"errors"
	"strings"
)

// VehicleType enumerates the vehicle classes the business prices against
type VehicleType string

const (
	VehicleSedan      VehicleType = "sedan"
	VehicleSUV        VehicleType = "suv"
	VehicleCommercial VehicleType = "commercial"
)

// ErrInvalidVehicleType is returned for values outside the enumerated set
var ErrInvalidVehicleType = errors.New("invalid vehicle type")

// ParseVehicleType normalizes and validates a vehicle type string.
// Input is case-insensitive; the canonical form is lowercase.
func ParseVehicleType(value string) (VehicleType, error) {
	switch VehicleType(strings.ToLower(strings.TrimSpace(value))) {
	case VehicleSedan:
		return VehicleSedan, nil
	case VehicleSUV:
		return VehicleSUV, nil
	case VehicleCommercial:
		return VehicleCommercial, nil
	}
	return "", ErrInvalidVehicleType
}

// String returns the string representation of VehicleType
func (v VehicleType) String() string {
	return string(v)
}
