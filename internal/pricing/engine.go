package pricing

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/JadenRazo/showersautodetailing/internal/catalog"
)

var (
	// ErrSelectionRequired is returned when neither a service nor a package is selected
	ErrSelectionRequired = errors.New("service or package ID required")
	// ErrServiceNotFound is returned when the selected service does not exist
	ErrServiceNotFound = errors.New("service not found")
	// ErrPackageNotFound is returned when the selected package does not exist
	ErrPackageNotFound = errors.New("package not found")
)

// Selection identifies what is being priced: a service (preferred) or a
// legacy package. Exactly one should be set; the service wins when both are.
type Selection struct {
	ServiceID *uint
	PackageID *uint
}

// AddonCharge is the price of one addon for the quoted vehicle type
type AddonCharge struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Price float64 `json:"price"`
}

// Quote is the result of pricing a selection plus addons for a vehicle.
// Amounts carry full float precision; rounding happens at the API boundary.
type Quote struct {
	VehicleType VehicleType   `json:"vehicle_type"`
	ServiceName string        `json:"service_name"`
	BasePrice   float64       `json:"base_price"`
	Addons      []AddonCharge `json:"addons"`
	AddonTotal  float64       `json:"addon_total"`
	Total       float64       `json:"total"`
}

// Catalog is the read surface the engine prices against
type Catalog interface {
	GetService(ctx context.Context, id uint) (*catalog.Service, error)
	GetPackage(ctx context.Context, id uint) (*catalog.Package, error)
	GetActiveAddons(ctx context.Context, ids []uint) ([]catalog.Addon, error)
	GetSetting(ctx context.Context, key string) (string, error)
}

// Engine derives prices from the catalog. It holds no mutable state.
type Engine struct {
	catalog         Catalog
	fallbackDeposit float64
}

// NewEngine creates a pricing engine. fallbackDeposit is used when the
// settings table has no deposit_percentage row.
func NewEngine(cat Catalog, fallbackDeposit float64) *Engine {
	return &Engine{
		catalog:         cat,
		fallbackDeposit: fallbackDeposit,
	}
}

// Quote prices a selection plus addons for a vehicle type.
// Unknown or inactive addon ids are excluded from the total rather than
// rejected; the catalog may retire addons while a client still lists them.
func (e *Engine) Quote(ctx context.Context, vehicleType VehicleType, selection Selection, addonIDs []uint) (*Quote, error) {
	quote := &Quote{VehicleType: vehicleType}

	switch {
	case selection.ServiceID != nil:
		svc, err := e.catalog.GetService(ctx, *selection.ServiceID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return nil, ErrServiceNotFound
			}
			return nil, err
		}
		quote.ServiceName = svc.Name
		quote.BasePrice = servicePriceFor(svc, vehicleType)

	case selection.PackageID != nil:
		pkg, err := e.catalog.GetPackage(ctx, *selection.PackageID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return nil, ErrPackageNotFound
			}
			return nil, err
		}
		quote.ServiceName = pkg.Name
		quote.BasePrice = packagePriceFor(pkg, vehicleType)

	default:
		return nil, ErrSelectionRequired
	}

	addons, addonTotal, err := e.addonCharges(ctx, vehicleType, addonIDs)
	if err != nil {
		return nil, err
	}

	quote.Addons = addons
	quote.AddonTotal = addonTotal
	quote.Total = quote.BasePrice + addonTotal
	return quote, nil
}

// CalculateAddons prices a set of addons for a vehicle type without a
// service or package selection.
func (e *Engine) CalculateAddons(ctx context.Context, vehicleType VehicleType, addonIDs []uint) ([]AddonCharge, float64, error) {
	return e.addonCharges(ctx, vehicleType, addonIDs)
}

func (e *Engine) addonCharges(ctx context.Context, vehicleType VehicleType, addonIDs []uint) ([]AddonCharge, float64, error) {
	if len(addonIDs) == 0 {
		return nil, 0, nil
	}

	addons, err := e.catalog.GetActiveAddons(ctx, addonIDs)
	if err != nil {
		return nil, 0, err
	}

	var charges []AddonCharge
	var total float64
	for _, addon := range addons {
		price := addonPriceFor(&addon, vehicleType)
		total += price
		charges = append(charges, AddonCharge{
			ID:    addon.ID,
			Name:  addon.Name,
			Slug:  addon.Slug,
			Price: price,
		})
	}

	return charges, total, nil
}

// DepositPercentage resolves the deposit fraction, preferring the settings
// table and falling back to the configured default.
func (e *Engine) DepositPercentage(ctx context.Context) float64 {
	value, err := e.catalog.GetSetting(ctx, catalog.SettingDepositPercentage)
	if err == nil {
		if pct, parseErr := strconv.ParseFloat(value, 64); parseErr == nil && pct > 0 {
			return pct
		}
	}
	return e.fallbackDeposit
}

// servicePriceFor selects the service price column for a vehicle type.
// Commercial vehicles price off the truck column; that column-name
// asymmetry against Addon.CommercialPrice is historical and load-bearing
// for existing pricing, so both commercial paths route through here.
func servicePriceFor(svc *catalog.Service, vehicleType VehicleType) float64 {
	switch vehicleType {
	case VehicleSedan:
		return svc.SedanPrice
	case VehicleSUV:
		return svc.SUVPrice
	default: // commercial
		return svc.TruckPrice
	}
}

// packagePriceFor prices a legacy package: base times the vehicle
// multiplier, defaulting to 1.0 when the map has no entry.
func packagePriceFor(pkg *catalog.Package, vehicleType VehicleType) float64 {
	multiplier, ok := pkg.VehicleMultipliers[string(vehicleType)]
	if !ok {
		multiplier = 1.0
	}
	return pkg.BasePrice * multiplier
}

// addonPriceFor selects the addon price column for a vehicle type
func addonPriceFor(addon *catalog.Addon, vehicleType VehicleType) float64 {
	switch vehicleType {
	case VehicleSedan:
		return addon.SedanPrice
	case VehicleSUV:
		return addon.SUVPrice
	default: // commercial
		return addon.CommercialPrice
	}
}

// Round2 rounds an amount to 2 decimals. Used only at the API boundary;
// internal arithmetic keeps full precision.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
