package pricing

// ServiceLevel enumerates the quick-quote service levels
type ServiceLevel string

const (
	LevelExterior     ServiceLevel = "exterior"
	LevelInterior     ServiceLevel = "interior"
	LevelDeepInterior ServiceLevel = "deep-interior"
	LevelPackageDeal  ServiceLevel = "package-deal"
	LevelDisaster     ServiceLevel = "disaster"
)

// estimateTable holds the fixed quick-quote prices per service level and
// vehicle type. These track the published price sheet, not the catalog.
var estimateTable = map[ServiceLevel]map[VehicleType]float64{
	LevelExterior:     {VehicleSedan: 50, VehicleSUV: 60, VehicleCommercial: 80},
	LevelInterior:     {VehicleSedan: 120, VehicleSUV: 160, VehicleCommercial: 200},
	LevelDeepInterior: {VehicleSedan: 200, VehicleSUV: 240, VehicleCommercial: 280},
	LevelPackageDeal:  {VehicleSedan: 150, VehicleSUV: 200, VehicleCommercial: 250},
	LevelDisaster:     {VehicleSedan: 230, VehicleSUV: 270, VehicleCommercial: 310},
}

// EstimatePrice returns the quick-quote price for a service level and
// vehicle type. Unknown levels fall back to the cheapest offering
// (exterior / sedan), matching how quote requests have always behaved.
func EstimatePrice(level ServiceLevel, vehicleType VehicleType) float64 {
	if prices, ok := estimateTable[level]; ok {
		if price, ok := prices[vehicleType]; ok {
			return price
		}
	}
	return estimateTable[LevelExterior][VehicleSedan]
}
