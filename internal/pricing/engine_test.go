package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JadenRazo/showersautodetailing/internal/catalog"
)

type stubCatalog struct {
	services map[uint]*catalog.Service
	packages map[uint]*catalog.Package
	addons   []catalog.Addon
	settings map[string]string
}

func (s *stubCatalog) GetService(_ context.Context, id uint) (*catalog.Service, error) {
	if svc, ok := s.services[id]; ok {
		return svc, nil
	}
	return nil, catalog.ErrNotFound
}

func (s *stubCatalog) GetPackage(_ context.Context, id uint) (*catalog.Package, error) {
	if pkg, ok := s.packages[id]; ok {
		return pkg, nil
	}
	return nil, catalog.ErrNotFound
}

func (s *stubCatalog) GetActiveAddons(_ context.Context, ids []uint) ([]catalog.Addon, error) {
	var out []catalog.Addon
	for _, addon := range s.addons {
		for _, id := range ids {
			if addon.ID == id {
				out = append(out, addon)
			}
		}
	}
	return out, nil
}

func (s *stubCatalog) GetSetting(_ context.Context, key string) (string, error) {
	if value, ok := s.settings[key]; ok {
		return value, nil
	}
	return "", catalog.ErrNotFound
}

func uintPtr(v uint) *uint { return &v }

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		services: map[uint]*catalog.Service{
			1: {ID: 1, Name: "Exterior Wash", SedanPrice: 50, SUVPrice: 60, TruckPrice: 80},
		},
		packages: map[uint]*catalog.Package{
			2: {ID: 2, Name: "Full Works", BasePrice: 100, VehicleMultipliers: catalog.MultiplierMap{"suv": 1.5}},
		},
		addons: []catalog.Addon{
			{ID: 10, Name: "Engine Bay", Slug: "engine-bay", SedanPrice: 30, SUVPrice: 35, CommercialPrice: 45},
			{ID: 11, Name: "Clay Bar", Slug: "clay-bar", SedanPrice: 40, SUVPrice: 50, CommercialPrice: 60},
		},
		settings: map[string]string{},
	}
}

func TestQuote_ServicePricesByVehicle(t *testing.T) {
	engine := NewEngine(newStubCatalog(), 0.25)

	cases := []struct {
		vehicle VehicleType
		want    float64
	}{
		{VehicleSedan, 50},
		{VehicleSUV, 60},
		{VehicleCommercial, 80},
	}

	for _, tc := range cases {
		quote, err := engine.Quote(context.Background(), tc.vehicle, Selection{ServiceID: uintPtr(1)}, nil)
		require.NoError(t, err)
		assert.Equal(t, tc.want, quote.BasePrice, "vehicle %s", tc.vehicle)
		assert.Equal(t, "Exterior Wash", quote.ServiceName)
	}
}

func TestQuote_ServiceWinsOverPackage(t *testing.T) {
	engine := NewEngine(newStubCatalog(), 0.25)

	quote, err := engine.Quote(context.Background(), VehicleSedan,
		Selection{ServiceID: uintPtr(1), PackageID: uintPtr(2)}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Exterior Wash", quote.ServiceName)
	assert.Equal(t, 50.0, quote.BasePrice)
}

func TestQuote_PackageMultiplier(t *testing.T) {
	engine := NewEngine(newStubCatalog(), 0.25)

	quote, err := engine.Quote(context.Background(), VehicleSUV, Selection{PackageID: uintPtr(2)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 150.0, quote.BasePrice)

	// no multiplier entry defaults to 1.0
	quote, err = engine.Quote(context.Background(), VehicleCommercial, Selection{PackageID: uintPtr(2)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 100.0, quote.BasePrice)
}

func TestQuote_AddonsAccumulate(t *testing.T) {
	engine := NewEngine(newStubCatalog(), 0.25)

	quote, err := engine.Quote(context.Background(), VehicleSUV, Selection{ServiceID: uintPtr(1)}, []uint{10, 11})

	require.NoError(t, err)
	assert.Equal(t, 85.0, quote.AddonTotal) // 35 + 50
	assert.Equal(t, 145.0, quote.Total)
	require.Len(t, quote.Addons, 2)
}

func TestQuote_MissingAddonsExcluded(t *testing.T) {
	engine := NewEngine(newStubCatalog(), 0.25)

	quote, err := engine.Quote(context.Background(), VehicleSedan, Selection{ServiceID: uintPtr(1)}, []uint{10, 999})

	require.NoError(t, err)
	require.Len(t, quote.Addons, 1)
	assert.Equal(t, 30.0, quote.AddonTotal)
}

func TestQuote_Errors(t *testing.T) {
	engine := NewEngine(newStubCatalog(), 0.25)

	_, err := engine.Quote(context.Background(), VehicleSedan, Selection{}, nil)
	assert.ErrorIs(t, err, ErrSelectionRequired)

	_, err = engine.Quote(context.Background(), VehicleSedan, Selection{ServiceID: uintPtr(99)}, nil)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = engine.Quote(context.Background(), VehicleSedan, Selection{PackageID: uintPtr(99)}, nil)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestDepositPercentage(t *testing.T) {
	cat := newStubCatalog()
	engine := NewEngine(cat, 0.25)

	// no settings row: fallback
	assert.Equal(t, 0.25, engine.DepositPercentage(context.Background()))

	cat.settings[catalog.SettingDepositPercentage] = "0.30"
	assert.Equal(t, 0.30, engine.DepositPercentage(context.Background()))

	// junk and non-positive values fall back too
	cat.settings[catalog.SettingDepositPercentage] = "not-a-number"
	assert.Equal(t, 0.25, engine.DepositPercentage(context.Background()))

	cat.settings[catalog.SettingDepositPercentage] = "0"
	assert.Equal(t, 0.25, engine.DepositPercentage(context.Background()))
}

func TestParseVehicleType(t *testing.T) {
	for input, want := range map[string]VehicleType{
		"sedan":        VehicleSedan,
		"SUV":          VehicleSUV,
		" commercial ": VehicleCommercial,
	} {
		got, err := ParseVehicleType(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, input := range []string{"", "truck", "van"} {
		_, err := ParseVehicleType(input)
		assert.ErrorIs(t, err, ErrInvalidVehicleType, "input %q", input)
	}
}

func TestEstimatePrice(t *testing.T) {
	// the full published price sheet, every level for every vehicle
	priceSheet := map[ServiceLevel]map[VehicleType]float64{
		LevelExterior:     {VehicleSedan: 50, VehicleSUV: 60, VehicleCommercial: 80},
		LevelInterior:     {VehicleSedan: 120, VehicleSUV: 160, VehicleCommercial: 200},
		LevelDeepInterior: {VehicleSedan: 200, VehicleSUV: 240, VehicleCommercial: 280},
		LevelPackageDeal:  {VehicleSedan: 150, VehicleSUV: 200, VehicleCommercial: 250},
		LevelDisaster:     {VehicleSedan: 230, VehicleSUV: 270, VehicleCommercial: 310},
	}

	for level, prices := range priceSheet {
		for vehicle, want := range prices {
			assert.Equal(t, want, EstimatePrice(level, vehicle), "%s / %s", level, vehicle)
		}
	}

	// unknown level falls back to the cheapest offering
	assert.Equal(t, 50.0, EstimatePrice("gold-tier", VehicleCommercial))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 47.5, Round2(190*0.25))
	assert.Equal(t, 0.3, Round2(0.1+0.2))
	assert.Equal(t, 12.35, Round2(12.345))
}
