package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JadenRazo/showersautodetailing/internal/catalog"
	"github.com/JadenRazo/showersautodetailing/internal/notifications"
	"github.com/JadenRazo/showersautodetailing/internal/pricing"
)

// fakeCatalog backs the pricing engine with fixed rows
type fakeCatalog struct {
	services map[uint]*catalog.Service
	packages map[uint]*catalog.Package
	addons   map[uint]catalog.Addon
	settings map[string]string
}

func (f *fakeCatalog) GetService(_ context.Context, id uint) (*catalog.Service, error) {
	if svc, ok := f.services[id]; ok {
		return svc, nil
	}
	return nil, catalog.ErrNotFound
}

func (f *fakeCatalog) GetPackage(_ context.Context, id uint) (*catalog.Package, error) {
	if pkg, ok := f.packages[id]; ok {
		return pkg, nil
	}
	return nil, catalog.ErrNotFound
}

func (f *fakeCatalog) GetActiveAddons(_ context.Context, ids []uint) ([]catalog.Addon, error) {
	var out []catalog.Addon
	for _, id := range ids {
		if addon, ok := f.addons[id]; ok {
			out = append(out, addon)
		}
	}
	return out, nil
}

func (f *fakeCatalog) GetSetting(_ context.Context, key string) (string, error) {
	if value, ok := f.settings[key]; ok {
		return value, nil
	}
	return "", catalog.ErrNotFound
}

// fakeRepo keeps bookings in memory and mimics the conditional updates
type fakeRepo struct {
	nextID   uint
	bookings map[uint]*Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, bookings: make(map[uint]*Booking)}
}

func (r *fakeRepo) Create(_ context.Context, booking *Booking) error {
	booking.ID = r.nextID
	r.nextID++
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uint) (*Booking, error) {
	if b, ok := r.bookings[id]; ok {
		return b, nil
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) List(_ context.Context) ([]Booking, error) {
	var out []Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id uint, status Status) error {
	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeRepo) SetDepositPaymentID(_ context.Context, id uint, paymentID string) error {
	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.DepositPaymentID = &paymentID
	return nil
}

func (r *fakeRepo) SetFinalPaymentID(_ context.Context, id uint, paymentID string) error {
	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.FinalPaymentID = &paymentID
	return nil
}

func (r *fakeRepo) IncrementDepositAttempt(_ context.Context, id uint) error {
	if b, ok := r.bookings[id]; ok {
		b.DepositAttempt++
	}
	return nil
}

func (r *fakeRepo) IncrementFinalAttempt(_ context.Context, id uint) error {
	if b, ok := r.bookings[id]; ok {
		b.FinalAttempt++
	}
	return nil
}

func (r *fakeRepo) ConfirmDeposit(_ context.Context, id uint) (bool, error) {
	b, ok := r.bookings[id]
	if !ok || b.Status != StatusPending {
		return false, nil
	}
	b.DepositPaid = true
	b.Status = StatusConfirmed
	return true, nil
}

func (r *fakeRepo) Complete(_ context.Context, id uint) (bool, error) {
	b, ok := r.bookings[id]
	if !ok || (b.Status != StatusConfirmed && b.Status != StatusInProgress) {
		return false, nil
	}
	b.Status = StatusCompleted
	return true, nil
}

// fakeNotifier records every dispatched kind
type fakeNotifier struct {
	kinds    []notifications.Kind
	payloads []map[string]interface{}
}

func (n *fakeNotifier) Notify(_ context.Context, kind notifications.Kind, payload map[string]interface{}) {
	n.kinds = append(n.kinds, kind)
	n.payloads = append(n.payloads, payload)
}

func uintPtr(v uint) *uint { return &v }

func testService(t *testing.T) (Service, *fakeRepo, *fakeNotifier) {
	t.Helper()

	cat := &fakeCatalog{
		services: map[uint]*catalog.Service{
			1: {ID: 1, Name: "Interior Detail", SedanPrice: 120, SUVPrice: 160, TruckPrice: 200, IsActive: true},
		},
		packages: map[uint]*catalog.Package{
			10: {ID: 10, Name: "Full Works", BasePrice: 150, VehicleMultipliers: catalog.MultiplierMap{"suv": 1.4, "commercial": 1.8}},
		},
		addons: map[uint]catalog.Addon{
			5: {ID: 5, Name: "Pet Hair Removal", Slug: "pet-hair-removal", SedanPrice: 20, SUVPrice: 30, CommercialPrice: 40, IsActive: true},
		},
		settings: map[string]string{
			catalog.SettingDepositPercentage: "0.25",
		},
	}

	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	engine := pricing.NewEngine(cat, 0.25)
	return NewService(repo, engine, notifier, nil), repo, notifier
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		CustomerName:  "Jordan Meyer",
		CustomerEmail: "jordan@example.com",
		CustomerPhone: "555-0142",
		VehicleType:   "suv",
		ServiceID:     uintPtr(1),
		AddonIDs:      []uint{5},
		BookingDate:   "2026-09-12",
		BookingTime:   "10:00",
		Address:       "14 Birch Lane",
	}
}

func TestService_Create_PricesAndSnapshotsDeposit(t *testing.T) {
	svc, repo, notifier := testService(t)

	resp, err := svc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 190.0, resp.TotalAmount) // 160 service + 30 addon for suv
	assert.Equal(t, 47.5, resp.DepositAmount)
	assert.Equal(t, StatusPending, resp.Booking.Status)
	assert.False(t, resp.Booking.DepositPaid)

	stored := repo.bookings[resp.Booking.ID]
	require.NotNil(t, stored)
	require.Len(t, stored.Addons, 1)
	assert.Equal(t, uint(5), stored.Addons[0].AddonID)
	assert.Equal(t, 30.0, stored.Addons[0].PriceCharged)

	require.Len(t, notifier.kinds, 1)
	assert.Equal(t, notifications.KindNewBooking, notifier.kinds[0])
}

func TestService_Create_PackageFallbackUsesMultiplier(t *testing.T) {
	svc, _, _ := testService(t)

	req := validRequest()
	req.ServiceID = nil
	req.PackageID = uintPtr(10)
	req.AddonIDs = nil

	resp, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 210.0, resp.TotalAmount) // 150 * 1.4
	assert.Equal(t, 52.5, resp.DepositAmount)
}

func TestService_Create_InvalidVehicleType(t *testing.T) {
	svc, _, notifier := testService(t)

	req := validRequest()
	req.VehicleType = "motorcycle"

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, pricing.ErrInvalidVehicleType)
	assert.Empty(t, notifier.kinds)
}

func TestService_Create_UnknownService(t *testing.T) {
	svc, _, _ := testService(t)

	req := validRequest()
	req.ServiceID = uintPtr(99)

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, pricing.ErrServiceNotFound)
}

func TestService_Create_SelectionRequired(t *testing.T) {
	svc, _, _ := testService(t)

	req := validRequest()
	req.ServiceID = nil

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, pricing.ErrSelectionRequired)
}

func TestService_Create_BadDate(t *testing.T) {
	svc, _, _ := testService(t)

	req := validRequest()
	req.BookingDate = "12/09/2026"

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidBookingDate)
}

func TestService_Create_UnknownAddonsExcluded(t *testing.T) {
	svc, _, _ := testService(t)

	req := validRequest()
	req.AddonIDs = []uint{5, 999}

	resp, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, resp.Addons, 1)
	assert.Equal(t, 190.0, resp.TotalAmount)
}

func TestService_Confirm_NotifiesExactlyOnce(t *testing.T) {
	svc, _, notifier := testService(t)

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	id := resp.Booking.ID

	applied, err := svc.Confirm(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = svc.Confirm(context.Background(), id) // replay
	require.NoError(t, err)
	assert.False(t, applied)

	booking, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, booking.Status)
	assert.True(t, booking.DepositPaid)

	// one new_booking + one deposit_paid, never two deposit_paid
	require.Len(t, notifier.kinds, 2)
	assert.Equal(t, notifications.KindDepositPaid, notifier.kinds[1])
}

func TestService_Complete_RequiresConfirmedFirst(t *testing.T) {
	svc, _, notifier := testService(t)

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	id := resp.Booking.ID

	// Completing a pending booking is a no-op
	applied, err := svc.Complete(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, applied)
	booking, _ := svc.Get(context.Background(), id)
	assert.Equal(t, StatusPending, booking.Status)
	require.Len(t, notifier.kinds, 1)

	_, err = svc.Confirm(context.Background(), id)
	require.NoError(t, err)

	applied, err = svc.Complete(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = svc.Complete(context.Background(), id) // replay
	require.NoError(t, err)
	assert.False(t, applied)

	booking, _ = svc.Get(context.Background(), id)
	assert.Equal(t, StatusCompleted, booking.Status)
	require.Len(t, notifier.kinds, 3)
	assert.Equal(t, notifications.KindPaymentCompleted, notifier.kinds[2])
}

func TestService_SetStatus_AdminOverride(t *testing.T) {
	svc, _, notifier := testService(t)

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	booking, err := svc.SetStatus(context.Background(), resp.Booking.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, booking.Status)

	_, err = svc.SetStatus(context.Background(), resp.Booking.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.SetStatus(context.Background(), 404, "confirmed")
	assert.ErrorIs(t, err, ErrNotFound)

	// overrides never notify
	require.Len(t, notifier.kinds, 1)
}
