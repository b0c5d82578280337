package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JadenRazo/showersautodetailing/internal/bookings"
	"github.com/JadenRazo/showersautodetailing/internal/payments/square"
)

// fakeBookings implements bookings.Service over an in-memory map with
// the same transition guards as the real repository
type fakeBookings struct {
	store       map[uint]*bookings.Booking
	confirms    int
	completions int
}

func newFakeBookings(b ...*bookings.Booking) *fakeBookings {
	f := &fakeBookings{store: make(map[uint]*bookings.Booking)}
	for _, booking := range b {
		f.store[booking.ID] = booking
	}
	return f
}

func (f *fakeBookings) Create(_ context.Context, _ bookings.CreateBookingRequest) (*bookings.CreateBookingResponse, error) {
	return nil, fmt.Errorf("not used")
}

func (f *fakeBookings) Get(_ context.Context, id uint) (*bookings.Booking, error) {
	if b, ok := f.store[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, bookings.ErrNotFound
}

func (f *fakeBookings) List(_ context.Context) ([]bookings.Booking, error) { return nil, nil }

func (f *fakeBookings) SetStatus(_ context.Context, id uint, status string) (*bookings.Booking, error) {
	b, ok := f.store[id]
	if !ok {
		return nil, bookings.ErrNotFound
	}
	b.Status = bookings.Status(status)
	return b, nil
}

func (f *fakeBookings) Confirm(_ context.Context, id uint) (bool, error) {
	b, ok := f.store[id]
	if !ok || b.Status != bookings.StatusPending {
		return false, nil
	}
	b.Status = bookings.StatusConfirmed
	b.DepositPaid = true
	f.confirms++
	return true, nil
}

func (f *fakeBookings) Complete(_ context.Context, id uint) (bool, error) {
	b, ok := f.store[id]
	if !ok || (b.Status != bookings.StatusConfirmed && b.Status != bookings.StatusInProgress) {
		return false, nil
	}
	b.Status = bookings.StatusCompleted
	f.completions++
	return true, nil
}

func (f *fakeBookings) SetDepositPayment(_ context.Context, id uint, paymentID string) error {
	b, ok := f.store[id]
	if !ok {
		return bookings.ErrNotFound
	}
	b.DepositPaymentID = &paymentID
	return nil
}

func (f *fakeBookings) SetFinalPayment(_ context.Context, id uint, paymentID string) error {
	b, ok := f.store[id]
	if !ok {
		return bookings.ErrNotFound
	}
	b.FinalPaymentID = &paymentID
	return nil
}

func (f *fakeBookings) IncrementDepositAttempt(_ context.Context, id uint) error {
	if b, ok := f.store[id]; ok {
		b.DepositAttempt++
	}
	return nil
}

func (f *fakeBookings) IncrementFinalAttempt(_ context.Context, id uint) error {
	if b, ok := f.store[id]; ok {
		b.FinalAttempt++
	}
	return nil
}

// fakeGateway scripts CreatePayment responses and records requests
type fakeGateway struct {
	requests []square.CreatePaymentRequest
	status   string
	err      error
}

func (g *fakeGateway) CreatePayment(_ context.Context, req square.CreatePaymentRequest) (*square.Payment, error) {
	g.requests = append(g.requests, req)
	if g.err != nil {
		return nil, g.err
	}
	return &square.Payment{
		ID:          fmt.Sprintf("pay_%d", len(g.requests)),
		Status:      g.status,
		ReferenceID: req.ReferenceID,
		AmountMoney: req.AmountMoney,
	}, nil
}

func pendingBooking() *bookings.Booking {
	return &bookings.Booking{
		ID:            7,
		CustomerEmail: "jordan@example.com",
		TotalAmount:   180.00,
		DepositAmount: 45.00,
		Status:        bookings.StatusPending,
	}
}

func confirmedBooking() *bookings.Booking {
	b := pendingBooking()
	b.Status = bookings.StatusConfirmed
	b.DepositPaid = true
	return b
}

func newTestService(store *fakeBookings, gateway *fakeGateway) Service {
	verifier := NewSignatureVerifier(testSignatureKey, testNotificationURL)
	return NewService(gateway, store, verifier, Config{LocationID: "L123", Currency: "USD"}, nil)
}

func TestCreateDepositPayment_CompletedConfirmsBooking(t *testing.T) {
	store := newFakeBookings(pendingBooking())
	gateway := &fakeGateway{status: square.PaymentStatusCompleted}
	svc := newTestService(store, gateway)

	result, err := svc.CreateDepositPayment(context.Background(), 7, "cnon:card-nonce")

	require.NoError(t, err)
	assert.Equal(t, "pay_1", result.PaymentID)
	assert.Equal(t, square.PaymentStatusCompleted, result.Status)
	assert.Equal(t, 45.00, result.Amount)

	require.Len(t, gateway.requests, 1)
	req := gateway.requests[0]
	assert.Equal(t, int64(4500), req.AmountMoney.Amount)
	assert.Equal(t, "USD", req.AmountMoney.Currency)
	assert.Equal(t, "booking-7-deposit", req.ReferenceID)
	assert.Equal(t, "L123", req.LocationID)
	assert.Equal(t, "jordan@example.com", req.BuyerEmailAddress)
	assert.NotEmpty(t, req.IdempotencyKey)

	stored := store.store[7]
	assert.Equal(t, bookings.StatusConfirmed, stored.Status)
	assert.True(t, stored.DepositPaid)
	require.NotNil(t, stored.DepositPaymentID)
	assert.Equal(t, "pay_1", *stored.DepositPaymentID)
}

func TestCreateDepositPayment_PendingLeavesBookingAlone(t *testing.T) {
	store := newFakeBookings(pendingBooking())
	gateway := &fakeGateway{status: "PENDING"}
	svc := newTestService(store, gateway)

	result, err := svc.CreateDepositPayment(context.Background(), 7, "cnon:card-nonce")

	require.NoError(t, err)
	assert.Equal(t, "PENDING", result.Status)
	assert.Equal(t, bookings.StatusPending, store.store[7].Status)
	assert.False(t, store.store[7].DepositPaid)
}

func TestCreateDepositPayment_AlreadyPaid(t *testing.T) {
	store := newFakeBookings(confirmedBooking())
	gateway := &fakeGateway{status: square.PaymentStatusCompleted}
	svc := newTestService(store, gateway)

	_, err := svc.CreateDepositPayment(context.Background(), 7, "cnon:card-nonce")

	assert.ErrorIs(t, err, ErrDepositAlreadyPaid)
	assert.Empty(t, gateway.requests)
}

func TestCreateDepositPayment_UnknownBooking(t *testing.T) {
	svc := newTestService(newFakeBookings(), &fakeGateway{})

	_, err := svc.CreateDepositPayment(context.Background(), 99, "cnon:card-nonce")

	assert.ErrorIs(t, err, bookings.ErrNotFound)
}

func TestCreateDepositPayment_RetryReusesIdempotencyKey(t *testing.T) {
	store := newFakeBookings(pendingBooking())
	gateway := &fakeGateway{status: "PENDING"}
	svc := newTestService(store, gateway)

	_, err := svc.CreateDepositPayment(context.Background(), 7, "cnon:card-nonce")
	require.NoError(t, err)
	_, err = svc.CreateDepositPayment(context.Background(), 7, "cnon:card-nonce")
	require.NoError(t, err)

	require.Len(t, gateway.requests, 2)
	assert.Equal(t, gateway.requests[0].IdempotencyKey, gateway.requests[1].IdempotencyKey)
}

func TestCreateDepositPayment_DeclineAdvancesIdempotencyKey(t *testing.T) {
	store := newFakeBookings(pendingBooking())
	gateway := &fakeGateway{
		err: &square.APIError{
			StatusCode: 402,
			Errors:     []square.ErrorDetail{{Category: "PAYMENT_METHOD_ERROR", Code: "CARD_DECLINED", Detail: "Card declined."}},
		},
	}
	svc := newTestService(store, gateway)

	_, err := svc.CreateDepositPayment(context.Background(), 7, "cnon:card-nonce")
	var declined *DeclinedError
	require.ErrorAs(t, err, &declined)
	assert.Equal(t, []string{"Card declined."}, declined.Details)
	assert.Equal(t, 1, store.store[7].DepositAttempt)

	gateway.err = nil
	gateway.status = "PENDING"
	_, err = svc.CreateDepositPayment(context.Background(), 7, "cnon:card-nonce")
	require.NoError(t, err)

	require.Len(t, gateway.requests, 2)
	assert.NotEqual(t, gateway.requests[0].IdempotencyKey, gateway.requests[1].IdempotencyKey)
}

func TestCreateFinalPayment_RequiresDeposit(t *testing.T) {
	store := newFakeBookings(pendingBooking())
	gateway := &fakeGateway{status: square.PaymentStatusCompleted}
	svc := newTestService(store, gateway)

	_, err := svc.CreateFinalPayment(context.Background(), 7, "cnon:card-nonce")

	assert.ErrorIs(t, err, ErrDepositNotPaid)
	assert.Empty(t, gateway.requests)
}

func TestCreateFinalPayment_ChargesRemainderAndCompletes(t *testing.T) {
	store := newFakeBookings(confirmedBooking())
	gateway := &fakeGateway{status: square.PaymentStatusCompleted}
	svc := newTestService(store, gateway)

	result, err := svc.CreateFinalPayment(context.Background(), 7, "cnon:card-nonce")

	require.NoError(t, err)
	assert.Equal(t, 135.00, result.Amount)

	require.Len(t, gateway.requests, 1)
	assert.Equal(t, int64(13500), gateway.requests[0].AmountMoney.Amount)
	assert.Equal(t, "booking-7-final", gateway.requests[0].ReferenceID)

	stored := store.store[7]
	assert.Equal(t, bookings.StatusCompleted, stored.Status)
	require.NotNil(t, stored.FinalPaymentID)
	assert.Equal(t, "pay_1", *stored.FinalPaymentID)
}

func webhookBody(eventType, referenceID string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"payment": map[string]interface{}{
					"id":           "pay_hook",
					"status":       "COMPLETED",
					"reference_id": referenceID,
				},
			},
		},
	})
	return body
}

func sign(body []byte) string {
	return signBody(testSignatureKey, testNotificationURL, body)
}

func TestHandleWebhook_InvalidSignature(t *testing.T) {
	store := newFakeBookings(pendingBooking())
	svc := newTestService(store, &fakeGateway{})
	body := webhookBody(EventPaymentCompleted, "booking-7-deposit")

	err := svc.HandleWebhook(context.Background(), "bogus", body)

	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.Equal(t, bookings.StatusPending, store.store[7].Status)
}

func TestHandleWebhook_MalformedBody(t *testing.T) {
	svc := newTestService(newFakeBookings(), &fakeGateway{})
	body := []byte(`{"type": "payment.completed",`)

	err := svc.HandleWebhook(context.Background(), sign(body), body)

	assert.ErrorIs(t, err, ErrMalformedEvent)
}

func TestHandleWebhook_DepositConfirmsOnce(t *testing.T) {
	store := newFakeBookings(pendingBooking())
	svc := newTestService(store, &fakeGateway{})
	body := webhookBody(EventPaymentCompleted, "booking-7-deposit")

	require.NoError(t, svc.HandleWebhook(context.Background(), sign(body), body))
	require.NoError(t, svc.HandleWebhook(context.Background(), sign(body), body)) // redelivery

	assert.Equal(t, bookings.StatusConfirmed, store.store[7].Status)
	assert.Equal(t, 1, store.confirms)
}

func TestHandleWebhook_FinalCompletes(t *testing.T) {
	store := newFakeBookings(confirmedBooking())
	svc := newTestService(store, &fakeGateway{})
	body := webhookBody(EventPaymentCompleted, "booking-7-final")

	require.NoError(t, svc.HandleWebhook(context.Background(), sign(body), body))

	assert.Equal(t, bookings.StatusCompleted, store.store[7].Status)
	assert.Equal(t, 1, store.completions)
}

func TestHandleWebhook_IgnoresOtherEventsAndReferences(t *testing.T) {
	store := newFakeBookings(pendingBooking())
	svc := newTestService(store, &fakeGateway{})

	// irrelevant event type
	body := webhookBody("payment.updated", "booking-7-deposit")
	require.NoError(t, svc.HandleWebhook(context.Background(), sign(body), body))

	// reference that is not ours
	body = webhookBody(EventPaymentCompleted, "invoice-7-deposit")
	require.NoError(t, svc.HandleWebhook(context.Background(), sign(body), body))

	// unknown booking id
	body = webhookBody(EventPaymentCompleted, "booking-404-deposit")
	require.NoError(t, svc.HandleWebhook(context.Background(), sign(body), body))

	assert.Equal(t, bookings.StatusPending, store.store[7].Status)
	assert.Zero(t, store.confirms)
}
