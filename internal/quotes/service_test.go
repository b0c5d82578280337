package quotes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JadenRazo/showersautodetailing/internal/notifications"
	"github.com/JadenRazo/showersautodetailing/internal/pricing"
)

type fakeRepo struct {
	created []*QuoteRequest
}

func (r *fakeRepo) Create(_ context.Context, quote *QuoteRequest) error {
	quote.ID = uint(len(r.created) + 1)
	r.created = append(r.created, quote)
	return nil
}

func (r *fakeRepo) List(_ context.Context) ([]QuoteRequest, error) {
	out := make([]QuoteRequest, 0, len(r.created))
	for i := len(r.created) - 1; i >= 0; i-- {
		out = append(out, *r.created[i])
	}
	return out, nil
}

type fakeNotifier struct {
	kinds []notifications.Kind
}

func (n *fakeNotifier) Notify(_ context.Context, kind notifications.Kind, _ map[string]interface{}) {
	n.kinds = append(n.kinds, kind)
}

func submitRequest(vehicleType, serviceLevel string) SubmitQuoteRequest {
	return SubmitQuoteRequest{
		CustomerName:  "Sam Okafor",
		CustomerEmail: "sam@example.com",
		CustomerPhone: "555-0107",
		VehicleType:   vehicleType,
		ServiceLevel:  serviceLevel,
		Message:       "Dog hair everywhere",
	}
}

func TestSubmit_EstimatesFromPriceSheet(t *testing.T) {
	cases := []struct {
		vehicleType  string
		serviceLevel string
		want         float64
	}{
		{"sedan", "exterior", 50},
		{"suv", "interior", 160},
		{"commercial", "deep-interior", 280},
		{"sedan", "package-deal", 150},
		{"commercial", "disaster", 310},
		{"SUV", "Interior", 160}, // normalized
		{"sedan", "", 50},        // blank level defaults to exterior
		{"suv", "gold-tier", 50}, // unknown level falls back to exterior/sedan
	}

	for _, tc := range cases {
		repo := &fakeRepo{}
		svc := NewService(repo, &fakeNotifier{})

		quote, err := svc.Submit(context.Background(), submitRequest(tc.vehicleType, tc.serviceLevel))

		require.NoError(t, err)
		assert.Equal(t, tc.want, quote.EstimatedPrice,
			"%s / %s", tc.vehicleType, tc.serviceLevel)
	}
}

func TestSubmit_InvalidVehicleType(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier)

	_, err := svc.Submit(context.Background(), submitRequest("boat", "exterior"))

	assert.ErrorIs(t, err, pricing.ErrInvalidVehicleType)
	assert.Empty(t, repo.created)
	assert.Empty(t, notifier.kinds)
}

func TestSubmit_NotifiesQuoteRequest(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier)

	quote, err := svc.Submit(context.Background(), submitRequest("suv", "interior"))

	require.NoError(t, err)
	assert.NotZero(t, quote.ID)
	require.Len(t, notifier.kinds, 1)
	assert.Equal(t, notifications.KindQuoteRequest, notifier.kinds[0])
}
