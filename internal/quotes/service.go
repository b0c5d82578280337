package quotes

import (
	"context"
	"fmt"
	"strings"

	"github.com/JadenRazo/showersautodetailing/internal/notifications"
	"github.com/JadenRazo/showersautodetailing/internal/pricing"
)

type Service interface {
	Submit(ctx context.Context, req SubmitQuoteRequest) (*QuoteRequest, error)
	List(ctx context.Context) ([]QuoteRequest, error)
}

type service struct {
	repo     Repository
	notifier notifications.Notifier
}

func NewService(repo Repository, notifier notifications.Notifier) Service {
	return &service{repo: repo, notifier: notifier}
}

// Submit estimates a price from the fixed price sheet and stores the
// inquiry. Vehicle type must be valid; a blank service level defaults to
// exterior, and unknown levels fall through to the sheet's fallback.
func (s *service) Submit(ctx context.Context, req SubmitQuoteRequest) (*QuoteRequest, error) {
	vehicleType, err := pricing.ParseVehicleType(req.VehicleType)
	if err != nil {
		return nil, err
	}

	level := pricing.ServiceLevel(strings.ToLower(strings.TrimSpace(req.ServiceLevel)))
	if level == "" {
		level = pricing.LevelExterior
	}

	quote := &QuoteRequest{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		VehicleType:    string(vehicleType),
		ServiceLevel:   string(level),
		EstimatedPrice: pricing.EstimatePrice(level, vehicleType),
		Message:        req.Message,
	}

	if err := s.repo.Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to create quote request: %w", err)
	}

	s.notifier.Notify(ctx, notifications.KindQuoteRequest, map[string]interface{}{
		"quote_id":        quote.ID,
		"customer_name":   quote.CustomerName,
		"customer_email":  quote.CustomerEmail,
		"customer_phone":  quote.CustomerPhone,
		"vehicle_type":    quote.VehicleType,
		"service_level":   quote.ServiceLevel,
		"estimated_price": quote.EstimatedPrice,
		"message":         quote.Message,
	})

	return quote, nil
}

func (s *service) List(ctx context.Context) ([]QuoteRequest, error) {
	return s.repo.List(ctx)
}
