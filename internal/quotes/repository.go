package quotes

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, quote *QuoteRequest) error
	List(ctx context.Context) ([]QuoteRequest, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, quote *QuoteRequest) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *repository) List(ctx context.Context) ([]QuoteRequest, error) {
	var requests []QuoteRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}
