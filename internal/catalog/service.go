package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/JadenRazo/showersautodetailing/pkg/cache"
)

// Service interface defines read operations over the catalog, with
// cache-aside reads for the hot list endpoints.
type CatalogService interface {
	GetService(ctx context.Context, id uint) (*Service, error)
	GetPackage(ctx context.Context, id uint) (*Package, error)
	ListServices(ctx context.Context) ([]Service, error)

	GetAddon(ctx context.Context, identifier string) (*Addon, error)
	ListAddons(ctx context.Context, category string) ([]Addon, error)
	ListStandaloneAddons(ctx context.Context) ([]Addon, error)
	GetActiveAddons(ctx context.Context, ids []uint) ([]Addon, error)
	ListServiceAddons(ctx context.Context, serviceID uint) (included, available []Addon, err error)

	GetSetting(ctx context.Context, key string) (string, error)
}

type catalogService struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

// NewService creates a new catalog service. The cache may be nil, in which
// case all reads go straight to the repository.
func NewService(repo Repository, cacheService cache.Service, cacheTTL time.Duration) CatalogService {
	return &catalogService{
		repo:     repo,
		cache:    cacheService,
		cacheTTL: cacheTTL,
	}
}

func (s *catalogService) GetService(ctx context.Context, id uint) (*Service, error) {
	return s.repo.GetService(ctx, id)
}

func (s *catalogService) GetPackage(ctx context.Context, id uint) (*Package, error) {
	return s.repo.GetPackage(ctx, id)
}

func (s *catalogService) ListServices(ctx context.Context) ([]Service, error) {
	if s.cache == nil {
		return s.repo.ListServices(ctx)
	}

	var services []Service
	err := s.cache.GetOrSet(ctx, cache.KeyServices, s.cacheTTL, func() (interface{}, error) {
		return s.repo.ListServices(ctx)
	}, &services)
	if err != nil {
		// Cache trouble must not break catalog reads
		return s.repo.ListServices(ctx)
	}
	return services, nil
}

func (s *catalogService) GetAddon(ctx context.Context, identifier string) (*Addon, error) {
	return s.repo.GetAddon(ctx, identifier)
}

func (s *catalogService) ListAddons(ctx context.Context, category string) ([]Addon, error) {
	if s.cache == nil {
		return s.repo.ListAddons(ctx, category)
	}

	key := cache.KeyAddons
	if category != "" {
		key = fmt.Sprintf("%s:category:%s", cache.KeyAddons, category)
	}

	var addons []Addon
	err := s.cache.GetOrSet(ctx, key, s.cacheTTL, func() (interface{}, error) {
		return s.repo.ListAddons(ctx, category)
	}, &addons)
	if err != nil {
		return s.repo.ListAddons(ctx, category)
	}
	return addons, nil
}

func (s *catalogService) ListStandaloneAddons(ctx context.Context) ([]Addon, error) {
	return s.repo.ListStandaloneAddons(ctx)
}

func (s *catalogService) GetActiveAddons(ctx context.Context, ids []uint) ([]Addon, error) {
	return s.repo.GetActiveAddons(ctx, ids)
}

// ListServiceAddons returns the addons bundled into a service and the addons
// offered alongside it. When no available set is configured for the service,
// every active addon not already included is offered.
func (s *catalogService) ListServiceAddons(ctx context.Context, serviceID uint) ([]Addon, []Addon, error) {
	included, err := s.repo.ListIncludedAddons(ctx, serviceID)
	if err != nil {
		return nil, nil, err
	}

	available, err := s.repo.ListAvailableAddons(ctx, serviceID)
	if err != nil {
		return nil, nil, err
	}

	if len(available) == 0 {
		all, err := s.repo.ListAddons(ctx, "")
		if err != nil {
			return nil, nil, err
		}

		includedIDs := make(map[uint]bool, len(included))
		for _, addon := range included {
			includedIDs[addon.ID] = true
		}
		for _, addon := range all {
			if !includedIDs[addon.ID] {
				available = append(available, addon)
			}
		}
	}

	return included, available, nil
}

func (s *catalogService) GetSetting(ctx context.Context, key string) (string, error) {
	return s.repo.GetSetting(ctx, key)
}
