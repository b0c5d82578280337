package catalog

import (
	"context"
	"errors"
	"regexp"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a catalog row does not exist or is inactive
var ErrNotFound = errors.New("catalog entry not found")

// Repository provides read-only access to the catalog tables
type Repository interface {
	GetService(ctx context.Context, id uint) (*Service, error)
	GetPackage(ctx context.Context, id uint) (*Package, error)
	ListServices(ctx context.Context) ([]Service, error)

	GetAddon(ctx context.Context, identifier string) (*Addon, error)
	ListAddons(ctx context.Context, category string) ([]Addon, error)
	ListStandaloneAddons(ctx context.Context) ([]Addon, error)
	GetActiveAddons(ctx context.Context, ids []uint) ([]Addon, error)
	ListIncludedAddons(ctx context.Context, serviceID uint) ([]Addon, error)
	ListAvailableAddons(ctx context.Context, serviceID uint) ([]Addon, error)

	GetSetting(ctx context.Context, key string) (string, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetService(ctx context.Context, id uint) (*Service, error) {
	var svc Service
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&svc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (r *repository) GetPackage(ctx context.Context, id uint) (*Package, error) {
	var pkg Package
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&pkg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *repository) ListServices(ctx context.Context) ([]Service, error) {
	var services []Service
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&services).Error
	return services, err
}

var numericIdentifier = regexp.MustCompile(`^\d+$`)

// GetAddon resolves an addon by numeric id or by slug
func (r *repository) GetAddon(ctx context.Context, identifier string) (*Addon, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if numericIdentifier.MatchString(identifier) {
		query = query.Where("id = ?", identifier)
	} else {
		query = query.Where("slug = ?", identifier)
	}

	var addon Addon
	if err := query.First(&addon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &addon, nil
}

func (r *repository) ListAddons(ctx context.Context, category string) ([]Addon, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var addons []Addon
	err := query.Order("sort_order ASC").Find(&addons).Error
	return addons, err
}

func (r *repository) ListStandaloneAddons(ctx context.Context) ([]Addon, error) {
	var addons []Addon
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND is_standalone = ?", true, true).
		Order("sort_order ASC").
		Find(&addons).Error
	return addons, err
}

// GetActiveAddons returns the active addons among ids. Missing or inactive
// ids are simply absent from the result; callers treat that as exclusion,
// not as an error.
func (r *repository) GetActiveAddons(ctx context.Context, ids []uint) ([]Addon, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var addons []Addon
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Order("sort_order ASC").
		Find(&addons).Error
	return addons, err
}

// ListIncludedAddons returns the active addons bundled into a service
func (r *repository) ListIncludedAddons(ctx context.Context, serviceID uint) ([]Addon, error) {
	var addons []Addon
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN service_included_addons sia ON sia.addon_id = addons.id").
		Where("sia.service_id = ? AND addons.is_active = ?", serviceID, true).
		Order("addons.sort_order ASC").
		Find(&addons).Error
	return addons, err
}

// ListAvailableAddons returns the addons explicitly recommended for a
// service. An empty result means nothing is configured, not nothing offered.
func (r *repository) ListAvailableAddons(ctx context.Context, serviceID uint) ([]Addon, error) {
	var addons []Addon
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN service_available_addons saa ON saa.addon_id = addons.id").
		Where("saa.service_id = ? AND addons.is_active = ?", serviceID, true).
		Order("addons.sort_order ASC").
		Find(&addons).Error
	return addons, err
}

func (r *repository) GetSetting(ctx context.Context, key string) (string, error) {
	var setting Setting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return setting.Value, nil
}
