package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/JadenRazo/showersautodetailing/internal/auth"
	"github.com/JadenRazo/showersautodetailing/internal/catalog"
	"github.com/JadenRazo/showersautodetailing/internal/shared/config"
	"github.com/JadenRazo/showersautodetailing/internal/shared/database"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting database seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Seeding completed.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"booking_addons",
		"bookings",
		"quote_requests",
		"refresh_tokens",
		"admin_users",
		"addons",
		"packages",
		"services",
		"settings",
	}

	for _, table := range tables {
		if err := s.db.PostgreSQL.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			// Table may not exist on a fresh database
			log.Printf("warning: truncate %s: %v", table, err)
		}
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	if err := s.seedServices(); err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	if err := s.seedPackages(); err != nil {
		return fmt.Errorf("seed packages: %w", err)
	}
	if err := s.seedAddons(); err != nil {
		return fmt.Errorf("seed addons: %w", err)
	}
	if err := s.seedSettings(); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	if err := s.seedAdminUser(); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}

func (s *Seeder) seedServices() error {
	services := []catalog.Service{
		{
			Name:        "Exterior Wash/Wax/Sealant",
			Slug:        "exterior",
			Description: "Hand wash, tire cleaning, windows, wax & sealant protection",
			SedanPrice:  50, SUVPrice: 60, TruckPrice: 80,
			IsActive: true, SortOrder: 1,
		},
		{
			Name:        "Interior Detail",
			Slug:        "interior",
			Description: "Full vacuum, dashboard, door panels, glass cleaning",
			SedanPrice:  120, SUVPrice: 160, TruckPrice: 200,
			IsActive: true, SortOrder: 2,
		},
		{
			Name:        "Interior DEEP Cleaning",
			Slug:        "deep-interior",
			Description: "Steam cleaning, stain extraction, headliner, vents, full sanitation",
			SedanPrice:  200, SUVPrice: 240, TruckPrice: 280,
			IsActive: true, SortOrder: 3,
		},
		{
			Name:        "Package Deal",
			Slug:        "package-deal",
			Description: "Interior Detail + Full Exterior - Best Value!",
			SedanPrice:  150, SUVPrice: 200, TruckPrice: 250,
			IsActive: true, SortOrder: 4,
		},
		{
			Name:        "Disaster Vehicle",
			Slug:        "disaster",
			Description: "Deep Interior + Full Exterior + headlight restoration + ozone treatment",
			SedanPrice:  230, SUVPrice: 270, TruckPrice: 310,
			IsActive: true, SortOrder: 5,
		},
	}

	for i := range services {
		if err := s.db.PostgreSQL.Create(&services[i]).Error; err != nil {
			return err
		}
	}
	fmt.Printf("  seeded %d services\n", len(services))
	return nil
}

func (s *Seeder) seedPackages() error {
	packages := []catalog.Package{
		{
			Name:        "Full Works",
			Description: "Legacy combined interior and exterior package",
			BasePrice:   150,
			VehicleMultipliers: catalog.MultiplierMap{
				"sedan":      1.0,
				"suv":        1.33,
				"commercial": 1.67,
			},
			IsActive: true,
		},
	}

	for i := range packages {
		if err := s.db.PostgreSQL.Create(&packages[i]).Error; err != nil {
			return err
		}
	}
	fmt.Printf("  seeded %d packages\n", len(packages))
	return nil
}

func (s *Seeder) seedAddons() error {
	addons := []catalog.Addon{
		{
			Name: "Pet Hair Removal", Slug: "pet-hair-removal", Category: "interior",
			Description: "Specialized removal of embedded pet hair from carpets and seats",
			SedanPrice:  20, SUVPrice: 30, CommercialPrice: 40,
			IsActive: true, IsStandalone: false, SortOrder: 1,
		},
		{
			Name: "Leather Conditioning", Slug: "leather-conditioning", Category: "interior",
			Description: "Clean and condition leather seats and trim",
			SedanPrice:  25, SUVPrice: 35, CommercialPrice: 45,
			IsActive: true, IsStandalone: false, SortOrder: 2,
		},
		{
			Name: "Ozone Odor Treatment", Slug: "ozone-treatment", Category: "interior",
			Description: "Ozone generator treatment to eliminate smoke and mildew odors",
			SedanPrice:  40, SUVPrice: 50, CommercialPrice: 60,
			IsActive: true, IsStandalone: true, SortOrder: 3,
		},
		{
			Name: "Engine Bay Cleaning", Slug: "engine-bay", Category: "exterior",
			Description: "Degrease and dress the engine compartment",
			SedanPrice:  30, SUVPrice: 35, CommercialPrice: 45,
			IsActive: true, IsStandalone: true, SortOrder: 4,
		},
		{
			Name: "Headlight Restoration", Slug: "headlight-restoration", Category: "exterior",
			Description: "Sand and polish hazed headlight lenses",
			SedanPrice:  35, SUVPrice: 35, CommercialPrice: 40,
			IsActive: true, IsStandalone: true, SortOrder: 5,
		},
		{
			Name: "Clay Bar Treatment", Slug: "clay-bar", Category: "exterior",
			Description: "Remove bonded contaminants before wax",
			SedanPrice:  40, SUVPrice: 50, CommercialPrice: 60,
			IsActive: true, IsStandalone: false, SortOrder: 6,
		},
	}

	for i := range addons {
		if err := s.db.PostgreSQL.Create(&addons[i]).Error; err != nil {
			return err
		}
	}
	fmt.Printf("  seeded %d addons\n", len(addons))
	return nil
}

func (s *Seeder) seedSettings() error {
	settings := []catalog.Setting{
		{Key: catalog.SettingDepositPercentage, Value: "0.25"},
	}

	for i := range settings {
		if err := s.db.PostgreSQL.Create(&settings[i]).Error; err != nil {
			return err
		}
	}
	fmt.Printf("  seeded %d settings\n", len(settings))
	return nil
}

func (s *Seeder) seedAdminUser() error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@showersautodetailing.com"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := auth.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         auth.RoleAdmin,
		IsActive:     true,
	}
	if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
		return err
	}

	fmt.Printf("  seeded admin user %s\n", email)
	return nil
}
