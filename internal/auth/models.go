package auth

import "time"

// RoleAdmin is the only role the dashboard issues today
const RoleAdmin = "admin"

// AdminUser is a dashboard account. There is no public registration;
// rows come from the setup endpoint or the seeder.
type AdminUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Name         string    `gorm:"type:varchar(100)" json:"name"`
	Role         string    `gorm:"type:varchar(20);not null;default:admin" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshToken stores only the SHA-256 hash of the opaque token handed
// to the client, so a database leak does not leak usable tokens.
type RefreshToken struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	TokenHash  string    `gorm:"type:char(64);uniqueIndex;not null" json:"-"`
	ExpiresAt  time.Time `gorm:"not null" json:"expires_at"`
	DeviceInfo string    `gorm:"type:varchar(255)" json:"device_info"`
	IsRevoked  bool      `gorm:"not null;default:false" json:"is_revoked"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName sets the table name for AdminUser
func (AdminUser) TableName() string {
	return "admin_users"
}

// TableName sets the table name for RefreshToken
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
