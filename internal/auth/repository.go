package auth

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	GetActiveUserByEmail(ctx context.Context, email string) (*AdminUser, error)
	GetActiveUserByID(ctx context.Context, id uint) (*AdminUser, error)
	CountUsers(ctx context.Context) (int64, error)
	CreateUser(ctx context.Context, user *AdminUser) error
	UpdatePasswordHash(ctx context.Context, id uint, hash string) error

	CreateRefreshToken(ctx context.Context, token *RefreshToken) error
	GetValidRefreshToken(ctx context.Context, tokenHash string) (*RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeUserRefreshTokens(ctx context.Context, userID uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetActiveUserByEmail(ctx context.Context, email string) (*AdminUser, error) {
	var user AdminUser
	err := r.db.WithContext(ctx).
		Where("email = ? AND is_active = true", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetActiveUserByID(ctx context.Context, id uint) (*AdminUser, error) {
	var user AdminUser
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = true", id).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&AdminUser{}).Count(&count).Error
	return count, err
}

func (r *repository) CreateUser(ctx context.Context, user *AdminUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	return r.db.WithContext(ctx).
		Model(&AdminUser{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash": hash,
			"updated_at":    time.Now(),
		}).Error
}

func (r *repository) CreateRefreshToken(ctx context.Context, token *RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// GetValidRefreshToken returns the token row only while it is unrevoked,
// unexpired, and its owner is still active
func (r *repository) GetValidRefreshToken(ctx context.Context, tokenHash string) (*RefreshToken, error) {
	var token RefreshToken
	err := r.db.WithContext(ctx).
		Joins("JOIN admin_users ON admin_users.id = refresh_tokens.user_id AND admin_users.is_active = true").
		Where("refresh_tokens.token_hash = ? AND refresh_tokens.is_revoked = false AND refresh_tokens.expires_at > ?", tokenHash, time.Now()).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	return &token, nil
}

func (r *repository) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	return r.db.WithContext(ctx).
		Model(&RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("is_revoked", true).Error
}

func (r *repository) RevokeUserRefreshTokens(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&RefreshToken{}).
		Where("user_id = ?", userID).
		Update("is_revoked", true).Error
}
