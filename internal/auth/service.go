package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/JadenRazo/showersautodetailing/internal/shared/config"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrAdminExists         = errors.New("admin already exists")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
)

const (
	refreshTokenExpiry = 30 * 24 * time.Hour
	minPasswordLength  = 8
)

// JWTClaims are the access-token claims the middleware reads back
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

type Service interface {
	Login(ctx context.Context, req *LoginRequest, deviceInfo string) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error)
	Logout(ctx context.Context, refreshToken string)
	GetUser(ctx context.Context, userID uint) (*AdminUser, error)
	ChangePassword(ctx context.Context, userID uint, req *ChangePasswordRequest) error
	Setup(ctx context.Context, req *SetupRequest) (*AdminUser, error)
}

type service struct {
	repo   Repository
	config *config.Config
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		config: cfg,
	}
}

func (s *service) Login(ctx context.Context, req *LoginRequest, deviceInfo string) (*AuthResponse, error) {
	user, err := s.repo.GetActiveUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	var refreshToken string
	if req.RememberMe {
		refreshToken, err = s.issueRefreshToken(ctx, user.ID, deviceInfo)
		if err != nil {
			return nil, err
		}
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.JWTExpiresIn.Seconds()),
		User: UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	token, err := s.repo.GetValidRefreshToken(ctx, hashToken(refreshToken))
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetActiveUserByID(ctx, token.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	accessToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(s.config.JWT.JWTExpiresIn.Seconds()),
	}, nil
}

// Logout revokes the refresh token. Best effort: an unknown token means
// there is nothing to revoke, which is indistinguishable from success.
func (s *service) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}
	_ = s.repo.RevokeRefreshToken(ctx, hashToken(refreshToken))
}

func (s *service) GetUser(ctx context.Context, userID uint) (*AdminUser, error) {
	return s.repo.GetActiveUserByID(ctx, userID)
}

func (s *service) ChangePassword(ctx context.Context, userID uint, req *ChangePasswordRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.repo.GetActiveUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return err
	}

	// A password change invalidates every outstanding session
	return s.repo.RevokeUserRefreshTokens(ctx, userID)
}

// Setup creates the first admin account. Refused once any account
// exists; later accounts come from the database directly.
func (s *service) Setup(ctx context.Context, req *SetupRequest) (*AdminUser, error) {
	if len(req.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	count, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = "Admin"
	}

	user := &AdminUser{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         RoleAdmin,
		IsActive:     true,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) signAccessToken(user *AdminUser) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Type:   "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.JWTExpiresIn)),
			Issuer:    "showersautodetailing",
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWT.Secret))
}

// issueRefreshToken mints an opaque token and stores only its hash
func (s *service) issueRefreshToken(ctx context.Context, userID uint, deviceInfo string) (string, error) {
	raw := make([]byte, 64)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	err := s.repo.CreateRefreshToken(ctx, &RefreshToken{
		UserID:     userID,
		TokenHash:  hashToken(token),
		ExpiresAt:  time.Now().Add(refreshTokenExpiry),
		DeviceInfo: deviceInfo,
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
