// internal/services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/javajoker/unihub-backend/internal/config"
	"github.com/javajoker/unihub-backend/internal/metrics"
	"github.com/javajoker/unihub-backend/internal/models"
	"github.com/javajoker/unihub-backend/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminExists        = errors.New("an admin with this email already exists")
)

type AuthService struct {
	db      *gorm.DB
	cfg     *config.Config
	metrics *metrics.Metrics
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Admin       *models.AdminUser `json:"admin"`
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	ExpiresIn   int               `json:"expires_in"` // in seconds
}

func NewAuthService(db *gorm.DB, cfg *config.Config, m *metrics.Metrics) *AuthService {
	return &AuthService{db: db, cfg: cfg, metrics: m}
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	resp, err := s.login(ctx, req)
	s.metrics.LoginAttempt(err)
	return resp, err
}

func (s *AuthService) login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var admin models.AdminUser
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(req.Email)).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !admin.IsActive || admin.CheckPassword(req.Password) != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	admin.LastLoginAt = &now
	if err := s.db.WithContext(ctx).Model(&admin).Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	token, err := utils.GenerateJWT(admin.ID, admin.Email, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		Admin:       &admin,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}

// CreateAdmin adds an admin account.
func (s *AuthService) CreateAdmin(ctx context.Context, email, password, name string) (*models.AdminUser, error) {
	email = normalizeEmail(email)
	req := struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}{email, password}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.AdminUser{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check admin: %w", err)
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	admin := &models.AdminUser{Email: email, Name: name, IsActive: true}
	if err := admin.SetPassword(password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}

func (s *AuthService) GetAdmin(ctx context.Context, id string) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
