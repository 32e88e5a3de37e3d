// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/javajoker/shopsmart-admin/internal/config"
	"github.com/javajoker/shopsmart-admin/internal/models"
	"github.com/javajoker/shopsmart-admin/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	settings *SettingsService
	cfg      *config.Config
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User        models.Profile `json:"user"`
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int            `json:"expires_in"` // in seconds
}

func NewAuthService(settings *SettingsService, cfg *config.Config) *AuthService {
	return &AuthService{
		settings: settings,
		cfg:      cfg,
	}
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	profile, ok := s.settings.Authenticate(req.Email, req.Password)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateJWT(profile.Email, profile.Name, s.cfg.Auth.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        profile,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.Auth.AccessTokenTTL * 3600,
	}, nil
}
