// internal/services/settings_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/shopsmart-admin/internal/models"
	"github.com/javajoker/shopsmart-admin/internal/utils"
)

var ErrPasswordMismatch = errors.New("current password is incorrect")

type SettingsService struct {
	mu    sync.RWMutex
	owner models.Owner
	log   *logrus.Entry
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// NewSettingsService creates the owner record with a hashed password.
func NewSettingsService(name, email, password string, preferences models.Preferences, logger *logrus.Entry) (*SettingsService, error) {
	owner := models.Owner{Name: name, Email: email, Preferences: preferences}
	if err := owner.SetPassword(password); err != nil {
		return nil, fmt.Errorf("failed to hash owner password: %w", err)
	}

	return &SettingsService{
		owner: owner,
		log:   logger.WithField("component", "settings"),
	}, nil
}

func (s *SettingsService) GetProfile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.owner.Profile()
}

func (s *SettingsService) UpdateProfile(req *models.Profile) (models.Profile, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := utils.ValidateStruct(req); err != nil {
		return models.Profile{}, fmt.Errorf("validation failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.owner.Name = req.Name
	s.owner.Email = req.Email
	s.log.WithField("email", req.Email).Info("Owner profile updated")
	return s.owner.Profile(), nil
}

func (s *SettingsService) GetPreferences() models.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.owner.Preferences
}

func (s *SettingsService) UpdatePreferences(req *models.Preferences) (models.Preferences, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Preferences{}, fmt.Errorf("validation failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.owner.Preferences = *req
	return s.owner.Preferences, nil
}

func (s *SettingsService) ChangePassword(req *ChangePasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.owner.CheckPassword(req.CurrentPassword); err != nil {
		return ErrPasswordMismatch
	}
	if err := s.owner.SetPassword(req.NewPassword); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.log.Info("Owner password changed")
	return nil
}

// Authenticate checks the owner's credentials and returns the profile on success.
func (s *SettingsService) Authenticate(email, password string) (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !strings.EqualFold(s.owner.Email, strings.TrimSpace(email)) {
		return models.Profile{}, false
	}
	if err := s.owner.CheckPassword(password); err != nil {
		return models.Profile{}, false
	}
	return s.owner.Profile(), true
}
