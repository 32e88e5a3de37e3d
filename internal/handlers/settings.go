// internal/handlers/settings.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shopsmart-admin/internal/i18n"
	"github.com/javajoker/shopsmart-admin/internal/models"
	"github.com/javajoker/shopsmart-admin/internal/services"
	"github.com/javajoker/shopsmart-admin/internal/utils"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GET /settings/profile
func (h *SettingsHandler) GetProfile(c *gin.Context) {
	utils.SuccessResponse(c, h.settingsService.GetProfile())
}

// PUT /settings/profile
func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req models.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	profile, err := h.settingsService.UpdateProfile(&req)
	if err != nil {
		respondValidation(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySettingsUpdated),
		"profile": profile,
	})
}

// GET /settings/preferences
func (h *SettingsHandler) GetPreferences(c *gin.Context) {
	utils.SuccessResponse(c, h.settingsService.GetPreferences())
}

// PUT /settings/preferences
func (h *SettingsHandler) UpdatePreferences(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req models.Preferences
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	preferences, err := h.settingsService.UpdatePreferences(&req)
	if err != nil {
		respondValidation(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeySettingsUpdated),
		"preferences": preferences,
	})
}

// PUT /settings/password
func (h *SettingsHandler) ChangePassword(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	err := h.settingsService.ChangePassword(&req)
	if errors.Is(err, services.ErrPasswordMismatch) {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeySettingsPasswordWrong), nil)
		return
	}
	if err != nil {
		respondValidation(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySettingsUpdated),
	})
}

func respondValidation(c *gin.Context, err error) {
	if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}
	utils.InternalErrorResponse(c, err.Error())
}
