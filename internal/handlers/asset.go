// internal/handlers/asset.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shopsmart-admin/internal/i18n"
	"github.com/javajoker/shopsmart-admin/internal/services"
	"github.com/javajoker/shopsmart-admin/internal/utils"
)

type AssetHandler struct {
	assetService *services.AssetService
}

func NewAssetHandler(assetService *services.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// GET /assets/:key
func (h *AssetHandler) GetAsset(c *gin.Context) {
	asset, err := h.assetService.Get(c.Param("key"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyAssetNotFound)
		return
	}

	// Keys are content hashes, so a key never changes meaning.
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, asset.ContentType, asset.Data)
}
