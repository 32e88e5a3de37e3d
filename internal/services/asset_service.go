// internal/services/asset_service.go
package services

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/shopsmart-admin/internal/config"
	"github.com/javajoker/shopsmart-admin/internal/models"
	"github.com/javajoker/shopsmart-admin/internal/utils"
)

const assetRoute = "/v1/assets/"

var (
	ErrFileTooLarge    = errors.New("file too large")
	ErrFileInvalidType = errors.New("file type not allowed")
	ErrFileEmpty       = errors.New("file is empty")
	ErrAssetNotFound   = errors.New("asset not found")
)

// AssetService keeps uploaded product images in memory, addressed by the
// SHA-256 of their content. Identical uploads share one entry; an entry is
// dropped when its last reference is released.
type AssetService struct {
	mu      sync.RWMutex
	assets  map[string]*Asset
	options UploadOptions
	baseURL string
	log     *logrus.Entry
}

type Asset struct {
	Key         string
	ContentType string
	Data        []byte
	refs        int
}

type UploadOptions struct {
	MaxSize      int64 // in bytes
	AllowedTypes []string
}

func NewAssetService(cfg *config.Config, logger *logrus.Entry) *AssetService {
	return &AssetService{
		assets:  make(map[string]*Asset),
		options: GetDefaultUploadOptions(cfg.Assets.MaxSize),
		baseURL: cfg.Assets.PublicBaseURL,
		log:     logger.WithField("component", "assets"),
	}
}

// GetDefaultUploadOptions mirrors the product form's accept list.
func GetDefaultUploadOptions(maxSize int64) UploadOptions {
	return UploadOptions{
		MaxSize:      maxSize,
		AllowedTypes: []string{".png", ".jpg", ".jpeg", ".webp"},
	}
}

// Put stores img and returns its public URL.
func (s *AssetService) Put(img *models.ImageUpload) (string, error) {
	if len(img.Data) == 0 {
		return "", ErrFileEmpty
	}

	// Validate file size
	if s.options.MaxSize > 0 && int64(len(img.Data)) > s.options.MaxSize {
		return "", fmt.Errorf("%w: %d bytes exceeds maximum allowed size %d bytes", ErrFileTooLarge, len(img.Data), s.options.MaxSize)
	}

	// Validate file type
	fileExt := strings.ToLower(filepath.Ext(img.Filename))
	if !s.isAllowedExtension(fileExt) {
		return "", fmt.Errorf("%w: %q", ErrFileInvalidType, fileExt)
	}

	contentType, ok := detectImageType(img.Data)
	if !ok {
		return "", fmt.Errorf("%w: content is not a png, jpeg or webp image", ErrFileInvalidType)
	}

	key := utils.HashBytes(img.Data) + fileExt

	s.mu.Lock()
	defer s.mu.Unlock()

	if asset, exists := s.assets[key]; exists {
		asset.refs++
	} else {
		s.assets[key] = &Asset{
			Key:         key,
			ContentType: contentType,
			Data:        bytes.Clone(img.Data),
			refs:        1,
		}
		s.log.WithFields(logrus.Fields{"key": key, "size": len(img.Data)}).Debug("Asset stored")
	}

	return s.urlFor(key), nil
}

// Release drops one reference to an asset URL returned by Put.
func (s *AssetService) Release(url string) {
	key, ok := s.keyFromURL(url)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	asset, exists := s.assets[key]
	if !exists {
		return
	}
	asset.refs--
	if asset.refs <= 0 {
		delete(s.assets, key)
		s.log.WithField("key", key).Debug("Asset released")
	}
}

func (s *AssetService) Get(key string) (*Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	asset, exists := s.assets[key]
	if !exists {
		return nil, ErrAssetNotFound
	}
	return asset, nil
}

func (s *AssetService) urlFor(key string) string {
	return s.baseURL + assetRoute + key
}

func (s *AssetService) keyFromURL(url string) (string, bool) {
	prefix := s.baseURL + assetRoute
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

func (s *AssetService) isAllowedExtension(ext string) bool {
	for _, allowed := range s.options.AllowedTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}

// detectImageType checks the file signature rather than trusting the
// client supplied content type.
func detectImageType(data []byte) (string, bool) {
	// Check for JPEG
	if len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return "image/jpeg", true
	}

	// Check for PNG
	if len(data) >= 8 && bytes.Equal(data[:8], []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}) {
		return "image/png", true
	}

	// Check for WebP
	if len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP" {
		return "image/webp", true
	}

	return "", false
}
