package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"obratrack/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler handles project image uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedImageExtensions restricts uploads to formats the clients render.
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadImageHandler accepts a multipart image and stores it under the
// project-images folder, returning the delivery URL.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image not provided", "detail": err.Error()})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image format; allowed: jpg, jpeg, png, webp"})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		logger.Error("Failed to save uploaded image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}
	defer os.Remove(tempFilePath)

	url, publicID, err := h.StorageSvc.UploadImage(c, tempFilePath, "project-images")
	if err != nil {
		logger.Error("Failed to upload image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"imageUrl": url,
		"publicId": publicID,
	})
}

// DeleteImageHandler removes a previously uploaded image.
func (h *StorageHandler) DeleteImageHandler(c *gin.Context) {
	logger := getLogger(c)

	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId is required"})
		return
	}

	if err := h.StorageSvc.DeleteImage(c, publicID); err != nil {
		logger.Error("Failed to delete image", zap.String("publicId", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
