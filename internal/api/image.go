package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdul8704/Cookify-server/internal/service"
)

// ImageHandler handles image upload and presigned access.
type ImageHandler struct {
	imageService *service.ImageService
}

func NewImageHandler(imageService *service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// RegisterRoutes registers image routes on an authenticated group.
func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	images := router.Group("/images")
	{
		images.POST("/upload", h.Upload)
		images.GET("/url", h.URL)
	}
}

func (h *ImageHandler) Upload(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	prefix := c.DefaultPostForm("folder", "recipes")
	key, err := h.imageService.Upload(c.Request.Context(), prefix, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	url, err := h.imageService.URL(c.Request.Context(), key)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": key, "url": url})
}

func (h *ImageHandler) URL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key query parameter is required"})
		return
	}

	url, err := h.imageService.URL(c.Request.Context(), key)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
