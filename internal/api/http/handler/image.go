package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/gophfeed-server/internal/apperr"
	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
	"github.com/dtroode/gophfeed-server/internal/storage/minio"
)

var acceptedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpg":  {},
	"image/jpeg": {},
}

// ImageService stores uploaded post images.
type ImageService interface {
	StoreImage(ctx context.Context, auth model.AuthContext, upload model.ImageUpload) (string, error)
}

// Image handles image upload and download.
type Image struct {
	imageService   ImageService
	images         model.ImageStore
	contextManager model.ContextManager
	maxBytes       int64
	logger         *logger.Logger
}

// NewImage creates a new Image handler. Uploads larger than maxBytes are rejected.
func NewImage(
	imageService ImageService,
	images model.ImageStore,
	contextManager model.ContextManager,
	maxBytes int64,
	logger *logger.Logger,
) *Image {
	return &Image{
		imageService:   imageService,
		images:         images,
		contextManager: contextManager,
		maxBytes:       maxBytes,
		logger:         logger,
	}
}

// Upload handles PUT /post-image. The file is read from the "image" field;
// an optional "oldPath" names the image it replaces.
func (h *Image) Upload(c *gin.Context) {
	auth := h.contextManager.GetAuthFromContext(c.Request.Context())
	if !auth.IsAuthenticated {
		handleError(c, apperr.NewNotAuthenticated())
		return
	}

	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}

	header, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "File too large"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "No file provided!"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if _, ok := acceptedImageTypes[contentType]; !ok {
		h.logger.Debug("Image handler: rejected upload",
			"file_name", header.Filename,
			"content_type", contentType)
		c.JSON(http.StatusOK, gin.H{"message": "No file provided!"})
		return
	}

	file, err := header.Open()
	if err != nil {
		handleError(c, err)
		return
	}
	defer file.Close()

	filePath, err := h.imageService.StoreImage(c.Request.Context(), auth, model.ImageUpload{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
		OldPath:     c.PostForm("oldPath"),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "File Stored", "filePath": filePath})
}

// Download handles GET /images/*name.
func (h *Image) Download(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")
	if name == "" {
		c.JSON(http.StatusNotFound, gin.H{"message": "Image not found"})
		return
	}

	rc, err := h.images.Open(c.Request.Context(), minio.ImagePrefix+name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Image not found"})
			return
		}
		h.logger.Error("Image handler: failed to open image",
			"name", name,
			"error", err.Error())
		handleError(c, err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", contentType)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		h.logger.Warn("Image handler: image stream interrupted",
			"name", name,
			"error", err.Error())
	}
}
