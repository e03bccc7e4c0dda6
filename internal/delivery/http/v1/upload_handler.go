package v1

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go-profile-backend/config"
	"go-profile-backend/internal/delivery/http/middleware"
	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/pkg/apperror"
	"go-profile-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const maxUploadSize = 10 << 20 // 10 MB

type UploadHandler struct {
	uploadDir string
	baseURL   string
}

func NewUploadHandler(public *gin.RouterGroup, protected *gin.RouterGroup, cfg *config.Config) {
	handler := &UploadHandler{
		uploadDir: cfg.UploadDir,
		baseURL:   strings.TrimSuffix(cfg.UploadBaseURL, "/"),
	}

	protected.POST("/upload", middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()), handler.UploadFile)
	public.Static("/files", cfg.UploadDir)
}

// UploadFile godoc
// @Summary      Upload a file
// @Description  Upload an image (profile picture, project image) and get a URL. Images are resized and re-encoded as JPEG.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "File to upload"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /upload [post]
func (h *UploadHandler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}
	if file.Size > maxUploadSize {
		c.Error(apperror.BadRequest("File exceeds the 10MB limit"))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer src.Close()

	fileBytes, err := io.ReadAll(src)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	// Detect content type from file bytes (more reliable than header)
	contentType := http.DetectContentType(fileBytes)
	if !strings.HasPrefix(contentType, "image/") {
		c.Error(apperror.BadRequest("Only image uploads are supported"))
		return
	}

	finalBytes, compressErr := compressImage(fileBytes, 1200, 80)
	if compressErr != nil {
		logger.Log.Warn("Image compression failed, storing original", "error", compressErr)
		finalBytes = fileBytes
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	filename := fmt.Sprintf("%s.jpg", uuid.NewString())
	dst := filepath.Join(h.uploadDir, filename)
	if err := os.WriteFile(dst, finalBytes, 0o644); err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	publicURL := fmt.Sprintf("%s/%s", h.baseURL, filename)

	response.Success(c, http.StatusOK, "File uploaded", gin.H{"url": publicURL})
}

// compressImage resizes an image to the specified max dimension and re-encodes
// it as JPEG at the given quality.
func compressImage(data []byte, maxDimension int, quality int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Calculate new dimensions maintaining aspect ratio
	var newWidth, newHeight int
	if width > height {
		if width > maxDimension {
			newWidth = maxDimension
			newHeight = int(float64(height) * float64(maxDimension) / float64(width))
		} else {
			newWidth = width
			newHeight = height
		}
	} else {
		if height > maxDimension {
			newHeight = maxDimension
			newWidth = int(float64(width) * float64(maxDimension) / float64(height))
		} else {
			newWidth = width
			newHeight = height
		}
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}
