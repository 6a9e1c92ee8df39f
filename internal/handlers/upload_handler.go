package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
	"github.com/SweetDelights01/bakery-storefront/internal/models"
	"github.com/SweetDelights01/bakery-storefront/internal/storage"
)

const maxUploadBytes = 10 << 20 // 10 MB

type UploadHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewUploadHandler(db *gorm.DB, uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{db: db, uploader: uploader}
}

// UploadProductImage accepts a multipart "image" field (JPEG or PNG),
// converts it to WebP, stores it on S3 and appends the public URL to
// the product's image list.
func (h *UploadHandler) UploadProductImage(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.Where("id = ?", id).First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "product_not_found", "Product not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_product", "Could not load product.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "image_required", "Multipart field image is required.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image exceeds the 10MB limit.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not read the uploaded file.")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not read the uploaded file.")
		return
	}

	encoded, err := storage.EncodeWebP(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Image must be a valid JPEG or PNG.")
		return
	}

	key := fmt.Sprintf(
		"products/%d/%s.webp",
		product.ID,
		strings.ReplaceAll(uuid.NewString(), "-", ""),
	)

	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not store the image.")
		return
	}

	product.Images = append(product.Images, url)
	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Could not attach the image.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url":     url,
		"product": product,
	})
}
