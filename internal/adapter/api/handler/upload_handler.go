package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"imagedrop/internal/domain/entity"
	"imagedrop/internal/usecase"
	"imagedrop/pkg/config"
	"imagedrop/pkg/errors"
	"imagedrop/pkg/logger"
	"imagedrop/pkg/response"
)

type UploadHandler struct {
	uploadUseCase *usecase.UploadUseCase
	cfg           *config.Config
}

func NewUploadHandler(uploadUseCase *usecase.UploadUseCase, cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		uploadUseCase: uploadUseCase,
		cfg:           cfg,
	}
}

type indexData struct {
	BucketName   string
	Images       []*entity.UploadRecord
	ErrorMessage string
}

// Index serves the upload form with the latest uploads. A failed gallery
// query degrades to an empty page; the read path never returns a 5xx.
func (h *UploadHandler) Index(c echo.Context) error {
	images, err := h.uploadUseCase.ListRecent(c.Request().Context())
	if err != nil {
		logger.Warn("Could not fetch uploads from Firestore: %v", err)
		images = nil
	}

	return c.Render(http.StatusOK, "index.html", indexData{
		BucketName: h.cfg.GCSBucket,
		Images:     images,
	})
}

// Upload stores the file, records its metadata, and redirects back to the
// gallery so a page reload does not resubmit the form.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Success(c, map[string]string{"message": "No upload file sent"})
	}

	if !h.cfg.BucketConfigured() {
		return response.Error(c, errors.Internal("GCS bucket name not configured", nil))
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file: %v", err)
		return h.renderUploadError(c, err)
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	_, err = h.uploadUseCase.Upload(c.Request().Context(), src, contentType, fileHeader.Filename)
	if err != nil {
		logger.Error("Upload failed: %v", err)
		return h.renderUploadError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// renderUploadError shows the gallery page with the failure embedded and an
// empty image list; no re-query is attempted. Blob and metadata failures
// carry distinct error codes but share one user-facing message.
func (h *UploadHandler) renderUploadError(c echo.Context, err error) error {
	return c.Render(http.StatusInternalServerError, "index.html", indexData{
		BucketName:   h.cfg.GCSBucket,
		ErrorMessage: fmt.Sprintf("Upload failed: %v", err),
	})
}
