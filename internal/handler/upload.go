package handler

import (
	"net/http"

	"artmarket/internal/dto"
	"artmarket/internal/storage"

	"github.com/labstack/echo/v4"
)

// allowed upload folders, matching the asset layout of the storefront
var uploadFolders = map[string]bool{
	"paintings":   true,
	"artists":     true,
	"site-assets": true,
}

type UploadHandler struct {
	imageStore storage.ImageStore
}

func NewUploadHandler(imageStore storage.ImageStore) *UploadHandler {
	return &UploadHandler{
		imageStore: imageStore,
	}
}

// Upload accepts a multipart "file" field plus a "folder" form value and
// returns the public URL of the stored image.
func (h *UploadHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	folder := c.FormValue("folder")
	if !uploadFolders[folder] {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown upload folder")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read file")
	}
	defer f.Close()

	url, err := h.imageStore.Upload(ctx, folder, fileHeader.Filename, f)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}
