package handler

import (
	"errors"
	"net/http"
	"strconv"

	"artmarket/internal/middleware"
	"artmarket/internal/model"
	"artmarket/internal/service"

	"github.com/labstack/echo/v4"
)

type GalleryHandler struct {
	galleryService service.GalleryService
}

func NewGalleryHandler(galleryService service.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
	}
}

// Browse is the storefront catalog: GET /api/paintings?q=&section=&style=&sort=
func (h *GalleryHandler) Browse(c echo.Context) error {
	ctx := c.Request().Context()

	view, err := h.galleryService.Browse(ctx, service.GalleryQuery{
		Search:  c.QueryParam("q"),
		Section: c.QueryParam("section"),
		Style:   c.QueryParam("style"),
		Sort:    c.QueryParam("sort"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

func (h *GalleryHandler) GetPainting(c echo.Context) error {
	ctx := c.Request().Context()

	painting, err := h.galleryService.GetPainting(ctx, c.Param("id"))
	if errors.Is(err, service.ErrPaintingNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "painting not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, painting)
}

// Similar suggests artworks close in style to the one being viewed:
// GET /api/paintings/:id/similar?limit=
func (h *GalleryHandler) Similar(c echo.Context) error {
	ctx := c.Request().Context()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	suggestions, err := h.galleryService.SimilarPaintings(ctx, c.Param("id"), limit)
	if errors.Is(err, service.ErrPaintingNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "painting not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string][]model.Painting{"suggestions": suggestions})
}

// SubmitPainting is the authenticated artwork submission form.
func (h *GalleryHandler) SubmitPainting(c echo.Context) error {
	ctx := c.Request().Context()

	var painting model.Painting
	if err := c.Bind(&painting); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if painting.Title == "" || painting.Artist == "" || painting.Style == "" ||
		painting.Description == "" || painting.Price <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "all fields are required")
	}
	if painting.ImageURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "image is required")
	}

	painting.ID = ""
	if err := h.galleryService.SubmitPainting(ctx, &painting); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, painting)
}

func (h *GalleryHandler) Like(c echo.Context) error {
	ctx := c.Request().Context()

	painting, err := h.galleryService.Like(ctx, middleware.Subject(c), c.Param("id"))
	if errors.Is(err, service.ErrPaintingNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "painting not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, painting)
}

func (h *GalleryHandler) Unlike(c echo.Context) error {
	ctx := c.Request().Context()

	painting, err := h.galleryService.Unlike(ctx, middleware.Subject(c), c.Param("id"))
	if errors.Is(err, service.ErrPaintingNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "painting not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, painting)
}

// Liked returns the painting ids the caller has liked, so the storefront can
// fill in the hearts without a device-local set.
func (h *GalleryHandler) Liked(c echo.Context) error {
	ctx := c.Request().Context()

	ids, err := h.galleryService.LikedPaintings(ctx, middleware.Subject(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string][]string{"paintingIds": ids})
}

func (h *GalleryHandler) Categories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.galleryService.Categories(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *GalleryHandler) Artists(c echo.Context) error {
	ctx := c.Request().Context()

	artists, err := h.galleryService.Artists(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, artists)
}

func (h *GalleryHandler) Settings(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.galleryService.Settings(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, settings)
}
