package handler

import (
	"errors"
	"net/http"

	"artmarket/internal/dto"
	"artmarket/internal/model"
	"artmarket/internal/service"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func mapAdminErr(err error) error {
	var validationErr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrPaintingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "painting not found")
	case errors.Is(err, service.ErrArtistNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "artist not found")
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
	}
	return err
}

// -------- paintings --------

func (h *AdminHandler) ListPaintings(c echo.Context) error {
	paintings, err := h.adminService.ListPaintings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paintings)
}

func (h *AdminHandler) CreatePainting(c echo.Context) error {
	var painting model.Painting
	if err := c.Bind(&painting); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.adminService.CreatePainting(c.Request().Context(), &painting); err != nil {
		return mapAdminErr(err)
	}
	return c.JSON(http.StatusCreated, painting)
}

func (h *AdminHandler) UpdatePainting(c echo.Context) error {
	var painting model.Painting
	if err := c.Bind(&painting); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	painting.ID = c.Param("id")

	if err := h.adminService.UpdatePainting(c.Request().Context(), &painting); err != nil {
		return mapAdminErr(err)
	}
	return c.JSON(http.StatusOK, painting)
}

func (h *AdminHandler) DeletePainting(c echo.Context) error {
	if err := h.adminService.DeletePainting(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// -------- categories --------

func (h *AdminHandler) ListCategories(c echo.Context) error {
	categories, err := h.adminService.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	category, err := h.adminService.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return mapAdminErr(err)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	if err := h.adminService.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// -------- artists --------

func (h *AdminHandler) ListArtists(c echo.Context) error {
	artists, err := h.adminService.ListArtists(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artists)
}

func (h *AdminHandler) CreateArtist(c echo.Context) error {
	var artist model.Artist
	if err := c.Bind(&artist); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.adminService.CreateArtist(c.Request().Context(), &artist); err != nil {
		return mapAdminErr(err)
	}
	return c.JSON(http.StatusCreated, artist)
}

func (h *AdminHandler) UpdateArtist(c echo.Context) error {
	var artist model.Artist
	if err := c.Bind(&artist); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	artist.ID = c.Param("id")

	if err := h.adminService.UpdateArtist(c.Request().Context(), &artist); err != nil {
		return mapAdminErr(err)
	}
	return c.JSON(http.StatusOK, artist)
}

func (h *AdminHandler) DeleteArtist(c echo.Context) error {
	if err := h.adminService.DeleteArtist(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// -------- orders --------

func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.adminService.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// -------- site settings --------

func (h *AdminHandler) GetSettings(c echo.Context) error {
	settings, err := h.adminService.GetSettings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *AdminHandler) SaveSettings(c echo.Context) error {
	var settings model.SiteSettings
	if err := c.Bind(&settings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.adminService.SaveSettings(c.Request().Context(), &settings); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
