package server

import (
	"artmarket/internal/handler"
	"artmarket/internal/middleware"
	"artmarket/internal/service"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	galleryHandler  *handler.GalleryHandler
	checkoutHandler *handler.CheckoutHandler
	paymentHandler  *handler.PaymentHandler
	authHandler     *handler.AuthHandler
	adminHandler    *handler.AdminHandler
	uploadHandler   *handler.UploadHandler
}

type Options struct {
	// UploadsDir, when non-empty, is served at /uploads for the local image
	// store. Cloudinary deployments leave it empty.
	UploadsDir string
}

func NewServer(
	galleryService service.GalleryService,
	checkoutService service.CheckoutService,
	authService service.AuthService,
	adminService service.AdminService,
	paymentHandler *handler.PaymentHandler,
	uploadHandler *handler.UploadHandler,
	opts Options,
) *Server {
	e := echo.New()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.Identity(authService))

	if opts.UploadsDir != "" {
		e.Static("/uploads", opts.UploadsDir)
	}

	s := &Server{
		echo:            e,
		galleryHandler:  handler.NewGalleryHandler(galleryService),
		checkoutHandler: handler.NewCheckoutHandler(checkoutService),
		paymentHandler:  paymentHandler,
		authHandler:     handler.NewAuthHandler(authService),
		adminHandler:    handler.NewAdminHandler(adminService),
		uploadHandler:   uploadHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- storefront --------
	api.GET("/paintings", s.galleryHandler.Browse)
	api.GET("/paintings/:id", s.galleryHandler.GetPainting)
	api.GET("/paintings/:id/similar", s.galleryHandler.Similar)
	api.POST("/paintings", s.galleryHandler.SubmitPainting, middleware.RequireUser())
	api.POST("/paintings/:id/like", s.galleryHandler.Like)
	api.DELETE("/paintings/:id/like", s.galleryHandler.Unlike)
	api.GET("/likes", s.galleryHandler.Liked)
	api.GET("/categories", s.galleryHandler.Categories)
	api.GET("/artists", s.galleryHandler.Artists)
	api.GET("/settings", s.galleryHandler.Settings)

	// -------- checkout / payment --------
	api.POST("/create-order", s.paymentHandler.CreateOrder)
	// confirm and dismiss identify the attempt by body, not by path: the
	// attempt id comes from Submit, the painting id is already bound to it
	checkout := api.Group("/checkout")
	checkout.POST("/:id", s.checkoutHandler.Submit)
	checkout.POST("/confirm", s.checkoutHandler.Confirm)
	checkout.POST("/dismiss", s.checkoutHandler.Dismiss)

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/signup", s.authHandler.SignUp)
	auth.POST("/login", s.authHandler.SignIn)
	auth.POST("/logout", s.authHandler.SignOut)

	// -------- back office --------
	admin := api.Group("/admin", middleware.RequireAdmin())
	admin.GET("/paintings", s.adminHandler.ListPaintings)
	admin.POST("/paintings", s.adminHandler.CreatePainting)
	admin.PUT("/paintings/:id", s.adminHandler.UpdatePainting)
	admin.DELETE("/paintings/:id", s.adminHandler.DeletePainting)

	admin.GET("/categories", s.adminHandler.ListCategories)
	admin.POST("/categories", s.adminHandler.CreateCategory)
	admin.DELETE("/categories/:id", s.adminHandler.DeleteCategory)

	admin.GET("/artists", s.adminHandler.ListArtists)
	admin.POST("/artists", s.adminHandler.CreateArtist)
	admin.PUT("/artists/:id", s.adminHandler.UpdateArtist)
	admin.DELETE("/artists/:id", s.adminHandler.DeleteArtist)

	admin.GET("/orders", s.adminHandler.ListOrders)

	admin.GET("/settings", s.adminHandler.GetSettings)
	admin.PUT("/settings", s.adminHandler.SaveSettings)

	admin.POST("/uploads", s.uploadHandler.Upload)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
