package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artmarket/internal/client"
	"artmarket/internal/config"
	"artmarket/internal/handler"
	"artmarket/internal/logging"
	"artmarket/internal/repository"
	"artmarket/internal/server"
	"artmarket/internal/service"
	"artmarket/internal/storage"
	"artmarket/internal/storage/cloudinary"
	"artmarket/internal/storage/local"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)

	db := client.InitSqliteClient(cfg.DatabaseURL)
	paymentClient := client.NewPaymentClient(&cfg.Razorpay)

	paintingRepo := repository.NewPaintingRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	userRepo := repository.NewUserRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	galleryService := service.NewGalleryService(
		paintingRepo,
		categoryRepo,
		artistRepo,
		settingsRepo,
		likeRepo,
	)
	checkoutService := service.NewCheckoutService(paintingRepo, orderRepo, paymentClient)
	authService := service.NewAuthService(
		userRepo,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenExpiryMin)*time.Minute,
	)
	adminService := service.NewAdminService(
		paintingRepo,
		categoryRepo,
		artistRepo,
		orderRepo,
		settingsRepo,
	)

	var imageStore storage.ImageStore
	serverOpts := server.Options{}
	if cfg.Storage.CloudinaryURL != "" {
		store, err := cloudinary.New(cfg.Storage.CloudinaryURL)
		if err != nil {
			log.Fatal(err)
		}
		imageStore = store
		logger.Info("image storage: cloudinary")
	} else {
		store, err := local.New(cfg.Storage.LocalPath, cfg.BaseURL)
		if err != nil {
			log.Fatal(err)
		}
		imageStore = store
		serverOpts.UploadsDir = store.BasePath()
		logger.Info("image storage: local", "path", store.BasePath())
	}

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(
		galleryService,
		checkoutService,
		authService,
		adminService,
		handler.NewPaymentHandler(paymentClient),
		handler.NewUploadHandler(imageStore),
		serverOpts,
	)

	logger.Info("starting HTTP server", "addr", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
