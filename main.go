package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"studio-backend/config"
	"studio-backend/controllers"
	"studio-backend/middleware"
	"studio-backend/routes"
	"studio-backend/services"
	"studio-backend/utils"
)

func main() {
	// .env is optional
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	utils.InitLogger(cfg.Environment, cfg.LogLevel)
	if envErr != nil {
		log.Debug().Msg(".env not found; continuing with environment variables")
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("database connect failed")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("database handle unavailable")
	}
	log.Info().Str("driver", cfg.DBDriver).Msg("database connected and migrated")

	redisClient, err := config.ConnectRedis(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable; using in-process rate limiting")
		redisClient = nil
	}

	// services
	reviewService := services.NewReviewService(db)
	faqService := services.NewFaqService(db)
	galleryService := services.NewGalleryService(db)
	availabilityService := services.NewAvailabilityService(db)
	adminLogService := services.NewAdminLogService(db)
	userService := services.NewUserService(db)
	sessionService := services.NewSessionService(db, cfg.SessionTTL)
	statsService := services.NewStatsService(faqService, galleryService, reviewService)
	contactService := services.NewContactService(db, utils.NewMailer(cfg.SendGridAPIKey, cfg.MailFrom), cfg.ContactNotifyTo)
	chatService := services.NewChatService(db)
	settingsService := services.NewSettingsService(db)
	imageStore := services.NewImageStore(cfg.UploadDir, "/uploads")

	scheduler, err := services.StartScheduler(sessionService)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler start failed")
	}

	// controllers
	handlers := routes.Controllers{
		Auth:         controllers.NewAuthController(userService, sessionService, adminLogService, cfg.SessionCookieSecure),
		Admin:        controllers.NewAdminController(statsService, adminLogService),
		Reviews:      controllers.NewReviewController(reviewService, adminLogService),
		Availability: controllers.NewAvailabilityController(availabilityService, adminLogService),
		Faqs:         controllers.NewFaqController(faqService, adminLogService),
		Galleries:    controllers.NewGalleryController(galleryService, imageStore, adminLogService),
		Contact:      controllers.NewContactController(contactService),
		Chat:         controllers.NewChatController(chatService, controllers.NewChatHub(), cfg.CORSOrigins),
		Settings:     controllers.NewSettingsController(settingsService, adminLogService),
	}

	limits := routes.Limiters{
		Submit: middleware.NewLimiter(redisClient, cfg.SubmitRateLimit, time.Hour),
		Login:  middleware.NewLimiter(redisClient, cfg.LoginRateLimit, time.Hour),
	}
	router := routes.SetupRouter(cfg, handlers, sessionService, limits)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Environment).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	<-scheduler.Stop().Done()
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("database close failed")
	}

	log.Info().Msg("server stopped gracefully")
}
