package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"studio-backend/config"
	"studio-backend/controllers"
	"studio-backend/middleware"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Admin        *controllers.AdminController
	Reviews      *controllers.ReviewController
	Availability *controllers.AvailabilityController
	Faqs         *controllers.FaqController
	Galleries    *controllers.GalleryController
	Contact      *controllers.ContactController
	Chat         *controllers.ChatController
	Settings     *controllers.SettingsController
}

// Limiters holds the rate limit buckets. Login has its own budget so public
// form traffic from a shared address cannot lock an admin out.
type Limiters struct {
	Submit middleware.Limiter
	Login  middleware.Limiter
}

func corsConfig(origins []string) cors.Config {
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "Retry-After"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter wires every route. Admin routes sit behind RequireAdmin and
// public submissions behind the rate limiters.
func SetupRouter(cfg *config.Config, h Controllers, auth middleware.Authenticator, limits Limiters) *gin.Engine {
	controllers.RegisterValidators()

	r := gin.New()
	// X-Forwarded-For is only honoured from configured proxies; otherwise
	// ClientIP is the socket peer and rate limit keys cannot be spoofed.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Fatal().Err(err).Strs("trusted_proxies", cfg.TrustedProxies).Msg("invalid TRUSTED_PROXIES")
	}
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	r.Static("/uploads", cfg.UploadDir)

	requireAdmin := middleware.RequireAdmin(auth)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ws/chat", h.Chat.Serve)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", middleware.RateLimit(limits.Login, "login"), h.Auth.Login)
			authRoutes.POST("/logout", h.Auth.Logout)
			authRoutes.GET("/me", requireAdmin, h.Auth.Me)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", h.Reviews.ListApproved)
			reviews.POST("", middleware.RateLimit(limits.Submit, "reviews"), h.Reviews.Create)
			reviews.GET("/pending", requireAdmin, h.Reviews.ListPending)
			reviews.PATCH("/:id", requireAdmin, h.Reviews.Update)
		}

		availability := api.Group("/availability")
		{
			availability.GET("", h.Availability.ListWindow)
			availability.POST("", requireAdmin, h.Availability.CreateDate)
			availability.PATCH("/:id", requireAdmin, h.Availability.UpdateDate)
			availability.POST("/:id/timeslots", requireAdmin, h.Availability.CreateTimeSlot)
			availability.PATCH("/timeslots/:id", requireAdmin, h.Availability.UpdateTimeSlot)
		}

		api.GET("/galleries/access/:code", h.Galleries.GetByAccessCode)

		categories := api.Group("/faq-categories")
		{
			categories.GET("", h.Faqs.ListCategories)
			categories.POST("", requireAdmin, h.Faqs.CreateCategory)
			categories.PATCH("/:id", requireAdmin, h.Faqs.UpdateCategory)
			categories.DELETE("/:id", requireAdmin, h.Faqs.DeleteCategory)
		}

		faqs := api.Group("/faqs")
		{
			faqs.GET("", h.Faqs.ListFaqs)
			faqs.POST("", requireAdmin, h.Faqs.CreateFaq)
			faqs.PATCH("/:id", requireAdmin, h.Faqs.UpdateFaq)
			faqs.DELETE("/:id", requireAdmin, h.Faqs.DeleteFaq)
		}

		api.GET("/settings", h.Settings.Get)
		api.POST("/contact", middleware.RateLimit(limits.Submit, "contact"), h.Contact.Create)
		api.GET("/chat/messages", h.Chat.History)

		admin := api.Group("/admin", requireAdmin)
		{
			admin.GET("/stats", h.Admin.GetStats)
			admin.GET("/logs", h.Admin.ListLogs)
			admin.GET("/galleries", h.Galleries.List)
			admin.POST("/galleries", h.Galleries.Create)
			admin.POST("/galleries/:id/photos", h.Galleries.AddPhoto)
			admin.GET("/contact", h.Contact.List)
			admin.PUT("/settings", h.Settings.Update)
		}
	}

	return r
}
