package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/cache"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/dbx"
	"github.com/BruksfildServices01/barbershop-booking/internal/handlers"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	infraRepo "github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
)

// Deps are the process-wide singletons built in main.
type Deps struct {
	Config    *config.Config
	Gorm      *gorm.DB
	DB        *dbx.DB
	Publisher notify.Publisher
	Cache     cache.Cache
	Uploader  handlers.ImageUploader

	// Google is nil when GOOGLE_CLIENT_ID is not set.
	Google auth.GoogleVerifier
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config
	db := deps.Gorm

	catalogCache := deps.Cache
	if catalogCache == nil {
		catalogCache = cache.Nop{}
	}

	// ======================================================
	// INFRA
	// ======================================================
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)

	bookingRepo := infraRepo.NewBookingSQLRepository(deps.DB)
	reviewRepo := infraRepo.NewReviewSQLRepository(deps.DB)
	notificationRepo := infraRepo.NewNotificationSQLRepository(deps.DB)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens, deps.Google, handlers.AuthOptions{
		VerifyEmailDomain: cfg.VerifyEmailDomain,
		SimulatedGoogle:   cfg.GoogleSimulatedAuth,
	})
	barberHandler := handlers.NewBarberHandler(db, catalogCache)
	serviceHandler := handlers.NewServiceHandler(db, catalogCache)
	galleryHandler := handlers.NewGalleryHandler(db, catalogCache)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, deps.Publisher, cfg.Timezone)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, deps.Publisher, catalogCache)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)

	authenticated := middleware.Authenticate(tokens, db)
	optional := middleware.OptionalAuth(tokens, db)
	admin := middleware.RequireAdmin()

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "route_not_found", "Endpoint tidak ditemukan")
	})

	if !cfg.S3Enabled() && cfg.UploadURL != "" {
		r.Static(cfg.UploadURL, cfg.UploadDir)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		// ------------------------------
		// AUTH
		// ------------------------------
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/google", authHandler.Google)
			authGroup.GET("/check-email", authHandler.CheckEmail)

			authGroup.GET("/me", authenticated, authHandler.Me)
			authGroup.PUT("/profile", authenticated, authHandler.UpdateProfile)
			authGroup.PUT("/change-password", authenticated, authHandler.ChangePassword)
		}

		// ------------------------------
		// CATALOG
		// ------------------------------
		barbers := api.Group("/barbers")
		{
			barbers.GET("", barberHandler.List)
			barbers.GET("/:id", barberHandler.Get)
			barbers.POST("", authenticated, admin, barberHandler.Create)
			barbers.PUT("/:id", authenticated, admin, barberHandler.Update)
			barbers.DELETE("/:id", authenticated, admin, barberHandler.Delete)
		}

		services := api.Group("/services")
		{
			services.GET("", serviceHandler.List)
			services.GET("/categories", serviceHandler.Categories)
			services.GET("/:id", serviceHandler.Get)
			services.POST("", authenticated, admin, serviceHandler.Create)
			services.PUT("/:id", authenticated, admin, serviceHandler.Update)
			services.DELETE("/:id", authenticated, admin, serviceHandler.Delete)
		}

		gallery := api.Group("/gallery")
		{
			gallery.GET("", galleryHandler.List)
			gallery.GET("/categories", galleryHandler.Categories)
			gallery.POST("", authenticated, admin, galleryHandler.Create)
			gallery.PUT("/:id", authenticated, admin, galleryHandler.Update)
			gallery.DELETE("/:id", authenticated, admin, galleryHandler.Delete)
		}

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		bookings := api.Group("/bookings")
		{
			bookings.GET("/booked-slots", bookingHandler.BookedSlots)
			bookings.GET("/my-bookings", authenticated, bookingHandler.Mine)
			bookings.POST("", optional, bookingHandler.Create)
			bookings.POST("/:id/cancel", authenticated, bookingHandler.Cancel)

			bookings.GET("", authenticated, admin, bookingHandler.List)
			bookings.GET("/stats", authenticated, admin, bookingHandler.Stats)
			bookings.GET("/:id", authenticated, bookingHandler.Get)
			bookings.PUT("/:id/status", authenticated, admin, bookingHandler.UpdateStatus)
		}

		// ------------------------------
		// REVIEWS
		// ------------------------------
		reviews := api.Group("/reviews")
		{
			reviews.GET("", reviewHandler.List)
			reviews.GET("/top", reviewHandler.Top)
			reviews.GET("/barber/:barberId", reviewHandler.ForBarber)
			reviews.GET("/booking/:bookingId/check", reviewHandler.CheckBooking)
			reviews.POST("", optional, reviewHandler.Create)
			reviews.DELETE("/:id", authenticated, admin, reviewHandler.Delete)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		notifications := api.Group("/notifications", authenticated, admin)
		{
			notifications.GET("", notificationHandler.List)
			notifications.PUT("/read-all", notificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
			notifications.DELETE("/:id", notificationHandler.Delete)
			notifications.DELETE("", notificationHandler.Clear)
		}

		if deps.Uploader != nil {
			uploadHandler := handlers.NewUploadHandler(deps.Uploader)
			api.POST("/upload", authenticated, admin, uploadHandler.Upload)
		}
	}
}
