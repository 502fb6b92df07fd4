package routes

import (
	"net/http"
	"time"

	"taskturf/handlers"
	"taskturf/middleware"
	"taskturf/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RegisterAuthRoutes registers public account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.SigninHandler)
	}
}

// RegisterUserRoutes registers account management endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authCache *redis.Client) {
	api := r.Group("/api/users")
	api.Use(middleware.JWTAuthMiddleware(authCache))
	{
		api.GET("/me", hb.MeHandler)
		api.PATCH("/me", hb.UpdateProfileHandler)
		api.PUT("/me/password", hb.ChangePasswordHandler)
		api.POST("/logout", hb.SignOutHandler)

		// Worker-only: availability toggling is explicit and never done
		// by the matcher.
		api.PUT("/me/availability", middleware.RequireRole(models.RoleWorker), hb.SetAvailabilityHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authCache *redis.Client) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthMiddleware(authCache))
	{
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)

		// Customer-side operations.
		customer := api.Group("")
		customer.Use(middleware.RequireRole(models.RoleCustomer))
		customer.POST("", hb.CreateBookingHandler)
		customer.PATCH("/:id", hb.UpdateDetailsHandler)
		customer.POST("/:id/cancel", hb.CancelHandler)
		customer.POST("/:id/pay", hb.PayHandler)

		// Worker-side operations.
		worker := api.Group("")
		worker.Use(middleware.RequireRole(models.RoleWorker))
		worker.POST("/:id/respond", hb.RespondHandler)
		worker.POST("/:id/start", hb.StartHandler)
		worker.POST("/:id/complete", hb.CompleteHandler)
	}
}

// RegisterWorkerRoutes registers worker discovery endpoints.
func RegisterWorkerRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authCache *redis.Client) {
	api := r.Group("/api/workers")
	api.Use(middleware.JWTAuthMiddleware(authCache))
	{
		api.GET("/match", hb.MatchCandidatesHandler)
	}
}

// RegisterNotificationRoutes registers the pull-based inbox endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authCache *redis.Client) {
	api := r.Group("/api/notifications")
	api.Use(middleware.JWTAuthMiddleware(authCache))
	{
		api.GET("", hb.ListNotificationsHandler)
		api.GET("/unread-count", hb.UnreadCountHandler)
		api.PUT("/:id/read", hb.MarkReadHandler)
		api.PUT("/read-all", hb.MarkAllReadHandler)
	}
}

// RegisterDashboardRoutes registers the stats endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authCache *redis.Client) {
	api := r.Group("/api/dashboard")
	api.Use(middleware.JWTAuthMiddleware(authCache))
	{
		api.GET("", hb.DashboardHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TaskTurf"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authCache *redis.Client) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb, authCache)
	RegisterBookingRoutes(r, hb, authCache)
	RegisterWorkerRoutes(r, hb, authCache)
	RegisterNotificationRoutes(r, hb, authCache)
	RegisterDashboardRoutes(r, hb, authCache)
}
