package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotel-infinity/config"
	"hotel-infinity/controllers"
	"hotel-infinity/middleware"
	"hotel-infinity/store"
)

// SetupRouter wires the public site surface, the auth endpoints and the
// token-gated admin surface around one shared store.
func SetupRouter(cfg *config.Config, s *store.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := cfg.CORSOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	roomController := controllers.NewRoomController(s)
	hallController := controllers.NewHallController(s)
	reviewController := controllers.NewReviewController(s)
	bookingController := controllers.NewBookingController(s)
	paymentController := controllers.NewPaymentController(s)
	settingsController := controllers.NewSettingsController(s)
	authController := controllers.NewAuthController(s)
	dashboardController := controllers.NewDashboardController(s)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Public site surface.
		rooms := api.Group("/rooms")
		{
			rooms.GET("", roomController.GetRooms)
			rooms.GET("/:id", roomController.GetRoomByID)
		}

		halls := api.Group("/halls")
		{
			halls.GET("", hallController.GetHalls)
			halls.GET("/:id", hallController.GetHallByID)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", reviewController.GetReviews)
			reviews.POST("", reviewController.CreateReview)
		}

		api.GET("/settings", settingsController.GetSettings)
		api.POST("/bookings", bookingController.CreateBooking)

		auth := api.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.POST("/register", authController.Register)
			auth.POST("/logout", authController.Logout)
			auth.GET("/me", authController.Me)
		}

		// Admin back office. The store re-checks the token on every
		// mutation; the middleware fails fast for the whole group.
		admin := api.Group("/admin", middleware.RequireAdmin(s))
		{
			admin.GET("/dashboard", dashboardController.GetStats)

			admin.POST("/rooms", roomController.CreateRoom)
			admin.PATCH("/rooms/:id", roomController.UpdateRoom)
			admin.PUT("/rooms/:id", roomController.UpdateRoom)
			admin.DELETE("/rooms/:id", roomController.DeleteRoom)

			admin.POST("/halls", hallController.CreateHall)
			admin.PATCH("/halls/:id", hallController.UpdateHall)
			admin.PUT("/halls/:id", hallController.UpdateHall)
			admin.DELETE("/halls/:id", hallController.DeleteHall)

			admin.GET("/reviews", reviewController.GetAllReviews)
			admin.PATCH("/reviews/:id", reviewController.UpdateReview)
			admin.PATCH("/reviews/:id/approve", reviewController.ApproveReview)
			admin.DELETE("/reviews/:id", reviewController.DeleteReview)

			admin.GET("/bookings", bookingController.GetBookings)
			admin.GET("/bookings/:id", bookingController.GetBookingByID)
			admin.PATCH("/bookings/:id", bookingController.UpdateBooking)
			admin.DELETE("/bookings/:id", bookingController.DeleteBooking)

			admin.GET("/payments", paymentController.GetPayments)
			admin.POST("/payments", paymentController.CreatePayment)
			admin.PATCH("/payments/:id", paymentController.UpdatePayment)

			admin.PUT("/settings", settingsController.UpdateSettings)
		}
	}

	return r
}
