package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/staywise/internal/container"
	"github.com/joshua-takyi/staywise/internal/handlers"
	"github.com/joshua-takyi/staywise/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "staywise-api",
			})
		})

		// public routes
		api.POST("/user/signup", handlers.Signup(container.UserService))
		api.POST("/user/auth", handlers.Login(container.UserService))
	}

	protected := api.Group("/")
	protected.Use(middleware.Auth(container.Tokens))

	protected.GET("/user/details", handlers.GetUserDetails(container.UserService))

	propertyRoutes := protected.Group("/properties")
	{
		propertyRoutes.GET("", handlers.ListProperties(container.PropertyService))
		propertyRoutes.GET("/:id", handlers.GetPropertyByID(container.PropertyService))
	}

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.GET("", handlers.ListBookings(container.BookingService))
		bookingRoutes.POST("", handlers.CreateBooking(container.BookingService))
		bookingRoutes.DELETE("/:bookingId", handlers.CancelBooking(container.BookingService))
		bookingRoutes.GET("/admin", handlers.ListBookingsForAdmin(container.BookingService))
	}

	return r
}
