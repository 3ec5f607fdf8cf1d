package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotelhub-backend/controllers"
	"hotelhub-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the REST surface. Booking, billing
// and charge routes require a Bearer token; auth and health do not.
func SetupRouter(
	ac *controllers.AuthController,
	bc *controllers.BookingController,
	avc *controllers.AvailabilityController,
	blc *controllers.BillingController,
	rc *controllers.RoomController,
	rcc *controllers.RoomCategoryController,
	cc *controllers.ChargeController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
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

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
	}

	authed := r.Group("", middleware.RequireAuth(jwtSecret))
	{
		bookings := authed.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/users/:userId", bc.GetBookingsByUser)
			bookings.GET("/:id", bc.GetBookingByID)
			bookings.POST("", bc.CreateBooking)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.PATCH("/:id", bc.UpdateBookingStatus)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		authed.GET("/final-billings", blc.GetFinalBillings)
		authed.GET("/final_billing/users/:userId/bookings/:bookingId", blc.CalculateFinalBilling)

		rooms := authed.Group("/rooms")
		{
			// must be registered before the /:id routes
			rooms.GET("/available", avc.GetAvailableRooms)
			rooms.GET("", rc.GetRooms)

			manage := rooms.Group("", middleware.RequireRole("ADMIN", "RECEPTIONIST"))
			{
				manage.POST("", rc.CreateRoom)
				manage.PATCH("/:id", rc.UpdateRoom)
				manage.PUT("/:id", rc.UpdateRoom)
				manage.DELETE("/:id", rc.DeleteRoom)
			}
		}

		categories := authed.Group("/room-categories")
		{
			categories.GET("", rcc.GetRoomCategories)

			manage := categories.Group("", middleware.RequireRole("ADMIN"))
			{
				manage.POST("", rcc.CreateRoomCategory)
				manage.PUT("/:id", rcc.UpdateRoomCategory)
				manage.DELETE("/:id", rcc.DeleteRoomCategory)
			}
		}

		foodOrders := authed.Group("/food-orders")
		{
			foodOrders.POST("", cc.CreateFoodOrder)
			foodOrders.GET("/users/:userId", cc.GetFoodOrdersByUser)
		}

		spaBookings := authed.Group("/spa-bookings")
		{
			spaBookings.POST("", cc.CreateSpaBooking)
			spaBookings.GET("/users/:userId", cc.GetSpaBookingsByUser)
		}
	}

	return r
}
