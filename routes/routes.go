package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/models"
	"salonbook/utils"
)

// RegisterCatalogRoutes registers the public salon catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/salons/:slug")
	{
		api.GET("", hb.Catalog.GetSalon)
		api.GET("/services", hb.Catalog.GetServices)
		api.GET("/stylists", hb.Catalog.GetStylists)
	}
}

// RegisterBookingRoutes sets up the stepwise booking flow. The flow itself is
// anonymous (session-scoped); only checkout requires authentication.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	flow := r.Group("/api/salons/:slug/booking")
	{
		flow.GET("/draft", hb.Booking.GetDraft)
		flow.POST("/services", hb.Booking.AddService)
		flow.PUT("/services", hb.Booking.SetServices)
		flow.DELETE("/services/:serviceID", hb.Booking.RemoveService)
		flow.PUT("/stylist", hb.Booking.SetStylist)
		flow.PUT("/date", hb.Booking.SetDate)
		flow.PUT("/time", hb.Booking.SetTime)
		flow.GET("/slots", hb.Booking.GetSlots)
		flow.GET("/summary", hb.Booking.GetSummary)
		flow.DELETE("/draft", hb.Booking.ResetDraft)

		flow.POST("/checkout", middleware.JWTAuthMiddleware(), hb.Booking.Checkout)
	}
}

// RegisterAccountRoutes registers auth and the user's booking history.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", hb.Auth.Register)
		auth.POST("/login", hb.Auth.Login)
		auth.GET("/me", middleware.JWTAuthMiddleware(), hb.Auth.Me)
		auth.PUT("/me", middleware.JWTAuthMiddleware(), hb.Auth.UpdateMe)
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.Use(middleware.JWTAuthMiddleware())
		bookings.GET("", hb.Booking.ListBookings)
		bookings.GET("/:bookingID", hb.Booking.GetBooking)
		bookings.POST("/:bookingID/reschedule", hb.Booking.Reschedule)
	}
}

// RegisterAdminRoutes sets up catalog management for salon administrators.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.JWTAuthMiddleware())
		admin.Use(middleware.RequireRole(models.RoleSalonAdmin, models.RoleSuperAdmin))

		admin.POST("/salons", hb.Admin.CreateSalon)

		salon := admin.Group("/salons/:salonID")
		salon.GET("/services", hb.Admin.ListServices)
		salon.POST("/services", hb.Admin.CreateService)
		salon.PUT("/services/:serviceID", hb.Admin.UpdateService)
		salon.PATCH("/services/:serviceID/active", hb.Admin.SetServiceActive)
		salon.GET("/stylists", hb.Admin.ListStylists)
		salon.POST("/stylists", hb.Admin.CreateStylist)
		salon.PUT("/stylists/:stylistID", hb.Admin.UpdateStylist)
		salon.PATCH("/stylists/:stylistID/active", hb.Admin.SetStylistActive)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
