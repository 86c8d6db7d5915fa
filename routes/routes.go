package routes

import (
	"net/http"
	"time"

	"spacehub/handlers"
	"spacehub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes sets up the authenticated admin console endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		// Public login endpoint.
		adminGroup.POST("/login", hb.AdminHandler.LoginHandler)

		// Protected routes (Require Authentication)
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())

		// Booking endpoints.
		adminGroup.GET("/bookings", hb.BookingHandler.ListBookings)
		adminGroup.GET("/bookings/:id", hb.BookingHandler.GetBooking)
		adminGroup.GET("/bookings/:id/breakdown", hb.BookingHandler.GetBreakdown)
		adminGroup.POST("/bookings/:id/status", hb.BookingHandler.UpdateStatus)
		adminGroup.POST("/bookings/:id/refund/quote", hb.BookingHandler.QuoteRefund)
		adminGroup.POST("/bookings/:id/refund", hb.BookingHandler.ProcessRefund)
		adminGroup.GET("/bookings/:id/refunds", hb.RefundHandler.ListBookingRefunds)

		// Refund and audit trails.
		adminGroup.GET("/refunds", hb.RefundHandler.ListRefunds)
		adminGroup.GET("/audit", hb.RefundHandler.ListAuditEvents)

		// Listing moderation.
		adminGroup.GET("/listings", hb.ListingHandler.ListListings)
		adminGroup.GET("/listings/:id", hb.ListingHandler.GetListing)
		adminGroup.POST("/listings/:id/moderate", hb.ListingHandler.ModerateListing)
	}
}

// RegisterLegalRoutes registers the public legal content endpoints.
func RegisterLegalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	legalGroup := r.Group("/api/legal")
	{
		legalGroup.GET("", hb.LegalHandler.GetLegalSections)
		legalGroup.GET("/:role", hb.LegalHandler.GetLegalSectionsFor)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Spacehub Admin"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAdminRoutes(r, hb)
	RegisterLegalRoutes(r, hb)
	RegisterHealthRoute(r)
}
