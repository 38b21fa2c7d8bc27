package api

import (
	"log"
	stdhttp "net/http"

	intconfig "flightdesk/internal/config"
	h "flightdesk/internal/http/handlers"
	"flightdesk/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.Metrics(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	adminOnly := []gin.HandlerFunc{
		middleware.JWTAuth(env.JWTSecret),
		middleware.RequireRoles("admin", "owner"),
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Catalog (storefront, public)
		api.GET("/flights/:id", h.GetFlight)
		api.GET("/fare-packages", h.ListFarePackages)
		api.GET("/ancillaries", h.ListAncillaries)

		// Draft itinerary + quote
		api.GET("/draft", h.GetDraft)
		api.PUT("/draft", h.SaveDraft)
		api.DELETE("/draft", h.ResetDraft)
		api.POST("/quote", h.Quote)

		// Bookings (customer)
		bookings := api.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.POST("/direct", h.CreateBookingDirect)
		bookings.GET("/:id", h.GetBooking)
		bookings.GET("/reference/:reference", h.GetBookingByReference)
		bookings.POST("/:id/cancel-request", h.RequestCancellation)
		bookings.POST("/:id/payments", h.SubmitPayment)

		// Documents
		api.GET("/passengers/:id/e-ticket", h.GetPassengerETicketPDF)
		api.GET("/bookings/:id/invoice", h.GetBookingInvoicePDF)

		// Back office
		admin := api.Group("/admin", adminOnly...)
		{
			adminBookings := admin.Group("/bookings")
			adminBookings.GET("", h.ListBookings)
			adminBookings.GET("/:id", h.GetBookingAdmin)
			adminBookings.PUT("/:id/confirm-payment", h.ConfirmPaymentAdmin)
			adminBookings.PUT("/:id/approve-cancellation", h.ApproveCancellation)
			adminBookings.PUT("/:id/reject-cancellation", h.RejectCancellation)
			adminBookings.PUT("/:id/complete", h.CompleteBooking)

			airports := admin.Group("/airports")
			airports.GET("", h.GetAirports)
			airports.POST("", h.SaveAirport)
			airports.PUT("/:id", h.SaveAirport)
			airports.DELETE("/:id", h.DeleteAirport)

			airlines := admin.Group("/airlines")
			airlines.GET("", h.GetAirlines)
			airlines.POST("", h.SaveAirline)
			airlines.PUT("/:id", h.SaveAirline)
			airlines.DELETE("/:id", h.DeleteAirline)

			aircraft := admin.Group("/aircraft")
			aircraft.GET("", h.GetAircraft)
			aircraft.POST("", h.SaveAircraft)
			aircraft.PUT("/:id", h.SaveAircraft)
			aircraft.DELETE("/:id", h.DeleteAircraft)

			promotions := admin.Group("/promotions")
			promotions.GET("", h.GetPromotions)
			promotions.POST("", h.SavePromotion)
			promotions.PUT("/:id", h.SavePromotion)
			promotions.DELETE("/:id", h.DeletePromotion)
		}
	}

	return r
}
