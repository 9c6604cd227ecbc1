package routes

import (
	"net/http"
	"time"

	"healthhub/handlers"
	"healthhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDirectoryRoutes registers the public specialist and hospital
// directory endpoints. Slot availability is public too so patients can
// browse before identifying themselves.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/specialists", hb.ListSpecialistsHandler)
		api.GET("/specialists/:id", hb.GetSpecialistHandler)
		api.GET("/specialists/:id/slots", hb.GetAvailableSlotsHandler)
		api.GET("/hospitals", hb.ListHospitalsHandler)
		api.GET("/hospitals/:id", hb.GetHospitalHandler)
	}
}

// RegisterAppointmentRoutes registers the appointment lifecycle
// endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.IdentityMiddleware())
		api.POST("", hb.BookAppointmentHandler)
		api.GET("", hb.ListAppointmentsHandler)
		api.PUT("/:id/cancel", hb.CancelAppointmentHandler)
		api.PUT("/:id/reminder", hb.ToggleReminderHandler)
	}
}

// RegisterVaccineRoutes registers the vaccine catalog and waitlist
// endpoints. The catalog is public; joining a waitlist needs identity.
func RegisterVaccineRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vaccines")
	{
		api.GET("", hb.ListVaccinesHandler)
		api.POST("/:id/waitlist", middleware.IdentityMiddleware(), hb.JoinWaitlistHandler)
	}
}

// RegisterNotificationRoutes registers the notification feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.IdentityMiddleware())
		api.GET("", hb.ListNotificationsHandler)
		api.GET("/unread-count", hb.UnreadCountHandler)
		api.PUT("/:id/read", hb.MarkReadHandler)
		api.PUT("/read-all", hb.MarkAllReadHandler)
	}
}

// RegisterTelemedicineRoutes registers the remote-consultation
// endpoints.
func RegisterTelemedicineRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/telemedicine")
	{
		api.Use(middleware.IdentityMiddleware())
		api.GET("", hb.ListSessionsHandler)
		api.PUT("/:id/status", hb.UpdateSessionStatusHandler)
	}
}

// RegisterProfileRoutes registers profile and medical-history
// endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.IdentityMiddleware())
		api.GET("/profile", hb.GetProfileHandler)
		api.PUT("/profile", hb.UpdateProfileHandler)
		api.GET("/medical-history", hb.MedicalHistoryHandler)
		api.GET("/treatments", hb.TreatmentsHandler)
	}
}

// RegisterGuidanceRoutes registers the medical-guidance chat endpoint.
func RegisterGuidanceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/guidance")
	{
		api.Use(middleware.IdentityMiddleware())
		api.POST("/chat", hb.GuidanceChatHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Health Hub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterDirectoryRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterVaccineRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterTelemedicineRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterGuidanceRoutes(r, hb)
}
