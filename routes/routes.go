package routes

import (
	"net/http"
	"time"

	"clinicore/handlers"
	"clinicore/middleware"
	"clinicore/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterAppointmentRoutes sets up the endpoints for the scheduling core.
// Browsing is public; hold, create and pay require a patient identity.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.GET("/specialties", hb.ListSpecialtiesHandler)
		api.GET("/doctors", hb.ListDoctorsHandler)
		api.GET("/slots", hb.ListSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthPatientMiddleware())
		protected.POST("/hold", hb.HoldSlotHandler)
		protected.POST("", hb.CreateAppointmentHandler)
		protected.POST("/pay", hb.PayAppointmentHandler)
	}
}

// RegisterDoctorRoutes registers doctor profile and slot-seeding endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.Use(middleware.JWTAuthDoctorMiddleware())
		api.POST("/profile", hb.RegisterDoctorProfileHandler)
		api.POST("/availabilities", hb.SeedAvailabilitiesHandler)
	}
}

// RegisterPatientRoutes registers patient profile endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.Use(middleware.JWTAuthPatientMiddleware())
		api.POST("/profile", hb.RegisterPatientProfileHandler)
	}
}

// RegisterConsultationRoutes registers consultation endpoints.
func RegisterConsultationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/consultations")
	{
		api.POST("", middleware.JWTAuthDoctorMiddleware(), hb.RecordConsultationHandler)
		api.GET("/:appointmentId", middleware.JWTAuthMiddleware("patient", "doctor", "admin"), hb.GetConsultationHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("/reports/appointments", hb.AppointmentReportHandler)
		api.GET("/patients", hb.ListPatientsHandler)
		api.GET("/doctors", hb.ListDoctorsAdminHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterConsultationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
