package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the handler functions routes are registered against.
type HandlerBundle struct {
	// Auth endpoints.
	RegisterHandler               gin.HandlerFunc
	LoginHandler                  gin.HandlerFunc
	RegisterPatientProfileHandler gin.HandlerFunc
	RegisterDoctorProfileHandler  gin.HandlerFunc

	// Appointment endpoints.
	ListSpecialtiesHandler   gin.HandlerFunc
	ListDoctorsHandler       gin.HandlerFunc
	ListSlotsHandler         gin.HandlerFunc
	HoldSlotHandler          gin.HandlerFunc
	CreateAppointmentHandler gin.HandlerFunc
	PayAppointmentHandler    gin.HandlerFunc

	// Doctor endpoints.
	SeedAvailabilitiesHandler gin.HandlerFunc

	// Consultation endpoints.
	RecordConsultationHandler gin.HandlerFunc
	GetConsultationHandler    gin.HandlerFunc

	// Admin endpoints.
	AppointmentReportHandler gin.HandlerFunc
	ListPatientsHandler      gin.HandlerFunc
	ListDoctorsAdminHandler  gin.HandlerFunc
}
