package handlers

import (
	"net/http"

	"clinicore/services/scheduling"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler adapts HTTP requests onto the scheduling service.
type AppointmentHandler struct {
	Svc    scheduling.Service
	Logger *zap.Logger
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc scheduling.Service, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Logger: logger}
}

// ListSpecialtiesHandler handles GET /api/appointments/specialties.
func (h *AppointmentHandler) ListSpecialtiesHandler(c *gin.Context) {
	specialties, err := h.Svc.ListSpecialties(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": specialties})
}

// ListDoctorsHandler handles GET /api/appointments/doctors?specialty=.
func (h *AppointmentHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Svc.ListDoctorsBySpecialty(c.Request.Context(), c.Query("specialty"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": doctors})
}

// ListSlotsHandler handles GET /api/appointments/slots?doctorId=&date=.
func (h *AppointmentHandler) ListSlotsHandler(c *gin.Context) {
	slots, err := h.Svc.ListSlots(c.Request.Context(), c.Query("doctorId"), c.Query("date"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": slots})
}

// HoldSlotHandler handles POST /api/appointments/hold.
func (h *AppointmentHandler) HoldSlotHandler(c *gin.Context) {
	var input struct {
		SlotID string `json:"slotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	slot, err := h.Svc.HoldSlot(c.Request.Context(), input.SlotID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": slot})
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var input struct {
		DoctorID string `json:"doctorId"`
		SlotID   string `json:"slotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	patientID := c.GetString("userID")
	appt, err := h.Svc.CreateAppointment(c.Request.Context(), patientID, input.DoctorID, input.SlotID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": appt})
}

// PayAppointmentHandler handles POST /api/appointments/pay.
func (h *AppointmentHandler) PayAppointmentHandler(c *gin.Context) {
	var input struct {
		AppointmentID string `json:"appointmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Svc.PayAndConfirm(c.Request.Context(), input.AppointmentID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": appt})
}

// respondError maps scheduling domain errors straight onto their HTTP status;
// anything else is a 500.
func (h *AppointmentHandler) respondError(c *gin.Context, err error) {
	status := scheduling.StatusOf(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error("scheduling request failed", zap.Error(err))
		utils.JSONError(c, status, "Internal Server Error", "")
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
