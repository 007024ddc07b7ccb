package handlers

import (
	"errors"
	"net/http"

	doctorRepo "clinicore/database/repository/doctor"
	"clinicore/models"
	"clinicore/services/consultation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConsultationHandler adapts consultation recording and retrieval requests.
type ConsultationHandler struct {
	Svc     consultation.ConsultationService
	Doctors doctorRepo.DoctorRepository
	Logger  *zap.Logger
}

// NewConsultationHandler constructs a ConsultationHandler.
func NewConsultationHandler(svc consultation.ConsultationService, doctors doctorRepo.DoctorRepository, logger *zap.Logger) *ConsultationHandler {
	return &ConsultationHandler{Svc: svc, Doctors: doctors, Logger: logger}
}

// RecordConsultationHandler handles POST /api/consultations. Doctor only.
func (h *ConsultationHandler) RecordConsultationHandler(c *gin.Context) {
	var req models.RecordConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	doc, err := h.Doctors.GetByUserID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor profile not found"})
		return
	}

	cons, err := h.Svc.Record(c.Request.Context(), doc.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, consultation.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, consultation.ErrWrongDoctor):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, consultation.ErrNotConfirmed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("consultation recording failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": cons})
}

// GetConsultationHandler handles GET /api/consultations/:appointmentId.
func (h *ConsultationHandler) GetConsultationHandler(c *gin.Context) {
	apptID := c.Param("appointmentId")

	cons, err := h.Svc.GetByAppointment(c.Request.Context(), apptID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "consultation not found"})
		return
	}

	// Patients may only read their own record.
	if c.GetString("role") == string(models.RolePatient) && cons.PatientID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your consultation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cons})
}
