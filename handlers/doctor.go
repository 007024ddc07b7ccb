package handlers

import (
	"net/http"

	doctorRepo "clinicore/database/repository/doctor"
	"clinicore/models"
	"clinicore/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler adapts doctor-facing slot management requests.
type DoctorHandler struct {
	Seeder  scheduling.SlotSeeder
	Doctors doctorRepo.DoctorRepository
	Logger  *zap.Logger
}

// NewDoctorHandler constructs a DoctorHandler.
func NewDoctorHandler(seeder scheduling.SlotSeeder, doctors doctorRepo.DoctorRepository, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{Seeder: seeder, Doctors: doctors, Logger: logger}
}

// SeedAvailabilitiesHandler handles POST /api/doctors/availabilities. The
// authenticated doctor seeds slots on their own calendar.
func (h *DoctorHandler) SeedAvailabilitiesHandler(c *gin.Context) {
	var req models.SeedAvailabilitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	doc, err := h.Doctors.GetByUserID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor profile not found"})
		return
	}

	slots, err := h.Seeder.SeedSlots(c.Request.Context(), doc.ID, req)
	if err != nil {
		h.Logger.Warn("slot seeding failed", zap.String("doctorId", doc.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": slots})
}
