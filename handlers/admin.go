package handlers

import (
	"net/http"
	"time"

	"clinicore/models"
	"clinicore/services/report"
	"clinicore/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler adapts administrative reporting and listing requests.
type AdminHandler struct {
	Reports report.ReportService
	Users   user.UserService
	Logger  *zap.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(reports report.ReportService, users user.UserService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Reports: reports, Users: users, Logger: logger}
}

// AppointmentReportHandler handles GET /api/admin/reports/appointments?from=&to=.
// Missing bounds default to the last 30 days.
func (h *AdminHandler) AppointmentReportHandler(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if v := c.Query("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date"})
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date"})
			return
		}
		to = t.AddDate(0, 0, 1) // inclusive end day
	}

	rows, err := h.Reports.AppointmentReport(c.Request.Context(), from, to)
	if err != nil {
		h.Logger.Error("appointment report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// ListPatientsHandler handles GET /api/admin/patients.
func (h *AdminHandler) ListPatientsHandler(c *gin.Context) {
	users, err := h.Users.ListUsersByRole(c.Request.Context(), models.RolePatient)
	if err != nil {
		h.Logger.Error("failed to list patients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list patients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// ListDoctorsHandler handles GET /api/admin/doctors.
func (h *AdminHandler) ListDoctorsHandler(c *gin.Context) {
	users, err := h.Users.ListUsersByRole(c.Request.Context(), models.RoleDoctor)
	if err != nil {
		h.Logger.Error("failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list doctors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}
