package report

import (
	"context"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	"clinicore/models"
)

type ReportService interface {
	AppointmentReport(ctx context.Context, from, to time.Time) ([]models.AppointmentReportRow, error)
}

// DefaultReportService aggregates appointment counts and confirmed revenue for
// administrative reporting.
type DefaultReportService struct {
	Appointments appointmentRepo.AppointmentRepository
}

func (s *DefaultReportService) AppointmentReport(ctx context.Context, from, to time.Time) ([]models.AppointmentReportRow, error) {
	if to.Before(from) {
		from, to = to, from
	}
	rows, err := s.Appointments.ReportByStatusAndSpecialty(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.AppointmentReportRow{}
	}
	return rows, nil
}
