// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"clinicore/database"
	"clinicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotAlreadyBooked is returned by Create when the unique availabilityId
// index rejects a second appointment for the same slot.
var ErrSlotAlreadyBooked = errors.New("slot already backs another appointment")

type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, apptID string) (*models.Appointment, error)
	GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	SetPaymentFailed(ctx context.Context, apptID, provider string) error
	ReportByStatusAndSpecialty(ctx context.Context, from, to time.Time) ([]models.AppointmentReportRow, error)
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
