// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"errors"
	"time"

	"clinicore/database"
	"clinicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned by Hold when the conditional update matched nothing:
// the slot is already booked or held by someone else.
var ErrSlotTaken = errors.New("slot already booked or held")

type AvailabilityRepository interface {
	CreateMany(ctx context.Context, slots []models.Availability) ([]string, error)
	GetByID(ctx context.Context, slotID string) (*models.Availability, error)
	GetOpenByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]models.Availability, error)
	// Hold places a soft lock expiring at now+holdFor. It must be a single
	// conditional write, never read-then-write.
	Hold(ctx context.Context, slotID string, now time.Time, holdFor time.Duration) (*models.Availability, error)
	EnsureIndexes() error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &mongoAvailabilityRepo{
		coll: database.DB().Collection("availabilities"),
	}
}
