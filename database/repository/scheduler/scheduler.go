// File: database/repository/scheduler/scheduler.go
package schedulerRepo

import (
	"context"

	"clinicore/database"
	"clinicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SchedulerRepository owns the cross-collection writes of the booking workflow.
type SchedulerRepository interface {
	// ConfirmBooking marks the availability booked and the appointment
	// confirmed as one unit: both writes commit or neither does.
	ConfirmBooking(ctx context.Context, apptID, slotID, provider, txnRef string) (*models.Appointment, error)
}

type MongoSchedulerRepo struct {
	apptColl  *mongo.Collection
	availColl *mongo.Collection
}

// NewMongoSchedulerRepo constructs a new MongoDB SchedulerRepository.
func NewMongoSchedulerRepo() *MongoSchedulerRepo {
	db := database.DB()
	return &MongoSchedulerRepo{
		apptColl:  db.Collection("appointments"),
		availColl: db.Collection("availabilities"),
	}
}
