// File: database/repository/consultation/consultation_mongo.go
package consultationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinicore/database"
	"clinicore/models"
)

// ErrAlreadyRecorded is returned when a consultation already exists for the
// appointment.
var ErrAlreadyRecorded = errors.New("consultation already recorded for this appointment")

type ConsultationRepository interface {
	Create(ctx context.Context, cons *models.Consultation) error
	GetByAppointmentID(ctx context.Context, apptID string) (*models.Consultation, error)
	EnsureIndexes() error
}

type mongoConsultationRepo struct {
	coll *mongo.Collection
}

// NewMongoConsultationRepo constructs a new MongoDB ConsultationRepository.
func NewMongoConsultationRepo() ConsultationRepository {
	return &mongoConsultationRepo{
		coll: database.DB().Collection("consultations"),
	}
}

func (r *mongoConsultationRepo) Create(ctx context.Context, cons *models.Consultation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if cons.ID == "" {
		cons.ID = uuid.New().String()
	}
	cons.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, cons)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyRecorded
		}
		return fmt.Errorf("failed to insert consultation: %w", err)
	}
	return nil
}

func (r *mongoConsultationRepo) GetByAppointmentID(ctx context.Context, apptID string) (*models.Consultation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cons models.Consultation
	err := r.coll.FindOne(ctx, bson.M{"appointmentId": apptID}).Decode(&cons)
	if err != nil {
		return nil, err
	}
	return &cons, nil
}

// EnsureIndexes creates the necessary indexes on the consultations collection.
func (r *mongoConsultationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One consultation per appointment.
		{
			Keys:    bson.D{{Key: "appointmentId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_appointment"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create consultation indexes: %w", err)
	}
	return nil
}
