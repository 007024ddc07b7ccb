// File: database/repository/availability/queries.go
package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinicore/models"
)

func (r *mongoAvailabilityRepo) GetOpenByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"isBooked": false,
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availabilities: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.Availability
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding availabilities: %w", err)
	}
	return slots, nil
}

// Hold performs the single atomic conditional update that resolves the race
// between two simultaneous holders: matches the slot only when it is unbooked
// and carries no unexpired hold, and sets holdUntil in the same write.
func (r *mongoAvailabilityRepo) Hold(ctx context.Context, slotID string, now time.Time, holdFor time.Duration) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":       slotID,
		"isBooked": false,
		"$or": []bson.M{
			{"holdUntil": nil},
			{"holdUntil": bson.M{"$lt": now}},
		},
	}
	update := bson.M{
		"$set": bson.M{"holdUntil": now.Add(holdFor)},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.Availability
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to hold slot: %w", err)
	}
	return &slot, nil
}
