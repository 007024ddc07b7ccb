// File: database/repository/appointment/aggregates.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"clinicore/models"
)

// ReportByStatusAndSpecialty buckets appointments created in [from, to) by
// doctor specialization and status, summing confirmed revenue.
func (r *mongoAppointmentRepo) ReportByStatusAndSpecialty(ctx context.Context, from, to time.Time) ([]models.AppointmentReportRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"createdAt": bson.M{"$gte": from, "$lt": to},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "doctors",
			"localField":   "doctorId",
			"foreignField": "id",
			"as":           "doctor",
		}}},
		{{Key: "$unwind", Value: "$doctor"}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"specialization": "$doctor.specialization",
				"status":         "$status",
			},
			"count": bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$eq": bson.A{"$status", string(models.AppointmentConfirmed)}},
					"$amount",
					0,
				},
			}},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":            0,
			"specialization": "$_id.specialization",
			"status":         "$_id.status",
			"count":          1,
			"revenue":        1,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "specialization", Value: 1}, {Key: "status", Value: 1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate appointment report: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.AppointmentReportRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding report rows: %w", err)
	}
	return rows, nil
}
