// File: database/repository/scheduler/transaction.go
package schedulerRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConfirmBooking wraps the two confirmation writes in a Mongo session so a
// crash cannot leave the slot unbooked with the appointment confirmed, or the
// other way round.
func (repo *MongoSchedulerRepo) ConfirmBooking(ctx context.Context, apptID, slotID, provider, txnRef string) (*models.Appointment, error) {
	client := repo.apptColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var confirmed models.Appointment

	txnFn := func(sc mongo.SessionContext) error {
		now := time.Now()

		slotRes, err := repo.availColl.UpdateOne(sc,
			bson.M{"id": slotID},
			bson.M{"$set": bson.M{"isBooked": true, "holdUntil": nil}},
		)
		if err != nil {
			return fmt.Errorf("mark slot booked failed: %w", err)
		}
		if slotRes.MatchedCount == 0 {
			return fmt.Errorf("availability %s not found", slotID)
		}

		update := bson.M{
			"$set": bson.M{
				"status":           models.AppointmentConfirmed,
				"payment.provider": provider,
				"payment.status":   models.PaymentSuccess,
				"payment.txnRef":   txnRef,
				"updatedAt":        now,
			},
		}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		if err := repo.apptColl.FindOneAndUpdate(sc, bson.M{"id": apptID}, update, opts).Decode(&confirmed); err != nil {
			return fmt.Errorf("mark appointment confirmed failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, fmt.Errorf("confirmation transaction failed: %w", err)
	}

	return &confirmed, nil
}
