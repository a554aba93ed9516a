package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"concierge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// appointmentIndexModels defines the collection indexes. The slot index is
// partial over the active statuses listed with $in: partialFilterExpression
// accepts only a restricted operator set, $ne is not in it.
func appointmentIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		// Unique index on appointment ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One active (pending or confirmed) appointment per (date, time)
		{
			Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_slot").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": []string{
						string(models.AppointmentPending),
						string(models.AppointmentConfirmed),
					}},
				}),
		},
		// Primary query pattern for the client's own list
		{
			Keys:    bson.D{{Key: "client_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("client_date_idx"),
		},
	}
}

// EnsureIndexes creates the necessary indexes on the appointments collection.
// The partial unique index on (date, time) is what turns the snapshot
// availability check into a write-time guarantee: two concurrent bookings for
// the same slot cannot both land, the loser gets a duplicate key error.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, appointmentIndexModels())
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
