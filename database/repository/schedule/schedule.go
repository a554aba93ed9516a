package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"concierge/database"
	"concierge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The settings live in a single well-known document.
const settingsDocID = "schedule_settings"

// ScheduleRepository stores the admin-managed availability configuration.
type ScheduleRepository interface {
	Get(ctx context.Context) (*models.ScheduleSettings, error)
	Save(ctx context.Context, settings models.ScheduleSettings) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo returns a new ScheduleRepository instance using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.GetDatabase()
	return &mongoScheduleRepo{
		coll: db.Collection("schedule_settings"),
	}
}

type settingsDoc struct {
	ID       string                  `bson:"_id"`
	Settings models.ScheduleSettings `bson:"settings"`
}

// Get returns the current schedule settings. When none were ever saved it
// returns a disabled configuration rather than an error.
func (r *mongoScheduleRepo) Get(ctx context.Context) (*models.ScheduleSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc settingsDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.ScheduleSettings{Enabled: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule settings: %w", err)
	}
	return &doc.Settings, nil
}

// Save validates and upserts the schedule settings.
func (r *mongoScheduleRepo) Save(ctx context.Context, settings models.ScheduleSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": settingsDocID},
		settingsDoc{ID: settingsDocID, Settings: settings},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save schedule settings: %w", err)
	}
	return nil
}
