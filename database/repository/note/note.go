package noteRepo

import (
	"context"
	"fmt"
	"time"

	"concierge/database"
	"concierge/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NoteRepository persists client notes produced by the note-saving actions.
type NoteRepository interface {
	Create(ctx context.Context, note models.ClientNote) (string, error)
	GetRecent(ctx context.Context, limit int64) ([]models.ClientNote, error)
}

type mongoNoteRepo struct {
	coll *mongo.Collection
}

// NewMongoNoteRepo returns a new NoteRepository instance using MongoDB.
func NewMongoNoteRepo() NoteRepository {
	db := database.GetDatabase()
	return &mongoNoteRepo{
		coll: db.Collection("client_notes"),
	}
}

// Create inserts a new client note and returns its ID.
func (r *mongoNoteRepo) Create(ctx context.Context, note models.ClientNote) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	note.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, note); err != nil {
		return "", fmt.Errorf("failed to insert client note: %w", err)
	}
	return note.ID, nil
}

// GetRecent fetches the newest notes, for the admin dashboard.
func (r *mongoNoteRepo) GetRecent(ctx context.Context, limit int64) ([]models.ClientNote, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query client notes: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []models.ClientNote
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode client notes: %w", err)
	}
	return notes, nil
}
