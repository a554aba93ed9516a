package appointmentRepo

import (
	"concierge/database"
	"concierge/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository persists appointments and enforces slot uniqueness
// at write time.
type AppointmentRepository interface {
	Create(ctx context.Context, appt models.Appointment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.Appointment, error)
	GetByDate(ctx context.Context, date string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, from, to models.AppointmentStatus) error
	Reschedule(ctx context.Context, id, date, timeSlot string) error
	DeleteByID(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns a new AppointmentRepository instance using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.GetDatabase()
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
