package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"concierge/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when a write collides with the unique slot index:
// another non-cancelled appointment already holds the (date, time) pair.
var ErrSlotTaken = errors.New("slot already taken")

// ErrStatusChanged is returned when a conditional status update finds the
// appointment no longer in the status the caller checked against.
var ErrStatusChanged = errors.New("appointment status changed concurrently")

// Create inserts a new appointment and returns its ID. Status is forced to
// pending regardless of the input.
func (r *mongoAppointmentRepo) Create(ctx context.Context, appt models.Appointment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	appt.Status = models.AppointmentPending
	appt.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrSlotTaken
		}
		return "", fmt.Errorf("failed to insert appointment: %w", err)
	}
	return appt.ID, nil
}

// GetByID returns an appointment by its ID.
func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("appointment %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

// GetByClientID fetches all appointments belonging to a client, newest first.
func (r *mongoAppointmentRepo) GetByClientID(ctx context.Context, clientID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"client_id": clientID})
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments for client %s: %w", clientID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// GetByDate fetches all appointments on a date, cancelled ones included; the
// availability engine filters by status itself.
func (r *mongoAppointmentRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments for date %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// UpdateStatus moves an appointment from one status to another. The filter
// includes the expected current status, so a transition checked against a
// stale read fails with ErrStatusChanged instead of applying blindly.
func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id string, from, to models.AppointmentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": from},
		bson.M{"$set": bson.M{"status": to}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("failed to update status for appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrStatusChanged
	}
	return nil
}

// Reschedule moves an appointment to a new (date, time) and resets it to
// pending. The unique slot index guards the new pair the same way Create does.
func (r *mongoAppointmentRepo) Reschedule(ctx context.Context, id, date, timeSlot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"date":   date,
			"time":   timeSlot,
			"status": models.AppointmentPending,
		}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("failed to reschedule appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}

// DeleteByID permanently removes an appointment. Administrative escape hatch;
// normal flows cancel instead.
func (r *mongoAppointmentRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return errors.New("appointment not found")
	}
	return nil
}
