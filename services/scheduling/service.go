package scheduling

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "concierge/database/repository/appointment"

	"concierge/models"
	"concierge/utils"

	"go.uber.org/zap"
)

// GetAvailableSlots computes the free slots for a date. For today it applies
// the cutoff policy: slots starting within CutoffHours of now are dropped.
// The cutoff is caller-side policy, ComputeSlots itself stays pure.
func (s *DefaultSchedulingService) GetAvailableSlots(ctx context.Context, date string) ([]string, error) {
	settings, err := s.ScheduleRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule settings: %w", err)
	}

	existing, err := s.Repo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments for %s: %w", date, err)
	}

	slots := ComputeSlots(date, *settings, existing)

	now := s.now()
	if date == now.Format("2006-01-02") {
		minHour := now.Hour() + s.CutoffHours
		filtered := slots[:0]
		for _, slot := range slots {
			if h, err := models.ParseHour(slot); err == nil && h > minHour {
				filtered = append(filtered, slot)
			}
		}
		slots = filtered
	}
	return slots, nil
}

// CreateAppointment books a slot. The availability check is a snapshot read;
// the unique index on the collection is what actually arbitrates concurrent
// writers, surfacing the loser as ErrSlotUnavailable.
func (s *DefaultSchedulingService) CreateAppointment(ctx context.Context, input models.AppointmentInput) (*models.Appointment, error) {
	if input.Type != models.AppointmentMeeting && input.Type != models.AppointmentVisit {
		return nil, fmt.Errorf("unknown appointment type %q", input.Type)
	}

	free, err := s.GetAvailableSlots(ctx, input.Date)
	if err != nil {
		return nil, err
	}
	if !containsSlot(free, input.Time) {
		return nil, ErrSlotUnavailable
	}

	appt := models.Appointment{
		ClientID:    input.ClientID,
		ClientName:  input.ClientName,
		Date:        input.Date,
		Time:        input.Time,
		Type:        input.Type,
		Location:    input.Location,
		MeetingLink: input.MeetingLink,
		Notes:       input.Notes,
	}

	id, err := s.Repo.Create(ctx, appt)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			utils.GetLogger().Warn("booking race lost, slot taken at write time",
				zap.String("date", input.Date), zap.String("time", input.Time))
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	return s.Repo.GetByID(ctx, id)
}

// UpdateAppointmentStatus applies a direct lifecycle transition.
func (s *DefaultSchedulingService) UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus, actor Actor) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CanTransition(appt, status, actor); err != nil {
		return nil, err
	}
	// Conditional on the status we just checked: a concurrent transition
	// invalidates this one rather than being overwritten.
	if err := s.Repo.UpdateStatus(ctx, id, appt.Status, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrStatusChanged) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	updated, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Reminders are best effort; a queue hiccup must not fail the confirmation.
	if status == models.AppointmentConfirmed && s.Reminders != nil {
		if err := s.Reminders.ScheduleFor(*updated); err != nil {
			utils.GetLogger().Warn("failed to schedule reminder",
				zap.String("appointmentId", id), zap.Error(err))
		}
	}
	return updated, nil
}

// RescheduleAppointment moves an appointment to a new slot and resets it to
// pending. Rescheduling is itself a booking attempt: the new slot must appear
// in the computed availability for that date.
func (s *DefaultSchedulingService) RescheduleAppointment(ctx context.Context, id, date, timeSlot string, actor Actor) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CanReschedule(appt, actor); err != nil {
		return nil, err
	}

	free, err := s.GetAvailableSlots(ctx, date)
	if err != nil {
		return nil, err
	}
	if !containsSlot(free, timeSlot) {
		return nil, ErrSlotUnavailable
	}

	if err := s.Repo.Reschedule(ctx, id, date, timeSlot); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

// GetClientAppointments lists a client's own appointments.
func (s *DefaultSchedulingService) GetClientAppointments(ctx context.Context, clientID string) ([]models.Appointment, error) {
	return s.Repo.GetByClientID(ctx, clientID)
}

// GetScheduleSettings returns the current availability configuration.
func (s *DefaultSchedulingService) GetScheduleSettings(ctx context.Context) (*models.ScheduleSettings, error) {
	return s.ScheduleRepo.Get(ctx)
}

// SaveScheduleSettings validates and stores the availability configuration.
func (s *DefaultSchedulingService) SaveScheduleSettings(ctx context.Context, settings models.ScheduleSettings) error {
	return s.ScheduleRepo.Save(ctx, settings)
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
