package scheduling

import (
	"context"
	"time"

	appointmentRepo "concierge/database/repository/appointment"
	scheduleRepo "concierge/database/repository/schedule"

	"concierge/models"
)

// SchedulingService is the availability and booking-lifecycle collaborator
// shared by the chat concierge and the standalone booking wizard.
type SchedulingService interface {
	GetAvailableSlots(ctx context.Context, date string) ([]string, error)
	CreateAppointment(ctx context.Context, input models.AppointmentInput) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus, actor Actor) (*models.Appointment, error)
	RescheduleAppointment(ctx context.Context, id, date, timeSlot string, actor Actor) (*models.Appointment, error)
	GetClientAppointments(ctx context.Context, clientID string) ([]models.Appointment, error)
	GetScheduleSettings(ctx context.Context) (*models.ScheduleSettings, error)
	SaveScheduleSettings(ctx context.Context, settings models.ScheduleSettings) error
}

// ReminderScheduler enqueues a client reminder ahead of a confirmed
// appointment's slot.
type ReminderScheduler interface {
	ScheduleFor(appt models.Appointment) error
}

// DefaultSchedulingService is the production implementation over the mongo
// repositories.
type DefaultSchedulingService struct {
	Repo         appointmentRepo.AppointmentRepository
	ScheduleRepo scheduleRepo.ScheduleRepository

	// Reminders is optional; when set, confirming an appointment enqueues
	// a reminder.
	Reminders ReminderScheduler

	// CutoffHours drops today's slots starting within this many hours of
	// now. Zero means today is offered in full.
	CutoffHours int

	// Clock is overridable in tests; nil means time.Now.
	Clock func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
