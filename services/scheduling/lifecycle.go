package scheduling

import "concierge/models"

// Actor identifies who is attempting a lifecycle transition.
type Actor struct {
	ID    string
	Admin bool
}

// Owns reports whether the actor is the owning client of the appointment.
func (a Actor) Owns(appt *models.Appointment) bool {
	return a.ID != "" && a.ID == appt.ClientID
}

// CanTransition applies the lifecycle rules for a direct status change:
//
//	pending   → confirmed   admin only
//	pending   → cancelled   owner or admin
//	confirmed → cancelled   owner or admin
//
// Everything else is rejected. Going back to pending happens only through
// the reschedule path, which is not a plain status change.
func CanTransition(appt *models.Appointment, to models.AppointmentStatus, actor Actor) error {
	if appt.Status == models.AppointmentCancelled {
		return ErrInvalidTransition
	}

	switch to {
	case models.AppointmentConfirmed:
		if appt.Status != models.AppointmentPending {
			return ErrInvalidTransition
		}
		if !actor.Admin {
			return ErrNotAllowed
		}
		return nil
	case models.AppointmentCancelled:
		if !actor.Admin && !actor.Owns(appt) {
			return ErrNotAllowed
		}
		return nil
	default:
		return ErrInvalidTransition
	}
}

// CanReschedule checks whether the actor may move the appointment to a new
// slot. Only the owning client reschedules, and only from a non-cancelled
// state; the slot itself is checked against availability by the caller.
func CanReschedule(appt *models.Appointment, actor Actor) error {
	if appt.Status == models.AppointmentCancelled {
		return ErrInvalidTransition
	}
	if !actor.Owns(appt) {
		return ErrNotAllowed
	}
	return nil
}
