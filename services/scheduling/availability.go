package scheduling

import (
	"time"

	"concierge/models"
)

// ComputeSlots returns the free hour-aligned slots for a date, ascending.
// It is a pure function of its three inputs: no clock access. Returns empty
// when scheduling is disabled, the date is blocked, or the weekday is off.
func ComputeSlots(date string, settings models.ScheduleSettings, existing []models.Appointment) []string {
	if !settings.Enabled {
		return []string{}
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return []string{}
	}

	for _, blocked := range settings.BlockedDates {
		if blocked == date {
			return []string{}
		}
	}

	weekday := int(day.Weekday())
	workDay := false
	for _, d := range settings.WorkDays {
		if d == weekday {
			workDay = true
			break
		}
	}
	if !workDay {
		return []string{}
	}

	startHour, err := models.ParseHour(settings.StartHour)
	if err != nil {
		return []string{}
	}
	endHour, err := models.ParseHour(settings.EndHour)
	if err != nil {
		return []string{}
	}

	blockedSlots := make(map[string]bool)
	for _, bs := range settings.BlockedSlots {
		if bs.Date == date {
			blockedSlots[bs.Time] = true
		}
	}

	// A cancelled appointment frees its slot immediately.
	takenSlots := make(map[string]bool)
	for _, appt := range existing {
		if appt.Date == date && appt.Status != models.AppointmentCancelled {
			takenSlots[appt.Time] = true
		}
	}

	slots := []string{}
	for h := startHour; h < endHour; h++ {
		slot := models.FormatHour(h)
		if blockedSlots[slot] || takenSlots[slot] {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}
