package models

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockedSlot marks one (date, time) pair as unavailable.
type BlockedSlot struct {
	Date string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time string `bson:"time" json:"time"` // "HH:00"
}

// ScheduleSettings is the admin-managed availability configuration.
// Invariant: StartHour < EndHour and WorkDays ⊆ {0..6} (Sunday = 0).
type ScheduleSettings struct {
	Enabled      bool          `bson:"enabled" json:"enabled"`
	WorkDays     []int         `bson:"work_days" json:"workDays"`
	StartHour    string        `bson:"start_hour" json:"startHour"` // "HH:00"
	EndHour      string        `bson:"end_hour" json:"endHour"`     // "HH:00"
	BlockedDates []string      `bson:"blocked_dates" json:"blockedDates"`
	BlockedSlots []BlockedSlot `bson:"blocked_slots" json:"blockedSlots"`
}

// Validate checks the settings invariants.
func (s ScheduleSettings) Validate() error {
	start, err := ParseHour(s.StartHour)
	if err != nil {
		return fmt.Errorf("invalid start hour: %w", err)
	}
	end, err := ParseHour(s.EndHour)
	if err != nil {
		return fmt.Errorf("invalid end hour: %w", err)
	}
	if start >= end {
		return fmt.Errorf("start hour %q must be before end hour %q", s.StartHour, s.EndHour)
	}
	for _, d := range s.WorkDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("work day %d out of range 0..6", d)
		}
	}
	return nil
}

// ParseHour parses an "HH:00" slot string into its hour component.
func ParseHour(slot string) (int, error) {
	parts := strings.SplitN(slot, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed slot %q", slot)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed slot %q: %w", slot, err)
	}
	if h < 0 || h > 23 {
		return 0, fmt.Errorf("hour %d out of range", h)
	}
	return h, nil
}

// FormatHour renders an hour as an "HH:00" slot string.
func FormatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}
