package scheduling

import (
	"testing"

	"concierge/models"

	"github.com/stretchr/testify/assert"
)

// 2026-09-01 is a Tuesday.
const tuesday = "2026-09-01"

func weekdaySettings() models.ScheduleSettings {
	return models.ScheduleSettings{
		Enabled:   true,
		WorkDays:  []int{1, 2, 3, 4, 5},
		StartHour: "09:00",
		EndHour:   "18:00",
	}
}

func TestComputeSlotsFullBusinessDay(t *testing.T) {
	slots := ComputeSlots(tuesday, weekdaySettings(), nil)

	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00",
	}, slots)
}

func TestComputeSlotsExcludesBookedSlot(t *testing.T) {
	appts := []models.Appointment{
		{Date: tuesday, Time: "14:00", Status: models.AppointmentConfirmed},
	}
	slots := ComputeSlots(tuesday, weekdaySettings(), appts)

	assert.Len(t, slots, 8)
	assert.NotContains(t, slots, "14:00")
}

func TestComputeSlotsCancelledAppointmentFreesSlot(t *testing.T) {
	appts := []models.Appointment{
		{Date: tuesday, Time: "14:00", Status: models.AppointmentCancelled},
	}
	slots := ComputeSlots(tuesday, weekdaySettings(), appts)

	assert.Contains(t, slots, "14:00")
	assert.Len(t, slots, 9)
}

func TestComputeSlotsPendingAppointmentHoldsSlot(t *testing.T) {
	appts := []models.Appointment{
		{Date: tuesday, Time: "09:00", Status: models.AppointmentPending},
	}
	slots := ComputeSlots(tuesday, weekdaySettings(), appts)

	assert.NotContains(t, slots, "09:00")
}

func TestComputeSlotsExcludesBlockedSlots(t *testing.T) {
	settings := weekdaySettings()
	settings.BlockedSlots = []models.BlockedSlot{
		{Date: tuesday, Time: "10:00"},
		{Date: "2026-09-02", Time: "11:00"}, // other day, must not leak
	}
	slots := ComputeSlots(tuesday, settings, nil)

	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "11:00")
}

func TestComputeSlotsBlockedDateIsEmpty(t *testing.T) {
	settings := weekdaySettings()
	settings.BlockedDates = []string{tuesday}

	assert.Empty(t, ComputeSlots(tuesday, settings, nil))
}

func TestComputeSlotsOffWorkdayIsEmpty(t *testing.T) {
	// 2026-09-06 is a Sunday; weekday 0 is not in WorkDays.
	assert.Empty(t, ComputeSlots("2026-09-06", weekdaySettings(), nil))

	// Even a fully open configuration changes nothing off-schedule.
	settings := weekdaySettings()
	settings.BlockedSlots = nil
	settings.BlockedDates = nil
	assert.Empty(t, ComputeSlots("2026-09-06", settings, nil))
}

func TestComputeSlotsDisabledIsEmpty(t *testing.T) {
	settings := weekdaySettings()
	settings.Enabled = false

	assert.Empty(t, ComputeSlots(tuesday, settings, nil))
}

func TestComputeSlotsMalformedDateIsEmpty(t *testing.T) {
	assert.Empty(t, ComputeSlots("not-a-date", weekdaySettings(), nil))
}

func TestComputeSlotsAscendingAndDeterministic(t *testing.T) {
	appts := []models.Appointment{
		{Date: tuesday, Time: "11:00", Status: models.AppointmentPending},
		{Date: tuesday, Time: "16:00", Status: models.AppointmentConfirmed},
	}
	first := ComputeSlots(tuesday, weekdaySettings(), appts)
	second := ComputeSlots(tuesday, weekdaySettings(), appts)

	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1], first[i])
	}
}
