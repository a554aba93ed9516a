package tasks

import (
	"testing"
	"time"

	"concierge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFireTimeIsLeadBeforeSlot(t *testing.T) {
	appt := models.Appointment{ID: "appt-1", Date: "2026-09-01", Time: "14:00"}

	fireAt, err := fireTime(appt, 24*time.Hour)
	require.NoError(t, err)

	want := time.Date(2026, 8, 31, 14, 0, 0, 0, time.Local)
	assert.True(t, fireAt.Equal(want), "got %s, want %s", fireAt, want)
}

func TestFireTimeRejectsMalformedSlot(t *testing.T) {
	for _, appt := range []models.Appointment{
		{ID: "a", Date: "tomorrow", Time: "14:00"},
		{ID: "b", Date: "2026-09-01", Time: "2pm"},
	} {
		_, err := fireTime(appt, time.Hour)
		assert.Error(t, err)
	}
}

func TestNewReminderTaskCarriesPayload(t *testing.T) {
	payload := models.ReminderPayload{AppointmentID: "appt-1", ClientID: "client-1"}

	task, opts, err := NewReminderTask(payload, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, TypeSendReminder, task.Type())
	assert.Contains(t, string(task.Payload()), `"appointmentId":"appt-1"`)
	assert.Len(t, opts, 1)
}
