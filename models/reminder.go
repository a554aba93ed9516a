package models

// ReminderPayload is the task body enqueued when a confirmed appointment
// gets a reminder scheduled ahead of its slot.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	ClientID      string `json:"clientId"`
	ClientName    string `json:"clientName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Type          string `json:"type"`
}
