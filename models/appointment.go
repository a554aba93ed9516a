package models

import "time"

// Appointment statuses. Creation always starts at pending; cancellation is
// reversible only by creating a new appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment types.
const (
	AppointmentMeeting = "meeting"
	AppointmentVisit   = "visit"
)

// Appointment represents a scheduled meeting or site visit.
type Appointment struct {
	ID          string            `bson:"id" json:"id"`
	ClientID    string            `bson:"client_id" json:"clientId"`
	ClientName  string            `bson:"client_name" json:"clientName"`
	Date        string            `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time        string            `bson:"time" json:"time"` // "HH:00"
	Type        string            `bson:"type" json:"type"` // "meeting" or "visit"
	Location    string            `bson:"location" json:"location"`
	MeetingLink string            `bson:"meeting_link,omitempty" json:"meetingLink,omitempty"`
	Status      AppointmentStatus `bson:"status" json:"status"`
	Notes       string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time         `bson:"created_at" json:"createdAt"`
}

// AppointmentInput is the payload used to create an appointment.
type AppointmentInput struct {
	ClientID    string `json:"clientId"`
	ClientName  string `json:"clientName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	MeetingLink string `json:"meetingLink,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
