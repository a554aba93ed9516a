package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"concierge/config"
	"concierge/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues a reminder task ahead of a confirmed
// appointment's slot.
type ReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
	now    func() time.Time
}

func NewReminderScheduler() *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderScheduler{
		client: client,
		lead:   time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour,
		now:    time.Now,
	}
}

// ScheduleFor enqueues a reminder for the appointment. Appointments too close
// to fire a reminder at full lead get one scheduled immediately instead.
func (s *ReminderScheduler) ScheduleFor(appt models.Appointment) error {
	fireAt, err := fireTime(appt, s.lead)
	if err != nil {
		return err
	}
	if now := s.now(); fireAt.Before(now) {
		fireAt = now
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		ClientID:      appt.ClientID,
		ClientName:    appt.ClientName,
		Date:          appt.Date,
		Time:          appt.Time,
		Type:          appt.Type,
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

func fireTime(appt models.Appointment, lead time.Duration) (time.Time, error) {
	slot, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("appointment %s has malformed slot: %w", appt.ID, err)
	}
	return slot.Add(-lead), nil
}
