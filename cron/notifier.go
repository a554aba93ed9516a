package cron

import (
	"context"

	"concierge/models"
	"concierge/utils"

	"go.uber.org/zap"
)

// LogNotifier records reminders in the application log. Deployments with an
// outbound channel (e-mail, WhatsApp) replace it with a real sender.
type LogNotifier struct{}

func (LogNotifier) SendReminder(_ context.Context, p models.ReminderPayload) error {
	utils.GetLogger().Info("appointment reminder",
		zap.String("appointmentId", p.AppointmentID),
		zap.String("clientId", p.ClientID),
		zap.String("clientName", p.ClientName),
		zap.String("type", p.Type),
		zap.String("date", p.Date),
		zap.String("time", p.Time),
	)
	return nil
}
