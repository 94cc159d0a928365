package appointments

import (
	"salon-service/internal/app/models"
	"time"
)

// reminderOffsets are the lead times before the appointment start at which
// reminders fire, largest first.
var reminderOffsets = []time.Duration{
	24 * time.Hour,
	2 * time.Hour,
	1 * time.Hour,
}

var reminderChannels = []models.ReminderChannel{
	models.ReminderChannelEmail,
	models.ReminderChannelSMS,
}

// GenerateReminders derives the reminder schedule for an appointment starting
// at start. Offsets whose instant is not strictly in the future at generation
// time are silently dropped, so a short-notice booking simply gets fewer
// reminders. The result replaces any previous schedule.
func GenerateReminders(start, now time.Time) []models.Reminder {
	var reminders []models.Reminder
	for _, offset := range reminderOffsets {
		scheduledFor := start.Add(-offset)
		if !scheduledFor.After(now) {
			continue
		}
		for _, channel := range reminderChannels {
			reminders = append(reminders, models.Reminder{
				Channel:      channel,
				ScheduledFor: scheduledFor,
			})
		}
	}
	return reminders
}
