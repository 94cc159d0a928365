package notifications

import (
	"fmt"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"time"
)

const (
	dateLayout = "Mon, 02 Jan 2006"
	timeLayout = "15:04"
)

// RenderEmail returns the subject and plain-text body for a notification
// type. Instants are formatted in the salon's timezone.
func RenderEmail(notificationType string, customer *models.User, appointment *models.Appointment, loc *time.Location) (subject, body string) {
	start := appointment.StartTime.In(loc)

	switch notificationType {
	case constvars.NotificationTypeConfirmation:
		subject = "Appointment confirmed - OGI Salon"
		body = fmt.Sprintf(
			"Hello %s,\n\nYour appointment at OGI Salon is confirmed.\n\nDate: %s\nTime: %s\n\nPlease arrive 10 minutes before your appointment.\n\nOGI Salon team",
			customer.Name, start.Format(dateLayout), start.Format(timeLayout),
		)
	case constvars.NotificationTypeReminder:
		subject = "Appointment reminder - OGI Salon"
		body = fmt.Sprintf(
			"Hello %s,\n\nThis is a reminder of your upcoming appointment at OGI Salon.\n\nDate: %s\nTime: %s\n\nPlease arrive 10 minutes before your appointment.\n\nOGI Salon team",
			customer.Name, start.Format(dateLayout), start.Format(timeLayout),
		)
	case constvars.NotificationTypeStatusUpdate:
		subject = "Appointment update - OGI Salon"
		body = fmt.Sprintf(
			"Hello %s,\n\nYour appointment at OGI Salon on %s at %s is now %s.\n\nOGI Salon team",
			customer.Name, start.Format(dateLayout), start.Format(timeLayout), appointment.Status,
		)
	case constvars.NotificationTypeCancellation:
		subject = "Appointment cancelled - OGI Salon"
		body = fmt.Sprintf(
			"Hello %s,\n\nYour appointment at OGI Salon on %s at %s has been cancelled.\n\nYou can book a new appointment on our website.\n\nOGI Salon team",
			customer.Name, start.Format(dateLayout), start.Format(timeLayout),
		)
	}
	return subject, body
}

// RenderSMS returns the short-message text for a notification type.
func RenderSMS(notificationType string, appointment *models.Appointment, loc *time.Location) string {
	start := appointment.StartTime.In(loc)

	switch notificationType {
	case constvars.NotificationTypeConfirmation:
		return fmt.Sprintf("OGI Salon: appointment confirmed for %s at %s.", start.Format(dateLayout), start.Format(timeLayout))
	case constvars.NotificationTypeReminder:
		return fmt.Sprintf("OGI Salon: reminder, your appointment is at %s on %s.", start.Format(timeLayout), start.Format(dateLayout))
	case constvars.NotificationTypeStatusUpdate:
		return fmt.Sprintf("OGI Salon: your appointment on %s is now %s.", start.Format(dateLayout), appointment.Status)
	case constvars.NotificationTypeCancellation:
		return fmt.Sprintf("OGI Salon: your appointment on %s has been cancelled.", start.Format(dateLayout))
	}
	return ""
}
