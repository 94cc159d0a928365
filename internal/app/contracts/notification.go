package contracts

import (
	"context"
	"salon-service/internal/app/models"
)

// MailerService sends a single email, either directly over SMTP or by
// publishing a job to the mailer queue.
type MailerService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SMSService sends a single SMS message.
type SMSService interface {
	SendSMS(ctx context.Context, to, message string) error
}

// NotificationService renders and dispatches appointment notifications to the
// requested channels, honoring the customer's preferences. Dispatch failures
// are logged, never returned to the booking path.
type NotificationService interface {
	Dispatch(ctx context.Context, notificationType string, appointment *models.Appointment, channels []string)
}
