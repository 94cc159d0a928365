package notifications

import (
	"context"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

type notificationService struct {
	UserRepository contracts.UserRepository
	MailerService  contracts.MailerService
	SMSService     contracts.SMSService
	Location       *time.Location
	Log            *zap.Logger
}

func NewNotificationService(
	userRepository contracts.UserRepository,
	mailerService contracts.MailerService,
	smsService contracts.SMSService,
	location *time.Location,
	logger *zap.Logger,
) contracts.NotificationService {
	return &notificationService{
		UserRepository: userRepository,
		MailerService:  mailerService,
		SMSService:     smsService,
		Location:       location,
		Log:            logger,
	}
}

// Dispatch is fire-and-forget: the appointment mutation is already committed
// when it runs, so every failure ends in the log, not in the response.
func (s *notificationService) Dispatch(ctx context.Context, notificationType string, appointment *models.Appointment, channels []string) {
	customer, err := s.UserRepository.FindByID(ctx, appointment.CustomerID.Hex())
	if err != nil || customer == nil {
		s.Log.Error("notificationService.Dispatch could not resolve customer",
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
			zap.String(constvars.LoggingNotificationTypeKey, notificationType),
			zap.Error(err),
		)
		return
	}

	for _, channel := range channels {
		switch channel {
		case constvars.NotificationChannelEmail:
			if !customer.Preferences.Email {
				continue
			}
			subject, body := RenderEmail(notificationType, customer, appointment, s.Location)
			if err := s.MailerService.SendEmail(ctx, customer.Email, subject, body); err != nil {
				s.Log.Error("notificationService.Dispatch email send failed",
					zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
					zap.String(constvars.LoggingNotificationTypeKey, notificationType),
					zap.Error(err),
				)
			}
		case constvars.NotificationChannelSMS:
			if !customer.Preferences.SMS || customer.Phone == "" {
				continue
			}
			message := RenderSMS(notificationType, appointment, s.Location)
			if err := s.SMSService.SendSMS(ctx, customer.Phone, message); err != nil {
				s.Log.Error("notificationService.Dispatch SMS send failed",
					zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
					zap.String(constvars.LoggingNotificationTypeKey, notificationType),
					zap.Error(err),
				)
			}
		}
	}
}
