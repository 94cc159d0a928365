package contracts

import (
	"context"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/dto/requests"
	"time"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	// FindActiveByStaffBetween returns this staff member's non-cancelled,
	// non-no-show appointments whose interval intersects [from, to), sorted
	// by start time.
	FindActiveByStaffBetween(ctx context.Context, staffID string, from, to time.Time) ([]models.Appointment, error)
	FindByUser(ctx context.Context, request *requests.UserAppointments) ([]models.Appointment, error)
	FindCompletedByCustomer(ctx context.Context, customerID string) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	// FindWithDueReminders returns active appointments that have at least one
	// unsent reminder scheduled at or before now.
	FindWithDueReminders(ctx context.Context, now time.Time) ([]models.Appointment, error)
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	FindUserAppointments(ctx context.Context, request *requests.UserAppointments) ([]models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (*models.Appointment, error)
}
