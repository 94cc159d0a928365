package reminders

import (
	"context"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindActiveByStaffBetween(ctx context.Context, staffID string, from, to time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, staffID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByUser(ctx context.Context, request *requests.UserAppointments) ([]models.Appointment, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindCompletedByCustomer(ctx context.Context, customerID string) ([]models.Appointment, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindWithDueReminders(ctx context.Context, now time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Dispatch(ctx context.Context, notificationType string, appointment *models.Appointment, channels []string) {
	m.Called(ctx, notificationType, appointment, channels)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func TestWorkerTick(t *testing.T) {
	t.Run("dispatches due reminders and persists sent flags", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		notifications := new(MockNotificationService)
		locker := new(MockLockerService)
		worker := NewWorker(repo, notifications, locker, zap.NewNop())

		now := time.Now()
		appointment := models.Appointment{
			ID:     primitive.NewObjectID(),
			Status: models.AppointmentStatusConfirmed,
			Reminders: []models.Reminder{
				{Channel: models.ReminderChannelEmail, ScheduledFor: now.Add(-time.Minute)},
				{Channel: models.ReminderChannelSMS, ScheduledFor: now.Add(-time.Minute)},
				{Channel: models.ReminderChannelEmail, ScheduledFor: now.Add(time.Hour)},
				{Channel: models.ReminderChannelEmail, ScheduledFor: now.Add(-2 * time.Hour), Sent: true},
			},
		}

		locker.On("TryLock", mock.Anything, constvars.ReminderDispatchLockKey, mock.Anything).Return(true, "lease", nil)
		locker.On("Unlock", mock.Anything, constvars.ReminderDispatchLockKey, "lease").Return(nil)
		repo.On("FindWithDueReminders", mock.Anything, mock.Anything).Return([]models.Appointment{appointment}, nil)
		notifications.On("Dispatch", mock.Anything, constvars.NotificationTypeReminder, mock.Anything, []string{"email"}).Return()
		notifications.On("Dispatch", mock.Anything, constvars.NotificationTypeReminder, mock.Anything, []string{"sms"}).Return()
		repo.On("UpdateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)

		worker.tick()

		notifications.AssertNumberOfCalls(t, "Dispatch", 2)

		persisted := repo.Calls[len(repo.Calls)-1].Arguments.Get(1).(*models.Appointment)
		assert.True(t, persisted.Reminders[0].Sent)
		assert.True(t, persisted.Reminders[1].Sent)
		assert.False(t, persisted.Reminders[2].Sent, "future reminder must stay unsent")
		locker.AssertExpectations(t)
	})

	t.Run("does nothing when the lease is held elsewhere", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		notifications := new(MockNotificationService)
		locker := new(MockLockerService)
		worker := NewWorker(repo, notifications, locker, zap.NewNop())

		locker.On("TryLock", mock.Anything, constvars.ReminderDispatchLockKey, mock.Anything).Return(false, "", nil)

		worker.tick()

		repo.AssertNotCalled(t, "FindWithDueReminders", mock.Anything, mock.Anything)
		notifications.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("skips persist when nothing was due", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		notifications := new(MockNotificationService)
		locker := new(MockLockerService)
		worker := NewWorker(repo, notifications, locker, zap.NewNop())

		appointment := models.Appointment{
			ID:     primitive.NewObjectID(),
			Status: models.AppointmentStatusConfirmed,
			Reminders: []models.Reminder{
				{Channel: models.ReminderChannelEmail, ScheduledFor: time.Now().Add(time.Hour)},
			},
		}

		locker.On("TryLock", mock.Anything, constvars.ReminderDispatchLockKey, mock.Anything).Return(true, "lease", nil)
		locker.On("Unlock", mock.Anything, constvars.ReminderDispatchLockKey, "lease").Return(nil)
		repo.On("FindWithDueReminders", mock.Anything, mock.Anything).Return([]models.Appointment{appointment}, nil)

		worker.tick()

		repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
	})
}
