package availability

import (
	"context"
	"errors"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
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

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) CreateService(ctx context.Context, service *models.Service) (string, error) {
	args := m.Called(ctx, service)
	return args.String(0), args.Error(1)
}

func (m *MockServiceRepository) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByIDs(ctx context.Context, serviceIDs []string) ([]models.Service, error) {
	args := m.Called(ctx, serviceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) FindAll(ctx context.Context, request *requests.ListServices) ([]models.Service, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) UpdateService(ctx context.Context, service *models.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func TestAvailabilityUsecase_ComputeAvailableSlots(t *testing.T) {
	riyadh, err := time.LoadLocation("Asia/Riyadh")
	if err != nil {
		t.Fatalf("loading location: %v", err)
	}

	staffID := primitive.NewObjectID()
	serviceID := primitive.NewObjectID()

	staff := &models.User{
		ID:   staffID,
		Role: constvars.RoleStaff,
		WorkingHours: models.WorkingHours{
			Start: "10:00",
			End:   "14:00",
		},
	}
	catalogService := models.Service{ID: serviceID, Duration: 60, Price: 100}

	request := &requests.AvailableSlots{
		StaffID:    staffID.Hex(),
		Date:       "2026-09-02",
		ServiceIDs: []string{serviceID.Hex()},
	}

	t.Run("slots respect working hours and timezone", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		serviceRepo := new(MockServiceRepository)
		usecase := NewAvailabilityUsecase(appointmentRepo, userRepo, serviceRepo, riyadh, DefaultSlotStep)

		userRepo.On("FindByID", mock.Anything, staffID.Hex()).Return(staff, nil)
		serviceRepo.On("FindByIDs", mock.Anything, request.ServiceIDs).Return([]models.Service{catalogService}, nil)
		appointmentRepo.On("FindActiveByStaffBetween", mock.Anything, staffID.Hex(), mock.Anything, mock.Anything).Return([]models.Appointment{}, nil)

		slots, err := usecase.ComputeAvailableSlots(context.Background(), request)

		assert.NoError(t, err)
		// 10:00 through 13:00 inclusive, every 30 minutes.
		assert.Len(t, slots, 7)
		assert.Equal(t, time.Date(2026, 9, 2, 10, 0, 0, 0, riyadh), slots[0])
		assert.Equal(t, time.Date(2026, 9, 2, 13, 0, 0, 0, riyadh), slots[len(slots)-1])
		assert.Equal(t, riyadh, slots[0].Location())
	})

	t.Run("existing booking carves out its interval", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		serviceRepo := new(MockServiceRepository)
		usecase := NewAvailabilityUsecase(appointmentRepo, userRepo, serviceRepo, riyadh, DefaultSlotStep)

		booked := models.Appointment{
			ID:        primitive.NewObjectID(),
			StaffID:   staffID,
			StartTime: time.Date(2026, 9, 2, 11, 0, 0, 0, riyadh),
			EndTime:   time.Date(2026, 9, 2, 12, 0, 0, 0, riyadh),
			Status:    models.AppointmentStatusConfirmed,
		}
		userRepo.On("FindByID", mock.Anything, staffID.Hex()).Return(staff, nil)
		serviceRepo.On("FindByIDs", mock.Anything, request.ServiceIDs).Return([]models.Service{catalogService}, nil)
		appointmentRepo.On("FindActiveByStaffBetween", mock.Anything, staffID.Hex(), mock.Anything, mock.Anything).Return([]models.Appointment{booked}, nil)

		slots, err := usecase.ComputeAvailableSlots(context.Background(), request)

		assert.NoError(t, err)
		assert.NotContains(t, slots, time.Date(2026, 9, 2, 10, 30, 0, 0, riyadh))
		assert.NotContains(t, slots, time.Date(2026, 9, 2, 11, 0, 0, 0, riyadh))
		assert.NotContains(t, slots, time.Date(2026, 9, 2, 11, 30, 0, 0, riyadh))
		assert.Contains(t, slots, time.Date(2026, 9, 2, 10, 0, 0, 0, riyadh))
		assert.Contains(t, slots, time.Date(2026, 9, 2, 12, 0, 0, 0, riyadh))
	})

	t.Run("default working hours apply when staff has none", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		serviceRepo := new(MockServiceRepository)
		usecase := NewAvailabilityUsecase(appointmentRepo, userRepo, serviceRepo, riyadh, DefaultSlotStep)

		bareStaff := &models.User{ID: staffID, Role: constvars.RoleStaff}
		userRepo.On("FindByID", mock.Anything, staffID.Hex()).Return(bareStaff, nil)
		serviceRepo.On("FindByIDs", mock.Anything, request.ServiceIDs).Return([]models.Service{catalogService}, nil)
		appointmentRepo.On("FindActiveByStaffBetween", mock.Anything, staffID.Hex(), mock.Anything, mock.Anything).Return([]models.Appointment{}, nil)

		slots, err := usecase.ComputeAvailableSlots(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 2, 9, 0, 0, 0, riyadh), slots[0])
		assert.Equal(t, time.Date(2026, 9, 2, 16, 0, 0, 0, riyadh), slots[len(slots)-1])
	})

	t.Run("unknown staff yields not found", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		serviceRepo := new(MockServiceRepository)
		usecase := NewAvailabilityUsecase(appointmentRepo, userRepo, serviceRepo, riyadh, DefaultSlotStep)

		userRepo.On("FindByID", mock.Anything, staffID.Hex()).Return(nil, nil)

		_, err := usecase.ComputeAvailableSlots(context.Background(), request)

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("missing service yields not found", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		serviceRepo := new(MockServiceRepository)
		usecase := NewAvailabilityUsecase(appointmentRepo, userRepo, serviceRepo, riyadh, DefaultSlotStep)

		userRepo.On("FindByID", mock.Anything, staffID.Hex()).Return(staff, nil)
		serviceRepo.On("FindByIDs", mock.Anything, request.ServiceIDs).Return([]models.Service{}, nil)

		_, err := usecase.ComputeAvailableSlots(context.Background(), request)
		assert.Error(t, err)
	})
}

func TestAvailabilityUsecase_IsStaffAvailable(t *testing.T) {
	staffID := primitive.NewObjectID()
	staff := &models.User{ID: staffID, Role: constvars.RoleStaff}

	start := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("free interval is available", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		usecase := NewAvailabilityUsecase(appointmentRepo, userRepo, new(MockServiceRepository), time.UTC, DefaultSlotStep)

		userRepo.On("FindByID", mock.Anything, staffID.Hex()).Return(staff, nil)
		appointmentRepo.On("FindActiveByStaffBetween", mock.Anything, staffID.Hex(), start, end).Return([]models.Appointment{}, nil)

		available, err := usecase.IsStaffAvailable(context.Background(), staffID.Hex(), start, end, "")
		assert.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("busy interval is not available", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		usecase := NewAvailabilityUsecase(appointmentRepo, userRepo, new(MockServiceRepository), time.UTC, DefaultSlotStep)

		busy := models.Appointment{
			ID:        primitive.NewObjectID(),
			StartTime: start.Add(30 * time.Minute),
			EndTime:   end.Add(30 * time.Minute),
			Status:    models.AppointmentStatusPending,
		}
		userRepo.On("FindByID", mock.Anything, staffID.Hex()).Return(staff, nil)
		appointmentRepo.On("FindActiveByStaffBetween", mock.Anything, staffID.Hex(), start, end).Return([]models.Appointment{busy}, nil)

		available, err := usecase.IsStaffAvailable(context.Background(), staffID.Hex(), start, end, "")
		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("rescheduling ignores the appointment being moved", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		usecase := NewAvailabilityUsecase(appointmentRepo, userRepo, new(MockServiceRepository), time.UTC, DefaultSlotStep)

		existing := models.Appointment{
			ID:        primitive.NewObjectID(),
			StartTime: start,
			EndTime:   end,
			Status:    models.AppointmentStatusConfirmed,
		}
		userRepo.On("FindByID", mock.Anything, staffID.Hex()).Return(staff, nil)
		appointmentRepo.On("FindActiveByStaffBetween", mock.Anything, staffID.Hex(), start, end).Return([]models.Appointment{existing}, nil)

		available, err := usecase.IsStaffAvailable(context.Background(), staffID.Hex(), start, end, existing.ID.Hex())
		assert.NoError(t, err)
		assert.True(t, available)
	})
}
