package rewards

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

func TestDiscountPercentage(t *testing.T) {
	t.Run("combines tier base with redeemed points", func(t *testing.T) {
		assert.Equal(t, 5, DiscountPercentage(models.RewardsTierBronze, 0))
		assert.Equal(t, 7, DiscountPercentage(models.RewardsTierBronze, 250))
		assert.Equal(t, 13, DiscountPercentage(models.RewardsTierSilver, 300))
		assert.Equal(t, 20, DiscountPercentage(models.RewardsTierGold, 500))
		assert.Equal(t, 30, DiscountPercentage(models.RewardsTierPlatinum, 1000))
	})

	t.Run("caps at the house maximum", func(t *testing.T) {
		assert.Equal(t, 50, DiscountPercentage(models.RewardsTierPlatinum, 10000))
	})
}

func TestRewardUsecase_AddPoints(t *testing.T) {
	customerID := primitive.NewObjectID()

	t.Run("adds points and promotes tier", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		appointmentRepo := new(MockAppointmentRepository)
		usecase := NewRewardUsecase(userRepo, appointmentRepo)

		customer := &models.User{
			ID:      customerID,
			Role:    constvars.RoleCustomer,
			Rewards: models.Rewards{Points: 150, Tier: models.RewardsTierBronze},
		}
		userRepo.On("FindByID", mock.Anything, customerID.Hex()).Return(customer, nil)
		userRepo.On("UpdateUser", mock.Anything, customer).Return(nil)

		rewards, err := usecase.AddPoints(context.Background(), &requests.AddPoints{
			CustomerID: customerID.Hex(),
			Points:     100,
			Reason:     "Completed appointment",
		})

		assert.NoError(t, err)
		assert.Equal(t, 250, rewards.Points)
		assert.Equal(t, models.RewardsTierSilver, rewards.Tier)
		assert.Len(t, rewards.History, 1)
	})

	t.Run("unknown customer yields not found", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewRewardUsecase(userRepo, new(MockAppointmentRepository))
		userRepo.On("FindByID", mock.Anything, customerID.Hex()).Return(nil, nil)

		_, err := usecase.AddPoints(context.Background(), &requests.AddPoints{
			CustomerID: customerID.Hex(),
			Points:     10,
		})

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestRewardUsecase_RedeemPoints(t *testing.T) {
	customerID := primitive.NewObjectID()

	t.Run("redeems and records the redemption", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewRewardUsecase(userRepo, new(MockAppointmentRepository))

		customer := &models.User{
			ID:      customerID,
			Rewards: models.Rewards{Points: 600, Tier: models.RewardsTierGold},
		}
		userRepo.On("FindByID", mock.Anything, customerID.Hex()).Return(customer, nil)
		userRepo.On("UpdateUser", mock.Anything, customer).Return(nil)

		response, err := usecase.RedeemPoints(context.Background(), &requests.RedeemPoints{
			CustomerID: customerID.Hex(),
			Points:     300,
		})

		assert.NoError(t, err)
		assert.Equal(t, 300, response.Rewards.Points)
		// Gold base 15 plus 3 from the redeemed points.
		assert.Equal(t, 18, response.DiscountPercentage)
		assert.Len(t, response.Rewards.Redemptions, 1)
	})

	t.Run("insufficient balance is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewRewardUsecase(userRepo, new(MockAppointmentRepository))

		customer := &models.User{
			ID:      customerID,
			Rewards: models.Rewards{Points: 50, Tier: models.RewardsTierBronze},
		}
		userRepo.On("FindByID", mock.Anything, customerID.Hex()).Return(customer, nil)

		_, err := usecase.RedeemPoints(context.Background(), &requests.RedeemPoints{
			CustomerID: customerID.Hex(),
			Points:     100,
		})

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, 50, customer.Rewards.Points)
		userRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
	})
}

func TestRewardUsecase_GetCustomerRewards(t *testing.T) {
	customerID := primitive.NewObjectID()

	userRepo := new(MockUserRepository)
	appointmentRepo := new(MockAppointmentRepository)
	usecase := NewRewardUsecase(userRepo, appointmentRepo)

	customer := &models.User{
		ID:      customerID,
		Rewards: models.Rewards{Points: 120, Tier: models.RewardsTierBronze},
	}
	completed := make([]models.Appointment, 7)
	for i := range completed {
		completed[i] = models.Appointment{
			Status: models.AppointmentStatusCompleted,
			Services: []models.AppointmentService{
				{DurationMinutes: 30, Price: 100},
			},
		}
	}

	userRepo.On("FindByID", mock.Anything, customerID.Hex()).Return(customer, nil)
	appointmentRepo.On("FindCompletedByCustomer", mock.Anything, customerID.Hex()).Return(completed, nil)

	response, err := usecase.GetCustomerRewards(context.Background(), customerID.Hex())

	assert.NoError(t, err)
	assert.Equal(t, float64(700), response.TotalSpent)
	assert.Equal(t, 7, response.AppointmentCount)
	assert.Len(t, response.RecentAppointments, 5)
}

func TestUpdateRewardsTier(t *testing.T) {
	cases := []struct {
		points int
		tier   models.RewardsTier
	}{
		{0, models.RewardsTierBronze},
		{199, models.RewardsTierBronze},
		{200, models.RewardsTierSilver},
		{499, models.RewardsTierSilver},
		{500, models.RewardsTierGold},
		{999, models.RewardsTierGold},
		{1000, models.RewardsTierPlatinum},
		{5000, models.RewardsTierPlatinum},
	}

	for _, tc := range cases {
		user := &models.User{Rewards: models.Rewards{Points: tc.points}}
		user.UpdateRewardsTier()
		assert.Equal(t, tc.tier, user.Rewards.Tier, "points=%d", tc.points)
	}
}
