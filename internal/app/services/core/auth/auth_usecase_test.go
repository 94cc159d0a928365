package auth

import (
	"context"
	"errors"
	"salon-service/internal/app/config"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/exceptions"
	"salon-service/internal/pkg/utils"
	"testing"

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

func newAuthUsecase(userRepo *MockUserRepository) *AuthUsecase {
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
	return NewAuthUsecase(userRepo, internalConfig).(*AuthUsecase)
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("registers a new customer", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := newAuthUsecase(userRepo)

		userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return(primitive.NewObjectID().Hex(), nil)

		response, err := usecase.Register(context.Background(), &requests.Register{
			Name:     "Nora",
			Email:    "new@example.com",
			Password: "longenoughpassword",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, constvars.RoleCustomer, response.User.Role)

		created := userRepo.Calls[1].Arguments.Get(1).(*models.User)
		assert.NotEqual(t, "longenoughpassword", created.Password, "password must be stored hashed")
		assert.Equal(t, models.RewardsTierBronze, created.Rewards.Tier)
		assert.True(t, created.Preferences.Email)
		assert.True(t, created.Preferences.SMS)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := newAuthUsecase(userRepo)

		userRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&models.User{}, nil)

		_, err := usecase.Register(context.Background(), &requests.Register{
			Name:     "Nora",
			Email:    "taken@example.com",
			Password: "longenoughpassword",
		})

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	hash, err := utils.HashPassword("correct-password")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	existing := func() *models.User {
		return &models.User{
			ID:       primitive.NewObjectID(),
			Name:     "Nora",
			Email:    "nora@example.com",
			Password: hash,
			Role:     constvars.RoleCustomer,
		}
	}

	t.Run("valid credentials yield a token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := newAuthUsecase(userRepo)

		user := existing()
		userRepo.On("FindByEmail", mock.Anything, "nora@example.com").Return(user, nil)
		userRepo.On("UpdateUser", mock.Anything, user).Return(nil)

		response, err := usecase.Login(context.Background(), &requests.Login{
			Email:    "nora@example.com",
			Password: "correct-password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.False(t, user.LastLogin.IsZero(), "login must stamp last login")

		userID, role, err := utils.ParseAuthJWT(response.Token, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), userID)
		assert.Equal(t, constvars.RoleCustomer, role)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := newAuthUsecase(userRepo)

		userRepo.On("FindByEmail", mock.Anything, "nora@example.com").Return(existing(), nil)

		_, err := usecase.Login(context.Background(), &requests.Login{
			Email:    "nora@example.com",
			Password: "wrong",
		})

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := newAuthUsecase(userRepo)

		userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		_, err := usecase.Login(context.Background(), &requests.Login{
			Email:    "ghost@example.com",
			Password: "whatever",
		})

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}
