package auth

import (
	"context"
	"salon-service/internal/app/config"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/dto/responses"
	"salon-service/internal/pkg/exceptions"
	"salon-service/internal/pkg/utils"
	"time"
)

type AuthUsecase struct {
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
}

func NewAuthUsecase(userRepository contracts.UserRepository, internalConfig *config.InternalConfig) contracts.AuthUsecase {
	return &AuthUsecase{
		UserRepository: userRepository,
		InternalConfig: internalConfig,
	}
}

func (uc *AuthUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Auth, error) {
	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	role := request.Role
	if role == "" {
		role = constvars.RoleCustomer
	}

	now := time.Now()
	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		Phone:    request.Phone,
		Role:     role,
		Preferences: models.NotificationPreferences{
			Email: true,
			SMS:   true,
		},
		Rewards: models.Rewards{
			Tier: models.RewardsTierBronze,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return uc.buildAuthResponse(userID, user)
}

func (uc *AuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Auth, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	user.LastLogin = time.Now()
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return uc.buildAuthResponse(user.ID.Hex(), user)
}

func (uc *AuthUsecase) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user, nil
}

func (uc *AuthUsecase) buildAuthResponse(userID string, user *models.User) (*responses.Auth, error) {
	token, err := utils.GenerateAuthJWT(userID, user.Role, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.Auth{
		User: responses.UserSummary{
			ID:    userID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
		Token: token,
	}, nil
}
