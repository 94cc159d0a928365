package contracts

import (
	"context"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Auth, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Auth, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
}
