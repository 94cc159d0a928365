package contracts

import (
	"context"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/dto/responses"
)

type RewardUsecase interface {
	GetCustomerRewards(ctx context.Context, customerID string) (*responses.CustomerRewards, error)
	AddPoints(ctx context.Context, request *requests.AddPoints) (*models.Rewards, error)
	RedeemPoints(ctx context.Context, request *requests.RedeemPoints) (*responses.Redeem, error)
	GetHistory(ctx context.Context, customerID string) (*responses.RewardsHistory, error)
	GetTiers(ctx context.Context) map[string]responses.RewardsTierInfo
}
