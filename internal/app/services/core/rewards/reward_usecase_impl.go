package rewards

import (
	"context"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/dto/responses"
	"salon-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// pointsPerDiscountPercent converts redeemed points into extra discount.
	pointsPerDiscountPercent = 100
	maxDiscountPercentage    = 50
	recentAppointmentLimit   = 5
)

// baseTierDiscount is the discount floor granted by tier membership alone.
var baseTierDiscount = map[models.RewardsTier]int{
	models.RewardsTierBronze:   5,
	models.RewardsTierSilver:   10,
	models.RewardsTierGold:     15,
	models.RewardsTierPlatinum: 20,
}

var tierCatalog = map[string]responses.RewardsTierInfo{
	string(models.RewardsTierBronze): {
		Name:           "Bronze",
		PointsRequired: 0,
		Benefits:       []string{"Earn 1 point per SAR spent", "5% base discount on redemptions"},
	},
	string(models.RewardsTierSilver): {
		Name:           "Silver",
		PointsRequired: 200,
		Benefits:       []string{"10% base discount on redemptions", "Priority booking"},
	},
	string(models.RewardsTierGold): {
		Name:           "Gold",
		PointsRequired: 500,
		Benefits:       []string{"15% base discount on redemptions", "Free birthday service"},
	},
	string(models.RewardsTierPlatinum): {
		Name:           "Platinum",
		PointsRequired: 1000,
		Benefits:       []string{"20% base discount on redemptions", "Dedicated stylist", "VIP lounge access"},
	},
}

type RewardUsecase struct {
	UserRepository        contracts.UserRepository
	AppointmentRepository contracts.AppointmentRepository
}

func NewRewardUsecase(userRepository contracts.UserRepository, appointmentRepository contracts.AppointmentRepository) contracts.RewardUsecase {
	return &RewardUsecase{
		UserRepository:        userRepository,
		AppointmentRepository: appointmentRepository,
	}
}

func (uc *RewardUsecase) GetCustomerRewards(ctx context.Context, customerID string) (*responses.CustomerRewards, error) {
	customer, err := uc.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	completed, err := uc.AppointmentRepository.FindCompletedByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var totalSpent float64
	for i := range completed {
		totalSpent += completed[i].TotalPrice()
	}

	recent := completed
	if len(recent) > recentAppointmentLimit {
		recent = recent[:recentAppointmentLimit]
	}

	return &responses.CustomerRewards{
		Rewards:            customer.Rewards,
		TotalSpent:         totalSpent,
		AppointmentCount:   len(completed),
		RecentAppointments: recent,
	}, nil
}

func (uc *RewardUsecase) AddPoints(ctx context.Context, request *requests.AddPoints) (*models.Rewards, error) {
	customer, err := uc.findCustomer(ctx, request.CustomerID)
	if err != nil {
		return nil, err
	}

	customer.Rewards.Points += request.Points
	customer.Rewards.History = append(customer.Rewards.History, models.PointsEntry{
		Points: request.Points,
		Reason: request.Reason,
		Date:   time.Now(),
	})
	customer.UpdateRewardsTier()

	if err := uc.UserRepository.UpdateUser(ctx, customer); err != nil {
		return nil, err
	}
	return &customer.Rewards, nil
}

func (uc *RewardUsecase) RedeemPoints(ctx context.Context, request *requests.RedeemPoints) (*responses.Redeem, error) {
	customer, err := uc.findCustomer(ctx, request.CustomerID)
	if err != nil {
		return nil, err
	}

	if customer.Rewards.Points < request.Points {
		return nil, exceptions.ErrNotEnoughPoints(nil)
	}

	discount := DiscountPercentage(customer.Rewards.Tier, request.Points)

	redemption := models.Redemption{
		Points:             request.Points,
		DiscountPercentage: discount,
		Date:               time.Now(),
	}
	if request.ServiceID != "" {
		serviceObjectID, err := primitive.ObjectIDFromHex(request.ServiceID)
		if err != nil {
			return nil, exceptions.ErrNotObjectID(err)
		}
		redemption.ServiceID = serviceObjectID
	}

	customer.Rewards.Points -= request.Points
	customer.Rewards.Redemptions = append(customer.Rewards.Redemptions, redemption)
	customer.Rewards.History = append(customer.Rewards.History, models.PointsEntry{
		Points: -request.Points,
		Reason: "Redeemed for discount",
		Date:   redemption.Date,
	})
	customer.UpdateRewardsTier()

	if err := uc.UserRepository.UpdateUser(ctx, customer); err != nil {
		return nil, err
	}

	return &responses.Redeem{
		Rewards:            customer.Rewards,
		DiscountPercentage: discount,
	}, nil
}

func (uc *RewardUsecase) GetHistory(ctx context.Context, customerID string) (*responses.RewardsHistory, error) {
	customer, err := uc.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return &responses.RewardsHistory{
		PointsHistory: customer.Rewards.History,
		Redemptions:   customer.Rewards.Redemptions,
	}, nil
}

func (uc *RewardUsecase) GetTiers(ctx context.Context) map[string]responses.RewardsTierInfo {
	return tierCatalog
}

func (uc *RewardUsecase) findCustomer(ctx context.Context, customerID string) (*models.User, error) {
	customer, err := uc.UserRepository.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, exceptions.ErrCustomerNotExist(nil)
	}
	return customer, nil
}

// DiscountPercentage combines the tier's base discount with one extra percent
// per hundred points redeemed, capped at the house maximum.
func DiscountPercentage(tier models.RewardsTier, points int) int {
	discount := baseTierDiscount[tier] + points/pointsPerDiscountPercent
	if discount > maxDiscountPercentage {
		discount = maxDiscountPercentage
	}
	return discount
}
