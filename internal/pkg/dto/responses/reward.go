package responses

import "salon-service/internal/app/models"

type CustomerRewards struct {
	Rewards            models.Rewards       `json:"rewards"`
	TotalSpent         float64              `json:"totalSpent"`
	AppointmentCount   int                  `json:"appointmentCount"`
	RecentAppointments []models.Appointment `json:"recentAppointments"`
}

type Redeem struct {
	Rewards            models.Rewards `json:"rewards"`
	DiscountPercentage int            `json:"discountPercentage"`
}

type RewardsHistory struct {
	PointsHistory []models.PointsEntry `json:"pointsHistory"`
	Redemptions   []models.Redemption  `json:"redemptions"`
}

type RewardsTierInfo struct {
	Name           string   `json:"name"`
	PointsRequired int      `json:"pointsRequired"`
	Benefits       []string `json:"benefits"`
}
