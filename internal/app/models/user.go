package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RewardsTier string

const (
	RewardsTierBronze   RewardsTier = "bronze"
	RewardsTierSilver   RewardsTier = "silver"
	RewardsTierGold     RewardsTier = "gold"
	RewardsTierPlatinum RewardsTier = "platinum"
)

// WorkingHours is a staff member's daily availability window as wall-clock
// HH:MM strings. Zero value means "not configured".
type WorkingHours struct {
	Start string `bson:"start,omitempty" json:"start,omitempty"`
	End   string `bson:"end,omitempty" json:"end,omitempty"`
}

func (wh WorkingHours) IsZero() bool {
	return wh.Start == "" || wh.End == ""
}

type NotificationPreferences struct {
	Email bool `bson:"email" json:"email"`
	SMS   bool `bson:"sms" json:"sms"`
}

type PointsEntry struct {
	Points int       `bson:"points" json:"points"`
	Reason string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Date   time.Time `bson:"date" json:"date"`
}

type Redemption struct {
	Points             int                `bson:"points" json:"points"`
	ServiceID          primitive.ObjectID `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	DiscountPercentage int                `bson:"discountPercentage" json:"discountPercentage"`
	Date               time.Time          `bson:"date" json:"date"`
}

type Rewards struct {
	Points      int           `bson:"points" json:"points"`
	Tier        RewardsTier   `bson:"tier" json:"tier"`
	History     []PointsEntry `bson:"history,omitempty" json:"history,omitempty"`
	Redemptions []Redemption  `bson:"redemptions,omitempty" json:"redemptions,omitempty"`
}

type User struct {
	ID           primitive.ObjectID      `bson:"_id,omitempty" json:"id"`
	Name         string                  `bson:"name" json:"name"`
	Email        string                  `bson:"email" json:"email"`
	Password     string                  `bson:"password" json:"-"`
	Phone        string                  `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string                  `bson:"role" json:"role"`
	WorkingHours WorkingHours            `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	Preferences  NotificationPreferences `bson:"preferences" json:"preferences"`
	Rewards      Rewards                 `bson:"rewards" json:"rewards"`
	LastLogin    time.Time               `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	CreatedAt    time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time               `bson:"updatedAt" json:"updatedAt"`
}

// rewardsTierThresholds maps minimum lifetime points to tiers, evaluated from
// highest to lowest.
var rewardsTierThresholds = []struct {
	Points int
	Tier   RewardsTier
}{
	{1000, RewardsTierPlatinum},
	{500, RewardsTierGold},
	{200, RewardsTierSilver},
	{0, RewardsTierBronze},
}

// UpdateRewardsTier recomputes the tier from the current points balance.
func (u *User) UpdateRewardsTier() {
	for _, threshold := range rewardsTierThresholds {
		if u.Rewards.Points >= threshold.Points {
			u.Rewards.Tier = threshold.Tier
			return
		}
	}
	u.Rewards.Tier = RewardsTierBronze
}
