package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceCategory string

const (
	ServiceCategoryHair    ServiceCategory = "hair"
	ServiceCategoryNails   ServiceCategory = "nails"
	ServiceCategoryFacial  ServiceCategory = "facial"
	ServiceCategoryMassage ServiceCategory = "massage"
	ServiceCategoryMakeup  ServiceCategory = "makeup"
	ServiceCategoryOther   ServiceCategory = "other"
)

type ServiceReview struct {
	CustomerID primitive.ObjectID `bson:"customer" json:"customer"`
	Rating     int                `bson:"rating" json:"rating"`
	Comment    string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Date       time.Time          `bson:"date" json:"date"`
}

type Service struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name          string               `bson:"name" json:"name"`
	NameAr        string               `bson:"nameAr" json:"nameAr"`
	Description   string               `bson:"description" json:"description"`
	DescriptionAr string               `bson:"descriptionAr" json:"descriptionAr"`
	Category      ServiceCategory      `bson:"category" json:"category"`
	Duration      int                  `bson:"duration" json:"duration"`
	Price         float64              `bson:"price" json:"price"`
	Image         string               `bson:"image" json:"image"`
	IsActive      bool                 `bson:"isActive" json:"isActive"`
	StaffIDs      []primitive.ObjectID `bson:"staff,omitempty" json:"staff,omitempty"`
	Requirements  []string             `bson:"requirements,omitempty" json:"requirements,omitempty"`
	MaxGroupSize  int                  `bson:"maxGroupSize" json:"maxGroupSize"`
	Discount      float64              `bson:"discount" json:"discount"`
	Popularity    int                  `bson:"popularity" json:"popularity"`
	AverageRating float64              `bson:"averageRating" json:"averageRating"`
	Reviews       []ServiceReview      `bson:"reviews,omitempty" json:"reviews,omitempty"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}
