package services

import (
	"context"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceUsecase struct {
	ServiceRepository contracts.ServiceRepository
}

func NewServiceUsecase(serviceRepository contracts.ServiceRepository) contracts.ServiceUsecase {
	return &ServiceUsecase{ServiceRepository: serviceRepository}
}

func (uc *ServiceUsecase) CreateService(ctx context.Context, request *requests.CreateService) (*models.Service, error) {
	staffIDs := make([]primitive.ObjectID, 0, len(request.StaffIDs))
	for _, staffID := range request.StaffIDs {
		objectID, err := primitive.ObjectIDFromHex(staffID)
		if err != nil {
			return nil, exceptions.ErrNotObjectID(err)
		}
		staffIDs = append(staffIDs, objectID)
	}

	maxGroupSize := request.MaxGroupSize
	if maxGroupSize == 0 {
		maxGroupSize = 1
	}

	now := time.Now()
	service := &models.Service{
		Name:          request.Name,
		NameAr:        request.NameAr,
		Description:   request.Description,
		DescriptionAr: request.DescriptionAr,
		Category:      models.ServiceCategory(request.Category),
		Duration:      request.Duration,
		Price:         request.Price,
		Image:         request.Image,
		IsActive:      true,
		StaffIDs:      staffIDs,
		Requirements:  request.Requirements,
		MaxGroupSize:  maxGroupSize,
		Discount:      request.Discount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	serviceID, err := uc.ServiceRepository.CreateService(ctx, service)
	if err != nil {
		return nil, err
	}

	objectID, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return nil, exceptions.ErrNotObjectID(err)
	}
	service.ID = objectID
	return service, nil
}

func (uc *ServiceUsecase) FindAll(ctx context.Context, request *requests.ListServices) ([]models.Service, error) {
	return uc.ServiceRepository.FindAll(ctx, request)
}

func (uc *ServiceUsecase) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	service, err := uc.ServiceRepository.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotExist(nil)
	}
	return service, nil
}

func (uc *ServiceUsecase) UpdateService(ctx context.Context, serviceID string, request *requests.UpdateService) (*models.Service, error) {
	service, err := uc.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if request.Name != "" {
		service.Name = request.Name
	}
	if request.NameAr != "" {
		service.NameAr = request.NameAr
	}
	if request.Description != "" {
		service.Description = request.Description
	}
	if request.DescriptionAr != "" {
		service.DescriptionAr = request.DescriptionAr
	}
	if request.Category != "" {
		service.Category = models.ServiceCategory(request.Category)
	}
	if request.Duration > 0 {
		service.Duration = request.Duration
	}
	if request.Price > 0 {
		service.Price = request.Price
	}
	if request.Image != "" {
		service.Image = request.Image
	}
	if request.Requirements != nil {
		service.Requirements = request.Requirements
	}
	if request.MaxGroupSize > 0 {
		service.MaxGroupSize = request.MaxGroupSize
	}
	if request.Discount > 0 {
		service.Discount = request.Discount
	}

	if err := uc.ServiceRepository.UpdateService(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// DeactivateService soft-deletes: the service disappears from the catalog
// listing but existing appointments keep referencing it.
func (uc *ServiceUsecase) DeactivateService(ctx context.Context, serviceID string) error {
	service, err := uc.FindByID(ctx, serviceID)
	if err != nil {
		return err
	}
	service.IsActive = false
	return uc.ServiceRepository.UpdateService(ctx, service)
}
