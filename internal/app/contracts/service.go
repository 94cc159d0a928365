package contracts

import (
	"context"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/dto/requests"
)

type ServiceRepository interface {
	CreateService(ctx context.Context, service *models.Service) (string, error)
	FindByID(ctx context.Context, serviceID string) (*models.Service, error)
	FindByIDs(ctx context.Context, serviceIDs []string) ([]models.Service, error)
	FindAll(ctx context.Context, request *requests.ListServices) ([]models.Service, error)
	UpdateService(ctx context.Context, service *models.Service) error
}

type ServiceUsecase interface {
	CreateService(ctx context.Context, request *requests.CreateService) (*models.Service, error)
	FindAll(ctx context.Context, request *requests.ListServices) ([]models.Service, error)
	FindByID(ctx context.Context, serviceID string) (*models.Service, error)
	UpdateService(ctx context.Context, serviceID string, request *requests.UpdateService) (*models.Service, error)
	DeactivateService(ctx context.Context, serviceID string) error
}
