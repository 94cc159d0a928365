package services

import (
	"context"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ServiceMongoRepository struct {
	Collection *mongo.Collection
}

func NewServiceMongoRepository(db *mongo.Client, dbName string) contracts.ServiceRepository {
	return &ServiceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionServices),
	}
}

func (repo *ServiceMongoRepository) CreateService(ctx context.Context, service *models.Service) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, service)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *ServiceMongoRepository) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return nil, exceptions.ErrNotObjectID(err)
	}

	var service models.Service
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &service, nil
}

func (repo *ServiceMongoRepository) FindByIDs(ctx context.Context, serviceIDs []string) ([]models.Service, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(serviceIDs))
	for _, serviceID := range serviceIDs {
		objectID, err := primitive.ObjectIDFromHex(serviceID)
		if err != nil {
			return nil, exceptions.ErrNotObjectID(err)
		}
		objectIDs = append(objectIDs, objectID)
	}

	return repo.findMany(ctx, bson.M{"_id": bson.M{"$in": objectIDs}}, nil)
}

func (repo *ServiceMongoRepository) FindAll(ctx context.Context, request *requests.ListServices) ([]models.Service, error) {
	filter := bson.M{"isActive": true}
	if request.Category != "" {
		filter["category"] = request.Category
	}
	if request.Search != "" {
		pattern := primitive.Regex{Pattern: request.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"nameAr": pattern},
			bson.M{"description": pattern},
		}
	}

	opts := options.Find().SetSort(sortSpec(request.Sort))
	return repo.findMany(ctx, filter, opts)
}

func (repo *ServiceMongoRepository) UpdateService(ctx context.Context, service *models.Service) error {
	service.UpdatedAt = time.Now()
	result, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": service.ID}, service)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrServiceNotExist(nil)
	}
	return nil
}

func (repo *ServiceMongoRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Service, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = repo.Collection.Find(ctx, filter, opts)
	} else {
		cursor, err = repo.Collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return services, nil
}

func sortSpec(sort string) bson.D {
	switch sort {
	case "price_asc":
		return bson.D{{Key: "price", Value: 1}}
	case "price_desc":
		return bson.D{{Key: "price", Value: -1}}
	case "name":
		return bson.D{{Key: "name", Value: 1}}
	default:
		return bson.D{{Key: "popularity", Value: -1}}
	}
}
