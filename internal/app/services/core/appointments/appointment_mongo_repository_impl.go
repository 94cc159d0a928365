package appointments

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

// activeStatusFilter excludes appointments that no longer block the calendar.
var activeStatusFilter = bson.M{"$nin": bson.A{
	string(models.AppointmentStatusCancelled),
	string(models.AppointmentStatusNoShow),
}}

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (repo *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	result, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	appointment.ID = result.InsertedID.(primitive.ObjectID)
	return appointment, nil
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrNotObjectID(err)
	}

	var appointment models.Appointment
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) FindActiveByStaffBetween(ctx context.Context, staffID string, from, to time.Time) ([]models.Appointment, error) {
	staffObjectID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return nil, exceptions.ErrNotObjectID(err)
	}

	// Half-open interval intersection: startTime < to AND endTime > from.
	filter := bson.M{
		"staff":     staffObjectID,
		"status":    activeStatusFilter,
		"startTime": bson.M{"$lt": to},
		"endTime":   bson.M{"$gt": from},
	}

	return repo.findMany(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
}

func (repo *AppointmentMongoRepository) FindByUser(ctx context.Context, request *requests.UserAppointments) ([]models.Appointment, error) {
	userObjectID, err := primitive.ObjectIDFromHex(request.UserID)
	if err != nil {
		return nil, exceptions.ErrNotObjectID(err)
	}

	filter := bson.M{
		"$or": bson.A{
			bson.M{"customer": userObjectID},
			bson.M{"staff": userObjectID},
		},
	}
	if request.Status != "" {
		filter["status"] = request.Status
	}
	if request.StartDate != "" && request.EndDate != "" {
		startDate, err := time.Parse("2006-01-02", request.StartDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		endDate, err := time.Parse("2006-01-02", request.EndDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		filter["startTime"] = bson.M{"$gte": startDate, "$lte": endDate.AddDate(0, 0, 1)}
	}

	return repo.findMany(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
}

func (repo *AppointmentMongoRepository) FindCompletedByCustomer(ctx context.Context, customerID string) ([]models.Appointment, error) {
	customerObjectID, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, exceptions.ErrNotObjectID(err)
	}

	filter := bson.M{
		"customer": customerObjectID,
		"status":   string(models.AppointmentStatusCompleted),
	}

	return repo.findMany(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: -1}}))
}

func (repo *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	appointment.UpdatedAt = time.Now()
	result, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": appointment.ID}, appointment)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAppointmentNotExist(nil)
	}
	return nil
}

func (repo *AppointmentMongoRepository) FindWithDueReminders(ctx context.Context, now time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"status": activeStatusFilter,
		"reminders": bson.M{"$elemMatch": bson.M{
			"sent":         false,
			"scheduledFor": bson.M{"$lte": now},
		}},
	}

	return repo.findMany(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
}

func (repo *AppointmentMongoRepository) findMany(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Appointment, error) {
	cursor, err := repo.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}
