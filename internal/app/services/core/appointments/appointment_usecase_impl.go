package appointments

import (
	"context"
	"fmt"
	"salon-service/internal/app/config"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const notificationDispatchTimeout = 15 * time.Second

type AppointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	ServiceRepository     contracts.ServiceRepository
	AvailabilityUsecase   contracts.AvailabilityUsecase
	RewardUsecase         contracts.RewardUsecase
	NotificationService   contracts.NotificationService
	LockerService         contracts.LockerService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	serviceRepository contracts.ServiceRepository,
	availabilityUsecase contracts.AvailabilityUsecase,
	rewardUsecase contracts.RewardUsecase,
	notificationService contracts.NotificationService,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &AppointmentUsecase{
		AppointmentRepository: appointmentRepository,
		UserRepository:        userRepository,
		ServiceRepository:     serviceRepository,
		AvailabilityUsecase:   availabilityUsecase,
		RewardUsecase:         rewardUsecase,
		NotificationService:   notificationService,
		LockerService:         lockerService,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

func (uc *AppointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	startTime, err := time.Parse(time.RFC3339, request.StartTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	customer, err := uc.UserRepository.FindByID(ctx, request.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, exceptions.ErrCustomerNotExist(nil)
	}

	staff, err := uc.UserRepository.FindByID(ctx, request.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil || staff.Role != constvars.RoleStaff {
		return nil, exceptions.ErrStaffNotExist(nil)
	}

	lineItems, err := uc.resolveServices(ctx, request.Services)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		Services:  lineItems,
		StartTime: startTime,
	}
	totalDuration := appointment.TotalDuration()
	if totalDuration <= 0 {
		return nil, exceptions.ErrTotalDurationNotPositive(nil)
	}
	endTime := startTime.Add(totalDuration)

	customerObjectID, err := primitive.ObjectIDFromHex(request.CustomerID)
	if err != nil {
		return nil, exceptions.ErrNotObjectID(err)
	}
	staffObjectID, err := primitive.ObjectIDFromHex(request.StaffID)
	if err != nil {
		return nil, exceptions.ErrNotObjectID(err)
	}

	now := time.Now()
	appointment.CustomerID = customerObjectID
	appointment.StaffID = staffObjectID
	appointment.EndTime = endTime
	appointment.Status = models.AppointmentStatusPending
	appointment.Payment = models.Payment{
		Status: models.PaymentStatusPending,
		Amount: appointment.TotalPrice(),
		Method: request.PaymentMethod,
	}
	appointment.Notes = request.Notes
	appointment.Reminders = GenerateReminders(startTime, now)
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	if request.GroupBooking != nil {
		appointment.GroupBooking = models.GroupBooking{
			IsGroup:   request.GroupBooking.IsGroup,
			GroupID:   request.GroupBooking.GroupID,
			GroupSize: request.GroupBooking.GroupSize,
		}
	}

	// Serialize check-and-create per staff member so two concurrent bookings
	// cannot both pass the availability check.
	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, request.StaffID)
	lockTTL := time.Duration(uc.InternalConfig.App.BookingLockTTLInSecond) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingLockNotAcquired(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Error("AppointmentUsecase.CreateAppointment failed to release booking lock",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	available, err := uc.AvailabilityUsecase.IsStaffAvailable(ctx, request.StaffID, startTime, endTime, "")
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, exceptions.ErrAppointmentSlotTaken(nil)
	}

	created, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.dispatchNotification(constvars.NotificationTypeConfirmation, created)
	return created, nil
}

func (uc *AppointmentUsecase) FindUserAppointments(ctx context.Context, request *requests.UserAppointments) ([]models.Appointment, error) {
	user, err := uc.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return uc.AppointmentRepository.FindByUser(ctx, request)
}

func (uc *AppointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	status := models.AppointmentStatus(request.Status)
	if !status.Valid() {
		return nil, exceptions.ErrInvalidAppointmentStatus(nil)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	appointment.Status = status
	if status == models.AppointmentStatusCompleted {
		appointment.Payment.Status = models.PaymentStatusCompleted
	}

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	if status == models.AppointmentStatusCompleted {
		uc.awardLoyaltyPoints(ctx, appointment)
	}

	uc.dispatchNotification(constvars.NotificationTypeStatusUpdate, appointment)
	return appointment, nil
}

func (uc *AppointmentUsecase) CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	appointment.Status = models.AppointmentStatusCancelled
	if request.Reason != "" {
		if appointment.Notes != "" {
			appointment.Notes += "\n"
		}
		appointment.Notes += "Cancellation reason: " + request.Reason
	}

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	uc.dispatchNotification(constvars.NotificationTypeCancellation, appointment)
	return appointment, nil
}

// resolveServices freezes the booked line items, taking duration and price
// from the request when provided and from the catalog otherwise.
func (uc *AppointmentUsecase) resolveServices(ctx context.Context, items []requests.AppointmentServiceItem) ([]models.AppointmentService, error) {
	serviceIDs := make([]string, 0, len(items))
	for _, item := range items {
		serviceIDs = append(serviceIDs, item.ServiceID)
	}

	services, err := uc.ServiceRepository.FindByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(serviceIDs) {
		return nil, exceptions.ErrServiceNotExist(nil)
	}

	catalog := make(map[string]models.Service, len(services))
	for _, service := range services {
		catalog[service.ID.Hex()] = service
	}

	lineItems := make([]models.AppointmentService, 0, len(items))
	for _, item := range items {
		service := catalog[item.ServiceID]
		lineItem := models.AppointmentService{
			ServiceID:       service.ID,
			DurationMinutes: item.DurationMinutes,
			Price:           item.Price,
		}
		if lineItem.DurationMinutes == 0 {
			lineItem.DurationMinutes = service.Duration
		}
		if lineItem.Price == 0 {
			lineItem.Price = service.Price
		}
		lineItems = append(lineItems, lineItem)
	}
	return lineItems, nil
}

// awardLoyaltyPoints credits one point per currency unit spent. Reward
// failures are logged and never fail the status update.
func (uc *AppointmentUsecase) awardLoyaltyPoints(ctx context.Context, appointment *models.Appointment) {
	points := int(appointment.TotalPrice())
	if points <= 0 {
		return
	}

	_, err := uc.RewardUsecase.AddPoints(ctx, &requests.AddPoints{
		CustomerID: appointment.CustomerID.Hex(),
		Points:     points,
		Reason:     "Completed appointment " + appointment.ID.Hex(),
	})
	if err != nil {
		uc.Log.Error("AppointmentUsecase.awardLoyaltyPoints failed to add points",
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
			zap.String(constvars.LoggingCustomerIDKey, appointment.CustomerID.Hex()),
			zap.Error(err),
		)
	}
}

// dispatchNotification runs off the request path so a slow or failing
// notification never delays or rolls back the write that triggered it.
func (uc *AppointmentUsecase) dispatchNotification(notificationType string, appointment *models.Appointment) {
	channels := []string{constvars.NotificationChannelEmail, constvars.NotificationChannelSMS}
	go func() {
		dispatchCtx, cancel := context.WithTimeout(context.Background(), notificationDispatchTimeout)
		defer cancel()
		uc.NotificationService.Dispatch(dispatchCtx, notificationType, appointment, channels)
	}()
}
