package availability

import (
	"context"
	"salon-service/internal/app/contracts"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/exceptions"
	"salon-service/internal/pkg/utils"
	"time"
)

type availabilityUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	ServiceRepository     contracts.ServiceRepository
	Location              *time.Location
	SlotStep              time.Duration
}

func NewAvailabilityUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	serviceRepository contracts.ServiceRepository,
	location *time.Location,
	slotStep time.Duration,
) contracts.AvailabilityUsecase {
	if slotStep <= 0 {
		slotStep = DefaultSlotStep
	}
	return &availabilityUsecase{
		AppointmentRepository: appointmentRepository,
		UserRepository:        userRepository,
		ServiceRepository:     serviceRepository,
		Location:              location,
		SlotStep:              slotStep,
	}
}

func (uc *availabilityUsecase) ComputeAvailableSlots(ctx context.Context, request *requests.AvailableSlots) ([]time.Time, error) {
	staff, err := uc.UserRepository.FindByID(ctx, request.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, exceptions.ErrStaffNotExist(nil)
	}

	services, err := uc.ServiceRepository.FindByIDs(ctx, request.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(request.ServiceIDs) {
		return nil, exceptions.ErrServiceNotExist(nil)
	}

	var totalMinutes int
	for _, service := range services {
		totalMinutes += service.Duration
	}
	if totalMinutes <= 0 {
		return nil, exceptions.ErrTotalDurationNotPositive(nil)
	}
	totalDuration := time.Duration(totalMinutes) * time.Minute

	// Bare calendar dates are interpreted in the salon's configured zone,
	// never the host default.
	date, err := time.ParseInLocation("2006-01-02", request.Date, uc.Location)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	workingHours := staff.WorkingHours
	if workingHours.IsZero() {
		workingHours.Start = constvars.DefaultWorkingHoursStart
		workingHours.End = constvars.DefaultWorkingHoursEnd
	}

	workStart, err := utils.AtWallClock(date, workingHours.Start)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	workEnd, err := utils.AtWallClock(date, workingHours.End)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	// One read per call; every candidate is then tested in memory.
	dayStart, dayEnd := utils.DayBounds(date)
	appointments, err := uc.AppointmentRepository.FindActiveByStaffBetween(ctx, request.StaffID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return AvailableSlots(workStart, workEnd, totalDuration, uc.SlotStep, appointments), nil
}

func (uc *availabilityUsecase) IsStaffAvailable(ctx context.Context, staffID string, start, end time.Time, excludeAppointmentID string) (bool, error) {
	staff, err := uc.UserRepository.FindByID(ctx, staffID)
	if err != nil {
		return false, err
	}
	if staff == nil {
		return false, exceptions.ErrStaffNotExist(nil)
	}

	appointments, err := uc.AppointmentRepository.FindActiveByStaffBetween(ctx, staffID, start, end)
	if err != nil {
		return false, err
	}

	return IsIntervalFree(appointments, start, end, excludeAppointmentID), nil
}
