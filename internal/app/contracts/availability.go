package contracts

import (
	"context"
	"salon-service/internal/pkg/dto/requests"
	"time"
)

// AvailabilityUsecase computes bookable start times and answers the overlap
// question underlying them.
type AvailabilityUsecase interface {
	ComputeAvailableSlots(ctx context.Context, request *requests.AvailableSlots) ([]time.Time, error)
	// IsStaffAvailable reports whether [start, end) is free of active
	// appointments for the staff member. excludeAppointmentID may be empty;
	// when set, that appointment is ignored so an edit can re-check its own
	// interval.
	IsStaffAvailable(ctx context.Context, staffID string, start, end time.Time, excludeAppointmentID string) (bool, error)
}
