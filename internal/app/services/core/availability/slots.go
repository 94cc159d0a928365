package availability

import (
	"salon-service/internal/app/models"
	"time"
)

// DefaultSlotStep is the granularity at which candidate start times are
// enumerated.
const DefaultSlotStep = 30 * time.Minute

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Abutting intervals do not overlap, so
// back-to-back bookings never conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// IsIntervalFree reports whether [start, end) is clear of every active
// appointment in the list. Cancelled and no-show appointments are skipped, as
// is the appointment with excludeAppointmentID (pass "" to exclude nothing);
// that lets an edited appointment re-check its own interval.
func IsIntervalFree(appointments []models.Appointment, start, end time.Time, excludeAppointmentID string) bool {
	for i := range appointments {
		appointment := &appointments[i]
		if !appointment.IsActive() {
			continue
		}
		if excludeAppointmentID != "" && appointment.ID.Hex() == excludeAppointmentID {
			continue
		}
		if Overlaps(start, end, appointment.StartTime, appointment.EndTime) {
			return false
		}
	}
	return true
}

// AvailableSlots enumerates candidate start times from workStart to workEnd
// at the given step and keeps those where a booking of totalDuration fits
// before closing and does not overlap any active appointment. The scan is an
// in-memory pass over the already-loaded appointment list per candidate;
// output is strictly ascending.
func AvailableSlots(workStart, workEnd time.Time, totalDuration, step time.Duration, appointments []models.Appointment) []time.Time {
	if totalDuration <= 0 || step <= 0 || !workEnd.After(workStart) {
		return nil
	}

	var slots []time.Time
	for t := workStart; t.Before(workEnd); t = t.Add(step) {
		end := t.Add(totalDuration)
		if end.After(workEnd) {
			continue
		}
		if IsIntervalFree(appointments, t, end, "") {
			slots = append(slots, t)
		}
	}
	return slots
}
