package requests

// AppointmentServiceItem selects a service for booking; duration and price may
// be omitted to use the catalog values.
type AppointmentServiceItem struct {
	ServiceID       string  `json:"service" validate:"required"`
	DurationMinutes int     `json:"duration" validate:"omitempty,gt=0"`
	Price           float64 `json:"price" validate:"omitempty,gt=0"`
}

type GroupBooking struct {
	IsGroup   bool   `json:"isGroup"`
	GroupID   string `json:"groupId"`
	GroupSize int    `json:"groupSize" validate:"omitempty,gt=0"`
}

type CreateAppointment struct {
	CustomerID    string                   `json:"customer" validate:"required"`
	StaffID       string                   `json:"staff" validate:"required"`
	Services      []AppointmentServiceItem `json:"services" validate:"required,min=1,dive"`
	StartTime     string                   `json:"startTime" validate:"required,rfc3339"`
	Notes         string                   `json:"notes"`
	PaymentMethod string                   `json:"paymentMethod" validate:"omitempty,oneof=cash card online"`
	GroupBooking  *GroupBooking            `json:"groupBooking"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled no-show"`
}

type CancelAppointment struct {
	Reason string `json:"reason"`
}

// AvailableSlots is bound from query parameters of the slot-query endpoint.
type AvailableSlots struct {
	StaffID    string   `json:"staffId" validate:"required"`
	Date       string   `json:"date" validate:"required,datetime=2006-01-02"`
	ServiceIDs []string `json:"serviceIds" validate:"required,min=1"`
}

// UserAppointments is bound from query parameters of the per-user listing.
type UserAppointments struct {
	UserID    string `json:"userId" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled no-show"`
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}
