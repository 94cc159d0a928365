package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type ReminderChannel string

const (
	ReminderChannelEmail ReminderChannel = "email"
	ReminderChannelSMS   ReminderChannel = "sms"
)

// AppointmentService is a booked line item: the service plus the duration and
// price frozen at booking time.
type AppointmentService struct {
	ServiceID       primitive.ObjectID `bson:"service" json:"service"`
	DurationMinutes int                `bson:"duration" json:"duration"`
	Price           float64            `bson:"price" json:"price"`
}

type Payment struct {
	Status        PaymentStatus `bson:"status" json:"status"`
	Amount        float64       `bson:"amount" json:"amount"`
	Method        string        `bson:"method" json:"method"`
	TransactionID string        `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

type Reminder struct {
	Channel      ReminderChannel `bson:"type" json:"type"`
	Sent         bool            `bson:"sent" json:"sent"`
	ScheduledFor time.Time       `bson:"scheduledFor" json:"scheduledFor"`
}

type GroupBooking struct {
	IsGroup   bool   `bson:"isGroup" json:"isGroup"`
	GroupID   string `bson:"groupId,omitempty" json:"groupId,omitempty"`
	GroupSize int    `bson:"groupSize,omitempty" json:"groupSize,omitempty"`
}

type Appointment struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	CustomerID   primitive.ObjectID   `bson:"customer" json:"customer"`
	StaffID      primitive.ObjectID   `bson:"staff" json:"staff"`
	Services     []AppointmentService `bson:"services" json:"services"`
	StartTime    time.Time            `bson:"startTime" json:"startTime"`
	EndTime      time.Time            `bson:"endTime" json:"endTime"`
	Status       AppointmentStatus    `bson:"status" json:"status"`
	Payment      Payment              `bson:"payment" json:"payment"`
	Notes        string               `bson:"notes,omitempty" json:"notes,omitempty"`
	Reminders    []Reminder           `bson:"reminders" json:"reminders"`
	GroupBooking GroupBooking         `bson:"groupBooking" json:"groupBooking"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// TotalDuration sums the line-item durations.
func (a *Appointment) TotalDuration() time.Duration {
	var minutes int
	for _, s := range a.Services {
		minutes += s.DurationMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// TotalPrice sums the line-item prices.
func (a *Appointment) TotalPrice() float64 {
	var total float64
	for _, s := range a.Services {
		total += s.Price
	}
	return total
}

// IsActive reports whether the appointment still occupies its time slot.
// Cancelled and no-show appointments do not block the calendar.
func (a *Appointment) IsActive() bool {
	return a.Status != AppointmentStatusCancelled && a.Status != AppointmentStatusNoShow
}
