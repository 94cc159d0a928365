package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_USER_ROLE_KEY            ContextKey = "user_role"
)

const (
	REQUEST_ID_PREFIX = "SALON_SVC_"
)

const (
	ResourceAuth         = "auth"
	ResourceServices     = "services"
	ResourceAppointments = "appointments"
	ResourceRewards      = "rewards"
)

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

const (
	NotificationChannelEmail = "email"
	NotificationChannelSMS   = "sms"
)

const (
	NotificationTypeConfirmation = "appointment_confirmation"
	NotificationTypeReminder     = "appointment_reminder"
	NotificationTypeStatusUpdate = "appointment_status_update"
	NotificationTypeCancellation = "appointment_cancellation"
)

// BookingLockKeyFormat is the redis key used to serialize check-and-create
// per staff member ("booking:staff:<staffID>").
const BookingLockKeyFormat = "booking:staff:%s"

// ReminderDispatchLockKey elects a single dispatcher when several instances
// run the reminder cron.
const ReminderDispatchLockKey = "reminders:dispatch"

const (
	DefaultWorkingHoursStart = "09:00"
	DefaultWorkingHoursEnd   = "17:00"
)
