package constvars

// Client-facing messages.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please check your input"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "The server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "Your session is invalid or has expired, please log in again"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientEmailAlreadyExists            = "Email is already registered"
	ErrClientUserNotFound                  = "User not found"
	ErrClientStaffNotFound                 = "Staff member not found"
	ErrClientServiceNotFound               = "Service not found"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientCustomerNotFound              = "Customer not found"
	ErrClientSlotTaken                     = "The requested time slot is not available"
	ErrClientBookingInProgress             = "Another booking for this staff member is in progress, please retry"
	ErrClientInvalidServiceDuration        = "The requested services have no bookable duration"
	ErrClientInvalidAppointmentStatus      = "Invalid appointment status"
	ErrClientNotEnoughPoints               = "Not enough reward points"
)

// Developer-facing messages.
const (
	ErrDevValidationFailed             = "request validation failed"
	ErrDevCannotParseJSON              = "cannot parse JSON request body"
	ErrDevCannotParseTime              = "cannot parse time value"
	ErrDevCannotParseDate              = "cannot parse date value"
	ErrDevURLParamIDValidationFailed   = "URL parameter '%s' failed validation"
	ErrDevInvalidObjectID              = "value is not a valid object ID"
	ErrDevFailedToHashPassword         = "failed to hash password"
	ErrDevInvalidCredentials           = "invalid credentials supplied"
	ErrDevEmailAlreadyExists           = "email already exists"
	ErrDevUserNotExists                = "user does not exist"
	ErrDevStaffNotExists               = "staff member does not exist"
	ErrDevServiceNotExists             = "one or more services do not exist"
	ErrDevAppointmentNotExists         = "appointment does not exist"
	ErrDevAuthTokenMissing             = "authorization token is missing"
	ErrDevRoleNotAllowed               = "authenticated role is not allowed on this route"
	ErrDevAuthTokenInvalidOrExpired    = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken            = "failed to generate authorization token"
	ErrDevServerDeadlineExceeded       = "server deadline exceeded"
	ErrDevServerProcess                = "server failed to process the request"
	ErrDevMissingRequestID             = "request ID missing from request context"
	ErrDevSlotTaken                    = "proposed interval overlaps an active appointment"
	ErrDevBookingLockNotAcquired       = "could not acquire per-staff booking lock"
	ErrDevTotalDurationNotPositive     = "total service duration is not positive"
	ErrDevInvalidAppointmentStatus     = "appointment status is not one of the allowed values"
	ErrDevInsufficientRewardPoints     = "customer has fewer points than the redemption amount"
	ErrDevDBFailedToFindDocument       = "database failed to find document"
	ErrDevDBFailedToInsertDocument     = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument     = "database failed to update document"
	ErrDevDBFailedToIterateDocuments   = "database failed to iterate documents"
	ErrDevRedisGetData                 = "redis failed to get data"
	ErrDevRedisSetData                 = "redis failed to set data"
	ErrDevRedisDeleteData              = "redis failed to delete data"
	ErrDevRedisLockNotOwned            = "redis lock is not owned by this client"
	ErrDevRabbitMQPublish              = "rabbitmq failed to publish message to queue %s"
	ErrDevSMTPSendEmail                = "smtp server %s failed to send email"
	ErrDevTwilioSendSMS                = "twilio failed to send SMS message"
	ErrDevInvalidWorkingHours          = "working hours are malformed"
)

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"oneof":    "must be one of: %s",
	"gt":       "must be greater than %s",
	"datetime": "must match the expected time format",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
}
