package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingRequestKey            = "request"
	LoggingResponseKey           = "response"
	LoggingResponseLengthKey     = "response_length"
	LoggingStaffIDKey            = "staff_id"
	LoggingCustomerIDKey         = "customer_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingNotificationTypeKey   = "notification_type"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
)
