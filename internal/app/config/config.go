package config

import (
	"salon-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "salon"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "noreply@ogisalon.example"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Twilio: Twilio{
			AccountSID: utils.GetEnvString("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  utils.GetEnvString("TWILIO_AUTH_TOKEN", ""),
			FromNumber: utils.GetEnvString("TWILIO_FROM_NUMBER", ""),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                    utils.GetEnvString("APP_ENV", "development"),
			Port:                   utils.GetEnvString("APP_PORT", ":8080"),
			Version:                utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:               utils.GetEnvString("APP_TIMEZONE", "Asia/Riyadh"),
			EndpointPrefix:         utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:            utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:        utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSecond: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECOND", 10),
			BookingLockTTLInSecond: utils.GetEnvInt("APP_BOOKING_LOCK_TTL_IN_SECOND", 5),
			SlotStepInMinute:       utils.GetEnvInt("APP_SLOT_STEP_IN_MINUTE", 30),
			ReminderCronSpec:       utils.GetEnvString("APP_REMINDER_CRON_SPEC", "@every 1m"),
			RabbitMQMailerQueue:    utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "salon.notifications.email"),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
	}
}
