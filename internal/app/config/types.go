package config

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		SMTP     SMTP
		RabbitMQ RabbitMQ
		Twilio   Twilio
	}

	App struct {
		Env                    string
		Port                   string
		Version                string
		Timezone               string
		EndpointPrefix         string
		MaxRequests            int
		ShutdownTimeout        int
		RequestTimeoutInSecond int
		BookingLockTTLInSecond int
		SlotStepInMinute       int
		ReminderCronSpec       string
		RabbitMQMailerQueue    string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Twilio struct {
		AccountSID string
		AuthToken  string
		FromNumber string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
