package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"salon-service/internal/app/config"
	"salon-service/internal/app/delivery/http/controllers"
	"salon-service/internal/app/delivery/http/middlewares"
	"salon-service/internal/app/delivery/http/routers"
	"salon-service/internal/app/drivers/database"
	"salon-service/internal/app/drivers/logger"
	smtpDriver "salon-service/internal/app/drivers/mailer"
	"salon-service/internal/app/drivers/messaging"
	"salon-service/internal/app/services/core/appointments"
	"salon-service/internal/app/services/core/auth"
	"salon-service/internal/app/services/core/availability"
	"salon-service/internal/app/services/core/reminders"
	"salon-service/internal/app/services/core/rewards"
	coreServices "salon-service/internal/app/services/core/services"
	"salon-service/internal/app/services/core/users"
	"salon-service/internal/app/services/shared/locker"
	"salon-service/internal/app/services/shared/mailer"
	"salon-service/internal/app/services/shared/notifications"
	sharedRedis "salon-service/internal/app/services/shared/redis"
	"salon-service/internal/app/services/shared/sms"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(&bootstrap, location)

	requestTimeout := time.Duration(internalConfig.App.RequestTimeoutInSecond) * time.Second
	server := &http.Server{
		Addr:         internalConfig.App.Port,
		Handler:      chiRouter,
		ReadTimeout:  requestTimeout,
		WriteTimeout: 2 * requestTimeout,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, location *time.Location) {
	// Shared
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	smtpClient := smtpDriver.NewSMTPClient(bootstrap.DriverConfig)
	mailerService, err := mailer.NewMailerService(smtpClient, bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		log.Fatalf("Error setting up mailer service: %v", err)
	}
	smsService := sms.NewSMSService(bootstrap.DriverConfig)

	stopMailerConsumer, err := mailer.StartConsumer(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue, smtpClient, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Error starting mailer consumer: %v", err)
	}
	bootstrap.MailerConsumerStop = stopMailerConsumer

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// User / Auth
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, bootstrap.InternalConfig)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Notifications
	notificationService := notifications.NewNotificationService(
		userMongoRepository,
		mailerService,
		smsService,
		location,
		bootstrap.Logger,
	)

	// Catalog
	serviceMongoRepository := coreServices.NewServiceMongoRepository(bootstrap.MongoDB, dbName)
	serviceUsecase := coreServices.NewServiceUsecase(serviceMongoRepository)
	serviceController := controllers.NewServiceController(bootstrap.Logger, serviceUsecase)

	// Appointments
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	availabilityUsecase := availability.NewAvailabilityUsecase(
		appointmentMongoRepository,
		userMongoRepository,
		serviceMongoRepository,
		location,
		time.Duration(bootstrap.InternalConfig.App.SlotStepInMinute)*time.Minute,
	)
	rewardUsecase := rewards.NewRewardUsecase(userMongoRepository, appointmentMongoRepository)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		userMongoRepository,
		serviceMongoRepository,
		availabilityUsecase,
		rewardUsecase,
		notificationService,
		lockerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, availabilityUsecase)

	// Rewards
	rewardController := controllers.NewRewardController(bootstrap.Logger, rewardUsecase)

	// Reminder worker
	reminderWorker := reminders.NewWorker(
		appointmentMongoRepository,
		notificationService,
		lockerService,
		bootstrap.Logger,
	)
	stopWorker, err := reminderWorker.Start(bootstrap.InternalConfig.App.ReminderCronSpec)
	if err != nil {
		log.Fatalf("Error starting reminder worker: %v", err)
	}
	bootstrap.ReminderWorkerStop = stopWorker

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		serviceController,
		appointmentController,
		rewardController,
	)
}
