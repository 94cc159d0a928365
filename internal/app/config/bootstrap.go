package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
	// ReminderWorkerStop is called during Shutdown to stop the reminder
	// dispatch worker.
	ReminderWorkerStop func()
	// MailerConsumerStop closes the mailer queue consumer channel.
	MailerConsumerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.ReminderWorkerStop != nil {
		b.ReminderWorkerStop()
		log.Println("Successfully stopped reminder worker")
	}

	if b.MailerConsumerStop != nil {
		b.MailerConsumerStop()
		log.Println("Successfully stopped mailer consumer")
	}

	if err := b.MongoDB.Disconnect(ctx); err != nil {
		return err
	}
	log.Println("Successfully closing MongoDB")

	if err := b.Redis.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	if err := b.RabbitMQ.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing RabbitMQ")

	if err := b.Logger.Sync(); err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
