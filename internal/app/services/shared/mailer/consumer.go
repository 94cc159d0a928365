package mailer

import (
	"salon-service/internal/app/drivers/mailer"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// StartConsumer drains the mailer queue and delivers each job over SMTP.
// Delivery failures are nacked with requeue so a transient SMTP outage does
// not drop mail. Returns a stop function that closes the channel.
func StartConsumer(rabbitMQConnection *amqp091.Connection, queue string, client *mailer.SMTPClient, logger *zap.Logger) (func(), error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		channel.Close()
		return nil, err
	}

	deliveries, err := channel.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	go func() {
		for delivery := range deliveries {
			var job emailJob
			if err := json.Unmarshal(delivery.Body, &job); err != nil {
				logger.Error("mailer consumer received malformed job", zap.Error(err))
				delivery.Nack(false, false)
				continue
			}

			if err := SendDirect(client, job.To, job.Subject, job.Body); err != nil {
				logger.Error("mailer consumer failed to send email",
					zap.String("to", job.To),
					zap.Error(err),
				)
				delivery.Nack(false, true)
				continue
			}

			delivery.Ack(false)
		}
	}()

	logger.Info("mailer consumer started", zap.String("queue", queue))
	return func() {
		channel.Close()
	}, nil
}
