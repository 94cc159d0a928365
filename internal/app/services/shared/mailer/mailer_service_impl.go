package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/drivers/mailer"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type emailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type mailerService struct {
	Channel *amqp091.Channel
	Client  *mailer.SMTPClient
	Queue   string
}

// NewMailerService publishes email jobs to the mailer queue; a dedicated
// consumer drains the queue and hands jobs to SendDirect.
func NewMailerService(client *mailer.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}

	return &mailerService{
		Channel: channel,
		Client:  client,
		Queue:   queue,
	}, nil
}

func (s *mailerService) SendEmail(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(emailJob{To: to, Subject: subject, Body: body})
	if err != nil {
		return err
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         payload,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}
	return nil
}

// SendDirect delivers an email synchronously over SMTP, bypassing the queue.
func SendDirect(client *mailer.SMTPClient, to, subject, body string) error {
	from := client.EmailSender
	msg := []byte(fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\n\r\n%s\r\n", to, from, subject, body))
	addr := fmt.Sprintf("%s:%d", client.Host, client.Port)
	err := smtp.SendMail(addr, client.Auth, from, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, client.Host)
	}
	return nil
}
