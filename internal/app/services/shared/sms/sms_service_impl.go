package sms

import (
	"context"
	"salon-service/internal/app/config"
	"salon-service/internal/app/contracts"
	"salon-service/internal/pkg/exceptions"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type smsService struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewSMSService(driverConfig *config.DriverConfig) contracts.SMSService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: driverConfig.Twilio.AccountSID,
		Password: driverConfig.Twilio.AuthToken,
	})
	return &smsService{
		client:     client,
		fromNumber: driverConfig.Twilio.FromNumber,
	}
}

func (s *smsService) SendSMS(ctx context.Context, to, message string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromNumber)
	params.SetBody(message)

	_, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return exceptions.ErrTwilioSendSMS(err)
	}
	return nil
}
