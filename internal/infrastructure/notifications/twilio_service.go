package notifications

import (
	"fmt"
	"log/slog"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/Duggineniakhil/Vectra/internal/pkg/redact"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageCreator is the slice of the Twilio REST API used here
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioServiceImpl implements domain.NotificationService
type TwilioServiceImpl struct {
	api        messageCreator
	fromNumber string
}

// NewTwilioService creates a new Twilio notification service. Without a
// sender number messages are logged instead of sent.
func NewTwilioService(accountSID, authToken, fromNumber string) domain.NotificationService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioServiceImpl{
		api:        client.Api,
		fromNumber: fromNumber,
	}
}

// SendSMS implements domain.NotificationService
func (t *TwilioServiceImpl) SendSMS(to, message string) error {
	if t.fromNumber == "" {
		slog.Info("sms delivery disabled, dropping message", slog.String("to", redact.Phone(to)))
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	resp, err := t.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		slog.Debug("sms sent", slog.String("to", redact.Phone(to)), slog.String("sid", *resp.Sid))
	}
	return nil
}

// SendEmail implements domain.NotificationService. Twilio has no email
// channel here, so the message is only logged.
func (t *TwilioServiceImpl) SendEmail(to, subject, body string) error {
	slog.Info("email delivery disabled, dropping message",
		slog.String("to", redact.Email(to)),
		slog.String("subject", subject),
	)
	return nil
}
