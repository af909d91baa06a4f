package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender talks to the SendGrid v3 mail API.
type SendGridSender struct {
	from *mail.Email
	send func(*mail.SGMailV3) (*rest.Response, error)
}

func NewSendGridSender(apiKey, from string) (*SendGridSender, error) {
	if apiKey == "" || from == "" {
		return nil, ErrNotConfigured
	}
	client := sendgrid.NewSendClient(apiKey)
	return &SendGridSender{from: mail.NewEmail("", from), send: client.Send}, nil
}

func (s *SendGridSender) Send(_ context.Context, msg Message) error {
	m := mail.NewSingleEmail(s.from, msg.Subject, mail.NewEmail("", msg.To), "", msg.HTMLBody)

	resp, err := s.send(m)
	if err != nil {
		return &DeliveryError{Provider: "sendgrid", Err: err}
	}
	if resp == nil {
		return &DeliveryError{Provider: "sendgrid", Err: errors.New("empty response")}
	}
	// SendGrid answers 202 Accepted on success
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &DeliveryError{
			Provider: "sendgrid",
			Err:      fmt.Errorf("unexpected status %d: %s", resp.StatusCode, resp.Body),
		}
	}
	return nil
}
