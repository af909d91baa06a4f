package notifications

import (
	"context"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// SMTPSender is the fallback transport for deployments without SendGrid.
type SMTPSender struct {
	from string
	send func(...*gomail.Message) error
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	if cfg.User == "" || cfg.Pass == "" || cfg.From == "" {
		return nil, ErrNotConfigured
	}
	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port %q: %w", cfg.Port, err)
	}
	// gomail switches to implicit TLS on 465 and STARTTLS otherwise
	d := gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Pass)
	return &SMTPSender{from: cfg.From, send: d.DialAndSend}, nil
}

func (s *SMTPSender) Send(_ context.Context, msg Message) error {
	if err := s.send(buildMessage(s.from, msg)); err != nil {
		return &DeliveryError{Provider: "smtp", Err: err}
	}
	return nil
}

func buildMessage(from string, msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)
	return m
}
