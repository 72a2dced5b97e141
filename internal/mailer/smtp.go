package mailer

import (
	"context"

	"gopkg.in/gomail.v2"

	"lingua/internal/config"
)

// SMTPDispatcher sends digest emails directly over SMTP.
type SMTPDispatcher struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPDispatcher(cfg config.SMTPConfig) *SMTPDispatcher {
	return &SMTPDispatcher{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (d *SMTPDispatcher) Send(ctx context.Context, subject, body, recipient string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", d.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	// Sections use anchor tags; send as HTML so clients render the links.
	m.SetBody("text/html", body)

	return d.dialer.DialAndSend(m)
}
