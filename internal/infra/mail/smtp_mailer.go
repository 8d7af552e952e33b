// Package mail implements the outbound mail service over SMTP.
package mail

import (
	"context"

	gomail "gopkg.in/gomail.v2"

	"petmanager/config"
	"petmanager/internal/domain/service"
	"petmanager/internal/errors"
)

// smtpMailer sends transactional mail through a configured SMTP relay.
type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return nil, errors.New("mail transport must be configured")
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password),
		from:   cfg.Mail.From,
	}, nil
}

// Send delivers a single plain-text message. The context is honored up
// front only; gomail's dialer has no context support.
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "send mail")
	}
	return nil
}
