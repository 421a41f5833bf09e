// Package mail contains the SMTP implementation of the MailSender contract.
package mail

import (
	"context"

	"wlsd/config"
	"wlsd/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

// smtpSender delivers mail over SMTP using go-mail.
type smtpSender struct {
	client *gomail.Client
	from   string
}

// NewSMTPSender builds the MailSender from configuration.
func NewSMTPSender(cfg *config.Config) (service.MailSender, error) {
	if cfg.Mail == nil {
		return nil, errors.New("mail configuration is missing")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Mail.Port),
	}
	if cfg.Mail.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Mail.Username),
			gomail.WithPassword(cfg.Mail.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Mail.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpSender{
		client: client,
		from:   cfg.Mail.From,
	}, nil
}

// Send delivers a single plain-text message. It blocks until the transport
// accepts the message or the attempt fails; a failure is final, there is no
// retry here.
func (s *smtpSender) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
