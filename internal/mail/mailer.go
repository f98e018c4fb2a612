package mail

import (
	"hospital-management-api/config"

	"gopkg.in/gomail.v2"
)

// Mailer is the outbound delivery transport. Implementations report a send
// as a whole: the caller never retries or queues a failed send.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer delivers messages through an SMTP relay
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
