// Package mailer sends transactional email over SMTP.
package mailer

import (
	"gopkg.in/gomail.v2"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
)

// SMTPMailer delivers mail through a single SMTP endpoint.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates an SMTPMailer for the given endpoint and sender address.
func New(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers a plain-text message. The caller learns nothing about
// delivery beyond the returned error.
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	err := m.dialer.DialAndSend(msg)

	logger.Log.Infow("email send",
		"to", to,
		"subject", subject,
		"error", err,
	)

	return err
}
